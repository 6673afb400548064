package config

// 一次 probe 运行的全部配置
type Config struct {
	// 子进程的栈大小，单位为字节
	StackSize uint64

	// 子进程在新的 UTS namespace 中使用的主机名
	Hostname string

	// 是否启用 debug 日志
	Debug bool

	// 子进程在宿主机上的 PID
	Pid int
}

// 父进程通过 init 管道发送给子进程的参数
type InitParams struct {
	StackSize uint64 `json:"stackSize"`
	Hostname  string `json:"hostname"`
	Debug     bool   `json:"debug"`
}

// 从 Config 中取出子进程需要的参数
func (c *Config) InitParams() *InitParams {
	return &InitParams{
		StackSize: c.StackSize,
		Hostname:  c.Hostname,
		Debug:     c.Debug,
	}
}
