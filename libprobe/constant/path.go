package constant

const (
	// 指向当前可执行文件的符号链接，子进程通过它重新执行 probe 自身
	SelfExe = "/proc/self/exe"

	// 子进程入口的子命令名称
	InitCommandName = "init"

	// 子进程中 init 管道的文件描述符
	// 0、1、2 分别是标准输入、标准输出和标准错误，cmd.ExtraFiles 中的第一个文件就是 3
	InitPipeFd = 3
)
