package namespace

import (
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// 子进程退出时内核发送给父进程的信号
// 没有这个信号，父进程的 wait 会返回 ECHILD
// Go 的 forkExec 总是以 SIGCHLD 作为 clone 的退出信号，这里只是显式记录下来
const ExitSignal = unix.SIGCHLD

// 单个 namespace 的 clone 标志及其名称
type Namespace struct {
	Name string
	Flag uintptr
}

// probe 子进程需要隔离的全部 namespace，不支持部分隔离
var Namespaces = []Namespace{
	{Name: "user", Flag: unix.CLONE_NEWUSER},
	{Name: "cgroup", Flag: unix.CLONE_NEWCGROUP},
	{Name: "ipc", Flag: unix.CLONE_NEWIPC},
	{Name: "net", Flag: unix.CLONE_NEWNET},
	{Name: "mnt", Flag: unix.CLONE_NEWNS},
	{Name: "pid", Flag: unix.CLONE_NEWPID},
	{Name: "uts", Flag: unix.CLONE_NEWUTS},
}

// CloneFlags 返回传给 clone 系统调用的 namespace 标志
func CloneFlags() uintptr {
	var flags uintptr
	for _, ns := range Namespaces {
		flags |= ns.Flag
	}
	return flags
}

// 以 "user|cgroup|..." 的形式返回所有 namespace 的名称，用于日志
func String() string {
	names := make([]string, 0, len(Namespaces))
	for _, ns := range Namespaces {
		names = append(names, ns.Name)
	}
	return strings.Join(names, "|")
}

// SysProcAttr 生成创建子进程所需的属性
// 新的 user namespace 中将当前用户映射为 root，这样子进程在 execve 之后仍然保留 capability，
// 才能在自己的 UTS namespace 中设置 hostname
func SysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Cloneflags: CloneFlags(),
		UidMappings: []syscall.SysProcIDMap{
			{ContainerID: 0, HostID: os.Getuid(), Size: 1},
		},
		GidMappings: []syscall.SysProcIDMap{
			{ContainerID: 0, HostID: os.Getgid(), Size: 1},
		},
		// 非特权用户写 gid_map 之前必须禁用 setgroups
		GidMappingsEnableSetgroups: false,
	}
}
