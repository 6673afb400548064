package cmd

import (
	"fmt"
	"io"
	"os"

	"ns-stack-probe/libprobe/config"
	"ns-stack-probe/libprobe/constant"
	"ns-stack-probe/libprobe/stack"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/sys/unix"
)

// ns-stack-probe init 命令（它不可以被显式调用）
var InitCommand = cli.Command{
	Name:   constant.InitCommandName,
	Usage:  `Init the probe process, do not call it outside!`,
	Hidden: true, // 隐藏该命令，避免被显式调用

	// 1. 读取父进程通过管道传递来的参数
	// 2. 在新的 namespace 中启动两个 worker 填充各自的栈
	Action: func(context *cli.Context) error {
		pipe := os.NewFile(uintptr(constant.InitPipeFd), "pipe")
		defer pipe.Close()
		return initProbe(pipe)
	},
}

// 在子进程中执行 probe
// 执行到这里的时候子进程已经处于新的 namespace 中
func initProbe(pipe io.Reader) error {
	params, err := config.ReadInitParams(pipe)
	if err != nil {
		// 没有参数时仍然可以完成栈检查
		log.Warnf("read init params error: %v", err)
		params = &config.InitParams{}
	}
	if params.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("--- Inside the probe namespaces, pid: %d ---", os.Getpid())

	if params.Hostname != "" {
		setHostname(params.Hostname)
	}

	// 限制 goroutine 栈的大小，超出时运行时直接终止进程
	prev := stack.LimitThreadStack(constant.ThreadStackSize)
	defer stack.LimitThreadStack(prev)

	if err := stack.RunWorkers(constant.ThreadStackForUs); err != nil {
		return fmt.Errorf("stack check failed with stack size %d: %v", params.StackSize, err)
	}
	log.Debugf("stack check passed")

	return nil
}

// 在新的 UTS namespace 中设置主机名，失败不影响栈检查
func setHostname(hostname string) {
	if err := unix.Sethostname([]byte(hostname)); err != nil {
		log.Warnf("set hostname %s error: %v", hostname, err)
		return
	}
	log.Debugf("hostname set to %s", hostname)
}
