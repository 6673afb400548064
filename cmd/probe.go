package cmd

import (
	"fmt"
	"io"

	"ns-stack-probe/libprobe"
	"ns-stack-probe/libprobe/config"
	"ns-stack-probe/libprobe/constant"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// ns-stack-probe STACK_SIZE 的入口点
// 1. 解析栈大小
// 2. 打印线程栈相关的常量
// 3. 在新的 namespace 中创建子进程并等待它结束
func Probe(context *cli.Context) error {
	// 生成 probe 的配置信息
	conf, err := config.CreateConfig(context)
	if err != nil {
		return fmt.Errorf("create config error: %v", err)
	}

	printStackSizes(context.App.Writer, conf)

	return run(context.App.Writer, conf)
}

func printStackSizes(w io.Writer, conf *config.Config) {
	fmt.Fprintf(w, "thread stack size: %d\n", constant.ThreadStackSize)
	fmt.Fprintf(w, "thread stack for us: %d\n", constant.ThreadStackForUs)
	fmt.Fprintf(w, "cloning with stack size: %d bytes\n", conf.StackSize)
}

func run(w io.Writer, conf *config.Config) error {
	// 创建 probe 对象
	probe := libprobe.NewProbe(conf)

	// 启动子进程，失败时不做任何重试
	if err := probe.Start(); err != nil {
		return fmt.Errorf("start probe error: %v", err)
	}
	log.Debugf("waiting for probe %s (pid %d)", conf.Hostname, conf.Pid)

	// 阻塞直到子进程结束
	status, err := probe.Wait()
	if err != nil {
		return fmt.Errorf("wait probe error: %v", err)
	}
	fmt.Fprintln(w, status)

	// 子进程异常退出说明栈大小不够，整个程序也以失败结束
	if !status.Success() {
		return fmt.Errorf("probe process terminated abnormally: %v", status)
	}
	return nil
}
