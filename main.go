package main

import (
	"os"

	"github.com/urfave/cli"

	log "github.com/sirupsen/logrus"

	"ns-stack-probe/cmd"
)

const (
	usage = `find the stack size needed to clone into new namespaces.

The probe clones a process into new user, cgroup, IPC, network, mount, PID and UTS
namespaces with STACK_SIZE bytes of stack. Inside, two threads with a 2 MiB stack
fill and verify their whole stack. A clean exit means STACK_SIZE is enough.`
)

// main 函数是整个程序的入口
// 使用的是 github.com/urfave/cli 框架来构建命令行工具
func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ns-stack-probe"
	app.Usage = usage
	app.UsageText = "ns-stack-probe [--debug] STACK_SIZE"

	// 子进程的入口
	app.Commands = []cli.Command{
		cmd.InitCommand,
	}
	// 全局 flag
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug", // 启用 debug 模式
			Usage: "enable debug mode",
		},
	}
	app.Before = func(context *cli.Context) error {
		// 设置日志格式
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
		// 设置日志级别
		if context.Bool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		log.SetOutput(os.Stdout)
		return nil
	}
	app.Action = cmd.Probe

	return app
}
