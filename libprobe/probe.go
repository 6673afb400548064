package libprobe

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"ns-stack-probe/libprobe/config"
	"ns-stack-probe/libprobe/constant"
	"ns-stack-probe/libprobe/namespace"

	log "github.com/sirupsen/logrus"
)

type Probe struct {
	*config.Config
	process *exec.Cmd
}

// 创建 probe 对象
func NewProbe(conf *config.Config) *Probe {
	return &Probe{
		Config: conf,
	}
}

// 在新的 namespace 中创建 probe 子进程
// 子进程以 conf.StackSize 作为栈大小，入口是 ns-stack-probe init
func (p *Probe) Start() error {
	// 生成一个子进程的句柄，它启动后会运行 ns-stack-probe init
	process, readPipe, writePipe, err := newProbeProcess()
	if err != nil {
		return fmt.Errorf("failed to create new process: %v", err)
	}
	// readPipe 已经通过 ExtraFiles 交给子进程，父进程不再需要它
	defer readPipe.Close()

	log.Debugf("clone with namespaces %s, exit signal %v", namespace.String(), namespace.ExitSignal)

	// 栈大小限制只在创建子进程的过程中生效
	if err := withStackLimit(p.StackSize, process.Start); err != nil {
		_ = writePipe.Close()
		return fmt.Errorf("failed to clone with stack size %d: %w", p.StackSize, errnoError(err))
	}
	p.process = process
	p.Config.Pid = process.Process.Pid
	log.Debugf("probe process started, pid: %d", p.Config.Pid)

	// 子进程创建之后再通过管道发送参数
	if err := sendInitParams(p.Config.InitParams(), writePipe); err != nil {
		log.Warnf("send init params to pid %d: %v", p.Config.Pid, err)
	}

	return nil
}

// 等待子进程结束，返回它的 wait status
// 没有超时，子进程不退出时会一直阻塞
func (p *Probe) Wait() (*WaitStatus, error) {
	if p.process == nil {
		return nil, fmt.Errorf("probe process not started")
	}

	// 子进程非 0 退出时 Wait 也会返回错误，此时 ProcessState 仍然有效
	err := p.process.Wait()
	state := p.process.ProcessState
	if state == nil {
		return nil, fmt.Errorf("wait pid %d: %w", p.Config.Pid, errnoError(err))
	}

	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return nil, fmt.Errorf("unexpected wait status type %T", state.Sys())
	}
	return &WaitStatus{Pid: state.Pid(), Status: status}, nil
}

// 生成一个 probe 子进程的句柄
// 该子进程将运行 ns-stack-probe init，并拥有新的 user、cgroup、IPC、NET、Mount、PID、UTS namespace
func newProbeProcess() (*exec.Cmd, *os.File, *os.File, error) {
	// 创建一个匿名管道用于传递参数，readPipe 和 writePipe 分别传递给子进程和父进程
	readPipe, writePipe, err := os.Pipe()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("new pipe error: %w", errnoError(err))
	}

	// 重新执行 /proc/self/exe，也就是 ns-stack-probe 这个可执行文件，并传递参数 init
	cmd := exec.Command(constant.SelfExe, constant.InitCommandName)
	cmd.SysProcAttr = namespace.SysProcAttr()

	// 子进程的输出直接打印到当前终端
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// 将 readPipe 通过 cmd.ExtraFiles 传递给子进程，在子进程中它的文件描述符是 3
	cmd.ExtraFiles = []*os.File{readPipe}

	return cmd, readPipe, writePipe, nil
}

// 通过匿名管道发送参数给子进程
func sendInitParams(params *config.InitParams, writePipe *os.File) error {
	defer writePipe.Close()
	log.Debugf("send init params: %+v", *params)
	return config.WriteInitParams(writePipe, params)
}
