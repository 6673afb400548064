package libprobe

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// 子进程结束后内核返回的 wait status
type WaitStatus struct {
	Pid    int
	Status syscall.WaitStatus
}

// 子进程是否以 0 正常退出
func (s *WaitStatus) Success() bool {
	return s.Status.Exited() && s.Status.ExitStatus() == 0
}

func (s *WaitStatus) String() string {
	ws := s.Status
	switch {
	case ws.Exited():
		return fmt.Sprintf("Exited(pid=%d, code=%d)", s.Pid, ws.ExitStatus())
	case ws.Signaled():
		return fmt.Sprintf("Signaled(pid=%d, signal=%s, core=%t)", s.Pid, signalName(ws.Signal()), ws.CoreDump())
	case ws.Stopped():
		return fmt.Sprintf("Stopped(pid=%d, signal=%s)", s.Pid, signalName(ws.StopSignal()))
	case ws.Continued():
		return fmt.Sprintf("Continued(pid=%d)", s.Pid)
	default:
		return fmt.Sprintf("Unknown(pid=%d, status=%#x)", s.Pid, uint32(ws))
	}
}

func signalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return sig.String()
}
