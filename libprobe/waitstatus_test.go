package libprobe

import (
	"syscall"
	"testing"
)

func TestWaitStatusString(t *testing.T) {
	tests := []struct {
		name    string
		status  syscall.WaitStatus
		want    string
		success bool
	}{
		{"exit 0", syscall.WaitStatus(0), "Exited(pid=7, code=0)", true},
		{"exit 1", syscall.WaitStatus(1 << 8), "Exited(pid=7, code=1)", false},
		{"sigsegv", syscall.WaitStatus(syscall.SIGSEGV), "Signaled(pid=7, signal=SIGSEGV, core=false)", false},
		{"sigabrt core", syscall.WaitStatus(syscall.SIGABRT | 0x80), "Signaled(pid=7, signal=SIGABRT, core=true)", false},
		{"stopped", syscall.WaitStatus(0x7f | syscall.SIGSTOP<<8), "Stopped(pid=7, signal=SIGSTOP)", false},
	}

	for _, tt := range tests {
		ws := &WaitStatus{Pid: 7, Status: tt.status}
		if got := ws.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
		if got := ws.Success(); got != tt.success {
			t.Errorf("%s: Success() = %t, want %t", tt.name, got, tt.success)
		}
	}
}
