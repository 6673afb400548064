package namespace

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestCloneFlags(t *testing.T) {
	want := uintptr(unix.CLONE_NEWUSER | unix.CLONE_NEWCGROUP | unix.CLONE_NEWIPC |
		unix.CLONE_NEWNET | unix.CLONE_NEWNS | unix.CLONE_NEWPID | unix.CLONE_NEWUTS)
	if got := CloneFlags(); got != want {
		t.Fatalf("CloneFlags() = %#x, want %#x", got, want)
	}
}

func TestCloneFlagsExcludeSharing(t *testing.T) {
	// 子进程必须拥有独立的地址空间
	shared := uintptr(unix.CLONE_VM | unix.CLONE_THREAD | unix.CLONE_FILES | unix.CLONE_FS)
	if CloneFlags()&shared != 0 {
		t.Errorf("CloneFlags() = %#x shares resources with the parent", CloneFlags())
	}
}

func TestString(t *testing.T) {
	if got, want := String(), "user|cgroup|ipc|net|mnt|pid|uts"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSysProcAttr(t *testing.T) {
	attr := SysProcAttr()
	if attr.Cloneflags != CloneFlags() {
		t.Errorf("Cloneflags = %#x, want %#x", attr.Cloneflags, CloneFlags())
	}
	if len(attr.UidMappings) != 1 || attr.UidMappings[0].HostID != os.Getuid() || attr.UidMappings[0].ContainerID != 0 {
		t.Errorf("unexpected uid mappings: %+v", attr.UidMappings)
	}
	if len(attr.GidMappings) != 1 || attr.GidMappings[0].HostID != os.Getgid() {
		t.Errorf("unexpected gid mappings: %+v", attr.GidMappings)
	}
	if attr.GidMappingsEnableSetgroups {
		t.Error("setgroups must stay disabled for unprivileged gid mapping")
	}
}

func TestExitSignal(t *testing.T) {
	// 父进程依赖 SIGCHLD 才能 wait 到子进程
	if ExitSignal != unix.SIGCHLD {
		t.Errorf("ExitSignal = %v, want SIGCHLD", ExitSignal)
	}
	// clone 标志的低 8 位（CSIGNAL）是退出信号，namespace 标志不能占用它们，
	// 否则 Go 传入的 SIGCHLD 会被改写
	if sig := CloneFlags() & 0xff; sig != 0 {
		t.Errorf("CloneFlags() overrides the exit signal with %#x", sig)
	}
}
