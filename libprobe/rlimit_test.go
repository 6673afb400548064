package libprobe

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func getStackLimit(t *testing.T) unix.Rlimit {
	t.Helper()
	var lim unix.Rlimit
	if err := unix.Prlimit(0, unix.RLIMIT_STACK, nil, &lim); err != nil {
		t.Fatalf("prlimit: %v", err)
	}
	return lim
}

func TestWithStackLimit(t *testing.T) {
	before := getStackLimit(t)

	size := uint64(16 * 1024 * 1024)
	if size > before.Max {
		size = before.Max
	}

	called := false
	err := withStackLimit(size, func() error {
		called = true
		if got := getStackLimit(t); got.Cur != size {
			t.Errorf("stack limit inside = %d, want %d", got.Cur, size)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withStackLimit() = %v", err)
	}
	if !called {
		t.Fatal("fn not called")
	}

	if after := getStackLimit(t); after != before {
		t.Errorf("stack limit not restored: %+v, want %+v", after, before)
	}
}

func TestWithStackLimitReturnsFnError(t *testing.T) {
	before := getStackLimit(t)
	want := errors.New("clone failed")

	err := withStackLimit(before.Cur, func() error { return want })
	if !errors.Is(err, want) {
		t.Errorf("withStackLimit() = %v, want %v", err, want)
	}
	if after := getStackLimit(t); after != before {
		t.Errorf("stack limit not restored after error: %+v", after)
	}
}

func TestWaitBeforeStart(t *testing.T) {
	p := NewProbe(nil)
	if _, err := p.Wait(); err == nil {
		t.Error("Wait() before Start() succeeded")
	}
}
