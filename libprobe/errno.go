package libprobe

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// 带上 errno 名称的系统调用错误，如 "EPERM (operation not permitted)"
type ErrnoError struct {
	Errno syscall.Errno
}

func (e *ErrnoError) Error() string {
	name := unix.ErrnoName(e.Errno)
	if name == "" {
		name = fmt.Sprintf("errno %d", int(e.Errno))
	}
	return fmt.Sprintf("%s (%v)", name, e.Errno.Error())
}

func (e *ErrnoError) Unwrap() error {
	return e.Errno
}

// 如果 err 中包含 errno，则附带上 errno 的名称，其它错误原样返回
func errnoError(err error) error {
	var errnoErr *ErrnoError
	if errors.As(err, &errnoErr) {
		return err
	}
	if errno, ok := err.(syscall.Errno); ok {
		return &ErrnoError{Errno: errno}
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fmt.Errorf("%v: %w", err, &ErrnoError{Errno: errno})
	}
	return err
}
