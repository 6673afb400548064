package libprobe

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// RLIMIT_STACK 是进程级别的设置，同一时间只允许一个调用者修改
var stackLimitMu sync.Mutex

// 在 RLIMIT_STACK 为 size 的情况下执行 fn，fn 返回后恢复原来的限制
// fn 中 fork 出来的子进程会继承这个限制，并在 execve 时按照它建立自己的栈
func withStackLimit(size uint64, fn func() error) error {
	stackLimitMu.Lock()
	defer stackLimitMu.Unlock()

	var old unix.Rlimit
	if err := unix.Prlimit(0, unix.RLIMIT_STACK, nil, &old); err != nil {
		return fmt.Errorf("get stack rlimit: %w", errnoError(err))
	}

	limit := unix.Rlimit{Cur: size, Max: old.Max}
	if err := unix.Prlimit(0, unix.RLIMIT_STACK, &limit, nil); err != nil {
		return fmt.Errorf("set stack rlimit to %d: %w", size, errnoError(err))
	}
	log.Debugf("stack rlimit set to %d (was %d, max %d)", size, old.Cur, old.Max)

	defer func() {
		if err := unix.Prlimit(0, unix.RLIMIT_STACK, &old, nil); err != nil {
			log.Warnf("restore stack rlimit: %v", errnoError(err))
		}
	}()

	return fn()
}
