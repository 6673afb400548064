package stack

import (
	"fmt"
	"runtime"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// worker 在线程上执行的填充函数
var fillStack = Fill

// 独立 OS 线程上运行的一个填充任务
type Worker struct {
	Direction Direction
	Size      int

	done chan struct{}
	err  error
}

// 启动一个 worker，它会独占一个 OS 线程
func Spawn(dir Direction, size int) *Worker {
	w := &Worker{
		Direction: dir,
		Size:      size,
		done:      make(chan struct{}),
	}

	go func() {
		// 不调用 UnlockOSThread，goroutine 退出时这个线程也随之销毁
		runtime.LockOSThread()

		defer close(w.done)
		defer func() {
			if r := recover(); r != nil {
				w.err = fmt.Errorf("%v worker panicked: %v", w.Direction, r)
			}
		}()

		log.Debugf("%v worker started, filling %d bytes", w.Direction, w.Size)
		w.err = fillStack(w.Direction, w.Size)
	}()

	return w
}

// 等待 worker 结束，返回它的执行结果
func (w *Worker) Join() error {
	<-w.done
	return w.err
}

// 启动正向和反向两个 worker，等待两者都结束
func RunWorkers(size int) error {
	workers := []*Worker{
		Spawn(Forward, size),
		Spawn(Reverse, size),
	}

	var firstErr error
	for _, w := range workers {
		if err := w.Join(); err != nil {
			log.Errorf("%v worker failed: %v", w.Direction, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Debugf("%v worker finished", w.Direction)
	}
	return firstErr
}

// 限制每个 goroutine 栈的最大值，返回之前的设置
// 超过这个限制时 Go 运行时会直接以 stack overflow 终止进程
func LimitThreadStack(size int) int {
	return debug.SetMaxStack(size)
}
