package stack

import (
	"ns-stack-probe/libprobe/constant"
)

// 在当前 goroutine 的栈上填充并校验 size 字节
//
// Go 不允许把超过 128 KiB 的局部数组放在栈上，所以这里把整个数组拆成若干个
// constant.FrameSize 大小的块，每一层递归的栈帧持有一块。
// 所有栈帧都还存活时，数组就占据了 size 字节的栈空间。
// 正向填充时第一层栈帧持有数组的开头，反向填充时第一层栈帧持有数组的末尾，
// 这样按递归顺序写入时，整个数组的写入顺序与填充方向一致。
//
// 所有栈帧都填充完成之后才开始校验。校验在递归返回时进行，最深的栈帧最先校验，
// 块内按照填充方向扫描，所以返回的 MismatchError 不一定是下标最小（或最大）的那个字节。
func Fill(dir Direction, size int) error {
	if size <= 0 {
		return nil
	}
	f := &filler{dir: dir, size: size}
	return f.frame(0)
}

type filler struct {
	dir  Direction
	size int
}

// consumed 是外层栈帧已经覆盖的字节数
func (f *filler) frame(consumed int) error {
	var chunk [constant.FrameSize]byte

	n := f.size - consumed
	if n > len(chunk) {
		n = len(chunk)
	}
	lo := consumed
	if f.dir == Reverse {
		lo = f.size - consumed - n
	}

	fill(f.dir, chunk[:n], lo, f.size)

	// 更深的栈帧填充完成并校验通过之后，再校验本层
	if consumed+n < f.size {
		if err := f.frame(consumed + n); err != nil {
			return err
		}
	}

	return verify(f.dir, chunk[:n], lo, f.size)
}

// buf 对应整个数组中 [lo, lo+len(buf)) 这一段
func fill(dir Direction, buf []byte, lo, size int) {
	if dir == Reverse {
		for i := len(buf) - 1; i >= 0; i-- {
			buf[i] = dir.expected(lo+i, size)
		}
		return
	}
	for i := range buf {
		buf[i] = dir.expected(lo+i, size)
	}
}

func verify(dir Direction, buf []byte, lo, size int) error {
	if dir == Reverse {
		for i := len(buf) - 1; i >= 0; i-- {
			if want := dir.expected(lo+i, size); buf[i] != want {
				return &MismatchError{Direction: dir, Index: lo + i, Want: want, Got: buf[i]}
			}
		}
		return nil
	}
	for i := range buf {
		if want := dir.expected(lo+i, size); buf[i] != want {
			return &MismatchError{Direction: dir, Index: lo + i, Want: want, Got: buf[i]}
		}
	}
	return nil
}
