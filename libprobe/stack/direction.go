package stack

import "fmt"

// 填充栈的方向
type Direction int

const (
	// 正向填充：第 i 个字节写入 i mod 256，下标从小到大
	Forward Direction = iota
	// 反向填充：第 size-1-i 个字节写入 i mod 256，下标从大到小
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// 数组中第 index 个字节应当保存的值
func (d Direction) expected(index, size int) byte {
	if d == Reverse {
		return byte((size - 1 - index) % 256)
	}
	return byte(index % 256)
}

// 校验失败时返回的错误，说明栈上的数据被破坏了
type MismatchError struct {
	Direction Direction
	Index     int
	Want      byte
	Got       byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v stack check failed at index %d: want %d, got %d", e.Direction, e.Index, e.Want, e.Got)
}
