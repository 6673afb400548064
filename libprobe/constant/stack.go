package constant

const (
	// 每个工作线程的栈大小
	ThreadStackSize = 2 * 1024 * 1024

	// 为运行时自身的栈帧预留的空间，这是一个经验值，可以根据实验结果调整
	ThreadStackHeadroom = 8 * 1024

	// 工作线程真正可以填充的栈空间
	ThreadStackForUs = ThreadStackSize - ThreadStackHeadroom

	// 每一层递归栈帧中数组的大小
	// 必须小于编译器允许放在栈上的变量上限（128 KiB），否则数组会逃逸到堆上
	FrameSize = 120 * 1024
)
