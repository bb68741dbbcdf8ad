package carousel

import "errors"

var (
	// ErrInvalidDuration 转场的入/出时长必须为正数（时长为 0 时速率无定义）
	ErrInvalidDuration = errors.New("carousel: transition duration must be positive")

	// ErrInvalidConfig 引擎配置不合法
	ErrInvalidConfig = errors.New("carousel: invalid config")

	// ErrEmptyOrder 显示顺序为空时调用了 Update / VisibleWindow
	ErrEmptyOrder = errors.New("carousel: display order is empty")

	// ErrNegativeDelta 帧间隔为负数
	ErrNegativeDelta = errors.New("carousel: negative frame delta")

	// ErrIndexOutOfRange 显示顺序下标越界
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
)
