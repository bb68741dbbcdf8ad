package carousel

import "time"

// Clock 提供单调递增的当前时间（秒）
type Clock interface {
	Now() float64
}

// FrameClock 由宿主循环每帧推进的时钟
// 与 ebiten 的固定 tick 配合使用，保证 now 与 dt 一致
type FrameClock struct {
	now float64
}

// Advance 推进 dt 秒，负数被忽略
func (c *FrameClock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

// Now 实现 Clock 接口
func (c *FrameClock) Now() float64 {
	return c.now
}

// SystemClock 基于墙上时钟的单调时钟
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建从当前时刻开始计时的时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 实现 Clock 接口
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
