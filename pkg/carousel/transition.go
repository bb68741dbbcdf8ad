package carousel

import "fmt"

// Transition 带缓动的时间驱动插值
//
// 进度 p ∈ [0, 1] 以恒定速率变化：前进时速率为 1/inDuration，后退时为 1/outDuration。
// 取值时再经过缓动函数映射到 [start, finish] 区间。
//
// 区间可以在动画进行中随时修改（SetBounds），进度保持不变，
// 这样吸附目标每帧重新计算时不会让动画从头开始。
//
// DeltaValue 返回本帧的增量而不是绝对值：引擎把增量累加到偏移上，
// 使得速度积分等其它运动可以与转场叠加。
type Transition struct {
	start  float64
	finish float64

	progress     float64 // 当前进度 [0, 1]
	prevProgress float64 // 上一次 Advance 之前的进度，用于计算增量

	inDuration  float64 // 前进时长（秒）
	outDuration float64 // 后退时长（秒）
}

// NewTransition 创建转场
//
// 参数：
//   - in, out: 前进/后退时长（秒），必须为正数
//   - start, finish: 取值区间
//   - init: 初始值，换算为进度后限制在 [0, 1]；区间长度为 0 时进度为 0
//
// 返回：
//   - error: 时长不合法时返回 ErrInvalidDuration
func NewTransition(in, out, start, finish, init float64) (*Transition, error) {
	if !(in > 0) || !(out > 0) {
		return nil, fmt.Errorf("%w: in=%v out=%v", ErrInvalidDuration, in, out)
	}

	p := 0.0
	if finish != start {
		p = clamp01((init - start) / (finish - start))
	}

	return &Transition{
		start:        start,
		finish:       finish,
		progress:     p,
		prevProgress: p,
		inDuration:   in,
		outDuration:  out,
	}, nil
}

// Advance 推进转场
// forward 为 true 时向 1 前进，否则向 0 后退；进度被限制在 [0, 1]。
// 需要"一次完成"时传入足够大的 dt（例如 1.0 秒），不要使用 0 时长。
func (t *Transition) Advance(forward bool, dt float64) {
	t.prevProgress = t.progress
	if forward {
		t.progress = clamp01(t.progress + dt/t.inDuration)
	} else {
		t.progress = clamp01(t.progress - dt/t.outDuration)
	}
}

// SetBounds 替换取值区间，不修改进度
func (t *Transition) SetBounds(start, finish float64) {
	t.start = start
	t.finish = finish
}

// Bounds 返回当前取值区间
func (t *Transition) Bounds() (start, finish float64) {
	return t.start, t.finish
}

// Progress 返回原始（未缓动）进度
func (t *Transition) Progress() float64 {
	return t.progress
}

// Value 返回 lerp(start, finish, ease(progress))
func (t *Transition) Value(ease EaseFunc) float64 {
	return Lerp(t.start, t.finish, ease(t.progress))
}

// DeltaValue 返回本帧的增量：Value(ease) - lerp(start, finish, ease(prevProgress))
func (t *Transition) DeltaValue(ease EaseFunc) float64 {
	return t.Value(ease) - Lerp(t.start, t.finish, ease(t.prevProgress))
}

// Eased 返回 ease(progress)
func (t *Transition) Eased(ease EaseFunc) float64 {
	return ease(t.progress)
}

// DeltaEased 返回 ease(progress) - ease(prevProgress)
func (t *Transition) DeltaEased(ease EaseFunc) float64 {
	return ease(t.progress) - ease(t.prevProgress)
}

// IsAtFinish 进度恰好为 1
func (t *Transition) IsAtFinish() bool {
	return t.progress == 1
}

// IsAtStart 进度恰好为 0
func (t *Transition) IsAtStart() bool {
	return t.progress == 0
}

// JumpToFinish 立即前进到终点，返回终点值
func (t *Transition) JumpToFinish() float64 {
	t.Advance(true, t.inDuration+1)
	return t.finish
}

// JumpToStart 立即后退到起点，返回起点值
func (t *Transition) JumpToStart() float64 {
	t.Advance(false, t.outDuration+1)
	return t.start
}
