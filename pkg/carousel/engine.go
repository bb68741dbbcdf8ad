// Package carousel 实现带惯性与吸附的循环轮播选择器
//
// 条目在一维循环列表中排列，用户拖动/甩动后列表在摩擦作用下滑行、减速，
// 最后把离中心最近的条目吸附到居中放大的焦点位置。
//
// 引擎是单线程、按帧推进的：宿主循环每帧调用一次 Update，
// 渲染器随后读取 VisibleWindow。注册表与显示顺序的修改应发生在两帧之间。
package carousel

import (
	"fmt"
	"log"
	"math"
)

// Engine 轮播状态机
type Engine struct {
	cfg      Config
	registry *Registry
	order    *DisplayOrder
	clock    Clock

	offset           float64 // 连续位置，取值 [0, ItemHeight × n)
	prevStableOffset float64 // 上一次开始停稳时的偏移
	velocity         float64
	phase            Phase
	lastStop         float64 // 最近一次开始吸附的时间

	snap *Transition // 驱动偏移修正
	grow *Transition // 驱动焦点条目高度

	synced       bool
	seenRevision uint64
	seenLen      int
}

// NewEngine 创建引擎
//
// 参数：
//   - cfg: 引擎配置，构造时校验
//   - registry: 条目注册表
//   - order: 显示顺序，初始居中的是 order.Selected()
//   - clock: 时钟，为 nil 时使用 FrameClock（时间停止不前）
//
// 返回：
//   - error: 配置不合法时返回 ErrInvalidConfig 或 ErrInvalidDuration
func NewEngine(cfg Config, registry *Registry, order *DisplayOrder, clock Clock) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if registry == nil || order == nil {
		return nil, fmt.Errorf("%w: registry and order are required", ErrInvalidConfig)
	}
	if clock == nil {
		clock = &FrameClock{}
	}

	snap, err := NewTransition(cfg.SnapIn, cfg.SnapOut, 0, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("snap transition: %w", err)
	}
	grow, err := NewTransition(cfg.GrowIn, cfg.GrowOut, cfg.ItemHeight, cfg.MaxFocusedHeight, cfg.ItemHeight)
	if err != nil {
		return nil, fmt.Errorf("grow transition: %w", err)
	}

	return &Engine{
		cfg:      cfg,
		registry: registry,
		order:    order,
		clock:    clock,
		// 一开始就处于停止状态会让第一次吸附错位，因此假装在滑行，从吸附开始
		phase: PhaseCoasting,
		snap:  snap,
		grow:  grow,
	}, nil
}

// Update 推进一帧并返回居中条目的 ID
//
// 参数：
//   - held: 本帧是否按住（拖动中）
//   - deltaY: 本帧指针的垂直位移
//   - dt: 帧间隔（秒），不能为负
func (e *Engine) Update(held bool, deltaY, dt float64) (ID, error) {
	if dt < 0 {
		return InvalidID, fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	if err := e.sync(); err != nil {
		return InvalidID, err
	}

	h := e.cfg.ItemHeight
	span := h * float64(e.order.Len())

	// 1. 阶段选择：与上一帧阶段比较，区分"第一帧"和稳定阶段
	prev := e.phase
	switch {
	case held:
		e.phase = PhaseDragging
	case math.Abs(e.velocity) < e.cfg.VelocityFloor:
		if e.grow.IsAtFinish() {
			if prev.IsStopped() {
				e.phase = PhaseStopped
			} else {
				e.phase = PhaseStoppedFirst
			}
		} else {
			if prev.IsApproaching() {
				e.phase = PhaseApproachingSnap
			} else {
				e.phase = PhaseApproachingSnapFirst
			}
		}
	default:
		e.phase = PhaseCoasting
	}

	// 2. 阶段动作
	switch e.phase {
	case PhaseDragging:
		if dt > 0 {
			e.velocity = clampAbs(deltaY/dt, e.cfg.VelocityMax)
		}
	case PhaseCoasting:
		e.velocity += e.cfg.decel(e.velocity) * dt
	case PhaseApproachingSnapFirst:
		e.prevStableOffset = e.offset
		e.order.setSettled(e.indexAt(e.offset))

		// 目标：让当前槽位的条目居中（同一槽位内，不会跨越循环边界）
		slot := math.Floor(e.offset / h)
		e.snap.SetBounds(e.offset, Wrap(slot*h+h/2, span))
		e.lastStop = e.clock.Now()
		e.velocity = 0
		log.Printf("[Carousel] 开始吸附: index=%d (%s), offset=%.2f",
			e.indexAt(e.offset), ItemName(e.registry.Get(e.order.At(e.indexAt(e.offset)))), e.offset)
		fallthrough
	case PhaseApproachingSnap:
		e.snap.Advance(true, dt)
		if e.snap.IsAtFinish() {
			e.grow.Advance(true, dt)
		}
	case PhaseStoppedFirst, PhaseStopped:
		// 尺寸和位置都已就绪
	}

	if !e.phase.IsApproaching() {
		e.snap.SetBounds(0, 0)
		e.snap.Advance(false, collapseDelta)
		if !e.phase.IsStopped() {
			e.grow.Advance(false, dt)
		}
	}

	// 3. 偏移积分：吸附转场以增量方式叠加，与速度积分可以同时生效
	e.offset = Wrap(e.offset+e.velocity*dt+e.snap.DeltaValue(EaseOutQuint), span)

	// 4. 解析居中条目
	selected := e.indexAt(e.offset)
	e.order.setSelected(selected)
	return e.order.At(selected), nil
}

// Step 从输入采样器读取本帧输入并推进一帧
func (e *Engine) Step(sampler InputSampler, dt float64) (ID, error) {
	held, deltaY := sampler.Sample()
	return e.Update(held, deltaY, dt)
}

// Focus 立即把 index 处的条目移到中心
// 用于恢复上次选中的条目或键盘/搜索跳转；焦点高度复位，随后的帧重新走一遍吸附和放大
func (e *Engine) Focus(index int) error {
	n := e.order.Len()
	if n == 0 {
		return ErrEmptyOrder
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: focus %d (len %d)", ErrIndexOutOfRange, index, n)
	}

	e.order.setSelected(index)
	e.order.setSettled(index)
	e.offset = e.centerOffset(index)
	e.prevStableOffset = e.offset
	e.velocity = 0
	e.phase = PhaseCoasting
	e.lastStop = e.clock.Now()
	e.snap.SetBounds(0, 0)
	e.snap.JumpToStart()
	e.grow.JumpToStart()
	e.synced = true
	e.seenRevision = e.order.Revision()
	e.seenLen = n
	return nil
}

// Resize 修改条目高度（例如窗口尺寸变化），按比例缩放所有偏移
func (e *Engine) Resize(itemHeight, maxFocusedHeight float64) error {
	if !(itemHeight > 0) || maxFocusedHeight < itemHeight {
		return fmt.Errorf("%w: resize to %v/%v", ErrInvalidConfig, itemHeight, maxFocusedHeight)
	}

	scale := itemHeight / e.cfg.ItemHeight
	e.offset *= scale
	e.prevStableOffset *= scale
	e.velocity *= scale
	start, finish := e.snap.Bounds()
	e.snap.SetBounds(start*scale, finish*scale)

	e.cfg.ItemHeight = itemHeight
	e.cfg.MaxFocusedHeight = maxFocusedHeight
	e.grow.SetBounds(itemHeight, maxFocusedHeight)
	return nil
}

// sync 检查显示顺序是否在帧间被修改，并重新对齐偏移
func (e *Engine) sync() error {
	n := e.order.Len()
	if n == 0 {
		return ErrEmptyOrder
	}

	switch {
	case !e.synced:
		e.offset = e.centerOffset(e.order.Selected())
		e.prevStableOffset = e.centerOffset(e.order.Settled())
		e.synced = true
	case e.order.Revision() != e.seenRevision:
		// 居中下标由游标记录决定，只保留槽位内的小数部分
		e.offset = e.rebase(e.offset, e.order.Selected())
		e.prevStableOffset = e.rebase(e.prevStableOffset, e.order.Settled())
		if n != e.seenLen {
			log.Printf("[Carousel] 显示顺序变化: %d -> %d 项, 居中 index=%d", e.seenLen, n, e.order.Selected())
		}
	}

	e.seenRevision = e.order.Revision()
	e.seenLen = n
	return nil
}

// rebase 返回让 index 居中、且保留 offset 槽位内小数部分的新偏移
func (e *Engine) rebase(offset float64, index int) float64 {
	h := e.cfg.ItemHeight
	n := e.order.Len()
	frac := Wrap(offset, h)
	return float64(n-1-wrapIndex(index, n))*h + frac
}

// centerOffset 返回让 index 恰好居中的偏移
func (e *Engine) centerOffset(index int) float64 {
	h := e.cfg.ItemHeight
	n := e.order.Len()
	return float64(n-1-wrapIndex(index, n))*h + h/2
}

// indexAt 根据偏移解析居中下标：(n - 1 - floor(offset / h)) mod n
func (e *Engine) indexAt(offset float64) int {
	n := e.order.Len()
	slot := int(math.Floor(offset / e.cfg.ItemHeight))
	return wrapIndex(n-1-slot, n)
}

// Phase 返回当前阶段
func (e *Engine) Phase() Phase {
	return e.phase
}

// Offset 返回当前连续偏移
func (e *Engine) Offset() float64 {
	return e.offset
}

// PreviousStableOffset 返回上一次开始停稳时的偏移
func (e *Engine) PreviousStableOffset() float64 {
	return e.prevStableOffset
}

// Velocity 返回当前速度（px/s）
func (e *Engine) Velocity() float64 {
	return e.velocity
}

// SelectedIndex 返回居中条目的下标
func (e *Engine) SelectedIndex() int {
	return e.order.Selected()
}

// SelectedID 返回居中条目的 ID
func (e *Engine) SelectedID() ID {
	return e.order.At(e.order.Selected())
}

// SettledID 返回上一次停稳时居中条目的 ID
// 拖动和滑行期间保持不变，可用于在旧焦点和新焦点之间做淡入淡出
func (e *Engine) SettledID() ID {
	return e.order.At(e.order.Settled())
}

// FocusedHeight 返回焦点条目当前高度
func (e *Engine) FocusedHeight() float64 {
	return e.grow.Value(EaseOutQuint)
}

// SnapProgress 返回吸附进度（缓动后），停止阶段恒为 1
func (e *Engine) SnapProgress() float64 {
	if e.phase.IsStopped() {
		return 1
	}
	return e.snap.Eased(EaseOutQuint)
}

// StoppingElapsed 返回距最近一次开始吸附的时间（秒）
func (e *Engine) StoppingElapsed() float64 {
	return e.clock.Now() - e.lastStop
}

// Config 返回当前配置
func (e *Engine) Config() Config {
	return e.cfg
}

// Order 返回显示顺序
func (e *Engine) Order() *DisplayOrder {
	return e.order
}

// Registry 返回条目注册表
func (e *Engine) Registry() *Registry {
	return e.registry
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
