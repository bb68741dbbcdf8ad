// Package utils 放置指针采样和文本排版这类与 ebiten 相关的辅助代码
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/launcher/pkg/carousel"
)

// PointerState 本帧的指针状态
// 统一鼠标左键和触摸输入，触摸优先
type PointerState struct {
	Pressed      bool // 当前按下
	JustPressed  bool // 本帧刚按下
	JustReleased bool // 本帧刚释放
	X, Y         int
	Touch        bool // 是否为触摸输入
}

// Pointer 指针输入来源
// EbitenPointer 读取真实输入，测试中用脚本化的实现代替
type Pointer interface {
	// State 返回本帧指针状态，每帧只应调用一次
	State() PointerState

	// Wheel 返回本帧滚轮的垂直滚动量（向上为正）
	Wheel() float64
}

// EbitenPointer 基于 ebiten 的鼠标 + 触摸输入
type EbitenPointer struct {
	touchID    ebiten.TouchID
	touching   bool
	lastTouchX int
	lastTouchY int
}

// NewEbitenPointer 创建指针输入
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{touchID: -1}
}

// State 实现 Pointer
func (p *EbitenPointer) State() PointerState {
	// 跟踪第一根手指，直到它抬起
	if p.touching {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == p.touchID {
				p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(id)
				return PointerState{Pressed: true, X: p.lastTouchX, Y: p.lastTouchY, Touch: true}
			}
		}
		// 触摸释放时使用保存的最后触摸位置
		p.touching = false
		p.touchID = -1
		return PointerState{JustReleased: true, X: p.lastTouchX, Y: p.lastTouchY, Touch: true}
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		p.touchID = ids[0]
		p.touching = true
		p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(p.touchID)
		return PointerState{Pressed: true, JustPressed: true, X: p.lastTouchX, Y: p.lastTouchY, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		X:            x,
		Y:            y,
	}
}

// Wheel 实现 Pointer
func (p *EbitenPointer) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// DragPhase 一次按下到释放之间所处的阶段
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragBegan
	DragMoved
	// DragReleased 只持续一帧
	DragReleased
)

// DragTracker 记录当前拖拽的起点、上一帧和本帧位置
type DragTracker struct {
	phase      DragPhase
	origin     image.Point
	prev, curr image.Point
	touch      bool
}

// NewDragTracker 创建空闲的拖拽跟踪器
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Update 每帧调用一次
func (d *DragTracker) Update(p PointerState) {
	pos := image.Pt(p.X, p.Y)
	if d.phase == DragIdle || d.phase == DragReleased {
		d.Reset()
		if p.JustPressed {
			*d = DragTracker{phase: DragBegan, origin: pos, prev: pos, curr: pos, touch: p.Touch}
		}
		return
	}

	d.prev, d.curr = d.curr, pos
	d.phase = DragMoved
	if !p.Pressed {
		d.phase = DragReleased
	}
}

// Reset 丢弃当前拖拽
func (d *DragTracker) Reset() {
	*d = DragTracker{}
}

func (d *DragTracker) Phase() DragPhase { return d.phase }

// Origin 拖拽起点（屏幕坐标）
func (d *DragTracker) Origin() image.Point { return d.origin }

// Distance 起点到当前位置的位移
func (d *DragTracker) Distance() image.Point { return d.curr.Sub(d.origin) }

// FrameDeltaY 本帧的垂直移动量，空闲时为 0
func (d *DragTracker) FrameDeltaY() int {
	if d.phase == DragIdle {
		return 0
	}
	return d.curr.Y - d.prev.Y
}

func (d *DragTracker) Touch() bool { return d.touch }

// DefaultWheelStep 滚轮滚动一格对应的拖动距离（像素）
const DefaultWheelStep = 40.0

// PointerSampler 把指针输入转换为轮播需要的"是否按住 + 垂直增量"
//
// 抓取必须从 Region 内开始，且起点不在 Ignore 区域内；抓住后离开区域仍然有效。
// 滚轮滚动被当作一帧长的拖动，松开后轮播按惯性滑行。
type PointerSampler struct {
	pointer Pointer
	drag    *DragTracker
	hold    carousel.HoldTracker

	// Region 返回可抓取区域，每帧调用，窗口缩放后无需重建
	Region func() carousel.Rect
	// Ignore 返回 true 的位置不能开始抓取，可为 nil
	Ignore func(x, y float64) bool
	// WheelStep 滚轮一格的拖动距离，为 0 时禁用滚轮
	WheelStep float64

	last PointerState
}

// NewPointerSampler 创建采样器
func NewPointerSampler(pointer Pointer, region func() carousel.Rect) *PointerSampler {
	return &PointerSampler{
		pointer:   pointer,
		drag:      NewDragTracker(),
		Region:    region,
		WheelStep: DefaultWheelStep,
	}
}

// Sample 实现 carousel.InputSampler
func (s *PointerSampler) Sample() (bool, float64) {
	p := s.pointer.State()
	s.last = p
	s.drag.Update(p)

	x, y := float64(p.X), float64(p.Y)
	ignore := s.Ignore != nil && s.Ignore(x, y)
	region := s.Region()

	if s.hold.Update(region, x, y, p.JustPressed, p.Pressed, ignore) {
		return true, float64(s.drag.FrameDeltaY())
	}

	if s.WheelStep != 0 && region.Contains(x, y) {
		if w := s.pointer.Wheel(); w != 0 {
			return true, w * s.WheelStep
		}
	}
	return false, 0
}

// Last 返回最近一次 Sample 读取的指针状态，供按钮等其他控件复用
func (s *PointerSampler) Last() PointerState {
	return s.last
}

// Holding 轮播是否被抓住
func (s *PointerSampler) Holding() bool {
	return s.hold.Held()
}

// Release 放开轮播（场景切换或窗口失焦时）
func (s *PointerSampler) Release() {
	s.hold.Release()
	s.drag.Reset()
}
