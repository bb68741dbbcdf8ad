package utils

import (
	"image"
	"testing"

	"github.com/decker502/launcher/pkg/carousel"
)

// scriptedPointer 按脚本逐帧返回指针状态
type scriptedPointer struct {
	frames []PointerState
	wheels []float64
	i      int
}

func (p *scriptedPointer) State() PointerState {
	if p.i >= len(p.frames) {
		return PointerState{}
	}
	s := p.frames[p.i]
	p.i++
	return s
}

func (p *scriptedPointer) Wheel() float64 {
	// State 已经前进到下一帧
	if k := p.i - 1; k >= 0 && k < len(p.wheels) {
		return p.wheels[k]
	}
	return 0
}

func press(x, y int) PointerState { return PointerState{Pressed: true, JustPressed: true, X: x, Y: y} }
func hold(x, y int) PointerState  { return PointerState{Pressed: true, X: x, Y: y} }
func release(x, y int) PointerState {
	return PointerState{JustReleased: true, X: x, Y: y}
}

func TestDragTrackerIdle(t *testing.T) {
	d := NewDragTracker()
	if d.Phase() != DragIdle {
		t.Errorf("初始阶段 = %v, 期望 DragIdle", d.Phase())
	}
	if d.FrameDeltaY() != 0 {
		t.Error("没有拖拽时 FrameDeltaY 应为 0")
	}
}

func TestDragTrackerPhases(t *testing.T) {
	d := NewDragTracker()

	steps := []struct {
		input  PointerState
		phase  DragPhase
		deltaY int
	}{
		{hold(10, 10), DragIdle, 0}, // 没有按下事件，不开始拖拽
		{press(10, 100), DragBegan, 0},
		{hold(10, 90), DragMoved, -10},
		{hold(12, 70), DragMoved, -20},
		{release(12, 75), DragReleased, 5},
		{PointerState{X: 12, Y: 75}, DragIdle, 0},
	}

	for i, s := range steps {
		d.Update(s.input)
		if d.Phase() != s.phase {
			t.Errorf("第 %d 帧: 阶段 = %v, 期望 %v", i, d.Phase(), s.phase)
		}
		if got := d.FrameDeltaY(); got != s.deltaY {
			t.Errorf("第 %d 帧: FrameDeltaY = %d, 期望 %d", i, got, s.deltaY)
		}
	}
}

func TestDragTrackerDistance(t *testing.T) {
	d := NewDragTracker()
	d.Update(PointerState{Pressed: true, JustPressed: true, X: 100, Y: 200, Touch: true})
	d.Update(hold(150, 260))

	if got := d.Distance(); got != image.Pt(50, 60) {
		t.Errorf("拖拽距离 = %v, 期望 (50,60)", got)
	}
	if got := d.Origin(); got != image.Pt(100, 200) {
		t.Errorf("起点 = %v, 期望 (100,200)", got)
	}
	if !d.Touch() {
		t.Error("应识别为触摸拖拽")
	}
}

func TestDragTrackerPressAfterRelease(t *testing.T) {
	d := NewDragTracker()
	d.Update(press(0, 0))
	d.Update(release(0, 0))
	if d.Phase() != DragReleased {
		t.Fatalf("释放后阶段 = %v, 期望 DragReleased", d.Phase())
	}

	// 释放帧之后立即再次按下，开始新的拖拽
	d.Update(press(5, 50))
	if d.Phase() != DragBegan {
		t.Errorf("阶段 = %v, 期望 DragBegan", d.Phase())
	}
	if d.Origin().Y != 50 {
		t.Errorf("新拖拽起点 Y = %d, 期望 50", d.Origin().Y)
	}
}

func TestPointerSampler(t *testing.T) {
	region := carousel.Rect{X: 0, Y: 0, W: 100, H: 300}

	tests := []struct {
		name   string
		frames []PointerState
		wheels []float64
		ignore func(x, y float64) bool
		held   []bool
		deltas []float64
	}{
		{
			name:   "区域内拖动",
			frames: []PointerState{press(50, 100), hold(50, 80), hold(50, 50), release(50, 50)},
			held:   []bool{true, true, true, false},
			deltas: []float64{0, -20, -30, 0},
		},
		{
			name:   "抓住后离开区域仍然有效",
			frames: []PointerState{press(50, 100), hold(300, 150)},
			held:   []bool{true, true},
			deltas: []float64{0, 50},
		},
		{
			name:   "区域外按下再移入",
			frames: []PointerState{press(300, 100), hold(50, 100), hold(50, 120)},
			held:   []bool{false, false, false},
			deltas: []float64{0, 0, 0},
		},
		{
			name:   "忽略区域内按下",
			frames: []PointerState{press(50, 290), hold(50, 200)},
			ignore: func(x, y float64) bool { return y > 270 },
			held:   []bool{false, false},
			deltas: []float64{0, 0},
		},
		{
			name:   "滚轮是一帧的拖动",
			frames: []PointerState{{X: 50, Y: 100}, {X: 50, Y: 100}, {X: 50, Y: 100}},
			wheels: []float64{0, -2, 0},
			held:   []bool{false, true, false},
			deltas: []float64{0, -2 * DefaultWheelStep, 0},
		},
		{
			name:   "区域外滚轮无效",
			frames: []PointerState{{X: 500, Y: 100}},
			wheels: []float64{3},
			held:   []bool{false},
			deltas: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPointer{frames: tt.frames, wheels: tt.wheels}
			s := NewPointerSampler(p, func() carousel.Rect { return region })
			s.Ignore = tt.ignore

			for i := range tt.frames {
				held, dy := s.Sample()
				if held != tt.held[i] || dy != tt.deltas[i] {
					t.Errorf("第 %d 帧: Sample() = (%v, %v), 期望 (%v, %v)", i, held, dy, tt.held[i], tt.deltas[i])
				}
				if s.Last() != tt.frames[i] {
					t.Errorf("第 %d 帧: Last() = %+v", i, s.Last())
				}
			}
		})
	}
}

func TestPointerSamplerRelease(t *testing.T) {
	p := &scriptedPointer{frames: []PointerState{press(10, 10), hold(10, 20)}}
	s := NewPointerSampler(p, func() carousel.Rect { return carousel.Rect{W: 100, H: 100} })

	s.Sample()
	if !s.Holding() {
		t.Fatal("按下后应抓住")
	}
	s.Release()
	if s.Holding() {
		t.Error("Release 后不应抓住")
	}
	if held, _ := s.Sample(); held {
		t.Error("Release 后继续按住也不应重新抓住")
	}
}

// 采样器可以直接驱动引擎
var _ carousel.InputSampler = (*PointerSampler)(nil)
