package carousel

// Slot 可见窗口中的一个槽位
type Slot struct {
	ID              ID
	Index           int // 在显示顺序中的下标
	Rect            Rect
	Focused         bool
	SnapProgress    float64
	StoppingElapsed float64
}

// VisibleWindow 计算当前与视口相交的槽位，按从上到下排列
//
// 焦点槽位的顶部：centerY + frac - h - (focused - h) / 2，frac = offset mod h。
// 偏移增大时条目向下移动。从焦点槽位出发向上（下标 -1）、向下（下标 +1）逐个铺设，
// 直到越出视口。条目数量很少时同一个 ID 可能出现多次，这是循环列表的正常表现。
func (e *Engine) VisibleWindow() ([]Slot, error) {
	if err := e.sync(); err != nil {
		return nil, err
	}

	vp := e.cfg.Viewport()
	h := e.cfg.ItemHeight
	n := e.order.Len()
	focusedH := e.FocusedHeight()

	centerY := vp.Y + vp.H/2
	if e.cfg.CenterY != nil {
		centerY = e.cfg.CenterY()
	}
	frac := Wrap(e.offset, h)

	selected := e.order.Selected()
	focused := Slot{
		ID:              e.order.At(selected),
		Index:           selected,
		Rect:            Rect{X: vp.X, Y: centerY + frac - h - (focusedH-h)/2, W: vp.W, H: focusedH},
		Focused:         true,
		SnapProgress:    e.SnapProgress(),
		StoppingElapsed: e.StoppingElapsed(),
	}

	var above []Slot
	top := focused.Rect.Y
	for i := dec(selected, n); top > vp.Y; i = dec(i, n) {
		r := Rect{X: vp.X, Y: top - h, W: vp.W, H: h}
		above = append(above, Slot{ID: e.order.At(i), Index: i, Rect: r})
		top = r.Y
	}

	slots := make([]Slot, 0, len(above)+8)
	for i := len(above) - 1; i >= 0; i-- {
		slots = append(slots, above[i])
	}
	slots = append(slots, focused)

	bottom := focused.Rect.Bottom()
	for i := inc(selected, n); bottom < vp.Bottom(); i = inc(i, n) {
		r := Rect{X: vp.X, Y: bottom, W: vp.W, H: h}
		slots = append(slots, Slot{ID: e.order.At(i), Index: i, Rect: r})
		bottom = r.Bottom()
	}

	return slots, nil
}

// Render 计算可见窗口并依次调用每个条目的 Render
// 已从注册表移除的 ID 解析为 Unavailable，渲染为空
func (e *Engine) Render() error {
	slots, err := e.VisibleWindow()
	if err != nil {
		return err
	}
	for _, s := range slots {
		e.registry.Get(s.ID).Render(RenderParams{
			Rect:            s.Rect,
			Focused:         s.Focused,
			SnapProgress:    s.SnapProgress,
			StoppingElapsed: s.StoppingElapsed,
		})
	}
	return nil
}
