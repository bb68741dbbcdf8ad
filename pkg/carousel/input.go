package carousel

// InputSampler 每帧提供"是否按住"与垂直拖动增量
// 由平台相关代码实现（见 pkg/utils.PointerSampler），核心只消费它
type InputSampler interface {
	Sample() (held bool, deltaY float64)
}

// HoldTracker 跟踪滑动区域是否被抓住
//
// 抓取必须从区域内开始（且不在忽略区域内）；一旦抓住，
// 即使指针离开区域，只要仍然按下就保持抓住状态。
type HoldTracker struct {
	held bool
}

// Update 根据本帧指针状态更新抓取状态
//
// 参数：
//   - region: 可抓取区域
//   - x, y: 指针位置
//   - justPressed: 本帧刚按下
//   - pressed: 当前按下
//   - ignore: 为 true 时本帧不允许开始抓取（例如指针在底部按钮栏上）
func (h *HoldTracker) Update(region Rect, x, y float64, justPressed, pressed, ignore bool) bool {
	if h.held {
		// 前一帧已抓住：离开区域也没关系，只要还按着
		h.held = pressed
	} else {
		// 抓取只能从区域内开始
		h.held = justPressed && !ignore && region.Contains(x, y)
	}
	return h.held
}

// Held 当前是否抓住
func (h *HoldTracker) Held() bool {
	return h.held
}

// Release 强制释放（例如场景切换时）
func (h *HoldTracker) Release() {
	h.held = false
}
