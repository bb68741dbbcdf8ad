package carousel

// ID 已注册条目的唯一标识
// 在注册表生命周期内单调递增，不会复用；0 保留为无效 ID
type ID uint64

// InvalidID 无效 ID
const InvalidID ID = 0

// RenderParams 传给单个条目渲染器的动画参数
type RenderParams struct {
	// Rect 条目在视口中的局部矩形
	Rect Rect
	// Focused 是否为居中放大的条目
	Focused bool
	// SnapProgress 吸附进度（缓动后），0 表示刚开始吸附，1 表示已完全停稳；非焦点条目恒为 0
	SnapProgress float64
	// StoppingElapsed 距最近一次开始停止的时间（秒）
	StoppingElapsed float64
}

// Item 条目的绘制行为
// 核心从不检查条目内容，只在每帧把矩形和动画参数交给它
type Item interface {
	Render(params RenderParams)
}

// ItemFunc 把任意闭包适配为 Item
type ItemFunc func(params RenderParams)

// Render 实现 Item 接口
func (f ItemFunc) Render(params RenderParams) {
	f(params)
}

// Namer 可选接口，条目实现后日志中使用该名称
type Namer interface {
	Name() string
}

// unavailableItem 查找失败时返回的哨兵条目，渲染为空操作
type unavailableItem struct{}

func (unavailableItem) Render(RenderParams) {}

func (unavailableItem) Name() string { return "Unavailable" }

// Unavailable 共享的哨兵条目
var Unavailable Item = unavailableItem{}

// NamedItem 带名称的闭包条目
type NamedItem struct {
	Label string
	Draw  func(params RenderParams)
}

// Render 实现 Item 接口
func (n NamedItem) Render(params RenderParams) {
	if n.Draw != nil {
		n.Draw(params)
	}
}

// Name 实现 Namer 接口
func (n NamedItem) Name() string {
	return n.Label
}

// ItemName 返回条目名称（未实现 Namer 时返回 "Item"）
func ItemName(item Item) string {
	if n, ok := item.(Namer); ok {
		return n.Name()
	}
	return "Item"
}

// Registry 按 ID 持有条目，与显示顺序解耦
type Registry struct {
	nextID uint64
	items  map[ID]Item
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1, // ID从1开始,0保留为无效ID
		items:  make(map[ID]Item),
	}
}

// Add 注册条目并返回新的 ID
func (r *Registry) Add(item Item) ID {
	id := ID(r.nextID)
	r.nextID++
	r.items[id] = item
	return id
}

// AddFunc 注册闭包条目
func (r *Registry) AddFunc(f func(params RenderParams)) ID {
	return r.Add(ItemFunc(f))
}

// Remove 移除条目，不存在时为空操作
func (r *Registry) Remove(id ID) {
	delete(r.items, id)
}

// Contains 条目是否存在
func (r *Registry) Contains(id ID) bool {
	_, ok := r.items[id]
	return ok
}

// Get 查找条目
// 不存在时返回共享的 Unavailable 哨兵，渲染代码每帧运行，不能因为过期 ID 失败
func (r *Registry) Get(id ID) Item {
	if item, ok := r.items[id]; ok {
		return item
	}
	return Unavailable
}

// Len 返回已注册条目数量
func (r *Registry) Len() int {
	return len(r.items)
}
