package carousel

// Rect 轴对齐矩形（局部坐标，Y 轴向下）
type Rect struct {
	X, Y, W, H float64
}

// Bottom 返回下边缘 Y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right 返回右边缘 X 坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// CenterY 返回垂直中心
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Contains 点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// MovedBy 返回平移后的矩形
func (r Rect) MovedBy(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
