package carousel

import "fmt"

// 默认物理参数
// 阈值是经验调出来的手感参数，没有解析推导，保留为可配置常量
const (
	DefaultVelocityFloor     = 1000.0   // 低于该速度（px/s）开始吸附
	DefaultVelocityMax       = 100000.0 // 拖动速度上限（px/s）
	DefaultFrictionThreshold = 2000.0   // 两段摩擦的分界速度（px/s）
	DefaultFrictionFar       = 0.05     // 高速段减速系数：远距离滑行
	DefaultFrictionNear      = 0.6      // 低速段减速系数：接近静止时急刹
	DefaultFocusScale        = 1.1      // 焦点条目放大倍数

	DefaultSnapIn  = 0.5  // 吸附转场前进时长（秒）
	DefaultSnapOut = 0.25 // 吸附转场后退时长（秒）
	DefaultGrowIn  = 0.05 // 焦点放大时长（秒）
	DefaultGrowOut = 0.05 // 焦点缩回时长（秒）

	// collapseDelta 折叠吸附转场时使用的超大 dt，保证一次调用完成
	collapseDelta = 1.0
)

// Config 引擎配置，构造时显式传入（不使用隐藏的全局默认值）
type Config struct {
	// ItemHeight 条目标称高度
	ItemHeight float64
	// MaxFocusedHeight 焦点条目的最大高度，必须 >= ItemHeight
	MaxFocusedHeight float64

	// Viewport 返回当前视口矩形（局部坐标），每次计算可见窗口时调用
	Viewport func() Rect
	// CenterY 返回焦点条目的中心 Y；为 nil 时使用视口中心
	CenterY func() float64

	VelocityFloor     float64
	VelocityMax       float64
	FrictionThreshold float64
	FrictionFar       float64
	FrictionNear      float64

	SnapIn  float64
	SnapOut float64
	GrowIn  float64
	GrowOut float64
}

// DefaultConfig 返回使用默认物理参数的配置
func DefaultConfig(itemHeight float64, viewport func() Rect) Config {
	return Config{
		ItemHeight:        itemHeight,
		MaxFocusedHeight:  itemHeight * DefaultFocusScale,
		Viewport:          viewport,
		VelocityFloor:     DefaultVelocityFloor,
		VelocityMax:       DefaultVelocityMax,
		FrictionThreshold: DefaultFrictionThreshold,
		FrictionFar:       DefaultFrictionFar,
		FrictionNear:      DefaultFrictionNear,
		SnapIn:            DefaultSnapIn,
		SnapOut:           DefaultSnapOut,
		GrowIn:            DefaultGrowIn,
		GrowOut:           DefaultGrowOut,
	}
}

// Validate 校验配置
func (c Config) Validate() error {
	switch {
	case !(c.ItemHeight > 0):
		return fmt.Errorf("%w: item height %v must be positive", ErrInvalidConfig, c.ItemHeight)
	case c.MaxFocusedHeight < c.ItemHeight:
		return fmt.Errorf("%w: max focused height %v is below item height %v", ErrInvalidConfig, c.MaxFocusedHeight, c.ItemHeight)
	case c.Viewport == nil:
		return fmt.Errorf("%w: viewport provider is required", ErrInvalidConfig)
	case c.VelocityFloor < 0:
		return fmt.Errorf("%w: velocity floor %v is negative", ErrInvalidConfig, c.VelocityFloor)
	case !(c.VelocityMax > 0):
		return fmt.Errorf("%w: velocity max %v must be positive", ErrInvalidConfig, c.VelocityMax)
	case c.FrictionFar < 0 || c.FrictionNear < 0 || c.FrictionThreshold < 0:
		return fmt.Errorf("%w: friction parameters must not be negative", ErrInvalidConfig)
	}
	return nil
}

// decel 两段式摩擦：远离静止时缓慢减速，接近静止时急刹
func (c Config) decel(v float64) float64 {
	if v > c.FrictionThreshold || v < -c.FrictionThreshold {
		return -v * c.FrictionFar
	}
	return -v * c.FrictionNear
}
