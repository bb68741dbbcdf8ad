package config

// Loading Scene 配置常量

const (
	// LoadingSpinnerRadius 转圈圆弧半径（sh）
	LoadingSpinnerRadius float64 = 0.4

	// LoadingSpinnerSpeed 转圈角速度（度/秒）
	LoadingSpinnerSpeed float64 = 120

	// LoadingSpinnerSweep 圆弧张角（度）
	LoadingSpinnerSweep float64 = 300

	// LoadingSpinnerWidth 圆弧线宽（像素）
	LoadingSpinnerWidth float32 = 4

	// LoadingMinDuration 加载画面最短显示时长（秒），避免一闪而过
	LoadingMinDuration float64 = 0.3

	// LoadingTextFontSize 错误提示字号
	LoadingTextFontSize float64 = 20
)
