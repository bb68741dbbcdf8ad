package config

import "github.com/decker502/launcher/pkg/carousel"

// 布局配置常量
// 启动器界面随窗口缩放，所有位置和尺寸都以屏幕宽度（sw）或高度（sh）的比例给出

// Window 默认窗口配置
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1755

	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 810

	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "Game Launcher"
)

// Carousel 轮播区域配置
const (
	// SliderX 轮播区域左边缘（sw）
	SliderX = 0.15

	// SliderWidth 轮播区域宽度（sw）
	SliderWidth = 0.44

	// ItemHeightRatio 条目高度（sh），一屏约显示 7 张卡片
	ItemHeightRatio = 1.0 / 7

	// IgnoreRegionY 底部按钮栏的起始位置（sh），在此之下按下不会开始拖动
	IgnoreRegionY = 0.9
)

// Card 卡片内部布局（相对卡片矩形）
const (
	// CardIconX 图标中心 X（相对卡片宽度）
	CardIconX = 0.10

	// CardIconScale 图标边长相对卡片高度
	CardIconScale = 0.8

	// CardTextX 文字区域左边缘（相对卡片宽度）
	CardTextX = 0.19

	// CardTextWidth 文字区域宽度（相对卡片宽度）
	CardTextWidth = 0.795

	// CardTitleY 标题基线位置（相对卡片高度）
	CardTitleY = 0.1

	// CardTitleSize 标题字号（相对卡片高度）
	CardTitleSize = 0.4

	// CardAuthorY 作者位置（相对卡片高度）
	CardAuthorY = 0.55

	// CardAuthorSize 作者字号（相对卡片高度）
	CardAuthorSize = 0.3
)

// Info 右侧信息区域
const (
	// InfoIconX 大图标左上角 X（sw）
	InfoIconX = 0.62

	// InfoIconY 大图标左上角 Y（sh）
	InfoIconY = 0.155

	// InfoIconSize 大图标边长（sw）
	InfoIconSize = 0.315

	// DescriptionX 简介区域 X（sw）
	DescriptionX = 0.16

	// DescriptionY 简介区域 Y（sh）
	DescriptionY = 0.90

	// DescriptionWidth 简介区域宽度（sw）
	DescriptionWidth = 0.42

	// DescriptionHeight 简介区域高度（sh）
	DescriptionHeight = 0.10

	// DescriptionLines 简介最多显示行数
	DescriptionLines = 2

	// DescriptionFontSize 简介字号（sh）
	DescriptionFontSize = 0.025
)

// Play 按钮
const (
	PlayButtonX = 0.775 // sw
	PlayButtonY = 0.87  // sh
	PlayButtonW = 0.175 // sw
	PlayButtonH = 0.11  // sh
)

// ScreenRect 把比例矩形换算为屏幕矩形
//
// 参数：
//   - x, w: 屏幕宽度比例
//   - y, h: 屏幕高度比例
//   - sw, sh: 屏幕尺寸
func ScreenRect(x, y, w, h float64, sw, sh int) carousel.Rect {
	return carousel.Rect{
		X: x * float64(sw),
		Y: y * float64(sh),
		W: w * float64(sw),
		H: h * float64(sh),
	}
}

// SliderRect 返回轮播区域的屏幕矩形
func SliderRect(sw, sh int) carousel.Rect {
	return ScreenRect(SliderX, 0, SliderWidth, 1, sw, sh)
}

// PlayButtonRect 返回 Play 按钮的屏幕矩形
func PlayButtonRect(sw, sh int) carousel.Rect {
	return ScreenRect(PlayButtonX, PlayButtonY, PlayButtonW, PlayButtonH, sw, sh)
}

// DescriptionRect 返回简介区域的屏幕矩形
func DescriptionRect(sw, sh int) carousel.Rect {
	return ScreenRect(DescriptionX, DescriptionY, DescriptionWidth, DescriptionHeight, sw, sh)
}

// InIgnoreRegion 点是否落在底部按钮栏（不允许从这里开始拖动）
func InIgnoreRegion(y float64, sh int) bool {
	return y >= IgnoreRegionY*float64(sh)
}
