package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 启动器中的一个界面（加载界面、轮播界面）
// 同一时刻只有一个场景接收 Update 和 Draw
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Resizable 可选接口：逻辑屏幕尺寸变化时收到通知
//
// 轮播的卡片高度按屏幕高度计算，窗口缩放或切换全屏后需要重新排布。
type Resizable interface {
	// Resize 在场景激活时和屏幕尺寸变化时调用
	Resize(width, height int)
}

// Saveable 可选接口：程序关闭时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
