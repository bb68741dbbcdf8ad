package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动的场景
//
// 场景切换在下一次 Update 开始时生效，这样加载场景可以在自己的 Update 中请求切换，
// 而不会在同一帧里被新场景打断。
type SceneManager struct {
	currentScene Scene
	pending      Scene

	width, height int // 最近一次 Layout 的逻辑尺寸
}

// NewSceneManager 创建没有活动场景的管理器，使用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 立即切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.pending = nil
	sm.activate(scene)
}

// RequestSwitch 在下一次 Update 前切换场景
func (sm *SceneManager) RequestSwitch(scene Scene) {
	sm.pending = scene
}

func (sm *SceneManager) activate(scene Scene) {
	log.Printf("[SceneManager] 切换场景: %s", sceneName(scene))
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 用于程序关闭时检查当前场景是否需要保存状态
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录逻辑屏幕尺寸，尺寸变化时通知当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Size 返回最近一次 Resize 的逻辑尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update 先处理待切换的场景，再更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pending != nil {
		next := sm.pending
		sm.pending = nil
		sm.activate(next)
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func sceneName(scene Scene) string {
	if scene == nil {
		return "<nil>"
	}
	if s, ok := scene.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", scene)
}
