// Package app 提供启动器的 ebiten 包装器
//
// 该包把窗口、场景和设置的初始化从 cli 包中分离出来，
// cli 只负责解析参数和加载配置，然后调用 Run()。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/game"
	"github.com/decker502/launcher/pkg/launch"
	"github.com/decker502/launcher/pkg/scenes"
)

// StorageName gdata 存储的应用名
const StorageName = "launcher"

// Config 定义应用启动配置
type Config struct {
	// Options 已合并命令行参数的启动器配置
	Options config.LauncherConfig
	// CatalogKey 标识目录（文件路径，内置目录为 "demo"），用于恢复上次居中的游戏
	CatalogKey string
	// Load 在加载场景的后台 goroutine 中调用
	Load scenes.CatalogLoader
	// Settings 为 nil 时打开 gdata 存储
	Settings *game.SettingsManager
	// Launcher 为 nil 时使用默认启动器
	Launcher *launch.Launcher
}

// App 是启动器的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	window       config.WindowConfig
	verbose      bool

	// resizeIn 大于 0 时倒数，归零那一帧恢复窗口尺寸
	resizeIn int
}

// restoreFrames 退出全屏后等待的帧数，窗口管理器需要先处理状态切换
const restoreFrames = 3

// NewApp 创建应用并切换到加载场景，embedded 需已初始化
func NewApp(cfg Config) *App {
	if !cfg.Options.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings := cfg.Settings
	if settings == nil {
		settings, _ = game.NewSettingsManager(game.OpenStorage(StorageName))
	}

	sceneManager := game.NewSceneManager()
	deps := scenes.Deps{
		Resources:  game.NewResourceManager(),
		Scenes:     sceneManager,
		Settings:   settings,
		Launcher:   cfg.Launcher,
		Config:     cfg.Options,
		CatalogKey: cfg.CatalogKey,
	}
	sceneManager.SwitchTo(scenes.NewLoadingScene(deps, cfg.Load))
	log.Printf("[App] 目录: %s", cfg.CatalogKey)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		window:       cfg.Options.Window,
		verbose:      cfg.Options.Verbose,
	}
}

// Run 设置窗口并进入主循环，直到窗口关闭
func Run(cfg Config) error {
	a := NewApp(cfg)

	w := cfg.Options.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if w.Fullscreen || a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return ebiten.RunGame(a)
}

// Update 每个 tick 推进当前场景一帧
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.saveOnExit()
		return ebiten.Termination
	}

	if a.resizeIn > 0 {
		a.resizeIn--
		if a.resizeIn == 0 {
			ebiten.SetWindowSize(a.window.Width, a.window.Height)
			log.Printf("[App] 恢复窗口尺寸 %dx%d", a.window.Width, a.window.Height)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	full := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(full)
	a.settings.SetFullscreen(full)
	log.Printf("[App] 全屏: %v", full)
	if full {
		return
	}
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	a.resizeIn = restoreFrames
}

// saveOnExit 让当前场景保存状态，再把设置写入存储
func (a *App) saveOnExit() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if s.SaveOnExit() {
			log.Printf("[App] 退出前已保存")
		}
		return
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 以黑色填充 letterbox 区域并线性缩放画面
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	screen.DrawImage(offscreen, &ebiten.DrawImageOptions{GeoM: geoM, Filter: ebiten.FilterLinear})
}

// Layout 逻辑尺寸跟随窗口尺寸，布局按屏幕比例计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.window.Width, a.window.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 供测试和嵌入方访问场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 报告日志是否输出
func (a *App) IsVerbose() bool {
	return a.verbose
}
