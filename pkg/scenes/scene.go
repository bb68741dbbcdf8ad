package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/game"
	"github.com/decker502/launcher/pkg/launch"
	"github.com/decker502/launcher/pkg/utils"
)

// Scene 是 game.Scene 的别名，场景实现 game.Scene 接口
type Scene = game.Scene

// KeyInput 键盘输入来源，测试中用脚本化的实现代替
type KeyInput interface {
	JustPressed(key ebiten.Key) bool
}

// ebitenKeys 读取真实键盘
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Deps 场景共享的依赖
type Deps struct {
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Settings  *game.SettingsManager
	Launcher  *launch.Launcher
	Config    config.LauncherConfig

	// CatalogKey 标识当前目录，用于恢复上次居中的游戏
	CatalogKey string

	// Pointer 和 Keys 为 nil 时读取真实输入
	Pointer utils.Pointer
	Keys    KeyInput
}

// withDefaults 补齐未设置的依赖
func (d Deps) withDefaults() Deps {
	if d.Resources == nil {
		d.Resources = game.NewResourceManager()
	}
	if d.Scenes == nil {
		d.Scenes = game.NewSceneManager()
	}
	if d.Settings == nil {
		d.Settings, _ = game.NewSettingsManager(nil)
	}
	if d.Launcher == nil {
		d.Launcher = launch.New()
	}
	if d.Config.Carousel.ItemHeightRatio <= 0 {
		d.Config = config.DefaultLauncherConfig()
	}
	if d.Pointer == nil {
		d.Pointer = utils.NewEbitenPointer()
	}
	if d.Keys == nil {
		d.Keys = ebitenKeys{}
	}
	return d
}
