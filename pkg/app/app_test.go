package app

import (
	"testing"

	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/game"
	"github.com/decker502/launcher/pkg/launch"
	"github.com/decker502/launcher/pkg/scenes"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	settings, _ := game.NewSettingsManager(nil)
	opts := config.DefaultLauncherConfig()
	opts.Verbose = true
	return NewApp(Config{
		Options:    opts,
		CatalogKey: "test.yaml",
		Load: func() (*catalog.Catalog, error) {
			return &catalog.Catalog{Games: []catalog.Game{{Title: "A", Exe: "https://a"}}}, nil
		},
		Settings: settings,
		Launcher: launch.NewWith(func(string) error { return nil }, nil),
	})
}

func TestNewApp(t *testing.T) {
	a := newTestApp(t)
	if !a.IsVerbose() {
		t.Error("IsVerbose() = false")
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.LoadingScene); !ok {
		t.Errorf("初始场景 = %T, 期望 *scenes.LoadingScene", a.GetSceneManager().GetCurrentScene())
	}
}

func TestLayout(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"窗口尺寸", 1280, 720, 1280, 720},
		{"最小化", 0, 0, config.DefaultWindowWidth, config.DefaultWindowHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := a.Layout(tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout = %dx%d, 期望 %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}

	// 最小化时不改变场景尺寸
	if w, h := a.GetSceneManager().Size(); w != 1280 || h != 720 {
		t.Errorf("场景尺寸 = %dx%d, 期望 1280x720", w, h)
	}
}

func TestSaveOnExit_LoadingScene(t *testing.T) {
	a := newTestApp(t)
	a.settings.SetFullscreen(true)
	// 加载场景不实现 Saveable，直接保存设置；内存模式下不报错
	a.saveOnExit()
	if !a.settings.GetSettings().Fullscreen {
		t.Error("设置丢失")
	}
}
