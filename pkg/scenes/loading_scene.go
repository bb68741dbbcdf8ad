package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/game"
	"github.com/decker502/launcher/pkg/utils"
)

// CatalogLoader 加载游戏目录，在后台 goroutine 中调用
type CatalogLoader func() (*catalog.Catalog, error)

// loadResult 后台加载的结果
type loadResult struct {
	catalog *catalog.Catalog
	icons   map[string]image.Image // 图标路径 -> 解码后的图片，失败为 nil
	err     error
}

// LoadingScene 启动时显示的加载画面
//
// 目录和图标在后台 goroutine 中读取和解码，结果通过 channel 交回主循环；
// 主循环负责创建 ebiten 图片并切换到轮播场景。加载失败时停留在本场景显示错误。
type LoadingScene struct {
	deps Deps

	done    chan loadResult
	result  *loadResult
	elapsed float64

	errText string
	width   int
	height  int
}

// NewLoadingScene 创建加载场景并立即开始后台加载
func NewLoadingScene(deps Deps, load CatalogLoader) *LoadingScene {
	s := &LoadingScene{
		deps:   deps.withDefaults(),
		done:   make(chan loadResult, 1),
		width:  config.DefaultWindowWidth,
		height: config.DefaultWindowHeight,
	}
	go func() {
		s.done <- loadInBackground(load)
	}()
	return s
}

// loadInBackground 加载目录并解码所有图标，不调用任何 ebiten 函数
func loadInBackground(load CatalogLoader) loadResult {
	c, err := load()
	if err != nil {
		return loadResult{err: err}
	}

	icons := make(map[string]image.Image)
	for i := range c.Games {
		path := c.IconPath(i)
		if path == "" {
			continue
		}
		if _, seen := icons[path]; seen {
			continue
		}
		img, err := game.DecodeImageFile(path)
		if err != nil {
			log.Printf("[LoadingScene] 图标加载失败: %v", err)
		}
		icons[path] = img
	}
	return loadResult{catalog: c, icons: icons}
}

// String 场景名称
func (s *LoadingScene) String() string {
	return "LoadingScene"
}

// Resize 实现 game.Resizable
func (s *LoadingScene) Resize(width, height int) {
	s.width, s.height = width, height
}

// Update 等待后台加载完成
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if s.result == nil {
		select {
		case r := <-s.done:
			s.result = &r
			if r.err != nil {
				s.errText = fmt.Sprintf("Failed to load catalog:\n%v", r.err)
				log.Printf("[LoadingScene] 加载失败: %v", r.err)
			}
		default:
			return
		}
	}

	if s.result.err != nil || s.elapsed < config.LoadingMinDuration {
		return
	}

	for path, img := range s.result.icons {
		s.deps.Resources.AddImage(path, img)
	}

	next, err := NewLauncherScene(s.deps, s.result.catalog)
	if err != nil {
		s.result.err = err
		s.errText = fmt.Sprintf("Failed to start launcher:\n%v", err)
		log.Printf("[LoadingScene] 创建轮播场景失败: %v", err)
		return
	}
	log.Printf("[LoadingScene] 加载完成: %d 个游戏, %.2fs", s.result.catalog.Len(), s.elapsed)
	s.deps.Scenes.RequestSwitch(next)
}

// Failed 加载是否失败
func (s *LoadingScene) Failed() bool {
	return s.errText != ""
}

// Draw 绘制转圈动画或错误信息
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(catalog.DefaultBackground)

	if s.errText != "" {
		s.drawError(screen)
		return
	}
	s.drawSpinner(screen)
}

// drawSpinner 以固定角速度旋转的圆弧，用短线段近似
func (s *LoadingScene) drawSpinner(screen *ebiten.Image) {
	const segments = 48

	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	r := config.LoadingSpinnerRadius * float64(s.height)

	start := s.elapsed * config.LoadingSpinnerSpeed * math.Pi / 180
	sweep := config.LoadingSpinnerSweep * math.Pi / 180

	for i := 0; i < segments; i++ {
		a0 := start + sweep*float64(i)/segments
		a1 := start + sweep*float64(i+1)/segments
		vector.StrokeLine(screen,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			config.LoadingSpinnerWidth, color.White, true)
	}
}

func (s *LoadingScene) drawError(screen *ebiten.Image) {
	face := s.deps.Resources.Font(s.deps.Config.Text.Font, config.LoadingTextFontSize)
	if face == nil {
		return
	}

	maxWidth := float64(s.width) * 0.8
	y := float64(s.height) * 0.3
	for _, paragraph := range strings.Split(s.errText, "\n") {
		for _, line := range utils.WrapText(paragraph, face, maxWidth) {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(s.width)*0.1, y)
			op.ColorScale.ScaleWithColor(color.White)
			text.Draw(screen, line, face, op)
			y += face.Size * 1.4
		}
	}
}
