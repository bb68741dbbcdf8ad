package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/launcher/pkg/carousel"
	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/utils"
)

// statusDuration 启动失败提示的显示时长（秒）
const statusDuration = 4.0

// LauncherScene 游戏轮播界面
//
// 左侧是循环轮播的游戏卡片，右侧显示停稳游戏的大图标，底部是简介和 Play 按钮。
// 卡片通过注册表中的闭包绘制，轮播引擎只负责位置和动画参数。
type LauncherScene struct {
	deps    Deps
	catalog *catalog.Catalog

	registry *carousel.Registry
	order    *carousel.DisplayOrder
	clock    *carousel.FrameClock
	engine   *carousel.Engine
	sampler  *utils.PointerSampler
	games    map[carousel.ID]int // ID -> 目录下标

	width, height int

	// target Draw 期间的绘制目标，卡片闭包只在 engine.Render 内被调用
	target *ebiten.Image

	playPressed bool // 在 Play 按钮上按下，等待释放
	desc        descriptionCache

	status     string
	statusLeft float64
}

// NewLauncherScene 为目录中的每个游戏注册一张卡片并创建轮播引擎
func NewLauncherScene(deps Deps, c *catalog.Catalog) (*LauncherScene, error) {
	if c == nil || c.Len() == 0 {
		return nil, catalog.ErrEmpty
	}

	s := &LauncherScene{
		deps:     deps.withDefaults(),
		catalog:  c,
		registry: carousel.NewRegistry(),
		order:    carousel.NewDisplayOrder(),
		clock:    &carousel.FrameClock{},
		games:    make(map[carousel.ID]int, c.Len()),
		width:    config.DefaultWindowWidth,
		height:   config.DefaultWindowHeight,
	}

	for i, g := range c.Games {
		i := i
		id := s.registry.Add(carousel.NamedItem{
			Label: g.Title,
			Draw:  func(p carousel.RenderParams) { s.drawCard(i, p) },
		})
		s.games[id] = i
		s.order.PushBack(id)
	}

	cfg := s.deps.Config.EngineConfig(s.height, s.viewport)
	engine, err := carousel.NewEngine(cfg, s.registry, s.order, s.clock)
	if err != nil {
		return nil, fmt.Errorf("create carousel: %w", err)
	}
	s.engine = engine

	s.sampler = utils.NewPointerSampler(s.deps.Pointer, func() carousel.Rect {
		return config.SliderRect(s.width, s.height)
	})
	s.sampler.Ignore = func(x, y float64) bool {
		return config.InIgnoreRegion(y, s.height)
	}

	s.restoreSelection()
	return s, nil
}

// restoreSelection 把上次退出时居中的游戏移回中心
func (s *LauncherScene) restoreSelection() {
	title := s.deps.Settings.LastSelected(s.deps.CatalogKey)
	if title == "" {
		return
	}
	i := s.catalog.IndexOfTitle(title)
	if i < 0 {
		return
	}
	if err := s.engine.Focus(i); err != nil {
		log.Printf("[LauncherScene] 恢复选中项失败: %v", err)
		return
	}
	log.Printf("[LauncherScene] 恢复上次选中: %s", title)
}

// viewport 轮播区域的局部视口（原点在轮播区域左上角）
func (s *LauncherScene) viewport() carousel.Rect {
	r := config.SliderRect(s.width, s.height)
	return carousel.Rect{W: r.W, H: r.H}
}

// String 场景名称
func (s *LauncherScene) String() string {
	return "LauncherScene"
}

// Resize 实现 game.Resizable，卡片高度随屏幕高度缩放
func (s *LauncherScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height

	cfg := s.deps.Config.EngineConfig(height, s.viewport)
	if err := s.engine.Resize(cfg.ItemHeight, cfg.MaxFocusedHeight); err != nil {
		log.Printf("[LauncherScene] 调整尺寸失败: %v", err)
		return
	}
	log.Printf("[LauncherScene] 屏幕尺寸 %dx%d, 卡片高度 %.1f", width, height, cfg.ItemHeight)
}

// Update 推进轮播一帧并处理按键和 Play 按钮
func (s *LauncherScene) Update(deltaTime float64) {
	s.clock.Advance(deltaTime)
	if s.statusLeft > 0 {
		s.statusLeft -= deltaTime
	}

	s.handleKeys()

	if _, err := s.engine.Step(s.sampler, deltaTime); err != nil {
		log.Printf("[LauncherScene] 轮播更新失败: %v", err)
		return
	}

	s.handlePlayButton()
}

func (s *LauncherScene) handleKeys() {
	keys := s.deps.Keys
	n := s.order.Len()
	switch {
	case keys.JustPressed(ebiten.KeyArrowUp):
		s.focus((s.engine.SelectedIndex() - 1 + n) % n)
	case keys.JustPressed(ebiten.KeyArrowDown):
		s.focus((s.engine.SelectedIndex() + 1) % n)
	case keys.JustPressed(ebiten.KeyEnter), keys.JustPressed(ebiten.KeyNumpadEnter):
		s.launchSelected()
	}
}

func (s *LauncherScene) focus(index int) {
	if s.sampler.Holding() {
		return
	}
	if err := s.engine.Focus(index); err != nil {
		log.Printf("[LauncherScene] 切换失败: %v", err)
	}
}

// handlePlayButton 在按钮上按下并在按钮上释放才算点击
func (s *LauncherScene) handlePlayButton() {
	p := s.sampler.Last()
	r := config.PlayButtonRect(s.width, s.height)
	inside := r.Contains(float64(p.X), float64(p.Y))

	if p.JustPressed {
		s.playPressed = inside
		return
	}
	if p.JustReleased || !p.Pressed {
		clicked := s.playPressed && inside && p.JustReleased
		s.playPressed = false
		if clicked {
			s.launchSelected()
		}
	}
}

// launchSelected 启动当前居中的游戏
func (s *LauncherScene) launchSelected() {
	i, ok := s.games[s.engine.SelectedID()]
	if !ok {
		return
	}
	g := s.catalog.Games[i]
	log.Printf("[LauncherScene] 启动: %s", g.Title)
	if err := s.deps.Launcher.LaunchGame(s.catalog, i); err != nil {
		log.Printf("[LauncherScene] 启动失败: %v", err)
		s.status = fmt.Sprintf("Could not launch %s: %v", g.Title, err)
		s.statusLeft = statusDuration
	}
}

// SaveOnExit 实现 game.Saveable，记住当前居中的游戏
func (s *LauncherScene) SaveOnExit() bool {
	i, ok := s.games[s.engine.SelectedID()]
	if !ok {
		return true
	}
	s.deps.Settings.SetLastSelected(s.deps.CatalogKey, s.catalog.Games[i].Title)
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[LauncherScene] 保存设置失败: %v", err)
		return false
	}
	return true
}

// Engine 返回轮播引擎
func (s *LauncherScene) Engine() *carousel.Engine {
	return s.engine
}

// SettledGame 返回停稳位置上的游戏下标
func (s *LauncherScene) SettledGame() int {
	if i, ok := s.games[s.engine.SettledID()]; ok {
		return i
	}
	return -1
}

// SelectedGame 返回居中的游戏下标
func (s *LauncherScene) SelectedGame() int {
	if i, ok := s.games[s.engine.SelectedID()]; ok {
		return i
	}
	return -1
}

// textScrolling 停稳超过延迟后开始滚动，返回滚动已进行的时间
func (s *LauncherScene) textScrolling(snapProgress, stoppingElapsed float64) (float64, bool) {
	delay := s.deps.Config.Text.ScrollDelay
	if snapProgress < 1 || stoppingElapsed <= delay {
		return 0, false
	}
	return stoppingElapsed - delay, true
}
