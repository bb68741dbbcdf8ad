// Package tui 终端版启动器
//
// 与图形界面共用轮播引擎：方向键和 j/k 合成一次拖动，鼠标滚轮合成一次甩动，
// 每 1/60 秒推进一帧。每张卡片占一行，焦点卡片高亮显示。
package tui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/launcher/pkg/carousel"
	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/game"
	"github.com/decker502/launcher/pkg/launch"
)

const (
	frameInterval = time.Second / 60
	frameDelta    = 1.0 / 60

	// itemHeight 引擎内部每张卡片的高度，一张卡片渲染为一行
	itemHeight = 100.0
	// flickSpeed 滚轮甩动的初速度（单位/秒），大约滑过三四张卡片
	flickSpeed = 1200.0

	minRows     = 3
	chromeLines = 8 // 标题、详情、帮助和状态占用的行数
)

type tickMsg time.Time

// sharedView 视口尺寸，引擎的 Viewport 回调和 Model 的各个副本共享
type sharedView struct {
	rows  int
	width int
}

// Options 终端前端的依赖
type Options struct {
	Launcher   *launch.Launcher
	Settings   *game.SettingsManager
	CatalogKey string
}

// Model bubbletea 模型
type Model struct {
	catalog  *catalog.Catalog
	engine   *carousel.Engine
	clock    *carousel.FrameClock
	games    map[carousel.ID]int
	view     *sharedView
	opts     Options
	pending  []float64 // 待注入的按住帧位移，每帧取一个
	search   string
	seeking  bool
	status   string
	statusOK bool
	quitting bool
}

// New 为目录创建终端模型
func New(c *catalog.Catalog, opts Options) (Model, error) {
	if c == nil || c.Len() == 0 {
		return Model{}, catalog.ErrEmpty
	}
	if opts.Launcher == nil {
		opts.Launcher = launch.New()
	}
	if opts.Settings == nil {
		opts.Settings, _ = game.NewSettingsManager(nil)
	}

	m := Model{
		catalog: c,
		clock:   &carousel.FrameClock{},
		games:   make(map[carousel.ID]int, c.Len()),
		view:    &sharedView{rows: 9, width: 60},
		opts:    opts,
	}

	registry := carousel.NewRegistry()
	order := carousel.NewDisplayOrder()
	for i, g := range c.Games {
		id := registry.Add(carousel.NamedItem{Label: g.Title})
		m.games[id] = i
		order.PushBack(id)
	}

	view := m.view
	cfg := carousel.DefaultConfig(itemHeight, func() carousel.Rect {
		return carousel.Rect{W: float64(view.width), H: float64(view.rows) * itemHeight}
	})
	engine, err := carousel.NewEngine(cfg, registry, order, m.clock)
	if err != nil {
		return Model{}, fmt.Errorf("create carousel: %w", err)
	}
	m.engine = engine

	if title := opts.Settings.LastSelected(opts.CatalogKey); title != "" {
		if i := c.IndexOfTitle(title); i >= 0 {
			_ = engine.Focus(i)
		}
	}
	return m, nil
}

// Run 在备用屏幕上运行终端前端
func Run(c *catalog.Catalog, opts Options) error {
	m, err := New(c, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init 启动帧定时器
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update 处理按键、鼠标、窗口尺寸和帧定时
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.step(frameDelta)
		return m, tick()

	case tea.WindowSizeMsg:
		m.view.width = msg.Width
		m.view.rows = max(minRows, msg.Height-chromeLines)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.flick(1)
		case tea.MouseButtonWheelDown:
			m.flick(-1)
		}
		return m, nil

	case tea.KeyMsg:
		if m.seeking {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.save()
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.drag(itemHeight)
		case "down", "j":
			m.drag(-itemHeight)
		case "/":
			m.seeking = true
			m.search = ""
		case "enter":
			m.launch()
		}
	}
	return m, nil
}

// updateSearch 搜索模式：输入标题，回车跳到最接近的游戏
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.seeking = false
	case tea.KeyEnter:
		m.seeking = false
		i, ok := m.catalog.Closest(m.search)
		if !ok {
			m.setStatus(fmt.Sprintf("No game matches %q", m.search), false)
			break
		}
		if err := m.engine.Focus(i); err != nil {
			m.setStatus(err.Error(), false)
			break
		}
		m.pending = nil
		m.status = ""
	case tea.KeyBackspace:
		if r := []rune(m.search); len(r) > 0 {
			m.search = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.search += " "
	case tea.KeyRunes:
		m.search += string(msg.Runes)
	case tea.KeyCtrlC:
		m.save()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// drag 合成一次拖动：第一帧移动 dy，第二帧原地按住让速度归零，随后松开吸附
func (m *Model) drag(dy float64) {
	m.pending = append(m.pending, dy, 0)
}

// flick 合成一次甩动：只按住一帧，松开后带着速度滑行
func (m *Model) flick(dir float64) {
	m.pending = append(m.pending, dir*flickSpeed*frameDelta)
}

// step 推进一帧
func (m *Model) step(dt float64) {
	m.clock.Advance(dt)

	held, dy := false, 0.0
	if len(m.pending) > 0 {
		held, dy = true, m.pending[0]
		m.pending = m.pending[1:]
	}
	if _, err := m.engine.Update(held, dy, dt); err != nil {
		log.Printf("[TUI] 轮播更新失败: %v", err)
	}
}

func (m *Model) launch() {
	i := m.Selected()
	if i < 0 {
		return
	}
	title := m.catalog.Games[i].Title
	if err := m.opts.Launcher.LaunchGame(m.catalog, i); err != nil {
		m.setStatus(fmt.Sprintf("Could not launch %s: %v", title, err), false)
		return
	}
	m.setStatus("Launched "+title, true)
}

func (m *Model) setStatus(s string, ok bool) {
	m.status, m.statusOK = s, ok
}

// save 记住居中的游戏
func (m *Model) save() {
	i := m.Selected()
	if i < 0 {
		return
	}
	m.opts.Settings.SetLastSelected(m.opts.CatalogKey, m.catalog.Games[i].Title)
	if err := m.opts.Settings.Save(); err != nil {
		log.Printf("[TUI] 保存设置失败: %v", err)
	}
}

// Selected 返回居中的游戏下标
func (m Model) Selected() int {
	if i, ok := m.games[m.engine.SelectedID()]; ok {
		return i
	}
	return -1
}

// Engine 返回轮播引擎
func (m Model) Engine() *carousel.Engine {
	return m.engine
}

// View 渲染卡片列表、停稳游戏的详情和帮助
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Launcher · %d games", m.catalog.Len())))
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")

	switch {
	case m.seeking:
		b.WriteString(searchStyle.Render("/" + m.search + "▏"))
	case m.status != "" && m.statusOK:
		b.WriteString(okStyle.Render(m.status))
	case m.status != "":
		b.WriteString(errStyle.Render(m.status))
	default:
		b.WriteString(helpStyle.Render("↑/↓ j/k move · wheel flick · / search · enter launch · q quit"))
	}
	return b.String()
}

// renderList 把可见窗口中的槽位按中心所在的行放入列表
func (m Model) renderList() string {
	rows := make([]string, m.view.rows)
	slots, err := m.engine.VisibleWindow()
	if err != nil {
		return errStyle.Render(err.Error())
	}

	width := max(10, m.view.width-4)
	for _, s := range slots {
		row := int(math.Floor(s.Rect.CenterY() / itemHeight))
		if row < 0 || row >= len(rows) {
			continue
		}
		i, ok := m.games[s.ID]
		if !ok {
			continue
		}
		g := m.catalog.Games[i]
		line := g.Title + "  " + authorStyle.Render(g.Author)
		if s.Focused {
			rows[row] = focusedStyle.Width(width).Render(line)
		} else {
			rows[row] = cardStyle.Width(width).Render(line)
		}
	}
	return strings.Join(rows, "\n")
}

// renderDetail 停稳游戏的年份、作者和简介
func (m Model) renderDetail() string {
	i, ok := m.games[m.engine.SettledID()]
	if !ok {
		return ""
	}
	g := m.catalog.Games[i]
	head := g.Title
	if g.Year > 0 {
		head = fmt.Sprintf("%s (%d)", head, g.Year)
	}
	if g.Author != "" {
		head += " by " + g.Author
	}
	desc := lipgloss.NewStyle().Width(max(10, m.view.width-2)).MaxHeight(3).Render(g.Description)
	return detailStyle.Render(head) + "\n" + authorStyle.Render(desc)
}
