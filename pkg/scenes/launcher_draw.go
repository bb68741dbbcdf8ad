package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/launcher/pkg/carousel"
	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/utils"
)

var (
	backgroundTint   = color.NRGBA{R: 255, G: 192, B: 203, A: 48}
	cardColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 170}
	cardFocusedColor = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	cardTextBack     = color.NRGBA{R: 128, G: 128, B: 128, A: 90}
	textColor        = color.NRGBA{R: 20, G: 20, B: 30, A: 255}
	descriptionBack  = color.NRGBA{R: 135, G: 206, B: 250, A: 255}
	placeholderColor = color.NRGBA{R: 255, G: 255, B: 255, A: 60}

	playFrame     = color.NRGBA{R: 46, G: 46, B: 110, A: 255}
	playInner     = color.NRGBA{R: 181, G: 247, B: 161, A: 255}
	playLabel     = color.NRGBA{R: 34, G: 41, B: 69, A: 255}
	playHighlight = color.NRGBA{R: 31, G: 38, B: 115, A: 40}
)

// descriptionCache 简介的字素和宽度，只在游戏或字号变化时重新测量
type descriptionCache struct {
	game   int
	size   float64
	gs     []string
	ws     []float64
	total  float64
	lineH  float64
	filled bool
}

// Draw 绘制整个界面
func (s *LauncherScene) Draw(screen *ebiten.Image) {
	sw, sh := float64(s.width), float64(s.height)
	settled := s.SettledGame()

	bg := catalog.DefaultBackground
	if settled >= 0 {
		bg = s.catalog.Games[settled].BackgroundColor()
	}
	screen.Fill(bg)
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), backgroundTint, false)

	// 轮播卡片，裁剪到轮播区域
	slider := config.SliderRect(s.width, s.height)
	s.target = subImage(screen, slider)
	if err := s.engine.Render(); err != nil {
		s.target = nil
		return
	}
	s.target = nil

	s.drawInfoIcon(screen, settled)

	vector.StrokeLine(screen, 0, float32(sh/2), float32(sw), float32(sh/2), 1, color.White, false)
	vector.DrawFilledRect(screen, float32(slider.X), float32(config.IgnoreRegionY*sh),
		float32(0.85*sw), float32((1-config.IgnoreRegionY)*sh), color.White, false)

	s.drawDescription(screen, settled)
	s.drawPlayButton(screen)
	s.drawStatus(screen)
}

// drawCard 卡片渲染闭包：背景、图标、标题和作者
func (s *LauncherScene) drawCard(i int, p carousel.RenderParams) {
	dst := s.target
	if dst == nil {
		return
	}
	slider := config.SliderRect(s.width, s.height)
	r := p.Rect.MovedBy(slider.X, slider.Y)
	g := s.catalog.Games[i]

	fill := cardColor
	if p.Focused {
		fill = cardFocusedColor
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(0.012*r.W), float32(r.H), g.BackgroundColor(), false)

	icon := s.deps.Resources.GetImage(s.catalog.IconPath(i))
	s.drawIcon(dst, icon, g.Title,
		r.X+config.CardIconX*r.W, r.CenterY(), config.CardIconScale*r.H)

	tr := carousel.Rect{X: r.X + config.CardTextX*r.W, Y: r.Y + 0.075*r.H, W: config.CardTextWidth * r.W, H: 0.65 * r.H}
	vector.DrawFilledRect(dst, float32(tr.X), float32(tr.Y), float32(tr.W), float32(tr.H), cardTextBack, false)

	inner := carousel.Rect{X: tr.X + 0.01*r.W, Y: tr.Y, W: tr.W - 0.02*r.W, H: tr.H}
	textDst := subImage(dst, inner)

	t, scrolling := s.textScrolling(p.SnapProgress, p.StoppingElapsed)
	scrolling = scrolling && p.Focused

	titleFace := s.font(config.CardTitleSize * r.H)
	authorFace := s.font(config.CardAuthorSize * r.H)
	s.drawSingleLine(textDst, g.Title, titleFace, inner.X+0.005*r.W, r.Y+config.CardTitleY*r.H, inner.W, t, scrolling)
	s.drawSingleLine(textDst, g.Author, authorFace, inner.X+0.01*r.W, r.Y+config.CardAuthorY*r.H, inner.W, t, scrolling)
}

// drawSingleLine 绘制单行文字，超出区域宽度且允许滚动时循环滚动
func (s *LauncherScene) drawSingleLine(dst *ebiten.Image, str string, face *text.GoTextFace, x, y, regionW, t float64, scrolling bool) {
	if face == nil || str == "" {
		return
	}
	dx := 0.0
	if scrolling {
		if tw, _ := text.Measure(str, face, 0); tw > regionW {
			cfg := s.deps.Config.Text
			dx = utils.ScrollOffset(t, cfg.HiddenTime, cfg.ScrollSpeed, tw, regionW, 1)
		}
	}
	drawText(dst, str, face, x+dx, y, textColor)
}

// drawInfoIcon 右侧的大图标显示停稳的游戏
func (s *LauncherScene) drawInfoIcon(screen *ebiten.Image, settled int) {
	if settled < 0 {
		return
	}
	size := config.InfoIconSize * float64(s.width)
	x := config.InfoIconX * float64(s.width)
	y := config.InfoIconY * float64(s.height)
	icon := s.deps.Resources.GetImage(s.catalog.IconPath(settled))
	s.drawIcon(screen, icon, s.catalog.Games[settled].Title, x+size/2, y+size/2, size)
}

// drawIcon 把图标等比缩放到边长 size 以内并居中；没有图标时画占位块和首字母
func (s *LauncherScene) drawIcon(dst, icon *ebiten.Image, label string, cx, cy, size float64) {
	if size <= 0 {
		return
	}
	if icon == nil {
		vector.DrawFilledRect(dst, float32(cx-size/2), float32(cy-size/2), float32(size), float32(size), placeholderColor, false)
		gs := utils.Graphemes(label)
		if len(gs) == 0 {
			return
		}
		face := s.font(size * 0.5)
		if face == nil {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, cy)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(dst, gs[0], face, op)
		return
	}

	b := icon.Bounds()
	scale := size / math.Max(float64(b.Dx()), float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(icon, op)
}

// drawDescription 简介区域：多行排布，停稳一段时间后沿行循环滚动
func (s *LauncherScene) drawDescription(screen *ebiten.Image, settled int) {
	r := config.DescriptionRect(s.width, s.height)
	pad := 0.01 * float64(s.width)
	vector.DrawFilledRect(screen, float32(r.X-pad), float32(r.Y), float32(r.W+2*pad), float32(r.H), descriptionBack, false)
	if settled < 0 {
		return
	}

	c := s.measureDescription(settled, config.DescriptionFontSize*float64(s.height))
	if c == nil || len(c.gs) == 0 {
		return
	}

	layout := utils.RunLayout{Width: r.W, Lines: config.DescriptionLines, LineHeight: c.lineH}
	startX := 0.0
	scrolling := false
	if s.engine.Phase().IsStopped() {
		if t, ok := s.textScrolling(1, s.engine.StoppingElapsed()); ok {
			scrolling = true
			if c.total > layout.Capacity() {
				cfg := s.deps.Config.Text
				startX = utils.ScrollOffset(t, cfg.HiddenTime, cfg.ScrollSpeed, c.total, r.W, config.DescriptionLines)
			}
		}
	}

	dst := subImage(screen, r)
	face := s.font(c.size)
	for _, g := range layout.Layout(c.gs, c.ws, startX, scrolling) {
		drawText(dst, g.Text, face, r.X+g.X, r.Y+g.Y, textColor)
	}
}

func (s *LauncherScene) measureDescription(game int, size float64) *descriptionCache {
	c := &s.desc
	if c.filled && c.game == game && c.size == size {
		return c
	}
	face := s.font(size)
	if face == nil {
		return nil
	}
	*c = descriptionCache{game: game, size: size, filled: true}
	c.gs, c.ws = utils.MeasureGraphemes(s.catalog.Games[game].Description, face)
	for _, w := range c.ws {
		c.total += w
	}
	_, c.lineH = text.Measure("Ag", face, 0)
	return c
}

// drawPlayButton 带边框的 Play 按钮，指针悬停时加深
func (s *LauncherScene) drawPlayButton(screen *ebiten.Image) {
	r := config.PlayButtonRect(s.width, s.height)
	frame := 0.008 * float64(s.height)

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), playFrame, true)
	in := carousel.Rect{X: r.X + frame, Y: r.Y + frame, W: r.W - 2*frame, H: r.H - 2.5*frame}
	vector.DrawFilledRect(screen, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), color.White, true)
	in = carousel.Rect{X: in.X + frame, Y: in.Y + frame, W: in.W - 2*frame, H: in.H - 1.75*frame}
	vector.DrawFilledRect(screen, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), playInner, true)

	if face := s.font(in.H * 0.7); face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(in.X+in.W/2, in.CenterY()-in.H*0.025)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(playLabel)
		text.Draw(screen, "Play", face, op)
	}

	p := s.sampler.Last()
	if r.Contains(float64(p.X), float64(p.Y)) {
		vector.DrawFilledRect(screen, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), playHighlight, false)
	}
}

// drawStatus 启动失败时在底部栏上方显示几秒提示
func (s *LauncherScene) drawStatus(screen *ebiten.Image) {
	if s.statusLeft <= 0 || s.status == "" {
		return
	}
	face := s.font(config.LoadingTextFontSize)
	y := config.IgnoreRegionY*float64(s.height) - config.LoadingTextFontSize*1.6
	drawText(screen, s.status, face, config.SliderX*float64(s.width), y, color.White)
}

func (s *LauncherScene) font(size float64) *text.GoTextFace {
	if size <= 0 {
		return nil
	}
	return s.deps.Resources.Font(s.deps.Config.Text.Font, size)
}

func drawText(dst *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// subImage 返回裁剪到 r 的子图，坐标仍然使用父图的坐标系
func subImage(dst *ebiten.Image, r carousel.Rect) *ebiten.Image {
	rect := image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())))
	return dst.SubImage(rect).(*ebiten.Image)
}
