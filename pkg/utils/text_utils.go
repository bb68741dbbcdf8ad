package utils

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
)

// Graphemes 把字符串拆分为用户可见的字符（字素簇）
// 组合字符和 emoji 序列不会被拆开，逐字绘制时不会出现残缺的字形
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, uniseg.GraphemeClusterCount(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ScrollOffset 计算滚动文字的水平偏移
//
// 文字从区域左端开始向左匀速滚出，完全滚出后再隐藏 hidden 秒，然后从右侧重新进入，
// 循环往复。多行区域把所有行首尾相连看作一条长度为 regionWidth*lines 的轨道。
//
// 参数：
//   - t: 开始滚动后经过的时间（秒）
//   - hidden: 滚出后额外隐藏的时间（秒）
//   - speed: 滚动速度（px/s），必须为正
//   - textWidth: 文字总宽度
//   - regionWidth: 每行区域宽度
//   - lines: 行数
//
// 返回：
//   - float64: 文字起点相对区域起点的偏移，位于 [-textWidth, hidden*speed+regionWidth*lines]
func ScrollOffset(t, hidden, speed, textWidth, regionWidth float64, lines int) float64 {
	if speed <= 0 || t <= 0 {
		return 0
	}
	track := textWidth + regionWidth*float64(lines)
	loop := track/speed + hidden
	d := math.Mod(t, loop) * speed
	if -d < -textWidth {
		return -d + hidden*speed + track
	}
	return -d
}

// Glyph 折行布局中的一个绘制位置（相对区域左上角）
type Glyph struct {
	Text string
	X, Y float64
}

// lineBreakPunct 不滚动时，跨行的这些标点整体放在行尾，下一个字从新行开始
var lineBreakPunct = map[string]bool{"、": true, "。": true, ",": true, ".": true}

// RunLayout 把一条水平文字流折进多行区域
//
// 文字流的 x 从 0 开始向右增长，到达 Width 后在下一行继续，总容量为 Width*Lines。
// 跨越行尾的字素会被画两次：一次在行尾（被区域裁掉右半），一次在下一行开头。
type RunLayout struct {
	Width      float64 // 每行宽度
	Lines      int     // 行数
	LineHeight float64
}

// Capacity 所有行首尾相连的总宽度
func (l RunLayout) Capacity() float64 {
	return l.Width * float64(l.Lines)
}

// position 把文字流上的 x 映射到区域内的坐标
func (l RunLayout) position(x float64) (float64, float64) {
	if x < l.Width {
		return x, 0
	}
	n := math.Floor(x / l.Width)
	return x - l.Width*n, l.LineHeight * n
}

// Place 返回宽度为 w、起点为 x 的字素需要绘制的位置，完全不可见时返回 nil
func (l RunLayout) Place(x, w float64) [][2]float64 {
	capacity := l.Capacity()
	if x+w < 0 || capacity < x || l.Width <= 0 {
		return nil
	}

	fx, fy := l.position(x)
	first := [2]float64{fx, fy}

	// 没有跨越行尾时，对 Width 取模不改变大小关系
	if math.Mod(x, l.Width) <= math.Mod(x+w, l.Width) || capacity < x+w {
		return [][2]float64{first}
	}
	sx, sy := l.position(x + w)
	return [][2]float64{first, {sx - w, sy}}
}

// Layout 依次排布字素
//
// 参数：
//   - graphemes: 字素
//   - widths: 每个字素的宽度，与 graphemes 一一对应
//   - startX: 文字流起点（滚动时为 ScrollOffset 的结果）
//   - scrolling: 是否在滚动；不滚动时跨行的标点不拆开
func (l RunLayout) Layout(graphemes []string, widths []float64, startX float64, scrolling bool) []Glyph {
	var glyphs []Glyph
	x := startX
	for i, g := range graphemes {
		w := widths[i]
		places := l.Place(x, w)

		if !scrolling && len(places) == 2 && lineBreakPunct[g] {
			glyphs = append(glyphs, Glyph{Text: g, X: places[0][0], Y: places[0][1]})
			x = (math.Floor(x/l.Width) + 1) * l.Width
			continue
		}

		for _, p := range places {
			glyphs = append(glyphs, Glyph{Text: g, X: p[0], Y: p[1]})
		}
		x += w
	}
	return glyphs
}

// MeasureGraphemes 拆分字素并测量每个字素的宽度
func MeasureGraphemes(s string, font text.Face) ([]string, []float64) {
	gs := Graphemes(s)
	widths := make([]float64, len(gs))
	for i, g := range gs {
		widths[i] = measureTextWidth(g, font)
	}
	return gs, widths
}

// WrapText 按字素累加宽度，超过 maxWidth 时断行，单个字素超宽时独占一行
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	var current strings.Builder
	for _, g := range Graphemes(textStr) {
		if g == "\n" || g == "\r\n" {
			lines = append(lines, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}

		test := current.String() + g
		if measureTextWidth(test, font) > maxWidth && current.Len() > 0 {
			lines = append(lines, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(g)
	}

	if current.Len() > 0 {
		lines = append(lines, strings.TrimSpace(current.String()))
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
