// Package catalog 加载并校验游戏目录
//
// 目录是一个 JSON 或 YAML 文档，顶层 games 数组中的每一项描述一个游戏。
// 文档先按 JSON Schema 校验，再解码为 Game；图标路径相对目录文件所在目录解析。
package catalog

import (
	"image/color"
	"path/filepath"
	"strings"
)

// DefaultBackground 未指定背景色时使用的颜色
var DefaultBackground = color.RGBA{R: 0, G: 122, B: 204, A: 255}

// Game 目录中的一个游戏
type Game struct {
	Title       string   `yaml:"title" json:"title"`
	Author      string   `yaml:"author" json:"author"`
	Exe         string   `yaml:"exe" json:"exe"` // 可执行文件路径或 http(s) URL
	Year        int      `yaml:"year" json:"year"`
	Description string   `yaml:"description" json:"description"`
	Background  []int    `yaml:"background,omitempty" json:"background,omitempty"` // [r, g, b]，取值 0~255
	Tags        []string `yaml:"tags" json:"tags"`
	Icon        string   `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// IsURL exe 是否为网页地址
func (g Game) IsURL() bool {
	return strings.HasPrefix(g.Exe, "http://") || strings.HasPrefix(g.Exe, "https://")
}

// BackgroundColor 返回卡片背景色
func (g Game) BackgroundColor() color.RGBA {
	if len(g.Background) != 3 {
		return DefaultBackground
	}
	return color.RGBA{R: channel(g.Background[0]), G: channel(g.Background[1]), B: channel(g.Background[2]), A: 255}
}

// Catalog 已加载的游戏目录
type Catalog struct {
	Games []Game `yaml:"games" json:"games"`

	// Dir 目录文件所在目录，用于解析相对路径；嵌入的目录为空
	Dir string `yaml:"-" json:"-"`
}

// Len 返回游戏数量
func (c *Catalog) Len() int {
	return len(c.Games)
}

// Resolve 把目录中的相对路径解析为绝对路径（URL 与绝对路径原样返回）
func (c *Catalog) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// IconPath 返回游戏图标的路径，没有图标时返回空串
func (c *Catalog) IconPath(i int) string {
	if i < 0 || i >= len(c.Games) {
		return ""
	}
	return c.Resolve(c.Games[i].Icon)
}

// ExePath 返回游戏的启动目标
func (c *Catalog) ExePath(i int) string {
	if i < 0 || i >= len(c.Games) {
		return ""
	}
	return c.Resolve(c.Games[i].Exe)
}

// IndexOfTitle 返回标题完全一致的第一个游戏，不存在时返回 -1
func (c *Catalog) IndexOfTitle(title string) int {
	for i, g := range c.Games {
		if g.Title == title {
			return i
		}
	}
	return -1
}

func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
