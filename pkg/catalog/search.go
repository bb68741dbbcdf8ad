package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldTitle 标题比较前的规范化：NFC 组合 + 大小写折叠
func foldTitle(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// match 搜索结果
type match struct {
	Index    int
	Distance int
}

// Closest 返回标题与 query 最接近的游戏
//
// 前缀命中优先，其次是包含 query 的标题，最后按编辑距离排序；相同分数取靠前的游戏。
// 编辑距离超过 query 长度的一半时视为不相干，返回 false。
func (c *Catalog) Closest(query string) (int, bool) {
	m, ok := c.closest(query)
	return m.Index, ok
}

func (c *Catalog) closest(query string) (match, bool) {
	q := foldTitle(query)
	if q == "" || len(c.Games) == 0 {
		return match{Index: -1}, false
	}

	best := match{Index: -1}
	bestScore := -1
	for i, g := range c.Games {
		t := foldTitle(g.Title)

		var score, dist int
		switch {
		case strings.HasPrefix(t, q):
			score, dist = 0, 0
		case strings.Contains(t, q):
			score, dist = 1, 0
		default:
			dist = levenshtein.ComputeDistance(q, t)
			// 与标题等长前缀的距离更能反映"正在输入"的情况
			if prefix := runePrefix(t, utf8.RuneCountInString(q)); prefix != t {
				if d := levenshtein.ComputeDistance(q, prefix); d < dist {
					dist = d
				}
			}
			score = 2 + dist
		}

		if bestScore < 0 || score < bestScore {
			best = match{Index: i, Distance: dist}
			bestScore = score
		}
	}

	if bestScore >= 2 && best.Distance*2 > utf8.RuneCountInString(q) {
		return match{Index: -1}, false
	}
	return best, true
}

// runePrefix 返回 s 的前 n 个字符
func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
