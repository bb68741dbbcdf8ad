package catalog

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/launcher/pkg/embedded"
	"github.com/google/go-cmp/cmp"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// testValidator 从仓库的 data 目录编译 schema
func testValidator(t *testing.T) *Validator {
	t.Helper()
	data, err := os.ReadFile("../../data/catalog.schema.json")
	if err != nil {
		t.Fatalf("读取 schema 失败: %v", err)
	}
	v, err := NewValidator(data)
	if err != nil {
		t.Fatalf("编译 schema 失败: %v", err)
	}
	return v
}

func TestLoad_ValidFormats(t *testing.T) {
	v := testValidator(t)

	want := []Game{
		{
			Title:       "Star Runner",
			Author:      "Team A",
			Exe:         "games/star/star.exe",
			Year:        2021,
			Description: "横版跑酷游戏。",
			Background:  []int{10, 20, 30},
			Tags:        []string{"action"},
			Icon:        "icons/star.png",
		},
		{
			Title:       "Puzzle Box",
			Author:      "Team B",
			Exe:         "https://example.com/puzzle",
			Year:        2022,
			Description: "",
			Tags:        []string{},
		},
	}

	for _, name := range []string{"valid.json", "valid.yaml"} {
		t.Run(name, func(t *testing.T) {
			c, err := Load(filepath.Join("testdata", name), v)
			if err != nil {
				t.Fatalf("Load 失败: %v", err)
			}
			if diff := cmp.Diff(want, c.Games); diff != "" {
				t.Errorf("游戏列表不匹配 (-want +got):\n%s", diff)
			}

			abs, _ := filepath.Abs("testdata")
			if c.Dir != abs {
				t.Errorf("Dir = %q, 期望 %q", c.Dir, abs)
			}
			if got := c.IconPath(0); got != filepath.Join(abs, "icons", "star.png") {
				t.Errorf("IconPath(0) = %q", got)
			}
			if got := c.IconPath(1); got != "" {
				t.Errorf("没有图标时 IconPath(1) = %q, 期望空串", got)
			}
			if got := c.ExePath(1); got != "https://example.com/puzzle" {
				t.Errorf("URL 不应被解析为路径: %q", got)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	v := testValidator(t)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"扩展名不支持", "testdata/catalog.txt", ErrUnsupportedExtension},
		{"文件不存在", "testdata/missing.json", ErrNotFound},
		{"缺少必填字段", "testdata/missing_title.json", ErrSchema},
		{"颜色越界", "testdata/bad_background.yaml", ErrSchema},
		{"空目录", "testdata/empty.yaml", ErrSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, v)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%s) 错误 = %v, 期望 %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestLoad_SchemaErrorDetails(t *testing.T) {
	_, err := Load("testdata/missing_title.json", testValidator(t))

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("错误 %v 应包含 *jsonschema.ValidationError", err)
	}
}

func TestLoad_WithoutValidator(t *testing.T) {
	// 不校验时空目录仍然被拒绝
	if _, err := Load("testdata/empty.yaml", nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("错误 = %v, 期望 ErrEmpty", err)
	}

	c, err := Load("testdata/bad_background.yaml", nil)
	if err != nil {
		t.Fatalf("跳过校验时 Load 失败: %v", err)
	}
	if got := c.Games[0].BackgroundColor(); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("越界颜色应被限制, 得到 %v", got)
	}
}

func TestLoadDemo(t *testing.T) {
	embedded.Init(os.DirFS("../.."))
	t.Cleanup(func() { embedded.Init(nil) })

	v, err := DefaultValidator()
	if err != nil {
		t.Fatalf("DefaultValidator 失败: %v", err)
	}
	c, err := LoadDemo(v)
	if err != nil {
		t.Fatalf("LoadDemo 失败: %v", err)
	}
	if c.Len() == 0 {
		t.Error("演示目录不应为空")
	}
	for i, g := range c.Games {
		if !g.IsURL() {
			t.Errorf("演示游戏 %d (%s) 应使用 URL", i, g.Title)
		}
	}
}

func TestLoadValidator(t *testing.T) {
	if _, err := LoadValidator("../../data/catalog.schema.json"); err != nil {
		t.Errorf("LoadValidator 失败: %v", err)
	}
	if _, err := LoadValidator("testdata/none.schema.json"); err == nil {
		t.Error("schema 文件不存在时应返回错误")
	}
	if _, err := NewValidator([]byte("{not json")); err == nil {
		t.Error("非法 schema 应返回错误")
	}
}

func TestGame_IsURL(t *testing.T) {
	tests := []struct {
		exe  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com/game", true},
		{"C:/games/a.exe", false},
		{"ftp://example.com", false},
		{"./game", false},
	}
	for _, tt := range tests {
		if got := (Game{Exe: tt.exe}).IsURL(); got != tt.want {
			t.Errorf("IsURL(%q) = %v, 期望 %v", tt.exe, got, tt.want)
		}
	}
}

func TestGame_BackgroundColor(t *testing.T) {
	if got := (Game{}).BackgroundColor(); got != DefaultBackground {
		t.Errorf("默认背景色 = %v, 期望 %v", got, DefaultBackground)
	}
	if got := (Game{Background: []int{1, 2, 3}}).BackgroundColor(); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("背景色 = %v", got)
	}
}

func TestCatalog_Closest(t *testing.T) {
	c := &Catalog{Games: []Game{
		{Title: "Star Runner"},
		{Title: "Puzzle Box"},
		{Title: "Starlight Café"},
		{Title: "Café Racer"},
	}}

	tests := []struct {
		name   string
		query  string
		want   int
		wantOK bool
	}{
		{"前缀命中取靠前的", "star", 0, true},
		{"大小写不敏感", "PUZZLE", 1, true},
		{"包含", "runner", 0, true},
		{"拼写错误", "puzle box", 1, true},
		{"组合字符规范化", "Cafe\u0301 r", 3, true},
		{"输入一半", "starli", 2, true},
		{"空查询", "  ", -1, false},
		{"完全不相干", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", -1, false},
		{"短查询不相干", "qwx", -1, false},
		{"两处拼写错误", "star runnre", 0, true},
		{"一半以上不同", "pkjyxr bqq", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Closest(tt.query)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Closest(%q) = (%d, %v), 期望 (%d, %v)", tt.query, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCatalog_IndexOfTitle(t *testing.T) {
	c := &Catalog{Games: []Game{{Title: "A"}, {Title: "B"}}}
	if c.IndexOfTitle("B") != 1 || c.IndexOfTitle("C") != -1 {
		t.Errorf("IndexOfTitle 结果错误")
	}
}
