package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/launcher/pkg/app"
	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/embedded"
	"github.com/decker502/launcher/pkg/tui"
)

const testdata = "../catalog/testdata"

// captured 记录前端入口收到的参数
type captured struct {
	gui     *app.Config
	tui     *catalog.Catalog
	tuiOpts tui.Options
}

func (c *captured) runners() runners {
	return runners{
		gui: func(cfg app.Config) error {
			c.gui = &cfg
			return nil
		},
		tui: func(cat *catalog.Catalog, o tui.Options) error {
			c.tui, c.tuiOpts = cat, o
			return nil
		},
	}
}

func run(t *testing.T, args ...string) (*captured, string, error) {
	t.Helper()
	embedded.Init(os.DirFS("../.."))
	t.Setenv("HOME", t.TempDir())

	c := &captured{}
	cmd := newRootCmd(c.runners())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// nil 会让 cobra 读取 os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return c, out.String(), err
}

func TestRoot_DemoCatalog(t *testing.T) {
	c, _, err := run(t)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.gui == nil {
		t.Fatal("未启动图形界面")
	}
	if c.gui.CatalogKey != demoKey {
		t.Errorf("CatalogKey = %q, 期望 %q", c.gui.CatalogKey, demoKey)
	}
	if c.gui.Options.Window.Fullscreen || c.gui.Options.Verbose {
		t.Errorf("默认不应全屏或详细日志: %+v", c.gui.Options)
	}

	cat, err := c.gui.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 5 {
		t.Errorf("演示目录 %d 个游戏, 期望 5", cat.Len())
	}
}

func TestRoot_Flags(t *testing.T) {
	path := filepath.Join(testdata, "valid.yaml")
	c, _, err := run(t, "--fullscreen", "-v", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !c.gui.Options.Window.Fullscreen || !c.gui.Options.Verbose {
		t.Errorf("参数未生效: %+v", c.gui.Options)
	}
	abs, _ := filepath.Abs(path)
	if c.gui.CatalogKey != abs {
		t.Errorf("CatalogKey = %q, 期望 %q", c.gui.CatalogKey, abs)
	}
	cat, err := c.gui.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("%d 个游戏, 期望 2", cat.Len())
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "launcher.yaml")
	catalogPath, _ := filepath.Abs(filepath.Join(testdata, "valid.json"))
	doc := "catalog: " + catalogPath + "\nwindow:\n  fullscreen: true\n"
	if err := os.WriteFile(cfgPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, _, err := run(t, "--config", cfgPath)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.gui.CatalogKey != catalogPath {
		t.Errorf("CatalogKey = %q, 期望 %q", c.gui.CatalogKey, catalogPath)
	}
	if !c.gui.Options.Window.Fullscreen {
		t.Error("配置文件中的 fullscreen 未生效")
	}

	if _, _, err := run(t, "--config", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("配置文件不存在时应报错")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
		wantOut string
	}{
		{"合法", "valid.yaml", nil, "ok:"},
		{"缺少标题", "missing_title.json", catalog.ErrSchema, ""},
		{"扩展名", "catalog.txt", catalog.ErrUnsupportedExtension, ""},
		{"空目录", "empty.yaml", catalog.ErrSchema, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := run(t, "validate", filepath.Join(testdata, tt.file))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, 期望 %v", err, tt.wantErr)
			}
			if tt.wantOut != "" && !strings.Contains(out, tt.wantOut) {
				t.Errorf("输出 %q 不包含 %q", out, tt.wantOut)
			}
		})
	}
}

func TestValidate_NeedsArgument(t *testing.T) {
	if _, _, err := run(t, "validate"); err == nil {
		t.Error("缺少参数时应报错")
	}
}

func TestTUI(t *testing.T) {
	c, _, err := run(t, "tui", filepath.Join(testdata, "valid.yaml"))
	if err != nil {
		t.Fatalf("tui: %v", err)
	}
	if c.tui == nil || c.tui.Len() != 2 {
		t.Fatalf("终端前端收到的目录 = %+v", c.tui)
	}
	if c.tuiOpts.Launcher == nil || !strings.HasSuffix(c.tuiOpts.CatalogKey, "valid.yaml") {
		t.Errorf("Options = %+v", c.tuiOpts)
	}
	if c.gui != nil {
		t.Error("不应启动图形界面")
	}

	if _, _, err := run(t, "tui", filepath.Join(testdata, "missing.yaml")); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("err = %v, 期望 ErrNotFound", err)
	}
}
