package launch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/launcher/pkg/catalog"
)

// recorder 记录启动调用
type recorder struct {
	opened  []string
	started [][2]string
	err     error
}

func (r *recorder) open(url string) error {
	r.opened = append(r.opened, url)
	return r.err
}

func (r *recorder) start(path, dir string) error {
	r.started = append(r.started, [2]string{path, dir})
	return r.err
}

func TestLaunch_URL(t *testing.T) {
	r := &recorder{}
	l := NewWith(r.open, r.start)

	if err := l.Launch("https://example.com/game"); err != nil {
		t.Fatalf("Launch 失败: %v", err)
	}
	if len(r.opened) != 1 || r.opened[0] != "https://example.com/game" {
		t.Errorf("opened = %v", r.opened)
	}
	if len(r.started) != 0 {
		t.Errorf("URL 不应启动进程: %v", r.started)
	}
}

func TestLaunch_Executable(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "game.exe")
	if err := os.WriteFile(exe, []byte("stub"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := &recorder{}
	l := NewWith(r.open, r.start)
	if err := l.Launch(exe); err != nil {
		t.Fatalf("Launch 失败: %v", err)
	}
	if len(r.started) != 1 {
		t.Fatalf("应启动一次进程, 实际 %d", len(r.started))
	}
	if r.started[0][0] != exe || r.started[0][1] != dir {
		t.Errorf("启动参数 = %v, 期望 (%s, %s)", r.started[0], exe, dir)
	}
}

func TestLaunch_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		target string
		err    error
		want   error
	}{
		{"空目标", "", nil, ErrNoTarget},
		{"文件不存在", filepath.Join(t.TempDir(), "missing.exe"), nil, os.ErrNotExist},
		{"浏览器失败", "http://example.com", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{err: tt.err}
			err := NewWith(r.open, r.start).Launch(tt.target)
			if !errors.Is(err, tt.want) {
				t.Errorf("错误 = %v, 期望 %v", err, tt.want)
			}
		})
	}
}

func TestLaunchGame(t *testing.T) {
	c := &catalog.Catalog{
		Games: []catalog.Game{{Title: "Web", Exe: "https://example.com"}},
		Dir:   t.TempDir(),
	}

	r := &recorder{}
	l := NewWith(r.open, r.start)
	if err := l.LaunchGame(c, 0); err != nil {
		t.Fatalf("LaunchGame 失败: %v", err)
	}
	if err := l.LaunchGame(c, 1); err == nil {
		t.Error("越界索引应返回错误")
	}
	if len(r.opened) != 1 {
		t.Errorf("opened = %v", r.opened)
	}
}
