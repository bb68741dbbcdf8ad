// Package launch 启动目录中的游戏
//
// exe 为 http(s) 地址时交给系统浏览器打开，否则以可执行文件所在目录为工作目录启动独立进程。
package launch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/decker502/launcher/pkg/catalog"
)

// ErrNoTarget 游戏没有配置启动目标
var ErrNoTarget = errors.New("game has no exe")

// Opener 打开网页地址
type Opener func(url string) error

// Starter 启动可执行文件，dir 为工作目录
type Starter func(path, dir string) error

// Launcher 游戏启动器
type Launcher struct {
	open  Opener
	start Starter
}

// New 创建使用系统浏览器和 os/exec 的启动器
func New() *Launcher {
	return &Launcher{open: browser.OpenURL, start: startDetached}
}

// NewWith 创建使用自定义打开方式的启动器（测试用）
// 参数为 nil 时使用默认实现
func NewWith(open Opener, start Starter) *Launcher {
	l := New()
	if open != nil {
		l.open = open
	}
	if start != nil {
		l.start = start
	}
	return l
}

// Launch 启动游戏
//
// 参数：
//   - target: 已解析的启动目标（Catalog.ExePath 的结果）
//
// 返回：
//   - error: 目标为空、文件不存在或启动失败
func (l *Launcher) Launch(target string) error {
	if target == "" {
		return ErrNoTarget
	}

	if (catalog.Game{Exe: target}).IsURL() {
		log.Printf("[Launch] 打开网页: %s", target)
		if err := l.open(target); err != nil {
			return fmt.Errorf("open %s: %w", target, err)
		}
		return nil
	}

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("launch %s: %w", target, err)
	}

	dir := filepath.Dir(target)
	log.Printf("[Launch] 启动程序: %s (工作目录 %s)", target, dir)
	if err := l.start(target, dir); err != nil {
		return fmt.Errorf("start %s: %w", target, err)
	}
	return nil
}

// LaunchGame 启动目录中的第 i 个游戏
func (l *Launcher) LaunchGame(c *catalog.Catalog, i int) error {
	if i < 0 || i >= c.Len() {
		return fmt.Errorf("launch game %d: index out of range [0, %d)", i, c.Len())
	}
	return l.Launch(c.ExePath(i))
}

// startDetached 启动进程后不等待退出，回收放到后台 goroutine
func startDetached(path, dir string) error {
	cmd := exec.Command(path)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("[Launch] %s 退出: %v", filepath.Base(path), err)
		}
	}()
	return nil
}
