package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用情况的场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	sizes        [][2]int
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Resize(width, height int) {
	m.sizes = append(m.sizes, [2]int{width, height})
}

// plainScene 不实现 Resizable
type plainScene struct{ updates int }

func (p *plainScene) Update(float64)     { p.updates++ }
func (p *plainScene) Draw(*ebiten.Image) {}
func (p *plainScene) String() string     { return "plain" }

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("初始时不应有活动场景")
	}
	sm.Update(0.016) // 不应 panic
	sm.Draw(ebiten.NewImage(8, 8))
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	if sm.GetCurrentScene() != scene {
		t.Error("SwitchTo 没有设置当前场景")
	}

	sm.Update(0.016)
	if !scene.updateCalled || scene.deltaTime != 0.016 {
		t.Errorf("Update 未正确转发: called=%v dt=%v", scene.updateCalled, scene.deltaTime)
	}

	sm.Draw(ebiten.NewImage(8, 8))
	if !scene.drawCalled {
		t.Error("Draw 未转发到场景")
	}
}

func TestSceneManagerRequestSwitch(t *testing.T) {
	sm := NewSceneManager()
	first := &plainScene{}
	second := &MockScene{}
	sm.SwitchTo(first)

	sm.RequestSwitch(second)
	if sm.GetCurrentScene() != first {
		t.Fatal("RequestSwitch 不应立即生效")
	}

	sm.Update(0.016)
	if sm.GetCurrentScene() != second {
		t.Fatal("下一次 Update 时应切换场景")
	}
	if first.updates != 0 {
		t.Errorf("旧场景不应再被更新, updates=%d", first.updates)
	}
	if !second.updateCalled {
		t.Error("新场景应在切换的同一帧被更新")
	}
}

func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}

	sm.SwitchTo(scene)
	if len(scene.sizes) != 0 {
		t.Errorf("尺寸未知时不应通知: %v", scene.sizes)
	}

	sm.Resize(800, 600)
	sm.Resize(800, 600) // 相同尺寸不重复通知
	sm.Resize(1024, 768)

	want := [][2]int{{800, 600}, {1024, 768}}
	if len(scene.sizes) != len(want) {
		t.Fatalf("通知次数 = %d, 期望 %d", len(scene.sizes), len(want))
	}
	for i := range want {
		if scene.sizes[i] != want[i] {
			t.Errorf("第 %d 次通知 = %v, 期望 %v", i, scene.sizes[i], want[i])
		}
	}

	// 新场景激活时立即收到当前尺寸
	next := &MockScene{}
	sm.SwitchTo(next)
	if len(next.sizes) != 1 || next.sizes[0] != [2]int{1024, 768} {
		t.Errorf("激活时尺寸通知 = %v", next.sizes)
	}

	if w, h := sm.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = (%d, %d)", w, h)
	}
}

func TestSceneName(t *testing.T) {
	if got := sceneName(&plainScene{}); got != "plain" {
		t.Errorf("sceneName = %q", got)
	}
	if got := sceneName(&MockScene{}); got != "*game.MockScene" {
		t.Errorf("sceneName = %q", got)
	}
	if got := sceneName(nil); got != "<nil>" {
		t.Errorf("sceneName(nil) = %q", got)
	}
}
