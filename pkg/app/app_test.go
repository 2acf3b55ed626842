package app

import (
	"testing"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/game"
	"github.com/decker502/mandelview/pkg/types"
)

// TestNewAppRequiresConfig 测试缺少查看器配置时报错
func TestNewAppRequiresConfig(t *testing.T) {
	if _, err := NewApp(Config{}); err == nil {
		t.Error("NewApp without viewer config should fail")
	}
}

// TestNewAppWiring 测试系统组装使用配置中的初始值
func TestNewAppWiring(t *testing.T) {
	cfg := config.DefaultViewerConfig()
	cfg.View.MaxIter = 500
	a := newApp(cfg, nil, game.NewScreenshotManager(nil))

	want := game.ViewState{Center: types.Point{}, Scale: 1.0, MaxIter: 500, ZoomModifier: 0.05}
	if a.View() != want {
		t.Errorf("initial view: got %+v, want %+v", a.View(), want)
	}
	if a.navigation.Mode() != types.ModeManual {
		t.Errorf("initial mode: got %s, want Manual", a.navigation.Mode())
	}
	if a.hud.Enabled() != cfg.HUD.Enabled {
		t.Errorf("hud enabled: got %v, want %v", a.hud.Enabled(), cfg.HUD.Enabled)
	}
}

// TestLayoutTracksWindowSize 测试 Layout 记录窗口尺寸供导航归一化使用
func TestLayoutTracksWindowSize(t *testing.T) {
	a := newApp(config.DefaultViewerConfig(), nil, game.NewScreenshotManager(nil))

	w, h := a.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("Layout: got %dx%d, want 800x600", w, h)
	}

	// 最小化时 ebiten 可能传入 0，保持上一次的尺寸
	w, h = a.Layout(0, 0)
	if w != 800 || h != 600 {
		t.Errorf("Layout with zero size: got %dx%d, want 800x600", w, h)
	}
}
