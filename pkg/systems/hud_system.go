package systems

import (
	"fmt"

	"github.com/decker502/mandelview/pkg/game"
	"github.com/decker502/mandelview/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUDSystem 左上角的状态文字叠加层（H 键切换）
type HUDSystem struct {
	enabled bool
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(enabled bool) *HUDSystem {
	return &HUDSystem{enabled: enabled}
}

// Toggle 切换显示状态
func (s *HUDSystem) Toggle() {
	s.enabled = !s.enabled
}

// Enabled 返回是否显示
func (s *HUDSystem) Enabled() bool {
	return s.enabled
}

// Draw 绘制 HUD
func (s *HUDSystem) Draw(screen *ebiten.Image, view game.ViewState, mode types.NavigationMode) {
	if !s.enabled {
		return
	}
	ebitenutil.DebugPrint(screen, FormatHUD(view, mode, ebiten.ActualTPS()))
}

// FormatHUD 生成 HUD 文本（终端后端的状态栏也使用它）
func FormatHUD(view game.ViewState, mode types.NavigationMode, tps float64) string {
	return fmt.Sprintf("center: (%.10f, %.10f)\nscale: %.6e\nmax_iter: %d\nzoom speed: %.4f\nmode: %s\nTPS: %.1f",
		view.Center.X, view.Center.Y, view.Scale, view.MaxIter, view.ZoomModifier, mode, tps)
}
