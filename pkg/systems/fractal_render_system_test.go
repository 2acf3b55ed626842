package systems

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/game"
	"github.com/decker502/mandelview/pkg/types"
)

// TestFillUniforms 测试 uniform 名称和取值
func TestFillUniforms(t *testing.T) {
	u := make(map[string]any)
	view := game.ViewState{Center: types.Point{X: -0.5, Y: 0.25}, Scale: 2, MaxIter: 300, ZoomModifier: 0.05}

	fillUniforms(u, view, 1280, 720)

	center, ok := u["Center"].([]float32)
	if !ok || len(center) != 2 || center[0] != -0.5 || center[1] != 0.25 {
		t.Errorf("Center uniform: got %v", u["Center"])
	}
	if u["Scale"] != float32(2) {
		t.Errorf("Scale uniform: got %v", u["Scale"])
	}
	if u["MaxIter"] != 300 {
		t.Errorf("MaxIter uniform: got %v", u["MaxIter"])
	}
	res, ok := u["Resolution"].([]float32)
	if !ok || res[0] != 1280 || res[1] != 720 {
		t.Errorf("Resolution uniform: got %v", u["Resolution"])
	}
}

// TestShaderSourceDeclaresUniforms 测试着色器声明了渲染系统设置的所有 uniform
func TestShaderSourceDeclaresUniforms(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(FractalShaderPath)))
	if err != nil {
		t.Fatalf("failed to read shader: %v", err)
	}
	text := string(src)

	u := make(map[string]any)
	fillUniforms(u, game.ViewState{Scale: 1, MaxIter: 1}, 1, 1)
	for name := range u {
		if !strings.Contains(text, "var "+name+" ") {
			t.Errorf("shader does not declare uniform %s", name)
		}
	}

	if !strings.Contains(text, "maxIterCap = 8192") || config.MaxIterCap != 8192 {
		t.Errorf("shader loop cap and config.MaxIterCap disagree")
	}
}

func TestFormatHUD(t *testing.T) {
	view := game.ViewState{Center: types.Point{X: 0.5, Y: -0.25}, Scale: 0.001, MaxIter: 2000, ZoomModifier: 0.05}
	text := FormatHUD(view, types.ModeAutoPath, 60)

	for _, want := range []string{"0.5000000000", "-0.2500000000", "1.000000e-03", "max_iter: 2000", "mode: AutoPath", "TPS: 60.0"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD text missing %q:\n%s", want, text)
		}
	}
}

func TestHUDToggle(t *testing.T) {
	h := NewHUDSystem(false)
	h.Toggle()
	if !h.Enabled() {
		t.Error("HUD should be enabled after Toggle")
	}
	h.Toggle()
	if h.Enabled() {
		t.Error("HUD should be disabled after second Toggle")
	}
}
