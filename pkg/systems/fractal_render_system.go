package systems

import (
	"fmt"
	"log"

	"github.com/decker502/mandelview/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// FractalShaderPath 内嵌的 Kage 着色器路径
const FractalShaderPath = "assets/shaders/mandelbrot.kage"

// FractalRenderSystem 用 Kage 片元着色器绘制全屏曼德博集合
//
// 每帧设置四个 uniform：Center、Scale、MaxIter、Resolution，
// 然后对整个屏幕执行一次 DrawRectShader（全屏四边形）。
type FractalRenderSystem struct {
	shader *ebiten.Shader
	opts   ebiten.DrawRectShaderOptions
}

// NewFractalRenderSystem 编译着色器程序
//
// 参数:
//   - src: Kage 着色器源码
//
// 返回:
//   - error: 编译失败时返回错误（调用方应视为致命错误）
func NewFractalRenderSystem(src []byte) (*FractalRenderSystem, error) {
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile fractal shader: %w", err)
	}
	log.Printf("[FractalRenderSystem] Shader compiled (%d bytes)", len(src))

	return &FractalRenderSystem{
		shader: shader,
		opts: ebiten.DrawRectShaderOptions{
			Uniforms: make(map[string]any, 4),
		},
	}, nil
}

// Draw 把当前视图绘制到 screen
func (s *FractalRenderSystem) Draw(screen *ebiten.Image, view game.ViewState) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	fillUniforms(s.opts.Uniforms, view, w, h)
	screen.DrawRectShader(w, h, s.shader, &s.opts)
}

// fillUniforms 按着色器的 uniform 名称填充参数
func fillUniforms(u map[string]any, view game.ViewState, width, height int) {
	u["Center"] = []float32{float32(view.Center.X), float32(view.Center.Y)}
	u["Scale"] = float32(view.Scale)
	u["MaxIter"] = view.MaxIter
	u["Resolution"] = []float32{float32(width), float32(height)}
}
