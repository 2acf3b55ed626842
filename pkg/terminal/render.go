package terminal

import (
	"math"

	"github.com/decker502/mandelview/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// EscapeTime 返回 c 在 maxIter 次迭代内逃逸（|z|^2 > 4）前完成的迭代次数
// 不逃逸时返回 maxIter
func EscapeTime(c complex128, maxIter int) int {
	z := complex(0, 0)
	for i := range maxIter {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
		z = z*z + c
	}
	return maxIter
}

// Shade 与着色器相同的配色：(6t, t², √t)，t = n/maxIter
func Shade(n, maxIter int) (r, g, b int32) {
	t := float64(n) / float64(maxIter)
	channel := func(v float64) int32 {
		return int32(math.Round(math.Min(1, math.Max(0, v)) * 255))
	}
	return channel(t * 6), channel(t * t), channel(math.Sqrt(t))
}

// PlanePoint 把单元格中心映射到复平面
//
// 与着色器相同的约定：画面中心为 view.Center，y 轴向上，
// view.Scale 为可见宽度；aspect 为单元格高宽比。
func PlanePoint(view game.ViewState, x, y, width, height int, aspect float64) complex128 {
	px := float64(x) + 0.5 - float64(width)/2
	py := (float64(height)/2 - (float64(y) + 0.5)) * aspect
	w := float64(width)
	return complex(view.Center.X+px/w*view.Scale, view.Center.Y+py/w*view.Scale)
}

// Renderer 在 CPU 上逐单元格绘制曼德博集合
type Renderer struct {
	aspect float64
}

// NewRenderer 创建终端渲染器
func NewRenderer(aspect float64) *Renderer {
	return &Renderer{aspect: aspect}
}

// Draw 清屏后按视图填充每个单元格的背景色
func (r *Renderer) Draw(screen tcell.Screen, view game.ViewState) {
	screen.Clear()
	width, height := screen.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := EscapeTime(PlanePoint(view, x, y, width, height, r.aspect), view.MaxIter)
			cr, cg, cb := Shade(n, view.MaxIter)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(cr, cg, cb))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText 在左上角逐行绘制文字（HUD）
func DrawText(screen tcell.Screen, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x, y := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			x, y = 0, y+1
			continue
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
