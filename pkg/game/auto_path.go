package game

import (
	"math"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/types"
)

// AutoPathCursor 自动路径游标
//
// 生成一个有界的 "放大后复位" 循环：
// 第 n 步的值为 (startCenter*zoomFactor^n, startScale*zoomFactor^n)，
// n 在 [0, maxZoomLevel) 之间循环。
// 使用计数器 + 闭式公式，不依赖生成器状态，因此可以随时 Reset。
type AutoPathCursor struct {
	startCenter  types.Point
	startScale   float64
	maxZoomLevel int
	zoomFactor   float64
	step         int
}

// NewAutoPathCursor 创建自动路径游标
//
// 参数：
//   - startCenter: 循环起点的中心坐标
//   - startScale: 循环起点的可见宽度
//   - maxZoomLevel: 每个循环的步数（< 1 时按 1 处理）
//   - zoomFactor: 每步的缩放系数
func NewAutoPathCursor(startCenter types.Point, startScale float64, maxZoomLevel int, zoomFactor float64) *AutoPathCursor {
	if maxZoomLevel < 1 {
		maxZoomLevel = 1
	}
	return &AutoPathCursor{
		startCenter:  startCenter,
		startScale:   startScale,
		maxZoomLevel: maxZoomLevel,
		zoomFactor:   zoomFactor,
	}
}

// NewAutoPathCursorFromConfig 根据配置创建自动路径游标
func NewAutoPathCursorFromConfig(cfg config.AutoPathConfig) *AutoPathCursor {
	return NewAutoPathCursor(cfg.StartCenter, cfg.StartScale, cfg.MaxZoomLevel, cfg.ZoomFactor)
}

// Advance 返回当前步的 (center, scale)，然后前进一步
func (c *AutoPathCursor) Advance() (types.Point, float64) {
	center, scale := c.At(c.step)
	c.step = (c.step + 1) % c.maxZoomLevel
	return center, scale
}

// At 返回第 n 步的值（n 会先对 maxZoomLevel 取模）
func (c *AutoPathCursor) At(n int) (types.Point, float64) {
	n %= c.maxZoomLevel
	if n < 0 {
		n += c.maxZoomLevel
	}
	f := math.Pow(c.zoomFactor, float64(n))
	return c.startCenter.Scale(f), c.startScale * f
}

// Reset 回到第 0 步
func (c *AutoPathCursor) Reset() {
	c.step = 0
}

// Step 返回下一次 Advance 将产出的步序号
func (c *AutoPathCursor) Step() int {
	return c.step
}

// Len 返回一个循环的步数
func (c *AutoPathCursor) Len() int {
	return c.maxZoomLevel
}
