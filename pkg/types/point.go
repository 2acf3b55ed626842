package types

// Point 二维浮点坐标
// 用于复平面坐标（视图中心）和屏幕指针位置
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回两点之和
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Scale 返回按系数缩放后的点
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}
