package types

// NavigationMode 当前生效的导航模式
// 优先级：MouseFollow > AutoPath > Manual
type NavigationMode int

const (
	// ModeManual 方向键平移 + 滚轮缩放
	ModeManual NavigationMode = iota
	// ModeMouseFollow 视图跟随鼠标移动
	ModeMouseFollow
	// ModeAutoPath 自动沿预计算路径缩放（演示模式）
	ModeAutoPath
)

// String 返回导航模式名称
func (m NavigationMode) String() string {
	switch m {
	case ModeManual:
		return "Manual"
	case ModeMouseFollow:
		return "MouseFollow"
	case ModeAutoPath:
		return "AutoPath"
	default:
		return "Unknown"
	}
}
