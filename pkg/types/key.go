// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Key 定义逻辑按键
// 后端（ebiten / tcell）负责把物理按键通过键位绑定翻译成逻辑按键，
// 导航系统只处理逻辑按键。
type Key int

const (
	// KeyUnknown 未绑定的按键
	KeyUnknown Key = iota

	// 方向键（按住状态持续生效）
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// 命令键（每次按下触发一次）
	KeyToggleMouseFollow
	KeyToggleAutoPath
	KeyIncreaseZoomSpeed
	KeyDecreaseZoomSpeed
	KeyReset
)

// AllKeys 返回所有有效的逻辑按键（不含 KeyUnknown）
func AllKeys() []Key {
	return []Key{
		KeyUp, KeyDown, KeyLeft, KeyRight,
		KeyToggleMouseFollow, KeyToggleAutoPath,
		KeyIncreaseZoomSpeed, KeyDecreaseZoomSpeed,
		KeyReset,
	}
}

// IsDirectional 判断是否为方向键
func (k Key) IsDirectional() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	default:
		return false
	}
}

// String 返回按键的配置名称（与 viewer.yaml 中 keys 段的键名一致）
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyToggleMouseFollow:
		return "toggleMouseFollow"
	case KeyToggleAutoPath:
		return "toggleAutoPath"
	case KeyIncreaseZoomSpeed:
		return "increaseZoomSpeed"
	case KeyDecreaseZoomSpeed:
		return "decreaseZoomSpeed"
	case KeyReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseKey 根据配置名称查找逻辑按键
// 未知名称返回 KeyUnknown 和 false
func ParseKey(name string) (Key, bool) {
	for _, k := range AllKeys() {
		if k.String() == name {
			return k, true
		}
	}
	return KeyUnknown, false
}
