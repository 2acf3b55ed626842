package config

import (
	"fmt"
	"strings"

	"github.com/decker502/mandelview/pkg/types"
)

// KeyBindings 逻辑按键到物理按键名称的绑定
//
// 物理按键名称使用与后端无关的写法：
//   - 字母 "A" ~ "Z"（大小写不敏感）
//   - 数字 "0" ~ "9"
//   - "ArrowUp" / "ArrowDown" / "ArrowLeft" / "ArrowRight"
//   - "Space", "Tab", "Enter", "Backspace"
type KeyBindings struct {
	Up                string `yaml:"up"`
	Down              string `yaml:"down"`
	Left              string `yaml:"left"`
	Right             string `yaml:"right"`
	ToggleMouseFollow string `yaml:"toggleMouseFollow"`
	ToggleAutoPath    string `yaml:"toggleAutoPath"`
	IncreaseZoomSpeed string `yaml:"increaseZoomSpeed"`
	DecreaseZoomSpeed string `yaml:"decreaseZoomSpeed"`
	Reset             string `yaml:"reset"`
}

// DefaultKeyBindings 返回默认键位（方向键 + M/P/1/2/R）
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:                "ArrowUp",
		Down:              "ArrowDown",
		Left:              "ArrowLeft",
		Right:             "ArrowRight",
		ToggleMouseFollow: "M",
		ToggleAutoPath:    "P",
		IncreaseZoomSpeed: "1",
		DecreaseZoomSpeed: "2",
		Reset:             "R",
	}
}

// specialKeyNames 除字母和数字外支持的按键名称
var specialKeyNames = []string{
	"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
	"Space", "Tab", "Enter", "Backspace",
}

// reservedKeyNames 被窗口级命令占用、不能绑定到导航命令的按键（H 切换 HUD）
var reservedKeyNames = []string{"H"}

// NormalizeKeyName 规范化物理按键名称
// 单个字母统一为大写，其余名称原样返回（去除首尾空白）
func NormalizeKeyName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		return strings.ToUpper(name)
	}
	return name
}

// IsKnownKeyName 判断物理按键名称是否受支持
func IsKnownKeyName(name string) bool {
	name = NormalizeKeyName(name)
	if len(name) == 1 {
		c := name[0]
		return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	for _, special := range specialKeyNames {
		if name == special {
			return true
		}
	}
	return false
}

// Map 返回逻辑按键到规范化物理按键名称的映射
func (b KeyBindings) Map() map[types.Key]string {
	return map[types.Key]string{
		types.KeyUp:                NormalizeKeyName(b.Up),
		types.KeyDown:              NormalizeKeyName(b.Down),
		types.KeyLeft:              NormalizeKeyName(b.Left),
		types.KeyRight:             NormalizeKeyName(b.Right),
		types.KeyToggleMouseFollow: NormalizeKeyName(b.ToggleMouseFollow),
		types.KeyToggleAutoPath:    NormalizeKeyName(b.ToggleAutoPath),
		types.KeyIncreaseZoomSpeed: NormalizeKeyName(b.IncreaseZoomSpeed),
		types.KeyDecreaseZoomSpeed: NormalizeKeyName(b.DecreaseZoomSpeed),
		types.KeyReset:             NormalizeKeyName(b.Reset),
	}
}

// Reverse 返回物理按键名称到逻辑按键的映射（后端查表用）
func (b KeyBindings) Reverse() map[string]types.Key {
	reverse := make(map[string]types.Key, len(types.AllKeys()))
	for key, name := range b.Map() {
		reverse[name] = key
	}
	return reverse
}

// Validate 检查每个逻辑按键都已绑定、名称受支持、且没有两个命令共用一个物理按键
func (b KeyBindings) Validate() error {
	m := b.Map()
	owner := make(map[string]types.Key, len(m))
	for _, key := range types.AllKeys() {
		name := m[key]
		if name == "" {
			return fmt.Errorf("key binding for %s is empty", key)
		}
		if !IsKnownKeyName(name) {
			return fmt.Errorf("key binding for %s: unknown key name %q", key, name)
		}
		for _, reserved := range reservedKeyNames {
			if name == reserved {
				return fmt.Errorf("key binding for %s: key %q is reserved", key, name)
			}
		}
		if prev, ok := owner[name]; ok {
			return fmt.Errorf("key %q is bound to both %s and %s", name, prev, key)
		}
		owner[name] = key
	}
	return nil
}
