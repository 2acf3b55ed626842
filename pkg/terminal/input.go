// Package terminal 提供基于 tcell 的终端后端
//
// 与 ebiten 后端共用 ViewState 和 NavigationSystem，
// 在 CPU 上逐字符单元格计算逃逸时间，并以背景色绘制。
package terminal

import (
	"time"
	"unicode"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// keyName 返回 tcell 按键事件对应的物理按键名称，无法识别时返回空串
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "Space"
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}

// isQuitKey Esc 或 Ctrl+C
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c'
	}
	return false
}

// InputTranslator 把 tcell 事件翻译成逻辑输入事件
//
// 终端只上报按键按下（以及自动重复），没有松开事件。
// 方向键在超过 hold 时长没有重复按下后合成 KeyUp。
type InputTranslator struct {
	bindings map[string]types.Key
	hold     time.Duration

	held      map[types.Key]time.Time // 方向键最后一次按下/重复的时间
	pointer   types.Point
	toggleHUD bool
}

// NewInputTranslator 创建输入翻译器
func NewInputTranslator(keys config.KeyBindings, hold time.Duration) *InputTranslator {
	return &InputTranslator{
		bindings: keys.Reverse(),
		hold:     hold,
		held:     make(map[types.Key]time.Time, 4),
	}
}

// Translate 翻译单个 tcell 事件
func (t *InputTranslator) Translate(ev tcell.Event, now time.Time) []types.InputEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(ev, now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.pointer = types.Point{X: float64(x), Y: float64(y)}

		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			return []types.InputEvent{types.ScrollUpEvent()}
		case buttons&tcell.WheelDown != 0:
			return []types.InputEvent{types.ScrollDownEvent()}
		}
	}
	return nil
}

func (t *InputTranslator) translateKey(ev *tcell.EventKey, now time.Time) []types.InputEvent {
	if isQuitKey(ev) {
		return []types.InputEvent{types.QuitEvent()}
	}

	name := keyName(ev)
	logical, ok := t.bindings[name]
	if !ok {
		if name == "H" {
			t.toggleHUD = true
		}
		return nil
	}

	if !logical.IsDirectional() {
		return []types.InputEvent{types.KeyDownEvent(logical)}
	}

	// 自动重复只刷新时间戳
	_, alreadyHeld := t.held[logical]
	t.held[logical] = now
	if alreadyHeld {
		return nil
	}
	return []types.InputEvent{types.KeyDownEvent(logical)}
}

// Expire 为超时未重复的方向键合成 KeyUp
func (t *InputTranslator) Expire(now time.Time) []types.InputEvent {
	var events []types.InputEvent
	for _, k := range types.AllKeys() {
		last, ok := t.held[k]
		if !ok || now.Sub(last) < t.hold {
			continue
		}
		delete(t.held, k)
		events = append(events, types.KeyUpEvent(k))
	}
	return events
}

// Pointer 返回最近一次鼠标事件的位置（字符单元格坐标）
func (t *InputTranslator) Pointer() types.Point {
	return t.pointer
}

// TakeHUDToggle 返回并清除 HUD 切换请求
func (t *InputTranslator) TakeHUDToggle() bool {
	v := t.toggleHUD
	t.toggleHUD = false
	return v
}
