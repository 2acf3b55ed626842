package systems

import (
	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/types"
	"github.com/decker502/mandelview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeyNames 物理按键名称到 ebiten 按键的映射
var ebitenKeyNames = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"Space":      ebiten.KeySpace,
	"Tab":        ebiten.KeyTab,
	"Enter":      ebiten.KeyEnter,
	"Backspace":  ebiten.KeyBackspace,
}

// InputSystem 把 ebiten 的输入状态翻译成逻辑输入事件
//
// 每帧调用一次 Poll()：
//   - 刚按下/刚松开的物理按键经键位绑定变为 KeyDown/KeyUp
//   - 滚轮偏移累积，每满一格产生一个 ScrollUp/ScrollDown
//   - Escape 或关闭窗口产生 Quit
type InputSystem struct {
	bindings map[ebiten.Key]types.Key
	wheelAcc float64

	pressed  []ebiten.Key
	released []ebiten.Key
	pointer  *utils.PointerTracker
}

// NewInputSystem 根据键位绑定创建输入系统
// 绑定已经过 config 校验，不存在的名称会被忽略
func NewInputSystem(keys config.KeyBindings) *InputSystem {
	bindings := make(map[ebiten.Key]types.Key)
	for name, logical := range keys.Reverse() {
		if k, ok := ebitenKeyNames[name]; ok {
			bindings[k] = logical
		}
	}
	return &InputSystem{bindings: bindings, pointer: utils.NewPointerTracker()}
}

// Poll 读取本帧的输入
//
// 返回:
//   - []types.InputEvent: 本帧的离散事件
//   - types.Point: 当前指针位置（逻辑像素，触摸优先）
func (s *InputSystem) Poll() ([]types.InputEvent, types.Point) {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	_, wheelY := ebiten.Wheel()
	closing := ebiten.IsWindowBeingClosed()

	events := s.translate(s.pressed, s.released, wheelY, closing)

	x, y := s.pointer.Position()
	return events, types.Point{X: float64(x), Y: float64(y)}
}

// translate 把原始输入状态转换成事件（与 ebiten 运行时无关，便于测试）
func (s *InputSystem) translate(pressed, released []ebiten.Key, wheelY float64, closing bool) []types.InputEvent {
	var events []types.InputEvent

	if closing {
		events = append(events, types.QuitEvent())
	}

	for _, k := range pressed {
		if k == ebiten.KeyEscape {
			events = append(events, types.QuitEvent())
			continue
		}
		if logical, ok := s.bindings[k]; ok {
			events = append(events, types.KeyDownEvent(logical))
		}
	}

	for _, k := range released {
		if logical, ok := s.bindings[k]; ok {
			events = append(events, types.KeyUpEvent(logical))
		}
	}

	// 触控板会产生小数偏移，累积到整格再发事件
	s.wheelAcc += wheelY
	for s.wheelAcc >= 1 {
		events = append(events, types.ScrollUpEvent())
		s.wheelAcc--
	}
	for s.wheelAcc <= -1 {
		events = append(events, types.ScrollDownEvent())
		s.wheelAcc++
	}

	return events
}
