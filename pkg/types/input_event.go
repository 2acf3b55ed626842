package types

import "fmt"

// InputEventType 输入事件类型
type InputEventType int

const (
	// EventQuit 退出程序
	EventQuit InputEventType = iota
	// EventScrollUp 滚轮向上一格（放大）
	EventScrollUp
	// EventScrollDown 滚轮向下一格（缩小）
	EventScrollDown
	// EventKeyDown 逻辑按键按下
	EventKeyDown
	// EventKeyUp 逻辑按键松开
	EventKeyUp
)

// InputEvent 一帧内轮询到的离散输入事件
// 指针位置不属于事件队列，由后端每帧单独提供
type InputEvent struct {
	Type InputEventType
	Key  Key // 仅对 EventKeyDown / EventKeyUp 有效
}

// QuitEvent 创建退出事件
func QuitEvent() InputEvent { return InputEvent{Type: EventQuit} }

// ScrollUpEvent 创建放大滚轮事件
func ScrollUpEvent() InputEvent { return InputEvent{Type: EventScrollUp} }

// ScrollDownEvent 创建缩小滚轮事件
func ScrollDownEvent() InputEvent { return InputEvent{Type: EventScrollDown} }

// KeyDownEvent 创建按键按下事件
func KeyDownEvent(k Key) InputEvent { return InputEvent{Type: EventKeyDown, Key: k} }

// KeyUpEvent 创建按键松开事件
func KeyUpEvent(k Key) InputEvent { return InputEvent{Type: EventKeyUp, Key: k} }

// String 返回事件的可读表示（用于日志和测试输出）
func (e InputEvent) String() string {
	switch e.Type {
	case EventQuit:
		return "Quit"
	case EventScrollUp:
		return "ScrollUp"
	case EventScrollDown:
		return "ScrollDown"
	case EventKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key)
	case EventKeyUp:
		return fmt.Sprintf("KeyUp(%s)", e.Key)
	default:
		return "Unknown"
	}
}
