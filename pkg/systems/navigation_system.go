package systems

import (
	"log"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/game"
	"github.com/decker502/mandelview/pkg/types"
)

// NavigationSystem 每帧根据输入事件决定导航模式并修改 ViewState
//
// 帧内顺序：
//  1. 按顺序处理离散事件（退出、滚轮缩放、模式切换、缩放速度命令、重置）
//  2. 执行当前模式的连续更新规则（MouseFollow > AutoPath > Manual，只执行一个）
//  3. 无条件衰减缩放速度
//
// MouseFollow 与 AutoPath 是两个独立的开关，切换一个不会清除另一个；
// 两者同时打开时跟随鼠标优先，自动路径游标不前进。
type NavigationSystem struct {
	view    *game.ViewState
	cursor  *game.AutoPathCursor
	initial game.ViewState
	cfg     config.NavigationConfig

	mouseFollow bool
	autoPath    bool

	held        map[types.Key]bool // 当前按住的方向键
	lastPointer types.Point        // 跟随鼠标的参考位置

	viewportWidth  float64
	viewportHeight float64

	frames uint64
}

// NewNavigationSystem 创建导航系统
//
// 参数:
//   - view: 被修改的视图状态
//   - cursor: 自动路径游标
//   - initial: 重置时恢复的初始快照，其 ZoomModifier 也是缩放速度下限
//   - cfg: 导航常量
func NewNavigationSystem(view *game.ViewState, cursor *game.AutoPathCursor, initial game.ViewState, cfg config.NavigationConfig) *NavigationSystem {
	return &NavigationSystem{
		view:    view,
		cursor:  cursor,
		initial: initial,
		cfg:     cfg,
		held:    make(map[types.Key]bool, 4),
	}
}

// SetViewport 设置用于归一化鼠标位移的视口尺寸（像素或字符单元格）
func (s *NavigationSystem) SetViewport(width, height int) {
	s.viewportWidth = float64(width)
	s.viewportHeight = float64(height)
}

// Mode 返回当前生效的导航模式
func (s *NavigationSystem) Mode() types.NavigationMode {
	switch {
	case s.mouseFollow:
		return types.ModeMouseFollow
	case s.autoPath:
		return types.ModeAutoPath
	default:
		return types.ModeManual
	}
}

// MouseFollowEnabled 返回跟随鼠标开关状态
func (s *NavigationSystem) MouseFollowEnabled() bool { return s.mouseFollow }

// AutoPathEnabled 返回自动路径开关状态（可能被跟随鼠标覆盖）
func (s *NavigationSystem) AutoPathEnabled() bool { return s.autoPath }

// Frames 返回已处理的帧数
func (s *NavigationSystem) Frames() uint64 { return s.frames }

// IsHeld 返回方向键是否按住
func (s *NavigationSystem) IsHeld(k types.Key) bool { return s.held[k] }

// Update 处理一帧
//
// 参数:
//   - events: 本帧轮询到的离散事件
//   - pointer: 当前指针位置（与事件队列无关，可以在窗口外）
//
// 返回:
//   - bool: 收到 Quit 事件时返回 false，调用方应结束帧循环
func (s *NavigationSystem) Update(events []types.InputEvent, pointer types.Point) bool {
	for _, ev := range events {
		switch ev.Type {
		case types.EventQuit:
			log.Printf("[NavigationSystem] Quit requested after %d frames", s.frames)
			return false
		case types.EventScrollUp:
			s.view.ApplyZoom(1 - s.view.ZoomModifier*s.cfg.ZoomStep)
		case types.EventScrollDown:
			s.view.ApplyZoom(1 + s.view.ZoomModifier*s.cfg.ZoomStep)
		case types.EventKeyDown:
			s.handleKeyDown(ev.Key, pointer)
		case types.EventKeyUp:
			if ev.Key.IsDirectional() {
				s.held[ev.Key] = false
			}
		}
	}

	switch s.Mode() {
	case types.ModeMouseFollow:
		s.updateMouseFollow(pointer)
	case types.ModeAutoPath:
		s.updateAutoPath()
	default:
		s.updateManual()
	}

	s.view.DecayZoomModifier(s.cfg.ZoomModifierDecay, s.initial.ZoomModifier)
	s.frames++
	return true
}

// Reset 恢复初始视图并回到 Manual 模式
// 自动路径游标同时回到第 0 步
func (s *NavigationSystem) Reset() {
	s.view.Reset(s.initial)
	s.mouseFollow = false
	s.autoPath = false
	s.cursor.Reset()
	log.Printf("[NavigationSystem] View reset")
}

func (s *NavigationSystem) handleKeyDown(k types.Key, pointer types.Point) {
	if k.IsDirectional() {
		s.held[k] = true
		return
	}

	switch k {
	case types.KeyToggleMouseFollow:
		s.mouseFollow = !s.mouseFollow
		// 每次切换都重新锁定参考位置
		s.lastPointer = pointer
		log.Printf("[NavigationSystem] Mouse follow: %v (mode=%s)", s.mouseFollow, s.Mode())
	case types.KeyToggleAutoPath:
		s.autoPath = !s.autoPath
		log.Printf("[NavigationSystem] Auto path: %v (mode=%s)", s.autoPath, s.Mode())
	case types.KeyIncreaseZoomSpeed:
		s.view.IncreaseZoomModifier(s.cfg.ZoomModifierStep)
		log.Printf("[NavigationSystem] Zoom speed increased to %.4f", s.view.ZoomModifier)
	case types.KeyDecreaseZoomSpeed:
		s.view.DecreaseZoomModifier(s.cfg.ZoomModifierStep, s.initial.ZoomModifier)
		log.Printf("[NavigationSystem] Zoom speed decreased to %.4f", s.view.ZoomModifier)
	case types.KeyReset:
		s.Reset()
	}
}

// updateMouseFollow 按归一化的指针位移平移视图，y 方向取反以匹配复平面朝向
func (s *NavigationSystem) updateMouseFollow(pointer types.Point) {
	if pointer != s.lastPointer && s.viewportWidth > 0 && s.viewportHeight > 0 {
		dx := (pointer.X - s.lastPointer.X) / s.viewportWidth
		dy := (pointer.Y - s.lastPointer.Y) / s.viewportHeight
		s.view.ApplyPan(-dx*s.view.Scale, dy*s.view.Scale)
	}
	s.lastPointer = pointer
}

// updateAutoPath 直接跳到游标的下一个预计算位置
func (s *NavigationSystem) updateAutoPath() {
	center, scale := s.cursor.Advance()
	s.view.Center = center
	s.view.Scale = scale
}

// updateManual 方向键平移，步长随 scale 线性变化，视觉速度与缩放级别无关
func (s *NavigationSystem) updateManual() {
	step := s.cfg.PanStep * s.view.Scale
	if s.held[types.KeyUp] {
		s.view.ApplyPan(0, step)
	}
	if s.held[types.KeyDown] {
		s.view.ApplyPan(0, -step)
	}
	if s.held[types.KeyLeft] {
		s.view.ApplyPan(-step, 0)
	}
	if s.held[types.KeyRight] {
		s.view.ApplyPan(step, 0)
	}
}
