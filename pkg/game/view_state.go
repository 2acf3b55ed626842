package game

import (
	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/types"
)

// ViewState 可导航的视图参数
//
// 职责：
//   - 保存中心坐标、可见宽度、最大迭代次数和缩放速度
//   - 提供原子的更新操作，调用方不会观察到做了一半的乘法缩放
//
// 架构说明：
//   - 只在单线程帧循环中由 NavigationSystem 修改，不需要加锁
//   - 每帧结束后通过 Snapshot() 交给渲染系统
type ViewState struct {
	// Center 复平面中的视图中心，无边界
	Center types.Point
	// Scale 可见区域宽度（越小越放大），始终 > 0
	Scale float64
	// MaxIter 片元着色器的最大迭代次数
	MaxIter int
	// ZoomModifier 滚轮缩放速度，不会低于初始值
	ZoomModifier float64
}

// NewViewState 从初始快照创建视图状态
func NewViewState(initial ViewState) *ViewState {
	v := initial
	return &v
}

// InitialViewState 根据配置生成初始快照（也是重置时恢复的值）
func InitialViewState(cfg config.ViewConfig) ViewState {
	return ViewState{
		Center:       cfg.Center,
		Scale:        cfg.Scale,
		MaxIter:      cfg.MaxIter,
		ZoomModifier: cfg.ZoomModifier,
	}
}

// ApplyZoom 乘法缩放
//
// factor 总是由 1 ± 小量推导得出，理论上恒为正；
// 非正值会破坏 Scale > 0 的约束，直接忽略。
func (v *ViewState) ApplyZoom(factor float64) {
	if factor <= 0 {
		return
	}
	v.Scale *= factor
}

// ApplyPan 平移视图中心
func (v *ViewState) ApplyPan(dx, dy float64) {
	v.Center = v.Center.Add(dx, dy)
}

// DecayZoomModifier 缩放速度向下限衰减
//
// 只有高于 floor 时才乘以 rate，所以序列单调不增。
// 乘法可能一步越过 floor，此时钳制到 floor。
func (v *ViewState) DecayZoomModifier(rate, floor float64) {
	if v.ZoomModifier <= floor {
		return
	}
	v.ZoomModifier *= rate
	if v.ZoomModifier < floor {
		v.ZoomModifier = floor
	}
}

// IncreaseZoomModifier 无条件增加缩放速度
func (v *ViewState) IncreaseZoomModifier(delta float64) {
	v.ZoomModifier += delta
}

// DecreaseZoomModifier 降低缩放速度，不低于 floor
func (v *ViewState) DecreaseZoomModifier(delta, floor float64) {
	v.ZoomModifier = max(floor, v.ZoomModifier-delta)
}

// Reset 用初始快照覆盖所有字段
func (v *ViewState) Reset(initial ViewState) {
	*v = initial
}

// Snapshot 返回当前状态的副本
func (v *ViewState) Snapshot() ViewState {
	return *v
}
