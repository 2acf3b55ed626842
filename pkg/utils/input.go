// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerTracker 统一鼠标和触摸的指针位置
//
// 有活动触摸时返回第一个触摸点的位置；手指抬起后保持最后一次触摸位置，
// 直到鼠标移动。
type PointerTracker struct {
	touchIDs []ebiten.TouchID

	lastX, lastY   int
	mouseX, mouseY int
	touching       bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Position 返回本帧的指针位置（逻辑像素）
func (p *PointerTracker) Position() (int, int) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	mx, my := ebiten.CursorPosition()
	return p.resolve(p.touchIDs, mx, my)
}

// resolve 选择指针来源；touchIDs 非空时读取第一个触摸点
func (p *PointerTracker) resolve(touchIDs []ebiten.TouchID, mx, my int) (int, int) {
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return p.resolveTouch(x, y, mx, my)
	}
	return p.resolveMouse(mx, my)
}

func (p *PointerTracker) resolveTouch(x, y, mx, my int) (int, int) {
	p.lastX, p.lastY = x, y
	p.mouseX, p.mouseY = mx, my
	p.touching = true
	return x, y
}

func (p *PointerTracker) resolveMouse(mx, my int) (int, int) {
	if p.touching && mx == p.mouseX && my == p.mouseY {
		return p.lastX, p.lastY
	}
	p.touching = false
	p.mouseX, p.mouseY = mx, my
	p.lastX, p.lastY = mx, my
	return mx, my
}
