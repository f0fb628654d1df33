// Package input 统一处理鼠标和触摸点击
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerButton identifies which button produced a click.
type PointerButton int

const (
	// PointerPrimary is the left mouse button or a touch.
	PointerPrimary PointerButton = iota
	// PointerSecondary is the right mouse button.
	PointerSecondary
)

// Click is a pointer press that happened during the current tick.
type Click struct {
	Button PointerButton
	X, Y   int
}

// AppendClicks appends every click that started this tick to dst.
// Touches are reported as primary clicks, one per new touch.
func AppendClicks(dst []Click) []Click {
	// 首先检查触摸输入（移动设备）
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, Click{Button: PointerPrimary, X: x, Y: y})
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, Click{Button: PointerPrimary, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, Click{Button: PointerSecondary, X: x, Y: y})
	}

	return dst
}
