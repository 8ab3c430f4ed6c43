package app

// viewport holds the window size in screen coordinates and the GL drawable
// size in pixels. Mouse events arrive in the former; rendering and the info
// panel work in the latter.
type viewport struct {
	winW, winH int
	pxW, pxH   int
}

// toPixels maps a window position to drawable pixels.
func (v viewport) toPixels(x, y int) (int, int) {
	if v.winW <= 0 || v.winH <= 0 {
		return x, y
	}
	return x * v.pxW / v.winW, y * v.pxH / v.winH
}
