// surface.go - Surface: the capability the VDC shell draws through.

package main

// Surface is the host framebuffer the VDC shell draws to. The core
// never knows its concrete identity (ebiten window, headless stub).
type Surface interface {
	Resize(width, height int)
	Clear(r, g, b byte)
	DrawPixel(x, y int, r, g, b byte)
	Flip()
}
