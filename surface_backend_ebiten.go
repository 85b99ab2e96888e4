//go:build !headless

// surface_backend_ebiten.go - ebiten-backed Surface.

package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenSurface is a software RGBA framebuffer flushed to an ebiten
// window each frame. Resize reallocates the backing buffer; Clear and
// DrawPixel write directly into it, guarded by a mutex since the VDC
// draw call and ebiten's own Draw callback run on different
// goroutines.
type ebitenSurface struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []byte

	started bool
	ready   chan struct{}
}

func newSurface() (Surface, error) {
	s := &ebitenSurface{
		width:  240,
		height: 192,
		pixels: make([]byte, 240*192*4),
		ready:  make(chan struct{}, 1),
	}
	ebiten.SetWindowSize(s.width*2, s.height*2)
	ebiten.SetWindowTitle("aardbei-go")
	ebiten.SetWindowResizable(true)
	go func() {
		if err := ebiten.RunGame(s); err != nil {
			fmt.Fprintln(os.Stderr, "surface: ebiten exited:", err)
		}
	}()
	<-s.ready
	return s, nil
}

func (s *ebitenSurface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.pixels = make([]byte, width*height*4)
}

func (s *ebitenSurface) Clear(r, g, b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < len(s.pixels); i += 4 {
		s.pixels[i] = r
		s.pixels[i+1] = g
		s.pixels[i+2] = b
		s.pixels[i+3] = 0xFF
	}
}

func (s *ebitenSurface) DrawPixel(x, y int, r, g, b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.pixels[i] = r
	s.pixels[i+1] = g
	s.pixels[i+2] = b
	s.pixels[i+3] = 0xFF
}

func (s *ebitenSurface) Flip() {
	// ebiten's own Draw callback presents the buffer each tick;
	// nothing to do here beyond what Update/Draw already handle.
}

// Update and Draw implement ebiten.Game.
func (s *ebitenSurface) Update() error { return nil }

func (s *ebitenSurface) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.started = true
		s.ready <- struct{}{}
	}
	screen.WritePixels(s.pixels)
}

func (s *ebitenSurface) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}
