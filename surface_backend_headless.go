//go:build headless

// surface_backend_headless.go - no-op Surface for tests and CI.

package main

type headlessSurface struct {
	width, height int
	flips         uint64
}

func newSurface() (Surface, error) {
	return &headlessSurface{}, nil
}

func (s *headlessSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *headlessSurface) Clear(r, g, b byte) {}

func (s *headlessSurface) DrawPixel(x, y int, r, g, b byte) {}

func (s *headlessSurface) Flip() {
	s.flips++
}
