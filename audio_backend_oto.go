//go:build !headless

// audio_backend_oto.go - oto/v3-backed PcmSink.

package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// otoSink feeds samples to oto's pull-based Read callback through a
// small ring buffer.
type otoSink struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	ring    []int16
	readPos int
	closed  bool
}

// newAudioSink opens the host audio device as a PcmSink.
func newAudioSink() (PcmSink, error) {
	return newOtoSink()
}

func newOtoSink() (*otoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   pcmSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &otoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Read implements io.Reader for oto's player, draining the ring buffer
// and zero-filling when the pump hasn't kept up.
func (s *otoSink) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(p) / 2
	for i := 0; i < n; i++ {
		var v int16
		if s.readPos < len(s.ring) {
			v = s.ring[s.readPos]
			s.readPos++
		}
		p[i*2] = byte(v)
		p[i*2+1] = byte(v >> 8)
	}
	if s.readPos >= len(s.ring) {
		s.ring = s.ring[:0]
		s.readPos = 0
	}
	return len(p), nil
}

func (s *otoSink) WriteFrames(samples []int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring = append(s.ring[s.readPos:], samples...)
	s.readPos = 0
	return nil
}

// Pending reports outstanding fragments still buffered for playback.
func (s *otoSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (len(s.ring) - s.readPos) / (pcmFragmentFrames * 2)
}

func (s *otoSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.player.Close()
}
