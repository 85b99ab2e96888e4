//go:build headless

// audio_backend_headless.go - no-op PcmSink for tests and CI.

package main

type headlessSink struct {
	frames int
}

// newAudioSink returns a no-op sink; used for headless builds and tests.
func newAudioSink() (PcmSink, error) {
	return &headlessSink{}, nil
}

func (s *headlessSink) WriteFrames(samples []int16) error {
	s.frames += len(samples) / 2
	return nil
}

func (s *headlessSink) Pending() int { return 0 }

func (s *headlessSink) Close() error { return nil }
