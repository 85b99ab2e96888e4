package main

import "testing"

type recordingPcmSink struct {
	frames  []int16
	pending int
}

func (s *recordingPcmSink) WriteFrames(samples []int16) error {
	s.frames = append(s.frames, samples...)
	return nil
}
func (s *recordingPcmSink) Pending() int { return s.pending }
func (s *recordingPcmSink) Close() error { return nil }

func TestClampInt16(t *testing.T) {
	cases := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{32768, 32767},
		{-32768, -32768},
		{-32769, -32768},
		{100, 100},
	}
	for _, c := range cases {
		if got := clampInt16(c.in); got != c.want {
			t.Fatalf("clampInt16(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNewMachineWiresComponents(t *testing.T) {
	cfg := &Config{}
	sink := &recordingPcmSink{}
	surface := &recordingSurface{}

	m := NewMachine(cfg, sink, surface)

	if m.Mem == nil || m.Bus == nil || m.CPU == nil || m.PSG1 == nil || m.PSG2 == nil || m.VDC == nil || m.UART == nil {
		t.Fatalf("NewMachine left a component nil: %+v", m)
	}
	if m.Bus.Mem != m.Mem {
		t.Fatalf("bus does not share the machine's memory map")
	}
	if m.CPU.bus != Z80Bus(m.Bus) {
		t.Fatalf("cpu does not share the machine's bus")
	}
}

func TestMachineEmulatedNanosTracksBusCycles(t *testing.T) {
	cfg := &Config{}
	m := NewMachine(cfg, &recordingPcmSink{}, &recordingSurface{})

	m.Bus.Cycles = z80ClockHz // exactly one second of emulated cycles
	if got := m.emulatedNanos(); got != 1_000_000_000 {
		t.Fatalf("emulatedNanos() = %d, want 1e9 for one clock-second of cycles", got)
	}
}

func TestMachinePumpAudioMixesAndWritesFrames(t *testing.T) {
	cfg := &Config{}
	sink := &recordingPcmSink{}
	m := NewMachine(cfg, sink, &recordingSurface{})

	m.Bus.Cycles = z80ClockHz / pcmSampleRate * 10 // 810 cycles: 9 whole samples after rounding down

	if err := m.pumpAudio(); err != nil {
		t.Fatalf("pumpAudio: %v", err)
	}
	if len(sink.frames) == 0 {
		t.Fatalf("pumpAudio did not write any frames to the sink")
	}
}

func TestMachinePumpAudioNoOpWhenNoElapsedCycles(t *testing.T) {
	cfg := &Config{}
	sink := &recordingPcmSink{}
	m := NewMachine(cfg, sink, &recordingSurface{})

	if err := m.pumpAudio(); err != nil {
		t.Fatalf("pumpAudio: %v", err)
	}
	if len(sink.frames) != 0 {
		t.Fatalf("pumpAudio wrote frames with zero elapsed cycles")
	}
}
