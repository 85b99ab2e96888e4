// machine.go - assembles the memory map, bus, CPU, PSGs, VDC, and UART
// into one runnable unit and drives the real-time pacing loop (spec.md
// §5). Struct-assembly shape follows CPUZ80Runner in the teacher's
// cpu_z80_runner.go (a config struct plus a runner struct wrapping a
// *CPU_Z80 and its bus), generalised from that file's many-chip wiring
// down to the five leaf components this system actually has.

package main

import (
	"fmt"
	"os"
	"time"
)

// z80ClockHz is the emulated CPU master clock; cycles convert to
// emulated nanoseconds as nanos = 1e9*cycles/z80ClockHz (spec.md §3).
const z80ClockHz = 3579545

// Machine owns every component of one Aardbei-8 board and the pacing
// loop that steps them together.
type Machine struct {
	Mem  *MemoryMap
	Bus  *Bus
	CPU  *CPU_Z80
	PSG1 *PSGShell
	PSG2 *PSGShell
	VDC  *VDC
	UART *UART

	sink PcmSink

	cfg *Config

	lastPumpCycles uint64
	startTime      time.Time
}

// NewMachine wires every component per spec.md §2's dependency order
// (Memory Map -> Bus -> {PSG, VDC} -> CPU -> Pacing Loop) and applies
// the debug/strict switches from cfg.
func NewMachine(cfg *Config, sink PcmSink, surface Surface) *Machine {
	mem := NewMemoryMap()
	psg1 := NewPSGShell(newAY3_8910())
	psg2 := NewPSGShell(newAY3_8910())
	vdc := NewVDC(surface)
	uart := NewUART(stdoutSink{})

	bus := NewBus(mem, psg1, psg2, vdc, uart)
	bus.Strict = cfg.Strict
	bus.DebugIO = cfg.DebugIO
	vdc.DebugIO = cfg.DebugIO

	cpu := NewCPU_Z80(bus)
	cpu.Strict = cfg.Strict
	cpu.Debug = cfg.Debug
	cpu.UnknownOpcode = func(opcode byte, strict bool) {
		fmt.Fprintf(os.Stderr, "Unknown opcode: 0x%02x\n", opcode)
		if strict {
			os.Exit(1)
		}
	}

	return &Machine{
		Mem: mem, Bus: bus, CPU: cpu,
		PSG1: psg1, PSG2: psg2, VDC: vdc, UART: uart,
		sink: sink, cfg: cfg,
	}
}

func (m *Machine) emulatedNanos() int64 {
	return int64(float64(m.Bus.Cycles) * 1e9 / z80ClockHz)
}

// Run executes the pacing algorithm from spec.md §5 until the CPU's
// running flag is cleared. Only SetRunning clears it; no opcode or
// interrupt path does, so on this board the loop is the process's
// main work and normally does not return. Host start time
// is recorded once; each iteration steps the CPU until emulated time
// catches host time, then services the audio pump, UART flush, and VDC
// draw, same order the spec gives.
func (m *Machine) Run() error {
	m.startTime = time.Now()

	for m.CPU.Running() {
		target := time.Since(m.startTime)
		for time.Duration(m.emulatedNanos()) < target && m.CPU.Running() {
			m.CPU.Step()
		}

		if err := m.pumpAudio(); err != nil {
			return err
		}
		if err := m.UART.Flush(); err != nil {
			return err
		}
		m.VDC.Draw()

		if m.cfg.DebugSync {
			fmt.Fprintf(os.Stderr, "sync: cycles=%d emulated=%s host=%s\n",
				m.Bus.Cycles, time.Duration(m.emulatedNanos()), time.Since(m.startTime))
		}

		// Bounded busy-wait: when far enough ahead of real time that
		// another immediate iteration would just spin, back off
		// briefly instead of consuming a full CPU core (spec.md §5:
		// "a bounded busy-wait", not an explicit sleep loop).
		ahead := time.Duration(m.emulatedNanos()) - time.Since(m.startTime)
		if ahead > 2*time.Millisecond {
			time.Sleep(time.Millisecond)
		}
	}
	return nil
}

// pumpAudio converts T-states elapsed since the last pump into a
// sample count, asks each PSG's synthesizer to render that many
// frames from its current shadow register snapshot, sums PSG #1 and
// PSG #2 per aardbei.c's own undone "sum of the two ay samples" TODO,
// and writes the mixed frames to the sink.
func (m *Machine) pumpAudio() error {
	elapsed := m.Bus.Cycles - m.lastPumpCycles
	samples := int(elapsed * pcmSampleRate / z80ClockHz)
	if samples <= 0 {
		return nil
	}
	m.lastPumpCycles += uint64(samples) * z80ClockHz / pcmSampleRate

	if m.cfg.DebugAY {
		fmt.Fprintf(os.Stderr, "ay1: %02X\nay2: %02X\n", m.PSG1.Snapshot(), m.PSG2.Snapshot())
	}

	left := m.PSG1.synth.Generate(m.PSG1.Snapshot(), samples)
	right := m.PSG2.synth.Generate(m.PSG2.Snapshot(), samples)
	mixed := make([]int16, len(left))
	for i := range mixed {
		sum := int32(left[i]) + int32(right[i])
		mixed[i] = clampInt16(sum)
	}

	for m.sink.Pending() > pcmFragmentFrames {
		// fragment-based sink: let playback drain before handing it more
		time.Sleep(time.Millisecond)
	}
	return m.sink.WriteFrames(mixed)
}

func clampInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
