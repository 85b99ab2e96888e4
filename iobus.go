// iobus.go - system bus: memory decoding plus the fixed I/O port map.

package main

import (
	"fmt"
	"os"
)

// Z80Bus is the narrow collaborator the CPU interpreter drives. Memory
// and I/O accesses each charge their own T-states onto the shared
// cycle counter; the CPU adds only the residual "+N T" an opcode
// spends beyond its memory/IO accesses.
type Z80Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	In(port uint16) byte
	Out(port uint16, value byte)
	Tick(cycles int)
}

const (
	portPSG1Index = 0
	portPSG1Data  = 1
	portPSG2Index = 2
	portPSG2Data  = 3
	portVDC0      = 4
	portVDC3      = 7
	portUARTTx    = 8
)

// Bus wires the memory map, two PSG shells, the VDC shell, and a
// TX-only UART stub behind the fixed port table from the board's I/O
// decoder.
type Bus struct {
	Mem  *MemoryMap
	PSG1 *PSGShell
	PSG2 *PSGShell
	VDC  *VDC
	UART *UART

	Strict  bool
	DebugIO bool

	Cycles uint64
}

func NewBus(mem *MemoryMap, psg1, psg2 *PSGShell, vdc *VDC, uart *UART) *Bus {
	return &Bus{Mem: mem, PSG1: psg1, PSG2: psg2, VDC: vdc, UART: uart}
}

func (b *Bus) Read(addr uint16) byte {
	v := b.Mem.ReadByte(addr)
	b.Tick(3)
	return v
}

func (b *Bus) Write(addr uint16, value byte) {
	b.Mem.WriteByte(addr, value)
	b.Tick(3)
}

// In dispatches a byte input on the low 8 bits of port, per the fixed
// table in the port map. Every access costs 4 T-states regardless of
// destination.
func (b *Bus) In(port uint16) byte {
	defer b.Tick(4)

	if b.DebugIO {
		fmt.Fprintf(os.Stderr, "io: read port %d\n", port)
	}

	switch p := byte(port); {
	case p == portPSG1Index:
		return b.warnWriteOnly(port)
	case p == portPSG1Data:
		return b.PSG1.Read()
	case p == portPSG2Index:
		return b.warnWriteOnly(port)
	case p == portPSG2Data:
		return b.PSG2.Read()
	case p >= portVDC0 && p <= portVDC3:
		return b.VDC.In(p - portVDC0)
	case p == portUARTTx:
		return b.warnWriteOnly(port)
	default:
		return b.warnUnmapped(port)
	}
}

// Out dispatches a byte output on the low 8 bits of port.
func (b *Bus) Out(port uint16, value byte) {
	defer b.Tick(4)

	if b.DebugIO {
		fmt.Fprintf(os.Stderr, "io: write port %d = 0x%02X\n", port, value)
	}

	switch p := byte(port); {
	case p == portPSG1Index:
		b.PSG1.SelectRegister(value)
	case p == portPSG1Data:
		b.PSG1.Write(value)
	case p == portPSG2Index:
		b.PSG2.SelectRegister(value)
	case p == portPSG2Data:
		b.PSG2.Write(value)
	case p >= portVDC0 && p <= portVDC3:
		b.VDC.Out(p-portVDC0, value)
	case p == portUARTTx:
		b.UART.Write(value)
	default:
		b.discardUnmapped(port, value)
	}
}

func (b *Bus) Tick(cycles int) {
	b.Cycles += uint64(cycles)
}

func (b *Bus) warnWriteOnly(port uint16) byte {
	msg := fmt.Sprintf("io: read from write-only port %d", port)
	b.fail(msg)
	return 0
}

func (b *Bus) warnUnmapped(port uint16) byte {
	msg := fmt.Sprintf("io: read from undefined port %d", port)
	b.fail(msg)
	return 0
}

func (b *Bus) discardUnmapped(port uint16, value byte) {
	msg := fmt.Sprintf("io: write of 0x%02X to undefined port %d discarded", value, port)
	b.fail(msg)
}

// fail logs the anomaly and, in strict mode, terminates the process —
// the §7 "bad I/O port" fatal/recoverable split.
func (b *Bus) fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	if b.Strict {
		os.Exit(1)
	}
}
