package main

import "testing"

func TestMemoryMapBankLatchWriteRule(t *testing.T) {
	m := NewMemoryMap()
	m.Flash[0] = 0x42

	m.WriteByte(0x0000, 7)

	if m.Bank != 7 {
		t.Fatalf("Bank = %d, want 7", m.Bank)
	}
	if m.Flash[0] != 0x42 {
		t.Fatalf("flash[0] was modified by a bank-latch store")
	}
}

func TestMemoryMapBankWindowFormula(t *testing.T) {
	m := NewMemoryMap()
	m.Bank = 4
	m.Flash[4*bankWindowSize] = 0xAA

	if got := m.ReadByte(0x4000); got != 0xAA {
		t.Fatalf("ReadByte(0x4000) = 0x%02X, want 0xAA", got)
	}
}

func TestMemoryMapRAMAndEEPROMRoundTrip(t *testing.T) {
	m := NewMemoryMap()
	for _, addr := range []uint16{0x8000, 0xA000, 0xDFFF, 0xE000, 0xFFFF} {
		m.WriteByte(addr, 0x5A)
		if got := m.ReadByte(addr); got != 0x5A {
			t.Fatalf("round trip at 0x%04X = 0x%02X, want 0x5A", addr, got)
		}
	}
}

func TestMemoryMapOutOfRangeBankWrapsInsteadOfPanicking(t *testing.T) {
	m := NewMemoryMap()
	m.Bank = 0xFF // only 32 banks exist; 0xFF must wrap, not index past Flash
	m.Flash[(0xFF%bankCount)*bankWindowSize] = 0x77

	if got := m.ReadByte(0x4000); got != 0x77 {
		t.Fatalf("ReadByte(0x4000) with Bank=0xFF = 0x%02X, want 0x77", got)
	}
}

func TestMemoryMapReadWordIsTwoBytes(t *testing.T) {
	m := NewMemoryMap()
	m.WriteByte(0x8000, 0x34)
	m.WriteByte(0x8001, 0x12)

	if got := m.ReadWord(0x8000); got != 0x1234 {
		t.Fatalf("ReadWord = 0x%04X, want 0x1234", got)
	}
}

func TestMemoryMapWriteWordLittleEndian(t *testing.T) {
	m := NewMemoryMap()
	m.WriteWord(0x9000, 0xBEEF)

	if m.RAM[0x9000-ramBase] != 0xEF || m.RAM[0x9001-ramBase] != 0xBE {
		t.Fatalf("WriteWord did not store little-endian")
	}
}
