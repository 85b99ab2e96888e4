package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFlashImageUsesGivenPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rom")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	mem := NewMemoryMap()
	if err := loadFlashImage(mem, path); err != nil {
		t.Fatalf("loadFlashImage: %v", err)
	}
	if mem.Flash[0] != 1 || mem.Flash[1] != 2 || mem.Flash[2] != 3 {
		t.Fatalf("flash image was not loaded into mem.Flash")
	}
}

func TestLoadFlashImageFallsBackThroughLegacyNames(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(wd)

	if err := os.MkdirAll("test", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile("test/music.bin", []byte{0xAA}, 0o644); err != nil {
		t.Fatalf("write legacy image: %v", err)
	}

	mem := NewMemoryMap()
	if err := loadFlashImage(mem, ""); err != nil {
		t.Fatalf("loadFlashImage: %v", err)
	}
	if mem.Flash[0] != 0xAA {
		t.Fatalf("did not fall back to the legacy test/music.bin name")
	}
}

func TestLoadFlashImageReturnsErrorWhenNothingFound(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(wd)

	mem := NewMemoryMap()
	if err := loadFlashImage(mem, ""); err == nil {
		t.Fatalf("expected an error when no flash image exists")
	}
}

func TestSaveEEPROMImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.eeprom")

	mem := NewMemoryMap()
	mem.EEPROM[0] = 0x7E

	saveEEPROMImage(mem, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != eepromSize || data[0] != 0x7E {
		t.Fatalf("saved EEPROM image does not match mem.EEPROM")
	}
}

func TestSaveEEPROMImageSkippedWhenPathEmpty(t *testing.T) {
	// Must not panic or attempt to write to an empty path.
	saveEEPROMImage(NewMemoryMap(), "")
}

func TestLoadEEPROMImageMissingFileLeavesZeroed(t *testing.T) {
	mem := NewMemoryMap()
	loadEEPROMImage(mem, "/nonexistent/path/for/testing.eeprom")

	for i, b := range mem.EEPROM {
		if b != 0 {
			t.Fatalf("EEPROM[%d] = 0x%02X, want 0 after a missing-file load", i, b)
		}
	}
}
