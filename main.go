// main.go - entry point: parses configuration, loads the flash/EEPROM
// images, opens the audio and video backends, and runs the pacing
// loop to completion or fatal error (spec.md §6/§7).

package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	mem := NewMemoryMap()
	if err := loadFlashImage(mem, cfg.FlashPath); err != nil {
		fmt.Fprintf(os.Stderr, "aardbei-go: %v\n", err)
		os.Exit(1)
	}
	if cfg.EEPROMPath != "" {
		loadEEPROMImage(mem, cfg.EEPROMPath)
	}

	sink, err := newAudioSink()
	if err != nil {
		fmt.Fprintf(os.Stderr, "aardbei-go: audio: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	surface, err := newSurface()
	if err != nil {
		fmt.Fprintf(os.Stderr, "aardbei-go: video: %v\n", err)
		os.Exit(1)
	}

	m := NewMachine(cfg, sink, surface)
	m.Mem = mem
	m.Bus.Mem = mem

	if cfg.Debug || cfg.DebugIO {
		go runDebugConsole(m)
	}

	if err := m.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "aardbei-go: %v\n", err)
		saveEEPROMImage(mem, cfg.EEPROMPath)
		os.Exit(1)
	}

	saveEEPROMImage(mem, cfg.EEPROMPath)
}

// loadFlashImage loads cfg.FlashPath verbatim if given, else tries the
// legacy-name fallback chain from spec.md §6 in order.
func loadFlashImage(mem *MemoryMap, path string) error {
	candidates := defaultFlashPaths
	if path != "" {
		candidates = []string{path}
	}

	var lastErr error
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		mem.LoadFlash(data)
		return nil
	}
	return fmt.Errorf("no flash image found (tried %v): %w", candidates, lastErr)
}

// loadEEPROMImage loads an initial EEPROM image if the file exists; a
// missing file just leaves EEPROM zero-initialised (spec.md §6).
func loadEEPROMImage(mem *MemoryMap, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	mem.LoadEEPROM(data)
}

// saveEEPROMImage writes the current EEPROM contents back to path on
// graceful shutdown, per SPEC_FULL.md's load-at-start/save-at-exit
// persistence model (aardbei.c's own "mmap flash and eeprom" TODO,
// implemented here without a live mmap).
func saveEEPROMImage(mem *MemoryMap, path string) {
	if path == "" {
		return
	}
	if err := os.WriteFile(path, mem.EEPROM[:], 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "aardbei-go: eeprom: %v\n", err)
	}
}
