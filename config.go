// config.go - command-line configuration, parsed with the stdlib flag
// package the way the teacher's own main.go parses os.Args directly:
// no flag/cobra/viper dependency anywhere in the corpus for the core
// engines. Config's boolean fields are the runtime equivalent of
// aardbei.c's "#ifdef DEBUG"-style compile-time switches (spec.md §6
// "Build-time switches"), turned into flags since Go has no
// preprocessor.
package main

import "flag"

// Config collects every flag spec.md §6 names.
type Config struct {
	FlashPath  string
	EEPROMPath string

	Debug     bool
	DebugIO   bool
	DebugAY   bool
	DebugSync bool
	Strict    bool
}

// defaultFlashPaths is the legacy-name fallback order from spec.md §6:
// try the canonical name first, then the two legacy names in turn.
var defaultFlashPaths = []string{"test/music.rom", "test/music.bin", "test/music_.bin"}

func ParseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("aardbei-go", flag.ContinueOnError)
	cfg := &Config{}

	fs.StringVar(&cfg.FlashPath, "flash", "", "flash image path (defaults to test/music.rom, falling back to legacy names)")
	fs.StringVar(&cfg.EEPROMPath, "eeprom", "", "EEPROM image path; loaded at start and written back at graceful exit")
	fs.BoolVar(&cfg.Debug, "debug", false, "per-instruction trace")
	fs.BoolVar(&cfg.DebugIO, "debug-io", false, "I/O access trace")
	fs.BoolVar(&cfg.DebugAY, "debug-ay", false, "PSG register dumps")
	fs.BoolVar(&cfg.DebugSync, "debug-sync", false, "cycle-tick trace")
	fs.BoolVar(&cfg.Strict, "strict", false, "abort on unknown opcode or bad I/O port")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
