// Package config holds globally available configuration, set by
// defaults, a TOML config file, or UCI setoption commands.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working
// directory.
var ConfFile = "./umbra.toml"

// LogLevel is the general log level (op/go-logging scale, 0-5).
var LogLevel = 4

// Settings is the global configuration, read from ConfFile if present.
var Settings Config

var initialized = false

// Config mirrors the TOML document's top-level tables.
type Config struct {
	Search SearchConfig
	Eval   EvalConfig
}

// SearchConfig holds search-tuning knobs a user may override. The
// delta-pruning margin is deliberately not here: it is a fixed internal
// constant (search.DeltaPruningMargin), not a runtime-tunable setting.
type SearchConfig struct {
	HashSizeMB  int
	UseNullMove bool
	UseLMR      bool
	UseFutility bool
	MaxDepth    int
}

// EvalConfig holds evaluation-tuning knobs.
type EvalConfig struct {
	Tempo int
}

func defaults() Config {
	return Config{
		Search: SearchConfig{
			HashSizeMB:  64,
			UseNullMove: true,
			UseLMR:      true,
			UseFutility: true,
			MaxDepth:    64,
		},
		Eval: EvalConfig{Tempo: 0},
	}
}

// Setup reads ConfFile (if present) over top of the defaults. Safe to
// call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config: no config file loaded, using defaults:", err)
	}
	initialized = true
}

// SetHashSizeMB applies a UCI "setoption name Hash value <MB>" request.
func SetHashSizeMB(mb int) {
	Setup()
	if mb > 0 {
		Settings.Search.HashSizeMB = mb
	}
}
