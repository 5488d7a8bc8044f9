// Package logging is a thin wrapper over github.com/op/go-logging that
// preconfigures the engine's loggers so call sites stay one line.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/umbrachess/umbra/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

func backend(level int) logging.Backend {
	b := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	f := logging.NewBackendFormatter(b, standardFormat)
	leveled := logging.AddModuleLevel(f)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the standard, stdout-backed logger.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(config.LogLevel))
	return standardLog
}

// GetSearchLog returns the logger search internals write progress to.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(config.LogLevel))
	return searchLog
}

// GetUciLog returns the logger the UCI loop writes raw protocol lines
// to, one line per input/output.
func GetUciLog() *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	b := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	f := logging.NewBackendFormatter(b, uciFormat)
	leveled := logging.AddModuleLevel(f)
	leveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}
