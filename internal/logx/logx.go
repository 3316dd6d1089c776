// Package logx wraps zerolog with the handful of trace points the original
// Rust implementation instrumented with log::debug!/log::error! — AC-3
// domain collapse in the DFS engine and a solution-decode failure in the
// DLX engine. It is not a general-purpose logging facade.
package logx

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var verbose atomic.Bool

// SetVerbose raises or lowers the active log level between debug and info.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Debug logs msg at debug level if verbose logging is enabled.
func Debug(msg string, fields map[string]any) {
	if !verbose.Load() {
		return
	}
	ev := logger.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// Warn always logs msg at warn level; used for invariant-adjacent
// conditions that are unusual but not fatal.
func Warn(msg string, fields map[string]any) {
	ev := logger.Warn()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
