package taper

import (
	"fmt"
	"sync"
)

// The process-wide logger behind the package-level log functions. The
// core pipeline has no global state of its own; this is a thin
// convenience wrapper over an ordinary Logger.
var (
	globalMu sync.RWMutex
	global   *Logger
)

// Init installs the process-wide logger used by the package-level log
// functions.
//
// A nil cfg is a programming error and panics immediately. Calling Init
// again is tolerated: a warning is routed through the new configuration's
// error handler and the newest configuration and sinks take effect.
func Init(cfg *Config, sinks ...Sink) {
	if cfg == nil {
		panic("taper: Init called with a nil Config")
	}
	l, err := New(cfg, sinks...)
	if err != nil {
		panic("taper: " + err.Error())
	}

	globalMu.Lock()
	already := global != nil
	global = l
	globalMu.Unlock()

	if already {
		l.reportError("init", "", "already initialized, replacing the previous configuration", nil)
	}
}

// Initialized reports whether Init has been called.
func Initialized() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global != nil
}

// std returns the process-wide logger, panicking with a clear signal
// when logging happens before Init.
func std() *Logger {
	globalMu.RLock()
	l := global
	globalMu.RUnlock()
	if l == nil {
		panic("taper: not initialized: call taper.Init before logging")
	}
	return l
}

// Verbose logs its arguments at LevelVerbose via the process-wide logger.
func Verbose(args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelVerbose) {
		return
	}
	l.print(LevelVerbose, fmt.Sprint(args...), nil)
}

// Verbosef logs a formatted message at LevelVerbose via the process-wide logger.
func Verbosef(format string, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelVerbose) {
		return
	}
	l.print(LevelVerbose, fmt.Sprintf(format, args...), nil)
}

// VerboseErr logs a message and an error at LevelVerbose via the process-wide logger.
func VerboseErr(msg string, err error) {
	l := std()
	if !l.IsLevelEnabled(LevelVerbose) {
		return
	}
	l.print(LevelVerbose, msg, err)
}

// Debug logs its arguments at LevelDebug via the process-wide logger.
func Debug(args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}
	l.print(LevelDebug, fmt.Sprint(args...), nil)
}

// Debugf logs a formatted message at LevelDebug via the process-wide logger.
func Debugf(format string, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}
	l.print(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// DebugErr logs a message and an error at LevelDebug via the process-wide logger.
func DebugErr(msg string, err error) {
	l := std()
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}
	l.print(LevelDebug, msg, err)
}

// Info logs its arguments at LevelInfo via the process-wide logger.
func Info(args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}
	l.print(LevelInfo, fmt.Sprint(args...), nil)
}

// Infof logs a formatted message at LevelInfo via the process-wide logger.
func Infof(format string, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}
	l.print(LevelInfo, fmt.Sprintf(format, args...), nil)
}

// InfoErr logs a message and an error at LevelInfo via the process-wide logger.
func InfoErr(msg string, err error) {
	l := std()
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}
	l.print(LevelInfo, msg, err)
}

// Warn logs its arguments at LevelWarn via the process-wide logger.
func Warn(args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}
	l.print(LevelWarn, fmt.Sprint(args...), nil)
}

// Warnf logs a formatted message at LevelWarn via the process-wide logger.
func Warnf(format string, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}
	l.print(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// WarnErr logs a message and an error at LevelWarn via the process-wide logger.
func WarnErr(msg string, err error) {
	l := std()
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}
	l.print(LevelWarn, msg, err)
}

// Error logs its arguments at LevelError via the process-wide logger.
func Error(args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelError) {
		return
	}
	l.print(LevelError, fmt.Sprint(args...), nil)
}

// Errorf logs a formatted message at LevelError via the process-wide logger.
func Errorf(format string, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(LevelError) {
		return
	}
	l.print(LevelError, fmt.Sprintf(format, args...), nil)
}

// ErrorErr logs a message and an error at LevelError via the process-wide logger.
func ErrorErr(msg string, err error) {
	l := std()
	if !l.IsLevelEnabled(LevelError) {
		return
	}
	l.print(LevelError, msg, err)
}

// Log logs its arguments at an explicit level via the process-wide logger.
func Log(level Level, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(level) {
		return
	}
	l.print(level, fmt.Sprint(args...), nil)
}

// Logf logs a formatted message at an explicit level via the process-wide logger.
func Logf(level Level, format string, args ...interface{}) {
	l := std()
	if !l.IsLevelEnabled(level) {
		return
	}
	l.print(level, fmt.Sprintf(format, args...), nil)
}

// LogErr logs a message and an error at an explicit level via the process-wide logger.
func LogErr(level Level, msg string, err error) {
	l := std()
	if !l.IsLevelEnabled(level) {
		return
	}
	l.print(level, msg, err)
}
