package taper

import (
	"errors"
	"fmt"
	"time"
)

// Logger routes records through the pipeline: level gate, interceptor
// chain, flattener, fan-out dispatcher. A Logger is immutable and safe
// for concurrent use; every log call runs synchronously on the calling
// goroutine, file I/O included.
type Logger struct {
	cfg Config
	out *multiSink
}

// New builds a Logger from cfg, delivering finished lines to the given
// sinks. A nil cfg is a configuration error. With no sinks the logger
// writes to a console sink.
func New(cfg *Config, sinks ...Sink) (*Logger, error) {
	if cfg == nil {
		return nil, errors.New("taper: nil Config")
	}
	if len(sinks) == 0 {
		sinks = []Sink{NewConsoleSink()}
	}
	l := &Logger{cfg: *cfg}
	if l.cfg.tag == "" {
		l.cfg.tag = DefaultTag
	}
	if l.cfg.flattener == nil {
		l.cfg.flattener = ClassicFlattener{}
	}
	if l.cfg.errorHandler == nil {
		l.cfg.errorHandler = StderrErrorHandler
	}
	l.out = &multiSink{
		sinks:  append([]Sink(nil), sinks...),
		report: l.reportError,
	}
	return l, nil
}

// TagLogger returns a logger sharing this logger's sinks and settings
// but stamping records with a different default tag.
func (l *Logger) TagLogger(tag string) *Logger {
	cp := *l
	cp.cfg.tag = tag
	return &cp
}

// IsLevelEnabled reports whether records at level pass the threshold.
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.cfg.level
}

// Verbose logs its arguments at LevelVerbose.
func (l *Logger) Verbose(args ...interface{}) {
	if !l.IsLevelEnabled(LevelVerbose) {
		return
	}
	l.print(LevelVerbose, fmt.Sprint(args...), nil)
}

// Verbosef logs a formatted message at LevelVerbose.
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelVerbose) {
		return
	}
	l.print(LevelVerbose, fmt.Sprintf(format, args...), nil)
}

// VerboseErr logs a message and an error value at LevelVerbose.
func (l *Logger) VerboseErr(msg string, err error) {
	if !l.IsLevelEnabled(LevelVerbose) {
		return
	}
	l.print(LevelVerbose, msg, err)
}

// Debug logs its arguments at LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}
	l.print(LevelDebug, fmt.Sprint(args...), nil)
}

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}
	l.print(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// DebugErr logs a message and an error value at LevelDebug.
func (l *Logger) DebugErr(msg string, err error) {
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}
	l.print(LevelDebug, msg, err)
}

// Info logs its arguments at LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}
	l.print(LevelInfo, fmt.Sprint(args...), nil)
}

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}
	l.print(LevelInfo, fmt.Sprintf(format, args...), nil)
}

// InfoErr logs a message and an error value at LevelInfo.
func (l *Logger) InfoErr(msg string, err error) {
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}
	l.print(LevelInfo, msg, err)
}

// Warn logs its arguments at LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}
	l.print(LevelWarn, fmt.Sprint(args...), nil)
}

// Warnf logs a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}
	l.print(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// WarnErr logs a message and an error value at LevelWarn.
func (l *Logger) WarnErr(msg string, err error) {
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}
	l.print(LevelWarn, msg, err)
}

// Error logs its arguments at LevelError.
func (l *Logger) Error(args ...interface{}) {
	if !l.IsLevelEnabled(LevelError) {
		return
	}
	l.print(LevelError, fmt.Sprint(args...), nil)
}

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelError) {
		return
	}
	l.print(LevelError, fmt.Sprintf(format, args...), nil)
}

// ErrorErr logs a message and an error value at LevelError.
func (l *Logger) ErrorErr(msg string, err error) {
	if !l.IsLevelEnabled(LevelError) {
		return
	}
	l.print(LevelError, msg, err)
}

// Log logs its arguments at an explicit level.
func (l *Logger) Log(level Level, args ...interface{}) {
	if !l.IsLevelEnabled(level) {
		return
	}
	l.print(level, fmt.Sprint(args...), nil)
}

// Logf logs a formatted message at an explicit level.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if !l.IsLevelEnabled(level) {
		return
	}
	l.print(level, fmt.Sprintf(format, args...), nil)
}

// LogErr logs a message and an error value at an explicit level.
func (l *Logger) LogErr(level Level, msg string, err error) {
	if !l.IsLevelEnabled(level) {
		return
	}
	l.print(level, msg, err)
}

// print is the record pipeline. Callers gate on the level first; print
// gates again so direct callers cannot bypass the threshold.
//
// print must stay exactly one call below the exported log methods: the
// caller-info capture counts stack frames from here.
func (l *Logger) print(level Level, msg string, err error) {
	if !l.IsLevelEnabled(level) {
		return
	}
	rec := Record{
		Time:    time.Now(),
		Level:   level,
		Tag:     l.cfg.tag,
		Message: msg,
		Err:     err,
	}
	rec, ok := l.intercept(rec)
	if !ok {
		return
	}
	line := l.cfg.flattener.Flatten(rec.Time, rec.Level, rec.Tag, l.decorate(rec))
	l.out.Emit(rec.Level, rec.Tag, line)
}

// decorate applies the optional record decorations: error detail and
// stack trace as continuation lines, caller info up front, border around
// the whole block.
func (l *Logger) decorate(rec Record) string {
	body := rec.Message
	if rec.Err != nil {
		body += "\n" + errorDetail(rec.Err)
	}
	if l.cfg.callerInfo {
		if site := callSite(l.cfg.stackOrigin); site != "" {
			body = site + "\n" + body
		}
	}
	if l.cfg.stackTrace {
		if trace := stackTrace(l.cfg.stackOrigin, l.cfg.stackDepth); trace != "" {
			body += "\n" + trace
		}
	}
	if l.cfg.border {
		body = borderize(body)
	}
	return body
}

// reportError routes a pipeline failure to the configured handler.
func (l *Logger) reportError(op, sink, msg string, err error) {
	h := l.cfg.errorHandler
	if h == nil {
		return
	}
	h(SinkError{
		Time:    time.Now(),
		Op:      op,
		Sink:    sink,
		Message: msg,
		Err:     err,
	})
}
