package taper

import (
	"fmt"
	"os"
	"time"
)

// SinkError describes a failure inside the logging pipeline: a sink that
// could not write, an interceptor that panicked, a rotation that could
// not rename a file. Pipeline failures are never returned to the caller
// of a log method; they are routed to the configured ErrorHandler and
// the affected record is dropped.
type SinkError struct {
	Time    time.Time
	Op      string // "emit", "intercept", "init", "open", "backup", "clean", "write"
	Sink    string // description of the destination, if any
	Message string
	Err     error
}

// Error returns the string representation of the SinkError.
func (e SinkError) Error() string {
	if e.Sink != "" {
		return fmt.Sprintf("[%s] %s error in %s: %s: %v",
			e.Time.Format("2006-01-02 15:04:05"),
			e.Op, e.Sink, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s error: %s: %v",
		e.Time.Format("2006-01-02 15:04:05"),
		e.Op, e.Message, e.Err)
}

// ErrorHandler consumes pipeline failures. Handlers must be fast and must
// not log through the same logger.
type ErrorHandler func(SinkError)

// StderrErrorHandler writes pipeline failures to standard error. It is
// the default handler.
func StderrErrorHandler(e SinkError) {
	fmt.Fprintf(os.Stderr, "%s\n", e.Error())
}

// SilentErrorHandler discards pipeline failures.
func SilentErrorHandler(SinkError) {}

// ChannelErrorHandler returns a handler that forwards failures to ch
// without blocking; failures are dropped when the channel is full.
func ChannelErrorHandler(ch chan<- SinkError) ErrorHandler {
	return func(e SinkError) {
		select {
		case ch <- e:
		default:
		}
	}
}

// MultiErrorHandler fans each failure out to all the given handlers.
func MultiErrorHandler(handlers ...ErrorHandler) ErrorHandler {
	return func(e SinkError) {
		for _, h := range handlers {
			if h != nil {
				h(e)
			}
		}
	}
}
