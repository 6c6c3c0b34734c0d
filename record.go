package taper

import (
	stderrors "errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// Record is one log event flowing through the pipeline. Records are plain
// values; interceptors return modified copies rather than mutating shared
// state, so concurrent callers never observe a half-rewritten record.
type Record struct {
	Time    time.Time
	Level   Level
	Tag     string
	Message string
	Err     error
}

// WithLevel returns a copy of the record at a different level.
func (r Record) WithLevel(level Level) Record {
	r.Level = level
	return r
}

// WithTag returns a copy of the record carrying a different tag.
func (r Record) WithTag(tag string) Record {
	r.Tag = tag
	return r
}

// WithMessage returns a copy of the record carrying a different message.
func (r Record) WithMessage(msg string) Record {
	r.Message = msg
	return r
}

// stackTracer matches errors produced by github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// errorDetail renders the error payload of a record as continuation
// lines. Errors wrapped with github.com/pkg/errors render with the stack
// trace captured at the wrap site; plain errors render their message
// chain.
func errorDetail(err error) string {
	if err == nil {
		return ""
	}
	var tracer stackTracer
	if stderrors.As(err, &tracer) {
		return fmt.Sprintf("%+v", err)
	}
	return err.Error()
}
