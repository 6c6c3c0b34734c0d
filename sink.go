package taper

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink is a destination able to render one finished line. Emit has no
// return value; its side effect is that the line becomes observable
// through the sink's medium. Emit must serialize the sink's own writes
// (each built-in sink holds a mutex per instance) and should not panic;
// if it does, the dispatcher recovers and the remaining sinks still
// receive the line.
type Sink interface {
	Emit(level Level, tag string, line string)
}

// ConsoleSink writes lines to standard output.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink returns a sink writing to os.Stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{w: os.Stdout}
}

// Emit implements Sink.
func (s *ConsoleSink) Emit(_ Level, _ string, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

// WriterSink renders lines to an arbitrary io.Writer, serializing writes
// with its own lock. Write errors are silently dropped; wrap the writer
// if delivery needs to be observed.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing one line per Emit to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit implements Sink.
func (s *WriterSink) Emit(_ Level, _ string, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

// multiSink fans one finished line out to an ordered list of sinks.
// Delivery is best-effort per destination: a panic inside one sink is
// reported and the remaining sinks are still attempted.
type multiSink struct {
	sinks  []Sink
	report func(op, sink, msg string, err error)
}

// MultiSink composes sinks into a single Sink with the same fan-out and
// failure-isolation behavior the Logger uses internally. Panics from the
// composed sinks are swallowed.
func MultiSink(sinks ...Sink) Sink {
	return &multiSink{sinks: append([]Sink(nil), sinks...)}
}

// Emit implements Sink.
func (m *multiSink) Emit(level Level, tag string, line string) {
	for i, s := range m.sinks {
		m.emitOne(i, s, level, tag, line)
	}
}

func (m *multiSink) emitOne(i int, s Sink, level Level, tag, line string) {
	defer func() {
		if p := recover(); p != nil && m.report != nil {
			m.report("emit", fmt.Sprintf("sink[%d]", i), "sink panicked", fmt.Errorf("%v", p))
		}
	}()
	s.Emit(level, tag, line)
}
