package taper

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

// spySink records everything emitted to it.
type spySink struct {
	mu    sync.Mutex
	lines []string
	tags  []string
	levs  []Level
}

func (s *spySink) Emit(level Level, tag string, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	s.tags = append(s.tags, tag)
	s.levs = append(s.levs, level)
}

func (s *spySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// panicSink always panics from Emit.
type panicSink struct{}

func (panicSink) Emit(Level, string, string) { panic("sink down") }

func TestNewNilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) should fail")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	l, err := New(&Config{}, &spySink{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.cfg.tag != DefaultTag {
		t.Errorf("tag = %q, want %q", l.cfg.tag, DefaultTag)
	}
	if l.cfg.flattener == nil {
		t.Error("flattener should default, not stay nil")
	}
	if l.cfg.errorHandler == nil {
		t.Error("error handler should default, not stay nil")
	}
}

func TestLoggerGateDropsBelowThreshold(t *testing.T) {
	spy := &spySink{}
	l, err := New(NewBuilder().Level(LevelWarn).Build(), spy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Verbose("dropped")
	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept")
	l.Log(LevelAssert, "kept")
	if got := len(spy.Lines()); got != 3 {
		t.Fatalf("emitted %d lines, want 3: %q", got, spy.Lines())
	}
}

func TestLoggerMessageFormatting(t *testing.T) {
	spy := &spySink{}
	l, err := New(NewBuilder().Tag("FMT").Build(), spy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("a", "b", 3)
	l.Infof("x=%d y=%s", 7, "z")
	lines := spy.Lines()
	if len(lines) != 2 {
		t.Fatalf("emitted %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "I/FMT: ab3") {
		t.Errorf("Sprint-style line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "I/FMT: x=7 y=z") {
		t.Errorf("Sprintf-style line = %q", lines[1])
	}
}

func TestLoggerErrContinuationLines(t *testing.T) {
	spy := &spySink{}
	l, err := New(DefaultConfig(), spy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.ErrorErr("save failed", fmt.Errorf("disk full"))
	lines := spy.Lines()
	if len(lines) != 1 {
		t.Fatalf("emitted %d lines, want 1", len(lines))
	}
	parts := strings.SplitN(lines[0], "\n", 2)
	if len(parts) != 2 {
		t.Fatalf("error detail should be a continuation line: %q", lines[0])
	}
	if !strings.HasSuffix(parts[0], "E/LOG: save failed") {
		t.Errorf("first line = %q", parts[0])
	}
	if parts[1] != "disk full" {
		t.Errorf("continuation = %q, want %q", parts[1], "disk full")
	}
}

func TestLoggerErrWithStackTrace(t *testing.T) {
	spy := &spySink{}
	l, err := New(DefaultConfig(), spy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.WarnErr("lookup failed", pkgerrors.New("no such host"))
	lines := spy.Lines()
	if len(lines) != 1 {
		t.Fatalf("emitted %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "no such host") {
		t.Errorf("missing error message: %q", lines[0])
	}
	if !strings.Contains(lines[0], "logger_test.go") {
		t.Errorf("wrapped error should render its capture site: %q", lines[0])
	}
}

func TestTagLogger(t *testing.T) {
	spy := &spySink{}
	base, err := New(NewBuilder().Tag("BASE").Build(), spy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sub := base.TagLogger("SUB")

	base.Info("from base")
	sub.Info("from sub")
	base.Info("base again")

	spy.mu.Lock()
	tags := append([]string(nil), spy.tags...)
	spy.mu.Unlock()
	want := []string{"BASE", "SUB", "BASE"}
	if len(tags) != len(want) {
		t.Fatalf("emitted tags %q, want %q", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestFanOutOrderAndIsolation(t *testing.T) {
	healthy := &spySink{}
	after := &spySink{}
	var got []SinkError
	cfg := NewBuilder().
		ErrorHandler(func(e SinkError) { got = append(got, e) }).
		Build()
	l, err := New(cfg, healthy, panicSink{}, after)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("one")
	l.Info("two")

	if len(healthy.Lines()) != 2 {
		t.Errorf("sink before the failure saw %d lines, want 2", len(healthy.Lines()))
	}
	if len(after.Lines()) != 2 {
		t.Errorf("sink after the failure saw %d lines, want 2", len(after.Lines()))
	}
	if len(got) != 2 {
		t.Fatalf("handler saw %d failures, want 2", len(got))
	}
	if got[0].Op != "emit" || got[0].Sink != "sink[1]" {
		t.Errorf("failure = op %q sink %q, want emit sink[1]", got[0].Op, got[0].Sink)
	}
}

func TestInterceptorRejectionReachesNoSink(t *testing.T) {
	first := &spySink{}
	second := &spySink{}
	cfg := NewBuilder().
		AddInterceptors(DenyMessages("secret")).
		Build()
	l, err := New(cfg, first, second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("a secret thing")
	l.Info("a public thing")
	if len(first.Lines()) != 1 || len(second.Lines()) != 1 {
		t.Fatalf("rejected record leaked: %d/%d lines", len(first.Lines()), len(second.Lines()))
	}
	if !strings.Contains(first.Lines()[0], "public") {
		t.Errorf("wrong record survived: %q", first.Lines()[0])
	}
}

func TestMultiSinkComposes(t *testing.T) {
	a := &spySink{}
	b := &spySink{}
	m := MultiSink(a, panicSink{}, b)
	m.Emit(LevelInfo, "T", "fan out")
	if len(a.Lines()) != 1 || len(b.Lines()) != 1 {
		t.Errorf("composed sinks saw %d/%d lines, want 1/1", len(a.Lines()), len(b.Lines()))
	}
}

func TestConcurrentLoggingLineIntegrity(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 50

	var buf bytes.Buffer
	l, err := New(DefaultConfig(), NewWriterSink(&buf))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				l.Infof("goroutine %d line %d", g, i)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("got %d lines, want %d", len(lines), goroutines*perGoroutine)
	}
	for _, ln := range lines {
		if !strings.Contains(ln, "I/LOG: goroutine ") {
			t.Fatalf("interleaved or truncated line: %q", ln)
		}
	}
}
