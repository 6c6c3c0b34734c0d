// Package filesink implements taper's rotating file sink: an append-only
// log file under one directory, rotated into numbered backup slots and
// pruned according to pluggable naming, backup and clean policies.
//
// All of open, rotate, clean and write happen as one critical section
// under the sink's lock, so concurrent loggers can never interleave a
// rotation with a write. I/O failures are reported to the sink's error
// handler and the affected line is dropped; Emit never returns an error
// into application code.
package filesink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/taperlog/taper"
)

// Defaults mirror a sensible local-logging setup: one file named "log",
// rotated at 1 MiB, ten retained backups, no age pruning.
const (
	DefaultFileName   = "log"
	DefaultMaxBytes   = 1024 * 1024
	DefaultMaxBackups = 10
)

// HeaderFunc produces the banner written at the top of every brand-new
// log file, before the first record line. Returning "" writes nothing.
type HeaderFunc func() string

// Option configures a Sink.
type Option func(*Sink)

// WithNaming sets the naming policy. Default is Changeless(DefaultFileName).
func WithNaming(p NamingPolicy) Option {
	return func(s *Sink) { s.naming = p }
}

// WithBackup sets the backup policy. Default is
// SizeBackup(DefaultMaxBytes, DefaultMaxBackups).
func WithBackup(p BackupPolicy) Option {
	return func(s *Sink) { s.backup = p }
}

// WithClean sets the clean policy. Default is NeverClean.
func WithClean(p CleanPolicy) Option {
	return func(s *Sink) { s.clean = p }
}

// WithHeader sets the new-file header hook.
func WithHeader(h HeaderFunc) Option {
	return func(s *Sink) { s.header = h }
}

// WithErrorHandler sets the handler receiving the sink's I/O failures.
// Default is taper.StderrErrorHandler.
func WithErrorHandler(h taper.ErrorHandler) Option {
	return func(s *Sink) { s.report = h }
}

// WithSync forces an fsync after every write. Without it, a completed
// Emit guarantees the line has reached the operating system but not
// necessarily the platter.
func WithSync() Option {
	return func(s *Sink) { s.sync = true }
}

// Sink appends flattened lines to a file under a single directory,
// rotating and pruning per its policies. It implements taper.Sink.
//
// The sink owns its file handle exclusively and holds at most one open
// handle at any time.
type Sink struct {
	mu     sync.Mutex
	dir    string
	naming NamingPolicy
	backup BackupPolicy
	clean  CleanPolicy
	header HeaderFunc
	report taper.ErrorHandler
	sync   bool

	file *os.File // nil while closed
	name string   // base name of the open file
	size int64
}

// New creates a file sink rooted at dir, creating the directory if
// needed. The log file itself opens lazily on the first write.
func New(dir string, opts ...Option) (*Sink, error) {
	if dir == "" {
		return nil, errors.New("filesink: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "filesink: create directory")
	}
	s := &Sink{
		dir:    dir,
		naming: Changeless(DefaultFileName),
		backup: SizeBackup(DefaultMaxBytes, DefaultMaxBackups),
		clean:  NeverClean(),
		report: taper.StderrErrorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Emit implements taper.Sink. On every write the sink re-evaluates, in
// order: the naming policy (open or switch files), the backup policy
// (rotate first if needed), the clean policy (prune old backups), then
// appends line plus a trailing newline. Failures are reported and the
// line is dropped; Emit never panics and never blocks beyond the file
// I/O itself.
func (s *Sink) Emit(_ taper.Level, _ string, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.naming.FileName(time.Now())
	if s.file == nil || name != s.name {
		if err := s.open(name); err != nil {
			s.fail("open", err)
			return
		}
	}

	if s.backup.ShouldBackup(s.size, len(line)+1) {
		s.rotate()
	}
	if _, never := s.clean.(neverClean); !never {
		s.prune()
	}
	if s.file == nil {
		// Rotation lost the handle and could not reopen.
		return
	}
	s.writeLine(line)
}

// Path returns the full path of the active log file, or "" while the
// sink is closed.
func (s *Sink) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.name == "" {
		return ""
	}
	return filepath.Join(s.dir, s.name)
}

// Close releases the file handle. The sink reopens lazily if written to
// again.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.name = ""
	s.size = 0
	return errors.Wrap(err, "filesink: close")
}

// open closes any current handle and opens the named file for append,
// writing the configured header if the file is brand new.
func (s *Sink) open(name string) error {
	s.closeFile()
	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	s.file = f
	s.name = name
	s.size = info.Size()

	if s.size == 0 && s.header != nil {
		if banner := s.callHeader(); banner != "" {
			if !strings.HasSuffix(banner, "\n") {
				banner += "\n"
			}
			n, err := f.WriteString(banner)
			s.size += int64(n)
			if err != nil {
				s.fail("header", err)
			}
		}
	}
	return nil
}

// callHeader isolates the user-supplied header hook; a panicking hook
// costs the banner, not the sink.
func (s *Sink) callHeader() (banner string) {
	defer func() {
		if p := recover(); p != nil {
			s.fail("header", fmt.Errorf("header hook panicked: %v", p))
			banner = ""
		}
	}()
	return s.header()
}

// rotate shifts the numbered backups and starts a fresh file with the
// same base name. The active file is closed and renamed before the new
// one opens, so no buffered bytes are lost across the switch. All
// failures are non-fatal: at worst the sink reopens the existing,
// oversized file and keeps appending rather than losing records.
func (s *Sink) rotate() {
	name := s.name
	s.closeFile()

	base := filepath.Join(s.dir, name)
	max := s.backup.MaxBackups()

	// The oldest slot falls off the end.
	if err := os.Remove(backupName(base, max)); err != nil && !os.IsNotExist(err) {
		s.fail("backup", err)
	}
	for i := max - 1; i >= 1; i-- {
		from := backupName(base, i)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		if err := os.Rename(from, backupName(base, i+1)); err != nil {
			s.fail("backup", err)
		}
	}
	if err := os.Rename(base, backupName(base, 1)); err != nil {
		s.fail("backup", err)
	}

	if err := s.open(name); err != nil {
		s.fail("open", err)
	}
}

// prune applies the clean policy to every file in the directory except
// the active one.
func (s *Sink) prune() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.fail("clean", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == s.name {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if !s.clean.ShouldClean(path, info.ModTime()) {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.fail("clean", err)
		}
	}
}

// writeLine appends line plus the trailing newline in one write, so the
// content reaches the operating system before Emit returns.
func (s *Sink) writeLine(line string) {
	n, err := s.file.WriteString(line + "\n")
	s.size += int64(n)
	if err != nil {
		s.fail("write", err)
		return
	}
	if s.sync {
		if err := s.file.Sync(); err != nil {
			s.fail("write", err)
		}
	}
}

// closeFile drops the current handle, reporting but not propagating a
// close failure.
func (s *Sink) closeFile() {
	if s.file == nil {
		return
	}
	if err := s.file.Close(); err != nil {
		s.fail("close", err)
	}
	s.file = nil
	s.size = 0
}

func (s *Sink) fail(op string, err error) {
	if s.report == nil {
		return
	}
	s.report(taper.SinkError{
		Time:    time.Now(),
		Op:      op,
		Sink:    s.dir,
		Message: "file sink " + op + " failed",
		Err:     err,
	})
}

func backupName(base string, n int) string {
	return base + "." + strconv.Itoa(n)
}
