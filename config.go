package taper

// DefaultTag is the tag applied to records when the configuration does
// not set one.
const DefaultTag = "LOG"

// Config carries the immutable settings of a Logger: the level
// threshold, the default tag, the decoration toggles, the flattener and
// the interceptor chain. Build a Config with NewBuilder; once built it
// is shared-read for the lifetime of the logger and must not be
// modified.
type Config struct {
	level        Level
	tag          string
	callerInfo   bool
	stackTrace   bool
	stackDepth   int
	stackOrigin  string
	border       bool
	flattener    Flattener
	interceptors []Interceptor
	errorHandler ErrorHandler
}

// Level returns the configured minimum level.
func (c *Config) Level() Level { return c.level }

// Tag returns the configured default tag.
func (c *Config) Tag() string { return c.tag }

// DefaultConfig returns a Config with all defaults: every level admitted,
// tag DefaultTag, classic flattening, no decorations, no interceptors.
func DefaultConfig() *Config {
	return NewBuilder().Build()
}

// Builder assembles a Config step by step.
type Builder struct {
	cfg Config
}

// NewBuilder returns a builder preloaded with the defaults.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		level:        LevelAll,
		tag:          DefaultTag,
		flattener:    ClassicFlattener{},
		errorHandler: StderrErrorHandler,
	}}
}

// Level sets the minimum level; records below it are discarded before
// the interceptor chain runs.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.level = level
	return b
}

// Tag sets the default tag applied to every record.
func (b *Builder) Tag(tag string) *Builder {
	b.cfg.tag = tag
	return b
}

// EnableCallerInfo prepends the file:line of the log call site to every
// message.
func (b *Builder) EnableCallerInfo() *Builder {
	b.cfg.callerInfo = true
	return b
}

// DisableCallerInfo turns caller info off.
func (b *Builder) DisableCallerInfo() *Builder {
	b.cfg.callerInfo = false
	return b
}

// EnableStackTrace appends up to depth frames of the caller stack to
// every message. A depth of zero or less means no limit.
func (b *Builder) EnableStackTrace(depth int) *Builder {
	b.cfg.stackTrace = true
	b.cfg.stackDepth = depth
	return b
}

// StackTraceOrigin sets a function-name prefix whose frames are skipped
// when capturing caller info and stack traces. Use it when logging goes
// through a wrapper package, so the wrapper's own frames do not show up
// as the call site.
func (b *Builder) StackTraceOrigin(origin string) *Builder {
	b.cfg.stackOrigin = origin
	return b
}

// DisableStackTrace turns stack traces off.
func (b *Builder) DisableStackTrace() *Builder {
	b.cfg.stackTrace = false
	return b
}

// EnableBorder wraps each message block in box-drawing borders.
func (b *Builder) EnableBorder() *Builder {
	b.cfg.border = true
	return b
}

// DisableBorder turns borders off.
func (b *Builder) DisableBorder() *Builder {
	b.cfg.border = false
	return b
}

// Flattener sets the record flattener.
func (b *Builder) Flattener(f Flattener) *Builder {
	b.cfg.flattener = f
	return b
}

// AddInterceptors appends interceptors to the chain. The chain runs in
// registration order.
func (b *Builder) AddInterceptors(ics ...Interceptor) *Builder {
	b.cfg.interceptors = append(b.cfg.interceptors, ics...)
	return b
}

// ErrorHandler sets the handler receiving pipeline failures.
func (b *Builder) ErrorHandler(h ErrorHandler) *Builder {
	b.cfg.errorHandler = h
	return b
}

// Build returns the finished Config. The builder can keep being used;
// later changes do not affect configs already built.
func (b *Builder) Build() *Config {
	cfg := b.cfg
	cfg.interceptors = append([]Interceptor(nil), b.cfg.interceptors...)
	return &cfg
}
