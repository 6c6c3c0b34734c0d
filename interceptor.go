package taper

import "fmt"

// Interceptor examines a record before it is flattened and dispatched.
// Intercept returns the record to hand to the next interceptor in the
// chain; reporting ok=false drops the record and stops the chain.
//
// Interceptors must treat the record as immutable and return a modified
// copy instead; Record's value semantics make that the natural thing to
// do.
type Interceptor interface {
	Intercept(r Record) (out Record, ok bool)
}

// FilterFunc adapts a reject predicate into an Interceptor. A true result
// rejects the record.
type FilterFunc func(Record) bool

// Intercept implements Interceptor.
func (fn FilterFunc) Intercept(r Record) (Record, bool) {
	if fn(r) {
		return r, false
	}
	return r, true
}

// TransformFunc adapts a rewrite function into an Interceptor. The
// returned record replaces the input for the rest of the chain.
type TransformFunc func(Record) Record

// Intercept implements Interceptor.
func (fn TransformFunc) Intercept(r Record) (Record, bool) {
	return fn(r), true
}

// intercept runs the chain in registration order. A rejection
// short-circuits: later interceptors never see the record, and nothing
// reaches any sink.
func (l *Logger) intercept(r Record) (Record, bool) {
	for _, ic := range l.cfg.interceptors {
		var ok bool
		r, ok = l.runInterceptor(ic, r)
		if !ok {
			return r, false
		}
	}
	return r, true
}

// runInterceptor isolates one interceptor call. A panicking interceptor
// rejects the current record only (fail-closed); the calling goroutine
// and subsequent records are unaffected.
func (l *Logger) runInterceptor(ic Interceptor, r Record) (out Record, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			l.reportError("intercept", "", "interceptor panicked", fmt.Errorf("%v", p))
			out, ok = r, false
		}
	}()
	return ic.Intercept(r)
}
