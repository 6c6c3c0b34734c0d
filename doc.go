// Package taper is a small structured logging façade. A log call passes a
// level gate, an ordered interceptor chain (filters and transforms), a
// flattener that turns the record into one output line, and a fan-out
// dispatcher that delivers the finished line to every configured sink.
//
// Everything runs synchronously on the calling goroutine, file I/O
// included; the module starts no goroutines of its own. A failure inside
// the pipeline is never surfaced to the caller of a log method; it is
// routed to the configured ErrorHandler and the affected record is
// dropped, for that sink only.
//
// The console and writer sinks live in this package; the rotating file
// sink lives in pkg/filesink. The package-level log functions mirror a
// Logger and use the process-wide instance installed by Init.
package taper
