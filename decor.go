package taper

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// callerSkip is the number of frames between runtime.Callers and the log
// call site: capturedFrames, callSite/stackTrace, Logger.decorate,
// Logger.print, the exported log method, then the caller.
const callerSkip = 6

// capturedFrames collects the caller stack starting at the log call
// site, dropping leading frames whose function name carries the
// configured origin prefix (wrapper code).
func capturedFrames(origin string, max int) []runtime.Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(callerSkip, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var out []runtime.Frame
	skipping := origin != ""
	for {
		fr, more := frames.Next()
		if skipping && strings.HasPrefix(fr.Function, origin) {
			if !more {
				break
			}
			continue
		}
		skipping = false
		out = append(out, fr)
		if (max > 0 && len(out) >= max) || !more {
			break
		}
	}
	return out
}

// callSite returns "file:line" of the log call site, or "" if the stack
// could not be resolved.
func callSite(origin string) string {
	frs := capturedFrames(origin, 1)
	if len(frs) == 0 || frs[0].File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frs[0].File), frs[0].Line)
}

// stackTrace renders up to depth frames starting at the log call site,
// one continuation line per frame. Depth zero or less means no limit.
func stackTrace(origin string, depth int) string {
	frs := capturedFrames(origin, depth)
	if len(frs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, fr := range frs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "\tat %s(%s:%d)", fr.Function, filepath.Base(fr.File), fr.Line)
	}
	return b.String()
}

// Border glyphs for bordered output.
const (
	borderEdge       = "║ "
	borderHorizontal = "════════════════════════════════════════"
)

// borderize wraps a (possibly multi-line) body in box-drawing borders.
func borderize(body string) string {
	lines := strings.Split(body, "\n")
	var b strings.Builder
	b.Grow(len(body) + (len(lines)+2)*4)
	b.WriteString("╔")
	b.WriteString(borderHorizontal)
	for _, ln := range lines {
		b.WriteByte('\n')
		b.WriteString(borderEdge)
		b.WriteString(ln)
	}
	b.WriteString("\n╚")
	b.WriteString(borderHorizontal)
	return b.String()
}
