package taper

import (
	"math"
	"strconv"
)

// Level is the severity of a log record. Levels form a total order; a
// record whose level is below the configured minimum is discarded before
// any other processing.
type Level int32

// Severity levels, lowest to highest.
const (
	LevelVerbose Level = iota + 2
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelAssert
)

const (
	// LevelAll is a threshold sentinel that admits every record.
	LevelAll Level = math.MinInt32

	// LevelNone is a threshold sentinel that suppresses all output.
	LevelNone Level = math.MaxInt32
)

// String returns the display name of the level. Levels outside the
// built-in set render as their numeric value.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "VERBOSE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelAssert:
		return "ASSERT"
	case LevelAll:
		return "ALL"
	case LevelNone:
		return "NONE"
	default:
		return strconv.Itoa(int(l))
	}
}

// Label returns the single-letter level label used in flattened lines.
func (l Level) Label() string {
	switch l {
	case LevelVerbose:
		return "V"
	case LevelDebug:
		return "D"
	case LevelInfo:
		return "I"
	case LevelWarn:
		return "W"
	case LevelError:
		return "E"
	case LevelAssert:
		return "A"
	default:
		return strconv.Itoa(int(l))
	}
}
