package taper

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeFormat is the timestamp layout of the classic flattener.
const DefaultTimeFormat = "2006-01-02 15:04:05.000"

// Flattener converts a resolved record into a single output line. A
// flattener must be deterministic and free of side effects: the same
// inputs always yield a byte-identical line, and no I/O happens inside
// Flatten.
type Flattener interface {
	Flatten(t time.Time, level Level, tag, message string) string
}

// ClassicFlattener is the default flattener. It produces
//
//	timestamp level/tag: message
//
// with the level rendered as its single-letter label.
type ClassicFlattener struct {
	// TimeFormat is the Go layout for the timestamp. Empty means
	// DefaultTimeFormat.
	TimeFormat string

	// UTC renders timestamps in UTC instead of local time.
	UTC bool
}

// Flatten implements Flattener.
func (f ClassicFlattener) Flatten(t time.Time, level Level, tag, message string) string {
	layout := f.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	if f.UTC {
		t = t.UTC()
	}
	var b strings.Builder
	b.Grow(len(layout) + len(tag) + len(message) + 8)
	b.WriteString(t.Format(layout))
	b.WriteByte(' ')
	b.WriteString(level.Label())
	b.WriteByte('/')
	b.WriteString(tag)
	b.WriteString(": ")
	b.WriteString(message)
	return b.String()
}

// PatternFlattener assembles the line from a pattern parsed once at
// construction. Supported placeholders:
//
//	{d}          timestamp, DefaultTimeFormat layout
//	{d <layout>} timestamp with an explicit Go layout
//	{l}          single-letter level label
//	{L}          level name
//	{t}          tag
//	{m}          message
//
// Everything else is copied literally.
type PatternFlattener struct {
	utc      bool
	segments []patternSegment
}

type segmentKind int

const (
	segLiteral segmentKind = iota
	segTime
	segLabel
	segLevelName
	segTag
	segMessage
)

type patternSegment struct {
	kind    segmentKind
	literal string // literal text, or the time layout for segTime
}

// NewPatternFlattener parses pattern into a flattener. An unknown or
// unterminated placeholder is a configuration error.
func NewPatternFlattener(pattern string) (*PatternFlattener, error) {
	if pattern == "" {
		return nil, fmt.Errorf("taper: empty flatten pattern")
	}
	f := &PatternFlattener{}
	rest := pattern
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			f.segments = append(f.segments, patternSegment{kind: segLiteral, literal: rest})
			break
		}
		if open > 0 {
			f.segments = append(f.segments, patternSegment{kind: segLiteral, literal: rest[:open]})
		}
		rest = rest[open:]
		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			return nil, fmt.Errorf("taper: unterminated placeholder in pattern %q", pattern)
		}
		placeholder := rest[1:closing]
		rest = rest[closing+1:]

		switch {
		case placeholder == "d":
			f.segments = append(f.segments, patternSegment{kind: segTime, literal: DefaultTimeFormat})
		case strings.HasPrefix(placeholder, "d "):
			f.segments = append(f.segments, patternSegment{kind: segTime, literal: placeholder[2:]})
		case placeholder == "l":
			f.segments = append(f.segments, patternSegment{kind: segLabel})
		case placeholder == "L":
			f.segments = append(f.segments, patternSegment{kind: segLevelName})
		case placeholder == "t":
			f.segments = append(f.segments, patternSegment{kind: segTag})
		case placeholder == "m":
			f.segments = append(f.segments, patternSegment{kind: segMessage})
		default:
			return nil, fmt.Errorf("taper: unknown placeholder {%s} in pattern %q", placeholder, pattern)
		}
	}
	return f, nil
}

// UTC switches the flattener's timestamps to UTC and returns it.
func (f *PatternFlattener) UTC() *PatternFlattener {
	f.utc = true
	return f
}

// Flatten implements Flattener.
func (f *PatternFlattener) Flatten(t time.Time, level Level, tag, message string) string {
	if f.utc {
		t = t.UTC()
	}
	var b strings.Builder
	for _, seg := range f.segments {
		switch seg.kind {
		case segLiteral:
			b.WriteString(seg.literal)
		case segTime:
			b.WriteString(t.Format(seg.literal))
		case segLabel:
			b.WriteString(level.Label())
		case segLevelName:
			b.WriteString(level.String())
		case segTag:
			b.WriteString(tag)
		case segMessage:
			b.WriteString(message)
		}
	}
	return b.String()
}
