package taper

import (
	"time"

	json "github.com/goccy/go-json"
)

// JSONFlattener renders each record as one JSON object per line.
type JSONFlattener struct {
	// UTC renders timestamps in UTC instead of local time.
	UTC bool
}

type jsonLine struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Flatten implements Flattener.
func (f JSONFlattener) Flatten(t time.Time, level Level, tag, message string) string {
	if f.UTC {
		t = t.UTC()
	}
	data, err := json.Marshal(jsonLine{
		Time:    t.Format(time.RFC3339Nano),
		Level:   level.String(),
		Tag:     tag,
		Message: message,
	})
	if err != nil {
		// Marshaling a struct of strings cannot fail; fall back anyway
		// rather than lose the record.
		return ClassicFlattener{}.Flatten(t, level, tag, message)
	}
	return string(data)
}
