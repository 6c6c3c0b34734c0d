package taper

import "testing"

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelVerbose, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelAssert}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
	for _, lv := range ordered {
		if LevelAll >= lv {
			t.Errorf("LevelAll should sort below %v", lv)
		}
		if LevelNone <= lv {
			t.Errorf("LevelNone should sort above %v", lv)
		}
	}
}

func TestLevelGate(t *testing.T) {
	tests := []struct {
		name      string
		threshold Level
		record    Level
		enabled   bool
	}{
		{"equal passes", LevelInfo, LevelInfo, true},
		{"above passes", LevelInfo, LevelError, true},
		{"below drops", LevelInfo, LevelDebug, false},
		{"all admits verbose", LevelAll, LevelVerbose, true},
		{"none drops assert", LevelNone, LevelAssert, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(NewBuilder().Level(tt.threshold).Build(), &spySink{})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := l.IsLevelEnabled(tt.record); got != tt.enabled {
				t.Errorf("IsLevelEnabled(%v) with threshold %v = %v, want %v",
					tt.record, tt.threshold, got, tt.enabled)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelVerbose, "VERBOSE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelAssert, "ASSERT"},
		{LevelAll, "ALL"},
		{LevelNone, "NONE"},
		{Level(42), "42"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int32(tt.level), got, tt.want)
		}
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelVerbose, "V"},
		{LevelDebug, "D"},
		{LevelInfo, "I"},
		{LevelWarn, "W"},
		{LevelError, "E"},
		{LevelAssert, "A"},
		{Level(9), "9"},
	}
	for _, tt := range tests {
		if got := tt.level.Label(); got != tt.want {
			t.Errorf("Level(%d).Label() = %q, want %q", int32(tt.level), got, tt.want)
		}
	}
}
