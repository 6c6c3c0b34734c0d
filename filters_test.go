package taper

import "testing"

func TestTagFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterFunc
		tag    string
		reject bool
	}{
		{"deny match A", DenyTags("A", "B"), "A", true},
		{"deny match B", DenyTags("A", "B"), "B", true},
		{"deny miss", DenyTags("A", "B"), "C", false},
		{"deny substring", DenyTags("NET"), "NETWORK", true},
		{"allow match", AllowTags("X"), "X", false},
		{"allow miss", AllowTags("X"), "Y", true},
		{"allow empty set rejects all", AllowTags(), "anything", true},
		{"deny empty set rejects none", DenyTags(), "anything", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Tag: tt.tag, Message: "msg"}
			if got := tt.filter(r); got != tt.reject {
				t.Errorf("filter(%q) = %v, want %v", tt.tag, got, tt.reject)
			}
		})
	}
}

func TestMessageFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterFunc
		msg    string
		reject bool
	}{
		{"deny substring", DenyMessages("secret"), "the secret key", true},
		{"deny miss", DenyMessages("secret"), "all public", false},
		{"allow substring", AllowMessages("audit"), "audit trail entry", false},
		{"allow miss", AllowMessages("audit"), "regular entry", true},
		{"case sensitive", DenyMessages("Secret"), "the secret key", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Tag: "T", Message: tt.msg}
			if got := tt.filter(r); got != tt.reject {
				t.Errorf("filter(%q) = %v, want %v", tt.msg, got, tt.reject)
			}
		})
	}
}
