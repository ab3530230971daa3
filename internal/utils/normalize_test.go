package utils

import "testing"

func TestNormalizeNameLower(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Ali   Hassan  ", "ali hassan"},
		{"OMAR", "omar"},
		{"", ""},
		{"a\tb\nc", "a b c"},
	}

	for _, tt := range tests {
		if got := NormalizeNameLower(tt.in); got != tt.want {
			t.Errorf("NormalizeNameLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearchFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Álí", "ali"},
		{"Júlia Nunes", "julia nunes"},
		{"ALI HASSAN", "ali hassan"},
		{"  spaced   out ", "spaced out"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SearchFold(tt.in); got != tt.want {
			t.Errorf("SearchFold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
