package codeset

import "testing"

func TestValidTaxID(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"12-3456789", true},
		{"123456789", true},
		{"12345678", false},
		{"abcdefghi", false},
	}
	for _, tt := range tests {
		if got := ValidTaxID(tt.value); got != tt.want {
			t.Errorf("ValidTaxID(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
