package codeset

import "testing"

func TestValidNPI(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"known valid NPI", "1234567893", true},
		{"wrong length", "123456789", false},
		{"non-digit", "123456789X", false},
		{"bad check digit", "1234567890", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidNPI(tt.value); got != tt.want {
				t.Errorf("ValidNPI(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCheckNPIError(t *testing.T) {
	if err := CheckNPI("bad"); err != ErrInvalidNPI {
		t.Errorf("CheckNPI() = %v, want ErrInvalidNPI", err)
	}
}
