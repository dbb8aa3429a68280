package escape

import (
	"testing"

	"github.com/dshills/gox12/x12"
)

func TestEscapeRoundTrip(t *testing.T) {
	d := x12.DefaultDelimiters()
	e := New(d, '!')

	value := "O*BRIEN~JR"
	escaped := e.Escape(value)
	if escaped == value {
		t.Fatal("expected escaping to change a value containing a delimiter byte")
	}
	if got := e.Unescape(escaped); got != value {
		t.Errorf("round trip = %q, want %q", got, value)
	}
}

func TestEscapeNoRelease(t *testing.T) {
	d := x12.DefaultDelimiters()
	e := New(d, 0)
	value := "A*B"
	if got := e.Escape(value); got != value {
		t.Errorf("Escape() with no release char should be a no-op, got %q", got)
	}
}

func TestEscapeNoCollision(t *testing.T) {
	d := x12.DefaultDelimiters()
	e := New(d, '!')
	value := "PLAIN VALUE"
	if got := e.Escape(value); got != value {
		t.Errorf("Escape() of a value with no colliding bytes should be unchanged, got %q", got)
	}
}
