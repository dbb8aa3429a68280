package x12

import "testing"

func TestParseElementValue(t *testing.T) {
	d := DefaultDelimiters()

	tests := []struct {
		name     string
		raw      string
		wantKind ElementKind
	}{
		{"empty", "", ElementAtomic},
		{"atomic", "HC", ElementAtomic},
		{"composite", "HC:01", ElementComposite},
		{"repeated atomic", "A^B^C", ElementRepeated},
		{"repeated composite", "A:1^B:2", ElementRepeated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := ParseElementValue(1, []byte(tt.raw), d)
			if el.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", el.Kind, tt.wantKind)
			}
		})
	}
}

func TestElementRoundTrip(t *testing.T) {
	d := DefaultDelimiters()
	raw := "HC:01"
	el := ParseElementValue(1, []byte(raw), d)
	if got := string(el.Bytes(d)); got != raw {
		t.Errorf("Bytes() = %q, want %q", got, raw)
	}
}

func TestElementComponent(t *testing.T) {
	d := DefaultDelimiters()
	el := ParseElementValue(1, []byte("A:B:C"), d)
	v, ok := el.Component(2)
	if !ok || v != "B" {
		t.Fatalf("Component(2) = %q, %v, want B, true", v, ok)
	}
	if _, ok := el.Component(9); ok {
		t.Fatal("Component(9) should not exist")
	}
}

func TestElementIsEmpty(t *testing.T) {
	if !(NewAtomic(1, "")).IsEmpty() {
		t.Error("empty atomic should be empty")
	}
	if (NewAtomic(1, "x")).IsEmpty() {
		t.Error("non-empty atomic should not be empty")
	}
	if !(NewComposite(1, "", "")).IsEmpty() {
		t.Error("all-empty composite should be empty")
	}
	if (NewComposite(1, "", "x")).IsEmpty() {
		t.Error("composite with one non-empty part should not be empty")
	}
}

func TestElementString(t *testing.T) {
	d := DefaultDelimiters()
	el := ParseElementValue(1, []byte("A:B"), d)
	if got := el.String(); got != "A" {
		t.Errorf("String() = %q, want A", got)
	}
}
