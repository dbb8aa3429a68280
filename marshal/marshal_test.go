package marshal

import (
	"testing"
	"time"

	"github.com/dshills/gox12/x12"
)

type ak1Fields struct {
	FunctionalID  string `x12:"1"`
	ControlNumber string `x12:"2"`
}

func TestMarshalSimpleStruct(t *testing.T) {
	seg, err := NewMarshaler().Marshal("AK1", ak1Fields{FunctionalID: "HC", ControlNumber: "000000001"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if seg.ID != "AK1" {
		t.Errorf("ID = %q, want %q", seg.ID, "AK1")
	}
	if got := seg.Value(1); got != "HC" {
		t.Errorf("element 1 = %q, want %q", got, "HC")
	}
	if got := seg.Value(2); got != "000000001" {
		t.Errorf("element 2 = %q, want %q", got, "000000001")
	}
}

func TestMarshalAcceptsPointer(t *testing.T) {
	v := &ak1Fields{FunctionalID: "HC", ControlNumber: "1"}
	seg, err := NewMarshaler().Marshal("AK1", v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if seg.Value(1) != "HC" {
		t.Errorf("element 1 = %q, want %q", seg.Value(1), "HC")
	}
}

func TestMarshalNilPointer(t *testing.T) {
	var v *ak1Fields
	if _, err := NewMarshaler().Marshal("AK1", v); err != ErrNilPointer {
		t.Errorf("Marshal() error = %v, want ErrNilPointer", err)
	}
}

func TestMarshalNonStruct(t *testing.T) {
	if _, err := NewMarshaler().Marshal("AK1", "not a struct"); err != ErrNotStruct {
		t.Errorf("Marshal() error = %v, want ErrNotStruct", err)
	}
}

func TestMarshalCompositeComponent(t *testing.T) {
	type ik4 struct {
		ElementSeq  string `x12:"1.1"`
		ElementPos  string `x12:"1.2"`
		ErrorCode   string `x12:"3"`
	}
	seg, err := NewMarshaler().Marshal("IK4", ik4{ElementSeq: "2", ElementPos: "1", ErrorCode: "1"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	el, ok := seg.Element1(1)
	if !ok || el.Kind != x12.ElementComposite {
		t.Fatalf("element 1 = %+v, want a composite", el)
	}
	if c1, _ := el.Component(1); c1 != "2" {
		t.Errorf("component 1 = %q, want %q", c1, "2")
	}
	if c2, _ := el.Component(2); c2 != "1" {
		t.Errorf("component 2 = %q, want %q", c2, "1")
	}
	if got := seg.Value(3); got != "1" {
		t.Errorf("element 3 = %q, want %q", got, "1")
	}
}

func TestMarshalOutOfOrderFieldsProduceDenseElements(t *testing.T) {
	type seg5 struct {
		Fifth  string `x12:"5"`
		Second string `x12:"2"`
	}
	seg, err := NewMarshaler().Marshal("XYZ", seg5{Fifth: "E", Second: "B"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if seg.ElementCount() != 5 {
		t.Fatalf("ElementCount() = %d, want 5", seg.ElementCount())
	}
	if seg.Value(2) != "B" || seg.Value(5) != "E" {
		t.Errorf("got element2=%q element5=%q, want B/E", seg.Value(2), seg.Value(5))
	}
	if seg.Value(1) != "" || seg.Value(3) != "" || seg.Value(4) != "" {
		t.Error("unset positions should render as empty elements, not be skipped")
	}
}

func TestMarshalOmitEmptySkipsZeroValues(t *testing.T) {
	type seg3 struct {
		A string `x12:"1,omitempty"`
		B string `x12:"2"`
	}
	seg, err := NewMarshaler().Marshal("XYZ", seg3{B: "present"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if seg.Value(1) != "" {
		t.Errorf("element 1 = %q, want empty (omitempty, zero value)", seg.Value(1))
	}
	if seg.Value(2) != "present" {
		t.Errorf("element 2 = %q, want %q", seg.Value(2), "present")
	}
}

func TestMarshalTimeField(t *testing.T) {
	type dtm struct {
		Date time.Time `x12:"9,format=20060102"`
	}
	seg, err := NewMarshaler().Marshal("ISA", dtm{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got := seg.Value(9); got != "20210101" {
		t.Errorf("element 9 = %q, want %q", got, "20210101")
	}
}

func TestMarshalIgnoresUntaggedFields(t *testing.T) {
	type mixed struct {
		Tagged   string `x12:"1"`
		internal string //nolint:unused
	}
	_ = mixed{}.internal
	seg, err := NewMarshaler().Marshal("XYZ", mixed{Tagged: "value"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if seg.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, want 1", seg.ElementCount())
	}
}

func TestMarshalNestedUntaggedStruct(t *testing.T) {
	type inner struct {
		B string `x12:"2"`
	}
	type outer struct {
		A string `x12:"1"`
		inner
	}
	seg, err := NewMarshaler().Marshal("XYZ", outer{A: "first", inner: inner{B: "second"}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if seg.Value(1) != "first" || seg.Value(2) != "second" {
		t.Errorf("got element1=%q element2=%q, want first/second", seg.Value(1), seg.Value(2))
	}
}
