package x12

import "testing"

func TestLoopAllSegments(t *testing.T) {
	d := DefaultDelimiters()
	nm1, _ := ParseSegment([]byte("NM1*IL*1*DOE*JOHN"), d)
	n3, _ := ParseSegment([]byte("N3*123 MAIN ST"), d)
	clm, _ := ParseSegment([]byte("CLM*1*100"), d)

	inner := Loop{ID: "2010BA", Segments: []Segment{n3}}
	outer := Loop{ID: "2000B", Segments: []Segment{nm1}, Loops: []Loop{inner}}
	root := Loop{ID: "root", Segments: []Segment{clm}, Loops: []Loop{outer}}

	all := root.AllSegments()
	if len(all) != 3 {
		t.Fatalf("AllSegments() len = %d, want 3", len(all))
	}
	if all[0].ID != "CLM" || all[1].ID != "NM1" || all[2].ID != "N3" {
		t.Errorf("unexpected order: %v %v %v", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestLoopFind(t *testing.T) {
	d := DefaultDelimiters()
	nm1, _ := ParseSegment([]byte("NM1*IL"), d)
	l := Loop{Segments: []Segment{nm1}}
	if _, ok := l.Find("NM1"); !ok {
		t.Error("expected to find NM1")
	}
	if _, ok := l.Find("N3"); ok {
		t.Error("did not expect to find N3")
	}
}

func TestLoopSegmentCount(t *testing.T) {
	d := DefaultDelimiters()
	nm1, _ := ParseSegment([]byte("NM1*IL"), d)
	n3, _ := ParseSegment([]byte("N3*X"), d)
	inner := Loop{ID: "inner", Segments: []Segment{n3}}
	outer := Loop{ID: "outer", Segments: []Segment{nm1}, Loops: []Loop{inner}}
	if got := outer.SegmentCount(); got != 2 {
		t.Errorf("SegmentCount() = %d, want 2", got)
	}
}
