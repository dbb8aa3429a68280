package tokenize

import (
	"strings"
	"testing"

	"github.com/dshills/gox12/x12"
)

func TestReaderScan(t *testing.T) {
	d := x12.DefaultDelimiters()
	input := "ST*837*0001~BHT*0019*00~SE*2*0001~"
	r := NewReader(strings.NewReader(input), d)

	var ids []string
	for r.Scan() {
		ids = append(ids, r.Segment().ID)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []string{"ST", "BHT", "SE"}
	if len(ids) != len(want) {
		t.Fatalf("got %v segments, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestReaderMaxSegments(t *testing.T) {
	d := x12.DefaultDelimiters()
	input := strings.Repeat("NM1*IL~", 5)
	r := NewReader(strings.NewReader(input), d, WithMaxSegments(2))

	count := 0
	for r.Scan() {
		count++
	}
	if count != 2 {
		t.Fatalf("scanned %d segments, want 2 before limit error", count)
	}
	if r.Err() != x12.ErrTooManySegs {
		t.Errorf("Err() = %v, want ErrTooManySegs", r.Err())
	}
}

func TestReaderEmptyInput(t *testing.T) {
	d := x12.DefaultDelimiters()
	r := NewReader(strings.NewReader(""), d)
	if r.Scan() {
		t.Fatal("expected no segments for empty input")
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}
