package tokenize

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/jf-tech/go-corelib/ios"
	"github.com/jf-tech/go-corelib/strs"

	"github.com/dshills/gox12/x12"
)

// defaultBufferSize matches the read-ahead buffer used by the pack's
// own production EDI segment reader.
const defaultBufferSize = 64 * 1024

// maxElementsPerSegment and maxSegments bound the work a single
// malformed or adversarial interchange can force, mirroring the
// teacher's parse.defaultMaxSegments DoS-budget idiom.
const (
	defaultMaxElementsPerSegment = 256
	defaultMaxSegments           = 100000
)

// Reader yields x12.Segment values one at a time from a raw byte
// stream, given the delimiters already recovered by package delims.
type Reader struct {
	scanner     *bufio.Scanner
	delims      x12.Delimiters
	release     []byte
	maxSegments int
	segCount    int
	current     x12.Segment
	err         error
}

// Option configures a Reader.
type Option func(*Reader)

// WithReleaseCharacter configures the escape/release character used
// to suppress delimiter splitting at an escaped position, mirroring
// X12 implementation guides that enable ISA16-adjacent release chars.
// A zero byte (the default) disables escape handling.
func WithReleaseCharacter(b byte) Option {
	return func(r *Reader) {
		if b != 0 {
			r.release = []byte{b}
		}
	}
}

// WithMaxSegments caps the number of segments Reader will yield before
// reporting x12.ErrTooManySegs, protecting callers from unbounded
// adversarial input.
func WithMaxSegments(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxSegments = n
		}
	}
}

// NewReader builds a Reader over r using the given delimiters. Segment
// framing is done by github.com/jf-tech/go-corelib/ios.NewScannerByDelim3,
// the same delimiter-seeking scanner the pack's own production EDI
// reader (NonValidatingReader) uses, so an escaped segment-terminator
// byte inside data never splits a segment early.
func NewReader(r io.Reader, d x12.Delimiters, opts ...Option) *Reader {
	tr := &Reader{
		delims:      d,
		maxSegments: defaultMaxSegments,
	}
	for _, opt := range opts {
		opt(tr)
	}
	tr.scanner = ios.NewScannerByDelim3(
		r,
		[]byte{tr.delims.Segment},
		tr.release,
		ios.ScannerByDelimFlagDefault,
		make([]byte, defaultBufferSize),
	)
	tr.scanner.Buffer(nil, defaultBufferSize*16)
	return tr
}

// Scan advances to the next segment. It returns false at end of input
// or on error; callers check Err() to distinguish the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		raw := bytes.TrimSpace(r.scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		r.segCount++
		if r.segCount > r.maxSegments {
			r.err = x12.ErrTooManySegs
			return false
		}
		seg, err := r.parseSegment(raw)
		if err != nil {
			r.err = err
			return false
		}
		r.current = seg
		return true
	}
	if err := r.scanner.Err(); err != nil {
		r.err = err
	}
	return false
}

// parseSegment splits a trimmed segment token into an x12.Segment. When
// a release character is configured, element splitting goes through
// strs.ByteSplitWithEsc so an escaped element separator doesn't
// fragment a value; otherwise x12.ParseSegment's plain split is used.
func (r *Reader) parseSegment(raw []byte) (x12.Segment, error) {
	if len(r.release) == 0 {
		return x12.ParseSegment(raw, r.delims)
	}

	idEnd := bytes.IndexByte(raw, r.delims.Element)
	if idEnd < 0 {
		return x12.NewSegment(string(raw)), nil
	}
	id := string(bytes.TrimSpace(raw[:idEnd]))
	parts := strs.ByteSplitWithEsc(raw[idEnd+1:], []byte{r.delims.Element}, r.release, defaultMaxElementsPerSegment)
	elements := make([]x12.Element, len(parts))
	for i, p := range parts {
		elements[i] = x12.ParseElementValue(i+1, p, r.delims)
	}
	return x12.NewSegment(id, elements...), nil
}

// Segment returns the most recently scanned segment.
func (r *Reader) Segment() x12.Segment {
	return r.current
}

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// ErrShortSegment describes a segment token that is empty after
// trimming whitespace, as doubled segment terminators produce. Reader
// does not return it: Scan skips empty tokens.
var ErrShortSegment = errors.New("empty segment token")
