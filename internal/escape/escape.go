// Package escape provides X12 release-character encoding and decoding.
//
// Most X12 interchanges never need this: the element, component, and
// repetition separators are simply forbidden inside data values. Some
// implementation guides (and some trading partners) instead designate
// a release character that, when it immediately precedes a delimiter
// byte inside a value, causes that byte to be treated as literal data
// rather than a separator. This package implements that single
// release-then-literal rule for whichever byte tokenize and generate
// are configured to treat as the active delimiter set.
package escape

import (
	"strings"

	"github.com/dshills/gox12/x12"
)

// Escaper escapes and unescapes delimiter-colliding bytes in element
// values using a single configured release character.
type Escaper struct {
	delims  x12.Delimiters
	release byte
}

// New creates an Escaper for the given delimiters and release
// character. A zero release byte means no release character is
// configured, in which case Escape and Unescape are no-ops.
func New(d x12.Delimiters, release byte) *Escaper {
	return &Escaper{delims: d, release: release}
}

// Delimiters returns the delimiter configuration this escaper guards.
func (e *Escaper) Delimiters() x12.Delimiters {
	return e.delims
}

// Escape inserts the release character immediately before any byte in
// value that collides with an active delimiter or the release
// character itself, so the value can later be split on those
// delimiters without corrupting it.
func (e *Escaper) Escape(value string) string {
	if value == "" || e.release == 0 {
		return value
	}
	if !strings.ContainsAny(value, e.collisionSet()) {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value) + 4)
	for i := 0; i < len(value); i++ {
		b := value[i]
		if e.collides(b) {
			sb.WriteByte(e.release)
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// Unescape removes a release character immediately preceding any
// other byte, restoring the original literal value.
func (e *Escaper) Unescape(value string) string {
	if value == "" || e.release == 0 || !strings.ContainsRune(value, rune(e.release)) {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == e.release && i+1 < len(value) {
			i++
			sb.WriteByte(value[i])
			continue
		}
		sb.WriteByte(value[i])
	}
	return sb.String()
}

func (e *Escaper) collides(b byte) bool {
	return b == e.delims.Element || b == e.delims.Segment ||
		b == e.delims.Component || b == e.delims.Repetition || b == e.release
}

func (e *Escaper) collisionSet() string {
	return string([]byte{e.delims.Element, e.delims.Segment, e.delims.Component, e.delims.Repetition, e.release})
}
