// Package delims recovers the four X12 delimiters in force for an
// interchange by inspecting the leading ISA segment, the way hl7's
// ParseDelimiters inspects a leading MSH segment.
package delims

import (
	"fmt"

	"github.com/dshills/gox12/x12"
)

// isaElementPosition is the fixed byte offset of the element
// separator: the three-character literal "ISA" followed immediately
// by the separator itself.
const isaElementPosition = 3

// isaMinLength is the minimum byte length of an ISA segment: 16 fixed-
// width elements of varying width plus 16 element separators plus the
// 3-byte "ISA" literal plus the segment terminator, per the X12
// ISA specification. The width is the same for every version: before
// 00501, ISA11 carries a different meaning but still occupies one byte.
const isaMinLength = 106

// isaVersionStart and isaVersionEnd bound ISA12 (interchange control
// version number), a fixed 5-byte field, within the raw segment.
// ISA12 gates whether ISA11 is a repetition separator (00501+) or the
// legacy "subelement separator" placeholder (pre-00501).
const (
	isaVersionStart = 84
	isaVersionEnd   = 89
)

// Detect inspects the first 106 bytes of raw (the ISA segment through
// its segment terminator) and returns the delimiter set in force.
//
// raw must include the segment terminator at offset 105, since that
// byte is the terminator Detect reports; a full interchange byte
// stream may be passed directly. SplitISASegment separates the ISA
// content (without the terminator) for parsing with x12.ParseSegment.
func Detect(raw []byte) (x12.Delimiters, error) {
	if len(raw) == 0 {
		return x12.Delimiters{}, &x12.DelimiterError{Reason: "empty input"}
	}
	if len(raw) < isaElementPosition+1 || string(raw[:3]) != "ISA" {
		return x12.Delimiters{}, &x12.DelimiterError{Reason: "input does not begin with ISA"}
	}

	elementSep := raw[isaElementPosition]
	if len(raw) < isaMinLength {
		return x12.Delimiters{}, &x12.DelimiterError{
			Reason: fmt.Sprintf("ISA segment too short: got %d bytes, need at least %d", len(raw), isaMinLength),
		}
	}

	// ISA16 (component separator) is the last byte of the fixed-width
	// ISA segment, at offset 104 (105 bytes of fixed content, 0-indexed
	// 0..104, followed by the segment terminator at 105). ISA11
	// (repetition separator on 00501+ interchanges) is the single-byte
	// field immediately preceding ISA12 (interchange control version
	// number), at offset isaVersionStart-2 = 82.
	componentSep := raw[isaMinLength-2]
	repetitionSep := raw[isaVersionStart-2]
	segmentTerm := raw[isaMinLength-1]

	version := string(raw[isaVersionStart:isaVersionEnd])
	d := x12.Delimiters{
		Element:    elementSep,
		Component:  componentSep,
		Repetition: repetitionSep,
		Segment:    segmentTerm,
	}
	if version < "00501" {
		// Pre-00501 interchanges have no true repetition separator;
		// ISA11 is a legacy placeholder. A zero Repetition byte means
		// "no repetition separator", so element values are never split
		// into repetitions on whatever byte ISA11 happens to hold.
		d.Repetition = 0
	}

	if !d.Valid() {
		return x12.Delimiters{}, &x12.DelimiterError{Reason: fmt.Sprintf("detected delimiters collide: %s", d)}
	}
	return d, nil
}

// SplitISASegment locates the ISA segment terminator within a raw
// interchange byte stream and returns the ISA segment bytes (without
// the terminator) and the index immediately following the terminator,
// i.e. where the GS segment begins.
//
// The terminator is whatever byte sits at offset isaMinLength-1; X12
// does not allow the terminator to vary within an interchange, so this
// single byte observation is authoritative for the rest of the stream.
func SplitISASegment(raw []byte) (isaSegment []byte, next int, err error) {
	if len(raw) < isaMinLength {
		return nil, 0, &x12.DelimiterError{
			Reason: fmt.Sprintf("input too short to contain an ISA segment: got %d bytes, need at least %d", len(raw), isaMinLength),
		}
	}
	if string(raw[:3]) != "ISA" {
		return nil, 0, &x12.DelimiterError{Reason: "input does not begin with ISA"}
	}
	return raw[:isaMinLength-1], isaMinLength, nil
}
