// Package tokenize provides a lazy, segment-at-a-time reader over raw
// X12 interchange bytes: given the delimiters in force, it yields one
// x12.Segment per call to Scan, without buffering the whole
// interchange in memory.
//
// Framing is delegated to github.com/jf-tech/go-corelib/ios, the same
// delimiter-seeking scanner the pack's own production EDI reader uses,
// so DoS-sized segment terminators never force a full-buffer read.
package tokenize
