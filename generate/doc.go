// Package generate serializes an Interchange (or an acknowledgment
// Interchange synthesized by package ack) back to X12 wire format.
//
// Delimiters are taken from the Interchange when valid, else from a
// configured fallback, else the package default. Every envelope
// control field — IEA01, GE01, SE01, and the ISA13/GE02/SE02 mirrored
// control numbers — is recomputed from the tree being written, never
// copied from input that produced it; a caller who mutates a tree and
// regenerates it always gets consistent counts. The ISA segment alone
// uses fixed-width, space- or zero-padded positional encoding per the
// X12 standard; every other segment elides trailing empty elements
// the way x12.Segment.Bytes already does.
package generate
