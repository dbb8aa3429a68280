// Package build assembles a tokenized X12 byte stream into an
// x12.Interchange tree: ISA/GS/ST envelopes and, within each
// transaction set, a nested Loop tree driven by the schema registry's
// trigger rules.
//
// The assembly is a single forward pass with a stack discipline: at
// each segment, close any loops whose schema children no longer admit
// it, then open the innermost remaining loop whose trigger segment
// (and qualifier constraint, if any) matches. A segment that opens no
// loop and matches no plain segment node is still appended to the
// innermost open loop rather than dropped, so malformed input still
// produces a tree for the Validator to report against.
package build
