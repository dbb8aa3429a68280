// Package stream provides bounded-memory, pull-style iteration over an
// X12 byte stream: one ST...SE transaction set is assembled and handed
// to the caller at a time, with envelope-level trailers (GE, IEA)
// validated incrementally as they're encountered, so a Reader never
// buffers more than the single largest transaction set in the
// interchange regardless of how many groups or transactions it
// contains.
//
// Reader's Scan/TransactionSet/Err shape mirrors package parse's
// Scanner, generalized from HL7's ambiguous message-boundary sniffing
// (blank line, new MSH, EOF) to X12's self-delimiting ST/SE framing,
// which needs no lookahead heuristics of its own.
package stream
