// Package x12 provides core types for representing parsed X12 EDI
// documents: Delimiters, Element, Segment, Loop, TransactionSet,
// FunctionalGroup, and Interchange.
//
// # Document Structure
//
// X12 documents follow a hierarchical structure:
//   - Interchange (ISA...IEA) contains FunctionalGroups
//   - FunctionalGroup (GS...GE) contains TransactionSets
//   - TransactionSet (ST...SE) contains a root Loop
//   - Loop contains an ordered mix of Segments and child Loops
//   - Segment contains Elements, 1-based and densely indexed
//   - Element is one of: atomic scalar, composite (component-separated),
//     or repeated (repetition-separated, each member atomic or composite)
//
// # Location Syntax
//
// Location addresses a position within a parsed Interchange:
//
//	"GS[0].ST[0].2000A.NM1[0].03.02"
//
// identifies component 2 of element 3 of the first NM1 segment inside
// loop 2000A of the first transaction set of the first functional
// group. GroupIndex, TransactionIndex, and Repetition are 0-based;
// Element and Component are 1-based. A value of -1 means "not
// specified".
//
// # Delimiters
//
// Unlike HL7, X12 does not fix its delimiters: every interchange
// declares its own element separator, segment terminator, component
// separator, and (for 00501+ interchanges) repetition separator in the
// ISA segment itself. See package delims for detection.
//
// # Control Number Invariants
//
// A well-formed Interchange satisfies:
//   - ISA13 == IEA02 (interchange control number)
//   - GS06 == GE02 per functional group (group control number)
//   - ST02 == SE02 per transaction set (transaction control number)
//   - IEA01 equals the number of functional groups
//   - GE01 equals the number of transaction sets in that group
//   - SE01 equals the segment count from ST through SE inclusive
package x12
