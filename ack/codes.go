package ack

import "github.com/dshills/gox12/x12"

// Segment syntax error codes for AK3-04 (997) / IK3-04 (999), per the
// ASC X12 functional acknowledgment code set.
const (
	segUnrecognized        = "1" // Unrecognized segment ID
	segUnexpected          = "2" // Unexpected segment
	segMandatoryMissing    = "3" // Mandatory segment missing
	segLoopOverMax         = "4" // Loop occurs over maximum times
	segExceedsMax          = "5" // Segment exceeds maximum use
	segNotDefined          = "6" // Segment not in defined transaction set
	segOutOfSequence       = "7" // Segment not in proper sequence
	segHasElementErrors    = "8" // Segment has data element errors
)

// Data element syntax error codes for AK4-03 (997) / IK4-03 (999).
const (
	elemMandatoryMissing = "1"  // Mandatory data element missing
	elemConditionMissing = "2"  // Conditional required data element missing
	elemTooMany          = "3"  // Too many data elements
	elemTooShort         = "4"  // Data element too short
	elemTooLong          = "5"  // Data element too long
	elemInvalidChar      = "6"  // Invalid character in data element
	elemInvalidCode      = "7"  // Invalid code value
	elemInvalidDate      = "8"  // Invalid date
	elemInvalidTime      = "9"  // Invalid time
	elemExclusionViolated = "10" // Exclusion condition violated
	elemTooManyReps      = "12" // Too many repetitions
	elemTooManyComps     = "13" // Too many components
)

// segmentSyntaxCode picks the AK3-04 value for a group of findings
// that share one segment occurrence: "has data element errors" if any
// of them addresses a specific element, otherwise "mandatory segment
// missing" if any carries x12.CodeMissingElement, otherwise "segment
// not defined".
func segmentSyntaxCode(findings []x12.Finding) string {
	for _, f := range findings {
		if f.Location.HasElement() {
			return segHasElementErrors
		}
	}
	for _, f := range findings {
		if f.Code == x12.CodeMissingElement {
			return segMandatoryMissing
		}
	}
	return segNotDefined
}

// elementSyntaxCode picks the AK4-03 value for a single Finding,
// mapped from the Finding's taxonomy code set in package x12.
func elementSyntaxCode(f x12.Finding) string {
	switch f.Code {
	case x12.CodeMissingElement:
		return elemMandatoryMissing
	case x12.CodeCodeSet:
		return elemInvalidCode
	case x12.CodeInvalidElement:
		return elemInvalidChar
	default:
		return elemInvalidChar
	}
}
