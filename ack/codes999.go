package ack

import "github.com/dshills/gox12/x12"

// Implementation-guide-specific data element syntax error codes for
// IK4-03 (005010X231), used instead of the base 997 table when a
// Finding originates from an implementation-convention rule rather
// than the base X12 standard. The "I" prefix distinguishes these from
// the numeric base codes in codes.go; 005010X231 reserves them for
// conditions the base standard doesn't know about, such as a code
// value that is valid X12 but excluded by the implementation guide's
// narrower code list.
const (
	implElemCodeNotInGuide      = "I6" // code value valid in X12 but not in the implementation guide's list
	implElemSituationalMissing  = "I1" // situational data element required by the guide but absent
	implElemSituationalNotUsed  = "I2" // situational data element present but not permitted in this context
	implElemGuideLengthViolated = "I4" // length outside the bounds the implementation guide narrows the base standard to
)

// implementationElementSyntaxCode picks the IK4-03 implementation
// error code for a Finding, or "" if the finding doesn't correspond to
// an implementation-guide-specific condition and should fall back to
// the base elementSyntaxCode instead.
func implementationElementSyntaxCode(f x12.Finding) string {
	switch f.Code {
	case x12.CodeCodeSet:
		return implElemCodeNotInGuide
	case x12.CodeMissingElement:
		return implElemSituationalMissing
	default:
		return ""
	}
}
