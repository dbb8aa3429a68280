package codeset

import "regexp"

// icd10CMPattern matches ICD-10-CM diagnosis codes: a letter other
// than U, a digit, a digit or letter, then optionally a decimal point
// followed by 1-4 alphanumeric characters (e.g. "E11.9", "S72.001A").
// The decimal point is required whenever the suffix is present.
var icd10CMPattern = regexp.MustCompile(`^[A-TV-Z][0-9][0-9A-Z](\.[0-9A-Z]{1,4})?$`)

// icd10PCSPattern matches ICD-10-PCS procedure codes: exactly 7
// alphanumeric characters, digits 0-9 and letters other than O and I
// to avoid confusion with 0 and 1.
var icd10PCSPattern = regexp.MustCompile(`^[0-9A-HJ-NP-Z]{7}$`)

// ValidICD10CM reports whether value has the shape of an ICD-10-CM
// diagnosis code.
func ValidICD10CM(value string) bool {
	return icd10CMPattern.MatchString(value)
}

// ValidICD10PCS reports whether value has the shape of an ICD-10-PCS
// procedure code.
func ValidICD10PCS(value string) bool {
	return icd10PCSPattern.MatchString(value)
}
