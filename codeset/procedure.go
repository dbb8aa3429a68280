package codeset

import "regexp"

// cptPattern matches a 5-digit CPT code, optionally followed by a
// 2-character modifier (e.g. "99213", "99213-25").
var cptPattern = regexp.MustCompile(`^\d{5}(-?[0-9A-Z]{2})?$`)

// hcpcsPattern matches a HCPCS Level II code: one letter followed by
// 4 digits, with the same optional modifier CPT allows.
var hcpcsPattern = regexp.MustCompile(`^[A-Z]\d{4}(-?[0-9A-Z]{2})?$`)

// ValidCPT reports whether value has the shape of a CPT procedure code.
func ValidCPT(value string) bool {
	return cptPattern.MatchString(value)
}

// ValidHCPCS reports whether value has the shape of a HCPCS Level II
// procedure code.
func ValidHCPCS(value string) bool {
	return hcpcsPattern.MatchString(value)
}

// ValidProcedureCode reports whether value is a well-formed CPT or
// HCPCS code, the union most 837 schema rules actually want to check.
func ValidProcedureCode(value string) bool {
	return ValidCPT(value) || ValidHCPCS(value)
}
