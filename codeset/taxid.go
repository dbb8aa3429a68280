package codeset

import "regexp"

// taxIDPattern matches a 9-digit Tax ID/EIN, optionally formatted with
// the conventional EIN hyphen after the second digit (NN-NNNNNNN).
var taxIDPattern = regexp.MustCompile(`^\d{2}-?\d{7}$`)

// ValidTaxID reports whether value is a syntactically well-formed Tax
// ID / Employer Identification Number. It checks format only; it does
// not verify the identifier is registered to any entity.
func ValidTaxID(value string) bool {
	return taxIDPattern.MatchString(value)
}
