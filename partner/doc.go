// Package partner associates a trading partner's sender/receiver
// identity with the configuration their interchanges should be read
// and validated under: preferred delimiters, a validation strictness
// level, and whether HIPAA 5010 implementation guide rules apply.
//
// Lookup is the dependency validate accepts (validate.WithPartnerLookup)
// so a caller can supply a partner directory backed by any store;
// Registry is a trivial in-process implementation for callers who
// don't need one.
package partner
