package partner

import "github.com/dshills/gox12/x12"

// Profile holds the per-partner configuration a reader resolves once
// it knows who sent an interchange (ISA06/ISA08, or GS02/GS03 for a
// group-level override).
type Profile struct {
	// Delimiters are the delimiters this partner is expected to send.
	// No package in this module reads this field; delimiters always
	// come from the interchange's own ISA.
	Delimiters x12.Delimiters
	// Strictness controls how aggressively the Validator escalates
	// structural non-conformance for this partner's interchanges.
	Strictness x12.Strictness
	// HIPAA5010 marks a partner as subject to the 005010 implementation
	// guides. No package in this module reads this flag; the caller
	// chooses between ack.New997 and ack.New999 itself.
	HIPAA5010 bool
}

// Lookup resolves a Profile from a partner's sender/receiver identity,
// the (qualifier, ID) pair carried in ISA06/ISA08. validate accepts a
// Lookup as a constructor option rather than a concrete Registry, so a
// caller can back it with a database or config file.
type Lookup interface {
	Lookup(qualifier, id string) (Profile, bool)
}
