package schema

import "fmt"

// TransactionSchema is the full declarative description of one
// transaction set type/version: its ordered segment and loop nodes
// between ST and SE.
type TransactionSchema struct {
	TransactionType         string // e.g. "837"
	ImplementationConvention string // e.g. "005010X222A1"
	Nodes                   []Node
}

// key identifies a registered schema by transaction type and
// implementation convention.
type key struct {
	transactionType         string
	implementationConvention string
}

// registry is the package-level store of registered schemas,
// populated by this package's profile_*.go files at init time, the
// same posture the teacher's RuleSet registration functions take:
// read-only after package initialization, safe for concurrent readers.
var registry = map[key]TransactionSchema{}

// Register adds (or replaces) a schema for the given transaction type
// and implementation convention. Profile files call this from an
// init() func; callers embedding custom transaction types may also
// call it directly.
func Register(s TransactionSchema) {
	registry[key{s.TransactionType, s.ImplementationConvention}] = s
}

// Lookup returns the registered schema for (transactionType,
// implementationConvention), falling back to any schema registered for
// transactionType, or a *NotFoundError when the transaction type has
// no schema at all.
func Lookup(transactionType, implementationConvention string) (TransactionSchema, error) {
	s, ok := registry[key{transactionType, implementationConvention}]
	if ok {
		return s, nil
	}
	// Fall back to any registered convention for this transaction
	// type: a partner that omits ST03 (pre-5010, or a profile that
	// doesn't enforce it) should still resolve to a usable schema.
	for k, v := range registry {
		if k.transactionType == transactionType {
			return v, nil
		}
	}
	return TransactionSchema{}, &NotFoundError{TransactionType: transactionType, ImplementationConvention: implementationConvention}
}

// NotFoundError is returned by Lookup when no schema is registered
// for the requested transaction.
type NotFoundError struct {
	TransactionType          string
	ImplementationConvention string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no schema registered for transaction %s convention %s", e.TransactionType, e.ImplementationConvention)
}
