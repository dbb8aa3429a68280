// Package validate checks an assembled x12.Interchange against the
// schema registry and a handful of built-in semantic rules, producing
// an x12.Report.
//
// Validation runs in three passes over each transaction set:
//
//   - structural: segment/loop presence, ordering implied by the tree
//     walk itself, and cardinality against the matched schema.Node
//   - element: per-element constraints (required, pattern, length,
//     code set membership, custom checks) declared on schema.ElementRule
//   - semantic: cross-segment rules that don't fit a single element,
//     e.g. claim totals reconciliation for 837
//
// Rules are composed with the same fluent RuleBuilder shape the
// teacher's validate package used for HL7 field rules — At(name) plus
// Required/Pattern/Length/OneOf/Custom — adapted to apply to a single
// resolved value rather than re-querying a whole message by path,
// since an X12 location can occur many times across repeated loops in
// a way a flat HL7 path lookup never had to express.
package validate
