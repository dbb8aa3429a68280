// Package codeset provides the element-level validation primitives
// HIPAA 5010 profiles rely on: NPI check-digit verification, Tax
// ID/EIN format, ICD-10-CM/PCS code shape, CPT/HCPCS code shape,
// strict X12 date/time parsing, and claim-total reconciliation.
//
// Each check is a small pure function over a string (or a pair of
// numeric totals), so schema rules can reference them by name without
// depending on the tree-walking validate package.
package codeset
