// Package ack synthesizes functional (997) and implementation (999)
// acknowledgments from a built Interchange and the Report produced by
// validating it.
//
// Both acknowledgment flavors mirror the three-level structure of the
// envelope they describe: one AK1/AK9 pair per functional group, one
// AK2 per transaction set inside it, and one AK3/AK4 (997) or IK3/IK4
// (999) per Finding that resolves to a segment or element. A
// transaction set's acknowledgment code is A (accepted), E (accepted
// with errors), or R (rejected); a group's code is the worst code
// among its transaction sets.
//
// 999 additionally draws its element-level syntax error codes from the
// extended 005010X231 implementation-guide table in codes999.go where
// that table has a matching code, falling back to the base 997 table
// in codes.go otherwise; segment-level codes come from codes.go for
// both flavors.
package ack
