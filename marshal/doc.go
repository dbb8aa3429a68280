// Package marshal provides struct marshaling and unmarshaling for X12
// segments.
//
// A segment is a flat, 1-indexed list of elements, so this package
// converts between a Go struct and exactly one x12.Segment — there is
// no multi-segment or loop-spanning path analogous to HL7's dotted
// "SEG.field.component" addressing. It exists for typed access to the
// fixed segments a caller constructs or inspects most often: the
// envelope (ISA, GS, ST, SE, GE, IEA) and acknowledgment (AK1, AK9,
// IK3, IK4, IK5) segments, or an application's own typed view of any
// other segment.
//
// # Struct Tags
//
// Use the "x12" struct tag to map struct fields to element (and,
// for composite elements, component) positions:
//
//	type AK1 struct {
//	    FunctionalID  string `x12:"1"`
//	    ControlNumber string `x12:"2"`
//	}
//
//	type IK4 struct {
//	    ElementPosition string `x12:"1.1"` // composite C030, first component
//	    ErrorCode       string `x12:"3"`
//	}
//
// # Unmarshaling (Segment to Struct)
//
// Extract data from a Segment into a Go struct:
//
//	var ak1 AK1
//	if err := marshal.NewUnmarshaler().Unmarshal(seg, &ak1); err != nil {
//	    log.Fatal(err)
//	}
//
// # Marshaling (Struct to Segment)
//
// Build a Segment from a Go struct:
//
//	seg, err := marshal.NewMarshaler().Marshal("AK1", AK1{
//	    FunctionalID:  "HC",
//	    ControlNumber: "000000001",
//	})
//
// # Supported Types
//
// The marshaler supports these Go types:
//   - string: direct mapping to element text values
//   - int, int8, int16, int32, int64: numeric values
//   - uint, uint8, uint16, uint32, uint64: unsigned numeric values
//   - float32, float64: floating-point values (e.g. claim amounts)
//   - bool: X12 yes/no indicators (Y/N, plus 1/0 and true/false)
//   - time.Time: date and time elements (configurable layout)
//   - *T: pointers to any supported type (nil = absent element)
//
// # Marshaler Options
//
// Configure marshaling behavior with functional options:
//
//	// Use a custom struct tag name
//	m := marshal.NewMarshaler(marshal.WithTagName("custom"))
//
//	// Omit zero-value fields when marshaling
//	m := marshal.NewMarshaler(marshal.WithOmitEmpty(true))
//
//	// Set the default date layout (default: "20060102", CCYYMMDD)
//	m := marshal.NewMarshaler(marshal.WithTimeFormat("20060102"))
//
//	// Set timezone for time parsing
//	loc, _ := time.LoadLocation("America/New_York")
//	m := marshal.NewMarshaler(marshal.WithTimeLocation(loc))
//
// # Nested Structs
//
// An untagged struct field is treated as an embedded group and walked
// recursively, so a segment's fixed leading elements and an
// application-specific tail can be composed from separate structs:
//
//	type ak1Envelope struct {
//	    AK1
//	    Extra applicationFields
//	}
package marshal
