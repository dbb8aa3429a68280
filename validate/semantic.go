package validate

import (
	"fmt"
	"strconv"

	"github.com/dshills/gox12/codeset"
	"github.com/dshills/gox12/x12"
)

// claimTotalTolerance is the absolute dollar tolerance allowed between
// a claim's declared total charge and the sum of its service line
// charges before a SemanticError Finding is raised.
const claimTotalTolerance = 0.005

// validateSemantics runs cross-segment checks that don't belong to a
// single element, dispatched by transaction type. Unknown transaction
// types run no semantic checks; this is not an error, since not every
// transaction in scope has a corresponding cross-segment rule.
func (v *Validator) validateSemantics(ts x12.TransactionSet, loc *x12.Location, report *x12.Report) {
	switch ts.Code {
	case "837":
		validateClaimTotals(ts, loc, report)
	}
}

// validateClaimTotals reconciles each 2300 claim loop's CLM02 (total
// claim charge amount) against the sum of its 2400 service line
// loops' SV1 charge amounts, within claimTotalTolerance.
func validateClaimTotals(ts x12.TransactionSet, loc *x12.Location, report *x12.Report) {
	for _, claimLoop := range allLoopsByID(ts.Root, "2300") {
		clm, ok := claimLoop.Find("CLM")
		if !ok {
			continue
		}
		total, err := strconv.ParseFloat(clm.Value(2), 64)
		if err != nil {
			continue // element-level rules already flag a malformed CLM02
		}

		var lines []float64
		for _, serviceLoop := range childLoopsByID(claimLoop, "2400") {
			sv1, ok := serviceLoop.Find("SV1")
			if !ok {
				continue
			}
			charge, err := strconv.ParseFloat(sv1.Value(2), 64)
			if err != nil {
				continue
			}
			lines = append(lines, charge)
		}

		if !codeset.ClaimTotalsBalance(total, lines, claimTotalTolerance) {
			l := loc.WithLoop("2300")
			l.Segment = "CLM"
			l.Element = 2
			report.Add(x12.Finding{
				Severity: x12.SeverityError,
				Code:     x12.CodeSemantic,
				Message:  fmt.Sprintf("claim total %.2f does not match sum of %d service line(s)", total, len(lines)),
				Location: l,
			})
		}
	}
}

// childLoopsByID returns every direct child loop with the given ID.
func childLoopsByID(loop x12.Loop, id string) []x12.Loop {
	var out []x12.Loop
	for _, child := range loop.Loops {
		if child.ID == id {
			out = append(out, child)
		}
	}
	return out
}

// allLoopsByID returns every descendant loop (at any depth) with the
// given ID, depth-first.
func allLoopsByID(loop x12.Loop, id string) []x12.Loop {
	var out []x12.Loop
	for _, child := range loop.Loops {
		if child.ID == id {
			out = append(out, child)
		}
		out = append(out, allLoopsByID(child, id)...)
	}
	return out
}
