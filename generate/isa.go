package generate

import (
	"strings"

	"github.com/dshills/gox12/x12"
)

// isaFieldWidths are the fixed byte widths of ISA01 through ISA16, in
// order. ISA itself and the element separator between each field are
// handled by the caller; these are the field payload widths only.
var isaFieldWidths = [16]int{2, 10, 2, 10, 2, 15, 2, 15, 6, 4, 1, 5, 9, 1, 1, 1}

// buildISA renders the fixed-width ISA segment for ic using d. ISA01
// and ISA03 (authorization/security information qualifiers) are not
// tracked on x12.Interchange, since nothing downstream consults them;
// they're emitted as "00" (no authorization/security information
// present), the conventional default.
func buildISA(ic *x12.Interchange, d x12.Delimiters) []byte {
	ackRequested := "0"
	if ic.AckRequested {
		ackRequested = "1"
	}

	values := [16]string{
		"00",
		"",
		"00",
		"",
		ic.SenderQualifier,
		ic.SenderID,
		ic.ReceiverQualifier,
		ic.ReceiverID,
		ic.Date,
		ic.Time,
		string(d.Repetition),
		ic.VersionNumber,
		ic.ControlNumber,
		ackRequested,
		ic.UsageIndicator,
		string(d.Component),
	}
	numeric := [16]bool{false, false, false, false, false, false, false, false,
		true, true, false, false, true, false, false, false}

	var sb strings.Builder
	sb.WriteString("ISA")
	for i, v := range values {
		sb.WriteByte(d.Element)
		if numeric[i] {
			sb.WriteString(padNumeric(v, isaFieldWidths[i]))
		} else {
			sb.WriteString(padAlpha(v, isaFieldWidths[i]))
		}
	}
	return []byte(sb.String())
}

// padAlpha left-justifies s within a field of width n, padding with
// trailing spaces or truncating from the right if s is too long.
func padAlpha(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

// padNumeric right-justifies s within a field of width n, padding
// with leading zeros or truncating from the left (keeping the least
// significant digits) if s is too long.
func padNumeric(s string, n int) string {
	if len(s) >= n {
		return s[len(s)-n:]
	}
	return strings.Repeat("0", n-len(s)) + s
}
