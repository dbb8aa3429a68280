package x12

import "strings"

// ElementKind identifies which variant of Element.Value is populated.
type ElementKind int

const (
	// ElementAtomic is a single scalar value with no component or
	// repetition separators in it.
	ElementAtomic ElementKind = iota
	// ElementComposite holds an ordered list of component strings,
	// joined on write with the component separator.
	ElementComposite
	// ElementRepeated holds an ordered list of repetitions, each of
	// which is itself atomic or composite.
	ElementRepeated
)

// Element is one data element within a Segment: an ordered 1-based
// position plus a value that is one of three shapes. Which shape is
// active is recorded in Kind; callers should branch on Kind rather
// than assume a shape.
type Element struct {
	Position   int
	Kind       ElementKind
	Atomic     string
	Composite  []string
	Repetition []Element
}

// NewAtomic builds an atomic Element at the given 1-based position.
func NewAtomic(pos int, value string) Element {
	return Element{Position: pos, Kind: ElementAtomic, Atomic: value}
}

// NewComposite builds a composite Element from its ordered component strings.
func NewComposite(pos int, components ...string) Element {
	return Element{Position: pos, Kind: ElementComposite, Composite: components}
}

// IsEmpty reports whether the element carries no data at all, the
// condition under which a Generator may elide a trailing element.
func (e Element) IsEmpty() bool {
	switch e.Kind {
	case ElementAtomic:
		return e.Atomic == ""
	case ElementComposite:
		for _, c := range e.Composite {
			if c != "" {
				return false
			}
		}
		return true
	case ElementRepeated:
		return len(e.Repetition) == 0
	default:
		return true
	}
}

// String returns the element's first scalar value: the atomic value,
// the first component of a composite, or the first repetition's
// string form. It is a convenience for the common case of reading a
// simple qualifier or code element; callers needing the full
// structure should switch on Kind directly.
func (e Element) String() string {
	switch e.Kind {
	case ElementAtomic:
		return e.Atomic
	case ElementComposite:
		if len(e.Composite) > 0 {
			return e.Composite[0]
		}
		return ""
	case ElementRepeated:
		if len(e.Repetition) > 0 {
			return e.Repetition[0].String()
		}
		return ""
	default:
		return ""
	}
}

// Component returns the 1-based component value from a composite
// element, or empty string plus false if out of range or not composite.
func (e Element) Component(idx int) (string, bool) {
	if e.Kind != ElementComposite || idx < 1 || idx > len(e.Composite) {
		return "", false
	}
	return e.Composite[idx-1], true
}

// Bytes renders the element using the supplied delimiters, including
// nested component and repetition separators.
func (e Element) Bytes(d Delimiters) []byte {
	switch e.Kind {
	case ElementAtomic:
		return []byte(e.Atomic)
	case ElementComposite:
		parts := make([]string, len(e.Composite))
		copy(parts, e.Composite)
		return []byte(strings.Join(parts, string(d.Component)))
	case ElementRepeated:
		parts := make([]string, len(e.Repetition))
		for i, rep := range e.Repetition {
			parts[i] = string(rep.Bytes(d))
		}
		return []byte(strings.Join(parts, string(d.Repetition)))
	default:
		return nil
	}
}

// ParseElementValue splits a raw element's bytes into the appropriate
// Element variant given the active delimiters. The repetition
// separator is checked first since a repeated element's members may
// themselves be composite.
func ParseElementValue(pos int, raw []byte, d Delimiters) Element {
	if len(raw) == 0 {
		return Element{Position: pos, Kind: ElementAtomic, Atomic: ""}
	}
	if containsByte(raw, d.Repetition) {
		parts := splitByte(raw, d.Repetition)
		reps := make([]Element, len(parts))
		for i, p := range parts {
			reps[i] = parseScalar(pos, p, d)
		}
		return Element{Position: pos, Kind: ElementRepeated, Repetition: reps}
	}
	return parseScalar(pos, raw, d)
}

func parseScalar(pos int, raw []byte, d Delimiters) Element {
	if containsByte(raw, d.Component) {
		parts := splitByte(raw, d.Component)
		comps := make([]string, len(parts))
		for i, p := range parts {
			comps[i] = string(p)
		}
		return Element{Position: pos, Kind: ElementComposite, Composite: comps}
	}
	return Element{Position: pos, Kind: ElementAtomic, Atomic: string(raw)}
}

func containsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

func splitByte(b []byte, c byte) [][]byte {
	var out [][]byte
	start := 0
	for i, x := range b {
		if x == c {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}
