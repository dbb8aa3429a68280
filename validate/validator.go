package validate

import (
	"fmt"

	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

// Validator checks an x12.Interchange's assembled tree against the
// schema registry's declared structure and element rules, plus a
// handful of built-in semantic rules.
type Validator struct {
	cfg config
}

// New creates a Validator with the given options.
func New(opts ...Option) *Validator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Validator{cfg: cfg}
}

// Validate walks every transaction set in ic and returns the combined
// Report. A transaction set whose (type, implementation convention)
// has no registered schema produces a single StructureError-coded
// Finding carrying the x12.SchemaError message for that transaction
// rather than aborting the whole interchange.
func (v *Validator) Validate(ic *x12.Interchange) (*x12.Report, error) {
	if ic == nil {
		return nil, x12.ErrEmptyInput
	}
	eff := v.forInterchange(ic)
	report := &x12.Report{}
	for gi, group := range ic.FunctionalGroups {
		for ti, ts := range group.TransactionSets {
			loc := &x12.Location{GroupIndex: gi, TransactionIndex: ti, SegmentIndex: -1, Element: -1, Repetition: -1, Component: -1}
			sch, err := eff.resolveSchema(ts, group.VersionRelease)
			if err != nil {
				report.Add(x12.Finding{
					Severity: x12.SeverityError,
					Code:     x12.CodeStructure,
					Message:  err.Error(),
					Location: loc,
				})
				continue
			}
			eff.walkLoop(ts.Root, sch.Nodes, loc, report)
			eff.validateSemantics(ts, loc, report)
		}
	}
	return report, nil
}

// forInterchange returns a Validator to use for this call: itself,
// unless a partner directory is configured and resolves ic's sender to
// a Profile, in which case the returned Validator uses that partner's
// strictness instead of the one passed to New. v itself is never
// mutated, so concurrent calls to Validate with different senders
// don't race.
func (v *Validator) forInterchange(ic *x12.Interchange) *Validator {
	if v.cfg.partnerLookup == nil {
		return v
	}
	profile, ok := v.cfg.partnerLookup.Lookup(ic.SenderQualifier, ic.SenderID)
	if !ok {
		return v
	}
	cfg := v.cfg
	cfg.strictness = profile.Strictness
	return &Validator{cfg: cfg}
}

func (v *Validator) resolveSchema(ts x12.TransactionSet, gs08 string) (schema.TransactionSchema, error) {
	convention := ts.ImplementationReference
	if convention == "" {
		convention = gs08
	}
	sch, err := schema.Lookup(ts.Code, convention)
	if err != nil {
		return schema.TransactionSchema{}, &x12.SchemaError{TransactionType: ts.Code, Reason: err.Error()}
	}
	return sch, nil
}

// walkLoop checks loop's direct children against nodes (the schema
// children admissible at this point), recursing into matched child
// loops, then flags any actual segment or loop with no matching node.
func (v *Validator) walkLoop(loop x12.Loop, nodes []schema.Node, loc *x12.Location, report *x12.Report) {
	matchedSegmentIDs := map[string]bool{}
	matchedLoopIDs := map[string]bool{}

	for _, n := range nodes {
		switch n.Kind {
		case schema.SegmentNode:
			matchedSegmentIDs[n.ID] = true
			occurrences := segmentsByID(loop, n.ID)
			v.checkCardinality(n.Usage, n.Min, n.Max, len(occurrences), n.ID, loc, report)
			for _, seg := range occurrences {
				v.validateElements(seg, n.Elements, loc, report)
			}
		case schema.LoopNode:
			matchedLoopIDs[n.ID] = true
			occurrences := loopsByID(loop, n.ID)
			v.checkCardinality(n.Usage, n.Min, n.Max, len(occurrences), n.ID, loc, report)
			for _, child := range occurrences {
				v.walkLoop(child, n.Children, loc.WithLoop(n.ID), report)
			}
		}
	}

	severity := v.cfg.strictness.Escalate(x12.SeverityWarning)
	for _, seg := range loop.Segments {
		if !matchedSegmentIDs[seg.ID] {
			report.Add(x12.Finding{
				Severity: severity,
				Code:     x12.CodeStructure,
				Message:  fmt.Sprintf("segment %s is not defined at this position by the schema", seg.ID),
				Location: loc.Clone(),
			})
		}
	}
	for _, child := range loop.Loops {
		if !matchedLoopIDs[child.ID] {
			report.Add(x12.Finding{
				Severity: severity,
				Code:     x12.CodeStructure,
				Message:  fmt.Sprintf("loop %s is not defined at this position by the schema", child.ID),
				Location: loc.WithLoop(child.ID),
			})
		}
	}
}

// checkCardinality reports a missing-mandatory or too-many Finding for
// one schema node, given how many times it actually occurred.
func (v *Validator) checkCardinality(usage schema.Usage, min, max, count int, id string, loc *x12.Location, report *x12.Report) {
	required := min
	if usage == schema.Mandatory && required < 1 {
		required = 1
	}
	if count < required {
		report.Add(x12.Finding{
			Severity: x12.SeverityError,
			Code:     x12.CodeStructure,
			Message:  fmt.Sprintf("%s occurs %d time(s), at least %d required", id, count, required),
			Location: loc.Clone(),
		})
	}
	if max > 0 && count > max {
		report.Add(x12.Finding{
			Severity: x12.SeverityError,
			Code:     x12.CodeStructure,
			Message:  fmt.Sprintf("%s occurs %d time(s), at most %d allowed", id, count, max),
			Location: loc.Clone(),
		})
	}
}

// validateElements applies each ElementRule declared for a schema
// segment node to the matching element of an actual occurrence.
func (v *Validator) validateElements(seg x12.Segment, elements []schema.ElementRule, loc *x12.Location, report *x12.Report) {
	if len(elements) == 0 {
		return
	}
	elemLoc := loc.Clone()
	elemLoc.Segment = seg.ID
	for _, er := range elements {
		rule := ruleForElement(er)
		el, present := seg.Element1(er.Position)
		value := el.String()
		for _, f := range rule.Validate(value, present) {
			l := elemLoc.Clone()
			l.Element = er.Position
			f.Location = l
			report.Add(f)
		}
	}
}

func segmentsByID(loop x12.Loop, id string) []x12.Segment {
	var out []x12.Segment
	for _, s := range loop.Segments {
		if s.ID == id {
			out = append(out, s)
		}
	}
	return out
}

func loopsByID(loop x12.Loop, id string) []x12.Loop {
	var out []x12.Loop
	for _, l := range loop.Loops {
		if l.ID == id {
			out = append(out, l)
		}
	}
	return out
}
