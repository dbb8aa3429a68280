package ack

import (
	"strconv"

	"github.com/dshills/gox12/x12"
)

// ackKind selects between the 997 functional acknowledgment and the
// 999 implementation acknowledgment: the two differ in transaction
// set code, the AK3/AK4 vs. IK3/IK4 segment names, and the error code
// table consulted for IK4-03.
type ackKind int

const (
	kind997 ackKind = iota
	kind999
)

func (k ackKind) transactionCode() string {
	if k == kind999 {
		return "999"
	}
	return "997"
}

func (k ackKind) segmentNames() (segAck, elemAck, tsAck string) {
	if k == kind999 {
		return "IK3", "IK4", "IK5"
	}
	return "AK3", "AK4", "AK5"
}

// synthesizer holds the injected clock and control-number generator
// shared by New997 and New999.
type synthesizer struct {
	cfg config
}

func newSynthesizer(opts ...Option) *synthesizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &synthesizer{cfg: cfg}
}

// New997 derives a functional acknowledgment (997) interchange from ic
// and the Report produced by validating it. The returned Interchange
// contains one functional group per group in ic, each carrying a
// single 997 transaction set.
func New997(ic *x12.Interchange, rpt *x12.Report, opts ...Option) (*x12.Interchange, error) {
	return newSynthesizer(opts...).build(ic, rpt, kind997)
}

// New999 derives an implementation acknowledgment (999) interchange
// from ic and rpt, identical in framing to New997 but using IK3/IK4/IK5
// segments and the 005010X231 extended error code table.
func New999(ic *x12.Interchange, rpt *x12.Report, opts ...Option) (*x12.Interchange, error) {
	return newSynthesizer(opts...).build(ic, rpt, kind999)
}

func (s *synthesizer) build(ic *x12.Interchange, rpt *x12.Report, kind ackKind) (*x12.Interchange, error) {
	if ic == nil {
		return nil, x12.ErrEmptyInput
	}
	if rpt == nil {
		rpt = &x12.Report{}
	}
	findingsByTS := findingsByTransaction(rpt)

	out := &x12.Interchange{
		SenderQualifier:   ic.ReceiverQualifier,
		SenderID:          ic.ReceiverID,
		ReceiverQualifier: ic.SenderQualifier,
		ReceiverID:        ic.SenderID,
		ControlNumber:     s.cfg.controlIDFunc(),
		UsageIndicator:    ic.UsageIndicator,
		Date:              s.cfg.timeFunc().Format("060102"),
		Time:              s.cfg.timeFunc().Format("1504"),
		VersionNumber:     ic.VersionNumber,
		Delimiters:        ic.Delimiters,
	}

	for gi, group := range ic.FunctionalGroups {
		ackGroup := s.buildGroup(gi, group, findingsByTS, kind)
		out.FunctionalGroups = append(out.FunctionalGroups, ackGroup)
	}
	return out, nil
}

// buildGroup assembles the single 997/999 transaction set that
// acknowledges one inbound functional group: an AK1 naming the group,
// one AK2 block per transaction set inside it, and a closing AK9 whose
// code is the worst of its transaction sets' codes.
func (s *synthesizer) buildGroup(gi int, group x12.FunctionalGroup, findingsByTS map[[2]int][]x12.Finding, kind ackKind) x12.FunctionalGroup {
	var segs []x12.Segment
	segs = append(segs, x12.NewSegment("AK1",
		x12.NewAtomic(1, group.FunctionalID),
		x12.NewAtomic(2, group.ControlNumber),
	))

	statuses := make([]Status, 0, len(group.TransactionSets))
	for ti, ts := range group.TransactionSets {
		tsSegs, status := s.buildTransactionAck(ts, findingsByTS[[2]int{gi, ti}], kind)
		segs = append(segs, tsSegs...)
		statuses = append(statuses, status)
	}

	accepted := 0
	for _, st := range statuses {
		if !st.IsReject() {
			accepted++
		}
	}
	segs = append(segs, x12.NewSegment("AK9",
		x12.NewAtomic(1, string(worstStatus(statuses))),
		x12.NewAtomic(2, strconv.Itoa(len(group.TransactionSets))),
		x12.NewAtomic(3, strconv.Itoa(len(group.TransactionSets))),
		x12.NewAtomic(4, strconv.Itoa(accepted)),
	))

	stControl := s.cfg.controlIDFunc()
	ackTS := x12.TransactionSet{Code: kind.transactionCode(), ControlNumber: stControl, Root: x12.Loop{Segments: segs}}

	return x12.FunctionalGroup{
		FunctionalID:    "FA",
		SenderCode:      group.ReceiverCode,
		ReceiverCode:    group.SenderCode,
		ControlNumber:   s.cfg.controlIDFunc(),
		VersionRelease:  group.VersionRelease,
		TransactionSets: []x12.TransactionSet{ackTS},
	}
}

// buildTransactionAck assembles one AK2 block: the AK2 segment itself,
// an AK3/AK4 (or IK3/IK4) run for every segment the report flagged,
// and a closing AK5/IK5 carrying the transaction set's status code.
func (s *synthesizer) buildTransactionAck(ts x12.TransactionSet, findings []x12.Finding, kind ackKind) ([]x12.Segment, Status) {
	segAck, elemAck, tsAck := kind.segmentNames()

	var segs []x12.Segment
	segs = append(segs, x12.NewSegment("AK2",
		x12.NewAtomic(1, ts.Code),
		x12.NewAtomic(2, ts.ControlNumber),
	))

	for _, grp := range groupBySegment(findings) {
		segs = append(segs, x12.NewSegment(segAck,
			x12.NewAtomic(1, grp.segmentID),
			x12.NewAtomic(2, "0"),
			x12.NewAtomic(3, grp.loopID),
			x12.NewAtomic(4, segmentSyntaxCode(grp.findings)),
		))
		for _, f := range grp.findings {
			if !f.Location.HasElement() {
				continue
			}
			segs = append(segs, x12.NewSegment(elemAck,
				x12.NewComposite(1, strconv.Itoa(f.Location.Element)),
				x12.NewAtomic(2, ""),
				x12.NewAtomic(3, elementSyntaxCodeFor(f, kind)),
				x12.NewAtomic(4, ""),
			))
		}
	}

	status := statusForFindings(findings)
	segs = append(segs, x12.NewSegment(tsAck, x12.NewAtomic(1, string(status))))
	return segs, status
}

// elementSyntaxCodeFor prefers the 999 implementation-guide error code
// for f when one applies, falling back to the base 997 table.
func elementSyntaxCodeFor(f x12.Finding, kind ackKind) string {
	if kind == kind999 {
		if code := implementationElementSyntaxCode(f); code != "" {
			return code
		}
	}
	return elementSyntaxCode(f)
}

// statusForFindings derives a transaction set's AK5/IK5 code: a
// structural error rejects the transaction set outright, any other
// error-severity finding accepts it with errors noted, and no
// error-severity findings accepts it cleanly.
func statusForFindings(findings []x12.Finding) Status {
	hasError := false
	hasStructural := false
	for _, f := range findings {
		if f.Severity != x12.SeverityError {
			continue
		}
		hasError = true
		if f.Code == x12.CodeStructure {
			hasStructural = true
		}
	}
	switch {
	case hasStructural:
		return StatusRejected
	case hasError:
		return StatusAcceptedWithErrors
	default:
		return StatusAccepted
	}
}

// findingsByTransaction indexes rpt's findings by (group index,
// transaction index), the granularity at which AK2 blocks are built.
func findingsByTransaction(rpt *x12.Report) map[[2]int][]x12.Finding {
	out := map[[2]int][]x12.Finding{}
	for _, f := range rpt.Findings {
		if f.Location == nil {
			continue
		}
		key := [2]int{f.Location.GroupIndex, f.Location.TransactionIndex}
		out[key] = append(out[key], f)
	}
	return out
}

// segmentGroup collects every Finding the report raised against one
// segment ID, in first-occurrence order.
type segmentGroup struct {
	segmentID string
	loopID    string
	findings  []x12.Finding
}

// groupBySegment partitions findings that name a specific segment
// (Location.Segment set) into one segmentGroup per distinct segment
// ID, preserving first-occurrence order. Findings with no segment
// identified — missing-loop or missing-segment structural findings,
// which by construction describe something that isn't present to
// attach an AK3 to — contribute to the transaction set's status only,
// never to an AK3/IK3 row.
func groupBySegment(findings []x12.Finding) []segmentGroup {
	var order []string
	groups := map[string]*segmentGroup{}
	for _, f := range findings {
		if f.Location == nil || f.Location.Segment == "" {
			continue
		}
		g, ok := groups[f.Location.Segment]
		if !ok {
			loopID := ""
			if n := len(f.Location.LoopPath); n > 0 {
				loopID = f.Location.LoopPath[n-1]
			}
			g = &segmentGroup{segmentID: f.Location.Segment, loopID: loopID}
			groups[f.Location.Segment] = g
			order = append(order, f.Location.Segment)
		}
		g.findings = append(g.findings, f)
	}
	out := make([]segmentGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out
}
