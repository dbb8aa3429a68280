package build

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/gox12/delims"
	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/tokenize"
	"github.com/dshills/gox12/x12"
)

// Builder assembles a raw X12 byte stream into an x12.Interchange,
// recovering delimiters from the leading ISA segment and driving a
// stack-based loop assembly from the schema registry for each
// transaction set it encounters.
type Builder struct {
	cfg builderConfig
}

// New creates a Builder with the given options.
func New(opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{cfg: cfg}
}

// Build assembles data into an Interchange. Non-terminal structural
// observations made while building (for example a GS08/ST03
// implementation convention disagreement) are appended to the
// returned Report; the interchange is populated regardless so
// downstream acknowledgment synthesis can proceed against it.
func (b *Builder) Build(data []byte) (*x12.Interchange, *x12.Report, error) {
	return b.BuildContext(context.Background(), data)
}

// BuildContext is Build with cancellation support. Cancellation is
// checked before each segment read after the ISA is processed, at the
// interchange, functional group, and transaction set levels alike.
func (b *Builder) BuildContext(ctx context.Context, data []byte) (*x12.Interchange, *x12.Report, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, x12.ErrEmptyInput
	}

	isaRaw, next, err := delims.SplitISASegment(data)
	if err != nil {
		return nil, nil, err
	}
	delim, err := delims.Detect(data)
	if err != nil {
		return nil, nil, err
	}
	isaSeg, err := x12.ParseSegment(isaRaw, delim)
	if err != nil {
		return nil, nil, &x12.StructureError{Reason: "malformed ISA segment", Cause: err}
	}
	if isaSeg.ID != "ISA" {
		return nil, nil, x12.ErrMissingISA
	}

	ic := &x12.Interchange{
		SenderQualifier:   isaSeg.Value(5),
		SenderID:          strings.TrimSpace(isaSeg.Value(6)),
		ReceiverQualifier: isaSeg.Value(7),
		ReceiverID:        strings.TrimSpace(isaSeg.Value(8)),
		ControlNumber:     isaSeg.Value(13),
		UsageIndicator:    isaSeg.Value(15),
		Date:              isaSeg.Value(9),
		Time:              isaSeg.Value(10),
		VersionNumber:     isaSeg.Value(12),
		AckRequested:      isaSeg.Value(14) == "1",
		Delimiters:        delim,
	}

	report := &x12.Report{}

	opts := []tokenize.Option{tokenize.WithMaxSegments(b.cfg.maxSegments)}
	if b.cfg.releaseCharacter != 0 {
		opts = append(opts, tokenize.WithReleaseCharacter(b.cfg.releaseCharacter))
	}
	tr := tokenize.NewReader(bytes.NewReader(data[next:]), delim, opts...)

	sawIEA := false
	for !sawIEA && tr.Scan() {
		if cerr := checkCanceled(ctx); cerr != nil {
			return ic, report, cerr
		}
		seg := tr.Segment()
		switch seg.ID {
		case "GS":
			group, gerr := b.buildGroup(ctx, seg, tr, report)
			if gerr != nil {
				return ic, report, gerr
			}
			ic.FunctionalGroups = append(ic.FunctionalGroups, group)
		case "IEA":
			if cerr := checkControlNumber("ISA13/IEA02", ic.ControlNumber, seg.Value(2)); cerr != nil {
				return ic, report, cerr
			}
			if cerr := checkCount("IEA01", seg.Value(1), ic.GroupCount()); cerr != nil {
				return ic, report, cerr
			}
			sawIEA = true
		default:
			return ic, report, &x12.StructureError{Reason: fmt.Sprintf("unexpected segment %q outside any functional group", seg.ID)}
		}
	}
	if terr := tr.Err(); terr != nil {
		return ic, report, terr
	}
	if !sawIEA {
		return ic, report, &x12.StructureError{Reason: "missing IEA segment"}
	}
	return ic, report, nil
}

// buildGroup consumes segments from tr starting immediately after a GS
// segment, returning once the matching GE has been read.
func (b *Builder) buildGroup(ctx context.Context, gs x12.Segment, tr *tokenize.Reader, report *x12.Report) (x12.FunctionalGroup, error) {
	group := x12.FunctionalGroup{
		FunctionalID:   gs.Value(1),
		SenderCode:     gs.Value(2),
		ReceiverCode:   gs.Value(3),
		ControlNumber:  gs.Value(6),
		VersionRelease: gs.Value(8),
	}
	for tr.Scan() {
		if err := checkCanceled(ctx); err != nil {
			return group, err
		}
		seg := tr.Segment()
		switch seg.ID {
		case "ST":
			ts, err := b.buildTransactionSet(ctx, seg, tr, group.VersionRelease, report)
			if err != nil {
				return group, err
			}
			group.TransactionSets = append(group.TransactionSets, ts)
		case "GE":
			if err := checkControlNumber("GS06/GE02", group.ControlNumber, seg.Value(2)); err != nil {
				return group, err
			}
			if err := checkCount("GE01", seg.Value(1), group.TransactionSetCount()); err != nil {
				return group, err
			}
			return group, nil
		default:
			return group, &x12.StructureError{Reason: fmt.Sprintf("unexpected segment %q inside functional group %s", seg.ID, group.ControlNumber)}
		}
	}
	if err := tr.Err(); err != nil {
		return group, err
	}
	return group, &x12.StructureError{Reason: "missing GE segment for group " + group.ControlNumber}
}

// BuildTransactionSet assembles one ST...SE transaction set from tr,
// the same schema-driven loop assembly BuildContext uses internally.
// st must be the already-scanned ST segment; gs08 is the enclosing
// functional group's version/release identifier. Exported for package
// stream, which drives its own GS/ST/GE/IEA bookkeeping a transaction
// set at a time but delegates loop assembly to this Builder.
func (b *Builder) BuildTransactionSet(ctx context.Context, st x12.Segment, tr *tokenize.Reader, gs08 string, report *x12.Report) (x12.TransactionSet, error) {
	return b.buildTransactionSet(ctx, st, tr, gs08, report)
}

// buildTransactionSet consumes segments from tr starting immediately
// after an ST segment, returning once the matching SE has been read.
// gs08 is the enclosing functional group's version/release identifier,
// used to resolve the transaction's schema when ST03 is absent, and
// compared against ST03 when both are present.
func (b *Builder) buildTransactionSet(ctx context.Context, st x12.Segment, tr *tokenize.Reader, gs08 string, report *x12.Report) (x12.TransactionSet, error) {
	code := st.Value(1)
	controlNumber := st.Value(2)
	convention := st.Value(3)

	lookupConvention := convention
	if lookupConvention == "" {
		lookupConvention = gs08
	}
	sch, err := schema.Lookup(code, lookupConvention)
	if err != nil {
		return x12.TransactionSet{}, &x12.SchemaError{TransactionType: code, Reason: err.Error()}
	}

	// ST03 takes precedence when GS08 disagrees; this is an
	// observation worth reporting, not a terminal structural error.
	if convention != "" && gs08 != "" && convention != gs08 {
		report.Add(x12.Finding{
			Severity: x12.SeverityWarning,
			Code:     x12.CodeConventionMatch,
			Message:  fmt.Sprintf("GS08 %q disagrees with ST03 %q; resolved using ST03", gs08, convention),
			Location: x12.NewLocation("ST", 3, -1),
		})
	}

	ts := x12.TransactionSet{
		Code:                    code,
		ControlNumber:           controlNumber,
		ImplementationReference: convention,
	}

	asm := newAssembler(sch)
	for tr.Scan() {
		if err := checkCanceled(ctx); err != nil {
			return ts, err
		}
		seg := tr.Segment()
		if seg.ID == "SE" {
			if err := checkControlNumber("ST02/SE02", controlNumber, seg.Value(2)); err != nil {
				return ts, err
			}
			ts.Root = asm.root()
			if err := checkCount("SE01", seg.Value(1), ts.SegmentCount()); err != nil {
				return ts, err
			}
			return ts, nil
		}
		asm.add(seg)
	}
	if err := tr.Err(); err != nil {
		return ts, err
	}
	return ts, &x12.StructureError{Reason: "missing SE segment for ST " + controlNumber}
}

// checkControlNumber reports a StructureError when a paired control
// number (ISA13/IEA02, GS06/GE02, ST02/SE02) does not match.
func checkControlNumber(label, expected, actual string) error {
	if expected != actual {
		return &x12.StructureError{Reason: fmt.Sprintf("%s control number mismatch: %q != %q", label, expected, actual)}
	}
	return nil
}

// checkCount reports a StructureError when a trailer's declared count
// (IEA01, GE01, SE01) does not match the actual assembled count.
func checkCount(label, raw string, actual int) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return &x12.StructureError{Reason: fmt.Sprintf("%s is not numeric: %q", label, raw)}
	}
	if n != actual {
		return &x12.StructureError{Reason: fmt.Sprintf("%s count mismatch: segment says %d, actual %d", label, n, actual)}
	}
	return nil
}

// checkCanceled reports ctx's cancellation as an error without
// blocking, the same checkpoint-style check the teacher's
// ParseContext performs between segment batches.
func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("build canceled: %w", ctx.Err())
	default:
		return nil
	}
}
