package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dshills/gox12/internal/escape"
	"github.com/dshills/gox12/x12"
)

// Generator serializes an x12.Interchange back to wire format.
type Generator interface {
	// Generate renders ic to a newly allocated byte slice.
	Generate(ic *x12.Interchange) ([]byte, error)
	// GenerateToWriter renders ic directly to w, checking ctx for
	// cancellation once per functional group and once per transaction
	// set.
	GenerateToWriter(ctx context.Context, w io.Writer, ic *x12.Interchange) error
}

type generator struct {
	cfg generatorConfig
}

// New creates a Generator with the given options.
func New(opts ...Option) Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &generator{cfg: cfg}
}

func (g *generator) Generate(ic *x12.Interchange) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.GenerateToWriter(context.Background(), &buf, ic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *generator) GenerateToWriter(ctx context.Context, w io.Writer, ic *x12.Interchange) error {
	if ic == nil {
		return x12.ErrEmptyInput
	}

	d := ic.Delimiters
	if !d.Valid() {
		d = g.cfg.delimiters
	}
	var esc *escape.Escaper
	if g.cfg.releaseCharacter != 0 {
		esc = escape.New(d, g.cfg.releaseCharacter)
	}

	if err := writeSegmentBytes(w, buildISA(ic, d), d); err != nil {
		return err
	}

	for _, group := range ic.FunctionalGroups {
		if err := checkCanceled(ctx); err != nil {
			return err
		}
		if err := writeGroup(ctx, w, ic, group, d, esc); err != nil {
			return err
		}
	}

	iea := x12.NewSegment("IEA",
		x12.NewAtomic(1, strconv.Itoa(ic.GroupCount())),
		x12.NewAtomic(2, ic.ControlNumber),
	)
	return writeSegmentBytes(w, iea.Bytes(d), d)
}

func writeGroup(ctx context.Context, w io.Writer, ic *x12.Interchange, group x12.FunctionalGroup, d x12.Delimiters, esc *escape.Escaper) error {
	gs := x12.NewSegment("GS",
		x12.NewAtomic(1, group.FunctionalID),
		x12.NewAtomic(2, group.SenderCode),
		x12.NewAtomic(3, group.ReceiverCode),
		x12.NewAtomic(4, ic.Date),
		x12.NewAtomic(5, ic.Time),
		x12.NewAtomic(6, group.ControlNumber),
		x12.NewAtomic(7, "X"),
		x12.NewAtomic(8, group.VersionRelease),
	)
	if err := writeSegmentBytes(w, gs.Bytes(d), d); err != nil {
		return err
	}

	for _, ts := range group.TransactionSets {
		if err := checkCanceled(ctx); err != nil {
			return err
		}
		if err := writeTransactionSet(w, ts, d, esc); err != nil {
			return err
		}
	}

	ge := x12.NewSegment("GE",
		x12.NewAtomic(1, strconv.Itoa(group.TransactionSetCount())),
		x12.NewAtomic(2, group.ControlNumber),
	)
	return writeSegmentBytes(w, ge.Bytes(d), d)
}

func writeTransactionSet(w io.Writer, ts x12.TransactionSet, d x12.Delimiters, esc *escape.Escaper) error {
	st := x12.NewSegment("ST",
		x12.NewAtomic(1, ts.Code),
		x12.NewAtomic(2, ts.ControlNumber),
		x12.NewAtomic(3, ts.ImplementationReference),
	)
	if err := writeSegmentBytes(w, st.Bytes(d), d); err != nil {
		return err
	}

	for _, seg := range ts.Root.AllSegments() {
		if esc != nil {
			seg = escapeSegment(seg, esc)
		}
		if err := writeSegmentBytes(w, seg.Bytes(d), d); err != nil {
			return err
		}
	}

	se := x12.NewSegment("SE",
		x12.NewAtomic(1, strconv.Itoa(ts.SegmentCount())),
		x12.NewAtomic(2, ts.ControlNumber),
	)
	return writeSegmentBytes(w, se.Bytes(d), d)
}

// writeSegmentBytes writes raw (a rendered segment, ISA included)
// followed by the segment terminator.
func writeSegmentBytes(w io.Writer, raw []byte, d x12.Delimiters) error {
	if _, err := w.Write(raw); err != nil {
		return &x12.GenerationError{Reason: "write failed", Cause: err}
	}
	if _, err := w.Write([]byte{d.Segment}); err != nil {
		return &x12.GenerationError{Reason: "write failed", Cause: err}
	}
	return nil
}

// escapeSegment returns a copy of seg with every element value passed
// through esc, so a release character configured for output also
// guards values that happen to contain a delimiter byte. x12.Segment
// itself never escapes; tokenize's read side undoes exactly this.
func escapeSegment(seg x12.Segment, esc *escape.Escaper) x12.Segment {
	out := make([]x12.Element, len(seg.Elements))
	for i, el := range seg.Elements {
		out[i] = escapeElement(el, esc)
	}
	return x12.Segment{ID: seg.ID, Elements: out, Offset: seg.Offset, Ordinal: seg.Ordinal}
}

func escapeElement(el x12.Element, esc *escape.Escaper) x12.Element {
	switch el.Kind {
	case x12.ElementComposite:
		comps := make([]string, len(el.Composite))
		for i, c := range el.Composite {
			comps[i] = esc.Escape(c)
		}
		return x12.NewComposite(el.Position, comps...)
	case x12.ElementRepeated:
		reps := make([]x12.Element, len(el.Repetition))
		for i, r := range el.Repetition {
			reps[i] = escapeElement(r, esc)
		}
		return x12.Element{Position: el.Position, Kind: x12.ElementRepeated, Repetition: reps}
	default:
		return x12.NewAtomic(el.Position, esc.Escape(el.Atomic))
	}
}

// checkCanceled reports ctx's cancellation as an error without
// blocking, the same non-blocking check as build.checkCanceled.
func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("generate canceled: %w", ctx.Err())
	default:
		return nil
	}
}
