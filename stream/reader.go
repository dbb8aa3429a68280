package stream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/gox12/build"
	"github.com/dshills/gox12/delims"
	"github.com/dshills/gox12/tokenize"
	"github.com/dshills/gox12/x12"
)

type scanState int

const (
	stateBeforeGroup scanState = iota
	stateInGroup
	stateDone
)

// Reader pulls one transaction set at a time from an X12 byte stream.
// Call Scan in a loop; after each true result, TransactionSet and
// Group return the transaction set just read and the header of the
// functional group it belongs to. Envelope trailers (GE, IEA) are
// validated against running tallies as they're encountered; a
// mismatch surfaces through Err the next time Scan returns false.
type Reader struct {
	cfg     readerConfig
	builder *build.Builder
	tr      *tokenize.Reader
	report  x12.Report

	interchange x12.Interchange
	state       scanState
	groupCount  int

	curGroup   x12.FunctionalGroup
	curGroupTS int

	ts  x12.TransactionSet
	err error
}

// NewReader creates a Reader over r. The leading ISA segment is read
// and its delimiters detected immediately, so NewReader itself can
// fail; a caller who only has a reader once a connection is live
// should defer opening a Reader until at least 106 bytes are
// available.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	isaBuf := make([]byte, 106)
	if _, err := io.ReadFull(r, isaBuf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, x12.ErrEmptyInput
		}
		return nil, err
	}
	isaRaw, next, err := delims.SplitISASegment(isaBuf)
	if err != nil {
		return nil, err
	}
	d, err := delims.Detect(isaBuf)
	if err != nil {
		return nil, err
	}
	isaSeg, err := x12.ParseSegment(isaRaw, d)
	if err != nil {
		return nil, err
	}

	rest := io.MultiReader(bytes.NewReader(isaBuf[next:]), r)
	tokOpts := []tokenize.Option{tokenize.WithMaxSegments(cfg.maxSegments)}
	if cfg.releaseCharacter != 0 {
		tokOpts = append(tokOpts, tokenize.WithReleaseCharacter(cfg.releaseCharacter))
	}

	return &Reader{
		cfg:     cfg,
		builder: build.New(cfg.buildOptions()...),
		tr:      tokenize.NewReader(rest, d, tokOpts...),
		interchange: x12.Interchange{
			SenderQualifier:   isaSeg.Value(5),
			SenderID:          strings.TrimSpace(isaSeg.Value(6)),
			ReceiverQualifier: isaSeg.Value(7),
			ReceiverID:        strings.TrimSpace(isaSeg.Value(8)),
			Date:              isaSeg.Value(9),
			Time:              isaSeg.Value(10),
			VersionNumber:     isaSeg.Value(12),
			ControlNumber:     isaSeg.Value(13),
			AckRequested:      isaSeg.Value(14) == "1",
			UsageIndicator:    isaSeg.Value(15),
			Delimiters:        d,
		},
	}, nil
}

// Interchange returns the envelope header recovered from ISA. Its
// FunctionalGroups field is never populated; groups are surfaced one
// at a time through Group as Scan advances.
func (r *Reader) Interchange() x12.Interchange {
	return r.interchange
}

// Scan advances to the next transaction set, returning false at end
// of input or on the first error. Callers check Err to distinguish
// the two.
func (r *Reader) Scan() bool {
	return r.ScanContext(context.Background())
}

// ScanContext is Scan with cancellation support.
func (r *Reader) ScanContext(ctx context.Context) bool {
	if r.err != nil || r.state == stateDone {
		return false
	}
	for {
		if err := checkCanceled(ctx); err != nil {
			r.err = err
			return false
		}
		if !r.tr.Scan() {
			if err := r.tr.Err(); err != nil {
				r.err = err
			} else {
				r.err = &x12.StructureError{Reason: "missing IEA segment"}
			}
			r.state = stateDone
			return false
		}
		seg := r.tr.Segment()

		switch r.state {
		case stateBeforeGroup:
			switch seg.ID {
			case "GS":
				r.openGroup(seg)
				continue
			case "IEA":
				if err := r.closeInterchange(seg); err != nil {
					r.err = err
					r.state = stateDone
					return false
				}
				r.state = stateDone
				return false
			default:
				r.err = &x12.StructureError{Reason: fmt.Sprintf("unexpected segment %q outside any functional group", seg.ID)}
				r.state = stateDone
				return false
			}
		case stateInGroup:
			switch seg.ID {
			case "ST":
				ts, err := r.builder.BuildTransactionSet(ctx, seg, r.tr, r.curGroup.VersionRelease, &r.report)
				if err != nil {
					r.err = err
					r.state = stateDone
					return false
				}
				r.curGroupTS++
				r.ts = ts
				return true
			case "GE":
				if err := r.closeGroup(seg); err != nil {
					r.err = err
					r.state = stateDone
					return false
				}
				r.state = stateBeforeGroup
				continue
			default:
				r.err = &x12.StructureError{Reason: fmt.Sprintf("unexpected segment %q inside functional group %s", seg.ID, r.curGroup.ControlNumber)}
				r.state = stateDone
				return false
			}
		}
	}
}

func (r *Reader) openGroup(gs x12.Segment) {
	r.curGroup = x12.FunctionalGroup{
		FunctionalID:   gs.Value(1),
		SenderCode:     gs.Value(2),
		ReceiverCode:   gs.Value(3),
		ControlNumber:  gs.Value(6),
		VersionRelease: gs.Value(8),
	}
	r.curGroupTS = 0
	r.state = stateInGroup
}

func (r *Reader) closeGroup(ge x12.Segment) error {
	if err := checkControlNumber("GS06/GE02", r.curGroup.ControlNumber, ge.Value(2)); err != nil {
		return err
	}
	if err := checkCount("GE01", ge.Value(1), r.curGroupTS); err != nil {
		return err
	}
	r.groupCount++
	return nil
}

func (r *Reader) closeInterchange(iea x12.Segment) error {
	if err := checkControlNumber("ISA13/IEA02", r.interchange.ControlNumber, iea.Value(2)); err != nil {
		return err
	}
	return checkCount("IEA01", iea.Value(1), r.groupCount)
}

// TransactionSet returns the transaction set most recently assembled
// by Scan.
func (r *Reader) TransactionSet() x12.TransactionSet {
	return r.ts
}

// Group returns the header of the functional group the most recently
// scanned transaction set belongs to. TransactionSets is never
// populated; Scan surfaces one transaction set at a time instead.
func (r *Reader) Group() x12.FunctionalGroup {
	return r.curGroup
}

// Report returns the non-terminal observations (e.g. a GS08/ST03
// implementation-convention disagreement) accumulated so far.
func (r *Reader) Report() *x12.Report {
	return &r.report
}

// Err returns the first error encountered, or nil if Scan stopped
// because it reached a well-formed IEA.
func (r *Reader) Err() error {
	return r.err
}

func checkControlNumber(label, expected, actual string) error {
	if expected != actual {
		return &x12.StructureError{Reason: fmt.Sprintf("%s control number mismatch: %q != %q", label, expected, actual)}
	}
	return nil
}

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

func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("stream canceled: %w", ctx.Err())
	default:
		return nil
	}
}
