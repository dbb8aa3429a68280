package x12

// TransactionSet is one ST...SE envelope: a transaction type code
// (ST01, e.g. "837"), an implementation convention reference (ST03,
// often absent pre-5010), a control number (ST02, mirrored at SE02),
// and a root Loop holding every segment between ST and SE.
type TransactionSet struct {
	Code                   string
	ControlNumber          string
	ImplementationReference string
	Root                   Loop
}

// SegmentCount returns the number of segments from ST through SE
// inclusive, the value SE01 must carry.
func (t TransactionSet) SegmentCount() int {
	// ST and SE themselves count toward SE01 alongside every segment
	// in the root loop.
	return t.Root.SegmentCount() + 2
}

// FunctionalGroup is one GS...GE envelope: functional identifier code
// (GS01, e.g. "HC" for health care claims), sender/receiver qualifiers
// and IDs (GS02/GS03), a control number (GS06, mirrored at GE02), a
// version/release/industry identifier (GS08, e.g. "005010X222A1"), and
// its ordered transaction sets.
type FunctionalGroup struct {
	FunctionalID   string
	SenderCode     string
	ReceiverCode   string
	ControlNumber  string
	VersionRelease string
	TransactionSets []TransactionSet
}

// Interchange is the outermost envelope: sender/receiver IDs and
// qualifiers, a control number (ISA13, mirrored at IEA02), the usage
// indicator (ISA15, "P" production or "T" test), the delimiters in
// force, and its ordered functional groups.
type Interchange struct {
	SenderQualifier   string
	SenderID          string
	ReceiverQualifier string
	ReceiverID        string
	ControlNumber     string
	UsageIndicator    string
	Date              string
	Time              string
	VersionNumber     string
	AckRequested      bool
	Delimiters        Delimiters
	FunctionalGroups  []FunctionalGroup
}

// GroupCount returns the number of functional groups, the value IEA01
// must carry.
func (ic Interchange) GroupCount() int {
	return len(ic.FunctionalGroups)
}

// TransactionSetCount returns the number of transaction sets in a
// functional group, the value GE01 must carry.
func (g FunctionalGroup) TransactionSetCount() int {
	return len(g.TransactionSets)
}
