package schema

func init() {
	Register(eligibilityInquiry270())
	Register(eligibilityResponse271())
	Register(enrollment834())
}

// eligibilityInquiry270 is a reduced 270 (Eligibility, Coverage or
// Benefit Inquiry) schema.
func eligibilityInquiry270() TransactionSchema {
	return TransactionSchema{
		TransactionType:          "270",
		ImplementationConvention: "005010X279A1",
		Nodes: []Node{
			{Kind: SegmentNode, ID: "BHT", Usage: Mandatory, Min: 1, Max: 1},
			{
				Kind: LoopNode, ID: "2000A", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "HL", TriggerElement: 3, TriggerValues: []string{"20"},
				Children: []Node{
					{Kind: SegmentNode, ID: "HL", Usage: Mandatory, Min: 1, Max: 1},
					{
						Kind: LoopNode, ID: "2100A", Usage: Mandatory, Min: 1, Max: 1,
						TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"PR"},
						Children: []Node{
							{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
						},
					},
				},
			},
			{
				Kind: LoopNode, ID: "2000B", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "HL", TriggerElement: 3, TriggerValues: []string{"21"},
				Children: []Node{
					{Kind: SegmentNode, ID: "HL", Usage: Mandatory, Min: 1, Max: 1},
					{
						Kind: LoopNode, ID: "2100B", Usage: Mandatory, Min: 1, Max: 1,
						TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"1P"},
						Children: []Node{
							{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
						},
					},
				},
			},
			{
				Kind: LoopNode, ID: "2000C", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "HL", TriggerElement: 3, TriggerValues: []string{"22"},
				Children: []Node{
					{Kind: SegmentNode, ID: "HL", Usage: Mandatory, Min: 1, Max: 1},
					{
						Kind: LoopNode, ID: "2100C", Usage: Mandatory, Min: 1, Max: 1,
						TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"IL"},
						Children: []Node{
							{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
							{Kind: SegmentNode, ID: "DMG", Usage: Optional, Min: 0, Max: 1},
							{Kind: SegmentNode, ID: "EQ", Usage: Mandatory, Min: 1, Max: 0},
						},
					},
				},
			},
		},
	}
}

// eligibilityResponse271 is a reduced 271 (Eligibility, Coverage or
// Benefit Information) schema, the response counterpart to 270.
func eligibilityResponse271() TransactionSchema {
	s := eligibilityInquiry270()
	s.TransactionType = "271"
	s.ImplementationConvention = "005010X279A1"
	// 271 adds an EB (Eligibility or Benefit Information) segment
	// inside 2100C, carrying the actual coverage answer.
	for i := range s.Nodes {
		addEBToEligibilityLoop(&s.Nodes[i])
	}
	return s
}

func addEBToEligibilityLoop(n *Node) {
	if n.ID == "2100C" {
		n.Children = append(n.Children, Node{Kind: SegmentNode, ID: "EB", Usage: Mandatory, Min: 1, Max: 0})
		return
	}
	for i := range n.Children {
		addEBToEligibilityLoop(&n.Children[i])
	}
}

// enrollment834 is a reduced 834 (Benefit Enrollment and Maintenance) schema.
func enrollment834() TransactionSchema {
	return TransactionSchema{
		TransactionType:          "834",
		ImplementationConvention: "005010X220A1",
		Nodes: []Node{
			{Kind: SegmentNode, ID: "BGN", Usage: Mandatory, Min: 1, Max: 1},
			{
				Kind: LoopNode, ID: "2000", Usage: Mandatory, Min: 1, Max: 0,
				TriggerSegment: "INS", TriggerElement: 0,
				Children: []Node{
					{Kind: SegmentNode, ID: "INS", Usage: Mandatory, Min: 1, Max: 1},
					{
						Kind: LoopNode, ID: "2100A", Usage: Mandatory, Min: 1, Max: 1,
						TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"IL"},
						Children: []Node{
							{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
						},
					},
					{
						Kind: LoopNode, ID: "2300", Usage: Optional, Min: 0, Max: 0,
						TriggerSegment: "HD", TriggerElement: 0,
						Children: []Node{
							{Kind: SegmentNode, ID: "HD", Usage: Mandatory, Min: 1, Max: 1},
						},
					},
				},
			},
		},
	}
}
