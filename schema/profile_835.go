package schema

func init() {
	Register(remittance835())
}

// remittance835 is a reduced 835 (Health Care Claim Payment/Advice)
// schema covering the payer/payee header and one claim payment loop,
// enough to exercise round-trip generation and structural validation.
func remittance835() TransactionSchema {
	return TransactionSchema{
		TransactionType:          "835",
		ImplementationConvention: "005010X221A1",
		Nodes: []Node{
			{Kind: SegmentNode, ID: "BPR", Usage: Mandatory, Min: 1, Max: 1,
				Elements: []ElementRule{
					{Position: 2, Name: "Total Actual Provider Payment Amount", Required: true},
				}},
			{Kind: SegmentNode, ID: "TRN", Usage: Mandatory, Min: 1, Max: 1},
			{
				Kind: LoopNode, ID: "1000A", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "N1", TriggerElement: 1, TriggerValues: []string{"PR"},
				Children: []Node{
					{Kind: SegmentNode, ID: "N1", Usage: Mandatory, Min: 1, Max: 1},
				},
			},
			{
				Kind: LoopNode, ID: "1000B", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "N1", TriggerElement: 1, TriggerValues: []string{"PE"},
				Children: []Node{
					{Kind: SegmentNode, ID: "N1", Usage: Mandatory, Min: 1, Max: 1},
				},
			},
			{
				Kind: LoopNode, ID: "2000", Usage: Mandatory, Min: 1, Max: 0,
				TriggerSegment: "LX", TriggerElement: 0,
				Children: []Node{
					{Kind: SegmentNode, ID: "LX", Usage: Mandatory, Min: 1, Max: 1},
					{
						Kind: LoopNode, ID: "2100", Usage: Mandatory, Min: 1, Max: 0,
						TriggerSegment: "CLP", TriggerElement: 0,
						Children: []Node{
							{Kind: SegmentNode, ID: "CLP", Usage: Mandatory, Min: 1, Max: 1,
								Elements: []ElementRule{
									{Position: 3, Name: "Total Claim Charge Amount", Required: true},
									{Position: 4, Name: "Total Claim Payment Amount", Required: true},
								}},
							{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
							{
								Kind: LoopNode, ID: "2110", Usage: Optional, Min: 0, Max: 0,
								TriggerSegment: "SVC", TriggerElement: 0,
								Children: []Node{
									{Kind: SegmentNode, ID: "SVC", Usage: Mandatory, Min: 1, Max: 1},
								},
							},
						},
					},
				},
			},
		},
	}
}
