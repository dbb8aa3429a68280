package schema

import "github.com/dshills/gox12/codeset"

func init() {
	Register(professional837())
}

// professional837 is a deliberately reduced 837P (Health Care Claim:
// Professional) schema: enough loop/segment structure to exercise the
// Envelope/Loop Builder's stack discipline and the Validator's
// structural, element, and semantic passes, without attempting to
// encode the full implementation guide.
func professional837() TransactionSchema {
	return TransactionSchema{
		TransactionType:          "837",
		ImplementationConvention: "005010X222A1",
		Nodes: []Node{
			{Kind: SegmentNode, ID: "BHT", Usage: Mandatory, Min: 1, Max: 1},
			{
				Kind: LoopNode, ID: "1000A", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"41"},
				Children: []Node{
					{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1,
						Elements: []ElementRule{
							{Position: 9, Name: "Submitter Identifier", Required: true, MinLength: 2, MaxLength: 80},
						}},
				},
			},
			{
				Kind: LoopNode, ID: "1000B", Usage: Mandatory, Min: 1, Max: 1,
				TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"40"},
				Children: []Node{
					{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
				},
			},
			{
				Kind: LoopNode, ID: "2000A", Usage: Mandatory, Min: 1, Max: 0,
				TriggerSegment: "HL", TriggerElement: 3, TriggerValues: []string{"20"},
				Children: []Node{
					{Kind: SegmentNode, ID: "HL", Usage: Mandatory, Min: 1, Max: 1},
					{
						Kind: LoopNode, ID: "2010AA", Usage: Mandatory, Min: 1, Max: 1,
						TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"85"},
						Children: []Node{
							{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1,
								Elements: []ElementRule{
									{Position: 9, Name: "Billing Provider NPI", Required: true, MinLength: 10, MaxLength: 10, Check: codeset.ValidNPI},
								}},
						},
					},
					{
						Kind: LoopNode, ID: "2000B", Usage: Mandatory, Min: 1, Max: 0,
						TriggerSegment: "HL", TriggerElement: 3, TriggerValues: []string{"22"},
						Children: []Node{
							{Kind: SegmentNode, ID: "HL", Usage: Mandatory, Min: 1, Max: 1},
							{Kind: SegmentNode, ID: "SBR", Usage: Mandatory, Min: 1, Max: 1},
							{
								Kind: LoopNode, ID: "2010BA", Usage: Mandatory, Min: 1, Max: 1,
								TriggerSegment: "NM1", TriggerElement: 1, TriggerValues: []string{"IL"},
								Children: []Node{
									{Kind: SegmentNode, ID: "NM1", Usage: Mandatory, Min: 1, Max: 1},
								},
							},
							{
								Kind: LoopNode, ID: "2300", Usage: Mandatory, Min: 1, Max: 0,
								TriggerSegment: "CLM", TriggerElement: 0,
								Children: []Node{
									{Kind: SegmentNode, ID: "CLM", Usage: Mandatory, Min: 1, Max: 1,
										Elements: []ElementRule{
											{Position: 1, Name: "Claim Submitter Identifier", Required: true, MaxLength: 38},
											{Position: 2, Name: "Total Claim Charge Amount", Required: true},
										}},
									{Kind: SegmentNode, ID: "HI", Usage: Optional, Min: 0, Max: 1},
									{
										Kind: LoopNode, ID: "2400", Usage: Mandatory, Min: 1, Max: 0,
										TriggerSegment: "LX", TriggerElement: 0,
										Children: []Node{
											{Kind: SegmentNode, ID: "LX", Usage: Mandatory, Min: 1, Max: 1},
											{Kind: SegmentNode, ID: "SV1", Usage: Mandatory, Min: 1, Max: 1,
												Elements: []ElementRule{
													{Position: 2, Name: "Line Item Charge Amount", Required: true},
												}},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
