package build

import (
	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

// assemblerFrame is one entry in the open-loop stack: the schema
// children admissible at this point, and the live Loop they populate.
type assemblerFrame struct {
	children []schema.Node
	loop     *x12.Loop
}

// assembler builds one TransactionSet's Loop tree segment by segment,
// maintaining a stack of open loops. Appending to a frame's loop
// invalidates pointers held by any frame above it in the stack, which
// is why add always truncates the stack to that frame whenever it
// appends to the frame's Loops slice.
type assembler struct {
	rootLoop x12.Loop
	stack    []assemblerFrame
}

// newAssembler seeds the stack with a single frame rooted at the
// transaction schema's top-level nodes.
func newAssembler(sch schema.TransactionSchema) *assembler {
	a := &assembler{}
	a.stack = []assemblerFrame{{children: sch.Nodes, loop: &a.rootLoop}}
	return a
}

// root returns the assembled Loop tree once every segment between ST
// and SE has been added.
func (a *assembler) root() x12.Loop {
	return a.rootLoop
}

// add places seg into the tree: closing frames whose children no
// longer admit it, then either opening a new loop, appending to the
// matching open loop, or — for a segment unrecognized by the schema —
// appending it to the innermost still-open loop so it is not silently
// dropped. The Validator reports unrecognized segments separately.
func (a *assembler) add(seg x12.Segment) {
	for i := len(a.stack) - 1; i >= 0; i-- {
		f := a.stack[i]
		if child, ok := matchLoop(f.children, seg); ok {
			f.loop.Loops = append(f.loop.Loops, x12.Loop{ID: child.ID})
			opened := &f.loop.Loops[len(f.loop.Loops)-1]
			a.stack = append(a.stack[:i+1], assemblerFrame{children: child.Children, loop: opened})
			if matchSegment(child.Children, seg.ID) {
				opened.Segments = append(opened.Segments, seg)
			}
			return
		}
		if matchSegment(f.children, seg.ID) {
			f.loop.Segments = append(f.loop.Segments, seg)
			a.stack = a.stack[:i+1]
			return
		}
	}
	top := a.stack[len(a.stack)-1]
	top.loop.Segments = append(top.loop.Segments, seg)
}

// matchLoop returns the first LoopNode among children whose trigger
// segment and (if constrained) qualifier value match seg.
func matchLoop(children []schema.Node, seg x12.Segment) (schema.Node, bool) {
	for _, c := range children {
		if c.Kind != schema.LoopNode || c.TriggerSegment != seg.ID {
			continue
		}
		triggerValue := ""
		if c.TriggerElement > 0 {
			triggerValue = seg.Value(c.TriggerElement)
		}
		if c.Matches(seg.ID, triggerValue) {
			return c, true
		}
	}
	return schema.Node{}, false
}

// matchSegment reports whether children contains a SegmentNode for segID.
func matchSegment(children []schema.Node, segID string) bool {
	for _, c := range children {
		if c.Kind == schema.SegmentNode && c.ID == segID {
			return true
		}
	}
	return false
}
