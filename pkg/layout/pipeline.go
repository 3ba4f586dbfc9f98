package layout

// PipelineOwner tracks whether the render tree needs layout or paint.
//
// The engine runs a full pass from the root each frame: FlushLayoutForRoot
// lays out from the root with tight constraints, propagating down to every
// box whose needsLayout flag is set; painting then replays the whole tree
// into a fresh display list when anything scheduled paint.
type PipelineOwner struct {
	needsLayout bool
	needsPaint  bool
}

// ScheduleLayout marks the tree as needing a layout pass.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if object == nil {
		return
	}
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks the tree as needing a paint pass.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if object == nil {
		return
	}
	p.needsPaint = true
}

// NeedsLayout reports if a layout pass is pending.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if a paint pass is pending.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot runs layout starting from the root.
//
// The typical frame sequence is:
//  1. FlushBuild - rebuilds dirty elements, updates render object properties
//  2. FlushLayoutForRoot - lays out from root, propagating to dirty subtrees
//  3. Paint - renders the tree
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	root.Layout(constraints, false)
	p.needsLayout = false
}

// ClearPaint marks the pending paint pass as done.
func (p *PipelineOwner) ClearPaint() {
	p.needsPaint = false
}
