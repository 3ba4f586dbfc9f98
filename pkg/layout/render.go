package layout

import "github.com/mafeblanco565/mayrav/pkg/graphics"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes.
//
// Concrete render objects embed it, call SetSelf with themselves, and
// implement PerformLayout plus Paint/HitTest. Layout handles dirty tracking
// and constraint caching; MarkNeedsLayout and MarkNeedsPaint walk to the
// pipeline owner for frame scheduling.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	owner       *PipelineOwner
	self        RenderObject
	parent      RenderObject
	depth       int
	needsLayout bool
	constraints Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size. A size change invalidates paint.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
// An offset change invalidates the parent's paint.
func (r *RenderBoxBase) SetParentData(data any) {
	if newData, ok := data.(*BoxParentData); ok {
		oldData, hadOldData := r.parentData.(*BoxParentData)
		if (!hadOldData || oldData.Offset != newData.Offset) && r.parent != nil {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

// MarkNeedsLayout marks this render box and its ancestors as needing layout
// and schedules a layout pass with the pipeline owner. Boxes start dirty, so
// an already-dirty box still arms the pipeline rather than returning early;
// the attachment itself may have happened after the flag was set.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		if r.owner != nil && r.self != nil {
			r.owner.ScheduleLayout(r.self)
		}
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint schedules a paint pass with the pipeline owner.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
// A box attached while dirty schedules its pending layout immediately;
// nothing else will, since the dirty flag predates the attachment.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
	if r.needsLayout && owner != nil && r.self != nil {
		owner.ScheduleLayout(r.self)
	}
	if visitor, ok := r.self.(ChildVisitor); ok {
		visitor.VisitChildren(func(child RenderObject) {
			child.SetOwner(owner)
		})
	}
}

// Owner returns the pipeline owner, nil before attachment.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// SetSelf registers the concrete render object for scheduling and dispatch.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and recomputes depth.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	oldParent := r.parent
	r.parent = parent
	switch {
	case parent == nil:
		r.depth = 0
	default:
		if getter, ok := parent.(interface{ Depth() int }); ok {
			r.depth = getter.Depth() + 1
		} else {
			r.depth = 1
		}
	}
	r.constraints = Constraints{}
	r.needsLayout = true
	if oldParent != nil {
		oldParent.MarkNeedsPaint()
	}
	if parent != nil {
		parent.MarkNeedsPaint()
	}
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout stores constraints and delegates to the concrete PerformLayout.
// Clean boxes with unchanged constraints skip layout entirely.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// WithinBounds reports whether a position falls inside a box of the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 &&
		position.X <= size.Width && position.Y <= size.Height
}

// SetParentOnChild assigns a parent reference when the child supports it.
func SetParentOnChild(child RenderObject, parent RenderObject) {
	if child == nil {
		return
	}
	if setter, ok := child.(interface{ SetParent(RenderObject) }); ok {
		setter.SetParent(parent)
	}
}

// AsRenderBox converts a render object to a RenderBox, nil when impossible.
func AsRenderBox(object RenderObject) RenderBox {
	if object == nil {
		return nil
	}
	if box, ok := object.(RenderBox); ok {
		return box
	}
	return nil
}

// ChildOffset extracts the offset from a child's parent data.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok && data != nil {
		return data.Offset
	}
	return graphics.Offset{}
}
