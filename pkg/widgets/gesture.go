package widgets

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// GestureDetector invokes a callback when its child is tapped.
//
// The detector sizes itself to its child and participates in hit testing
// even when the child does not, so text and images become tappable when
// wrapped.
type GestureDetector struct {
	core.RenderObjectBase
	OnTap func()
	Child core.Widget
}

func (g GestureDetector) ChildWidget() core.Widget {
	return g.Child
}

func (g GestureDetector) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	detector := &renderGestureDetector{onTap: g.OnTap}
	detector.SetSelf(detector)
	return detector
}

func (g GestureDetector) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if detector, ok := renderObject.(*renderGestureDetector); ok {
		detector.onTap = g.OnTap
	}
}

type renderGestureDetector struct {
	layout.RenderBoxBase
	child layout.RenderBox
	onTap func()
}

// OnTap satisfies [layout.TapTarget].
func (r *renderGestureDetector) OnTap() {
	if r.onTap != nil {
		r.onTap()
	}
}

func (r *renderGestureDetector) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderGestureDetector) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderGestureDetector) PerformLayout() {
	constraints := r.Constraints()
	if r.child != nil {
		r.child.Layout(constraints, true) // true: we read child.Size()
		r.SetSize(r.child.Size())
	} else {
		r.SetSize(constraints.Constrain(graphics.Size{}))
	}
}

func (r *renderGestureDetector) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderGestureDetector) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		offset := getChildOffset(r.child)
		local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		r.child.HitTest(local, result)
	}
	result.Add(r)
	return true
}
