package widgets

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// Expanded makes its child fill all remaining space along the main axis of a
// [Row] or [Column].
//
// After non-flexible children are laid out, remaining space is distributed
// among Expanded children proportionally based on their Flex factor. The
// default Flex is 1.
//
// Important: The parent Row or Column must have MainAxisSizeMax for Expanded
// to receive any space. With MainAxisSizeMin, there is no remaining space to
// fill.
type Expanded struct {
	core.RenderObjectBase
	Child core.Widget
	Flex  int
}

func (e Expanded) ChildWidget() core.Widget {
	return e.Child
}

func (e Expanded) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	expanded := &renderExpanded{flex: e.effectiveFlex()}
	expanded.SetSelf(expanded)
	return expanded
}

func (e Expanded) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if expanded, ok := renderObject.(*renderExpanded); ok {
		expanded.flex = e.effectiveFlex()
		expanded.MarkNeedsLayout()
	}
}

// effectiveFlex returns the flex factor, defaulting to 1 if not set.
func (e Expanded) effectiveFlex() int {
	if e.Flex <= 0 {
		return 1
	}
	return e.Flex
}

type renderExpanded struct {
	layout.RenderBoxBase
	child layout.RenderBox
	flex  int
}

func (r *renderExpanded) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderExpanded) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// PerformLayout passes the parent flex container's constraints through.
// The parent already tightened the main axis to the allocated space.
func (r *renderExpanded) PerformLayout() {
	constraints := r.Constraints()

	if r.child != nil {
		r.child.Layout(constraints, true) // true: we read child.Size()
		r.SetSize(constraints.Constrain(r.child.Size()))
		r.child.SetParentData(&layout.BoxParentData{})
	} else {
		r.SetSize(constraints.Constrain(graphics.Size{}))
	}
}

func (r *renderExpanded) FlexFactor() int {
	return r.flex
}

func (r *renderExpanded) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderExpanded) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}
