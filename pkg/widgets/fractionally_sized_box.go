package widgets

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// FractionallySizedBox sizes its child to a fraction of the available space.
//
// WidthFactor and HeightFactor multiply the incoming maximum constraints.
// A zero factor leaves that axis to the child's own sizing. The box itself
// always occupies the full available space on a factored axis, with the
// child centered horizontally, so an animated factor grows the child in
// place without shifting surrounding layout.
type FractionallySizedBox struct {
	core.RenderObjectBase
	WidthFactor  float64
	HeightFactor float64
	Child        core.Widget
}

func (f FractionallySizedBox) ChildWidget() core.Widget {
	return f.Child
}

func (f FractionallySizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderFractionallySizedBox{
		widthFactor:  f.WidthFactor,
		heightFactor: f.HeightFactor,
	}
	box.SetSelf(box)
	return box
}

func (f FractionallySizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderFractionallySizedBox); ok {
		box.widthFactor = f.WidthFactor
		box.heightFactor = f.HeightFactor
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderFractionallySizedBox struct {
	layout.RenderBoxBase
	child        layout.RenderBox
	widthFactor  float64
	heightFactor float64
}

func (r *renderFractionallySizedBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderFractionallySizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderFractionallySizedBox) PerformLayout() {
	constraints := r.Constraints()

	childConstraints := constraints
	if r.widthFactor > 0 {
		width := constraints.MaxWidth * r.widthFactor
		childConstraints.MinWidth = width
		childConstraints.MaxWidth = width
	}
	if r.heightFactor > 0 {
		height := constraints.MaxHeight * r.heightFactor
		childConstraints.MinHeight = height
		childConstraints.MaxHeight = height
	}

	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{
			Width:  childConstraints.MaxWidth,
			Height: childConstraints.MaxHeight,
		}))
		return
	}

	r.child.Layout(childConstraints, true) // true: we read child.Size()
	childSize := r.child.Size()

	size := childSize
	if r.widthFactor > 0 {
		size.Width = constraints.MaxWidth
	}
	if r.heightFactor > 0 {
		size.Height = constraints.MaxHeight
	}
	size = constraints.Constrain(size)
	r.SetSize(size)

	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{
			X: (size.Width - childSize.Width) / 2,
			Y: (size.Height - childSize.Height) / 2,
		},
	})
}

func (r *renderFractionallySizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderFractionallySizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	offset := getChildOffset(r.child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	if r.child != nil && r.child.HitTest(local, result) {
		return true
	}
	return false
}
