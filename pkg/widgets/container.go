package widgets

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// Container combines a background fill, padding, and optional fixed
// dimensions in a single widget.
//
// A Container with no child occupies the given Width and Height (or the
// padding size when those are zero). With a child, the container wraps the
// child plus padding, clamped to explicit dimensions when set.
//
// Example:
//
//	Container{
//	    Color:   graphics.RGB(24, 24, 24),
//	    Padding: layout.EdgeInsetsAll(32),
//	    Child:   content,
//	}
type Container struct {
	core.RenderObjectBase
	Color   graphics.Color
	Padding layout.EdgeInsets
	Width   float64
	Height  float64
	Child   core.Widget
}

func (c Container) ChildWidget() core.Widget {
	return c.Child
}

func (c Container) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderContainer{
		color:   c.Color,
		padding: c.Padding,
		width:   c.Width,
		height:  c.Height,
	}
	box.SetSelf(box)
	return box
}

func (c Container) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderContainer); ok {
		box.color = c.Color
		box.padding = c.Padding
		box.width = c.Width
		box.height = c.Height
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderContainer struct {
	layout.RenderBoxBase
	child   layout.RenderBox
	color   graphics.Color
	padding layout.EdgeInsets
	width   float64
	height  float64
}

func (r *renderContainer) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderContainer) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderContainer) PerformLayout() {
	constraints := r.Constraints()

	// Explicit dimensions tighten the incoming constraints.
	if r.width > 0 {
		width := layout.Constraints{MinWidth: constraints.MinWidth, MaxWidth: constraints.MaxWidth}.
			Constrain(graphics.Size{Width: r.width}).Width
		constraints.MinWidth = width
		constraints.MaxWidth = width
	}
	if r.height > 0 {
		height := layout.Constraints{MinHeight: constraints.MinHeight, MaxHeight: constraints.MaxHeight}.
			Constrain(graphics.Size{Height: r.height}).Height
		constraints.MinHeight = height
		constraints.MaxHeight = height
	}

	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{
			Width:  r.padding.Horizontal(),
			Height: r.padding.Vertical(),
		}))
		return
	}

	childConstraints := constraints.Deflate(r.padding)
	r.child.Layout(childConstraints, true) // true: we read child.Size()
	childSize := r.child.Size()
	size := constraints.Constrain(graphics.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	})
	r.SetSize(size)
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: r.padding.Left, Y: r.padding.Top},
	})
}

func (r *renderContainer) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if r.color != 0 {
		paint := graphics.DefaultPaint()
		paint.Color = r.color
		ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), paint)
	}
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderContainer) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	offset := getChildOffset(r.child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	if r.child != nil && r.child.HitTest(local, result) {
		return true
	}
	result.Add(r)
	return true
}
