package widgets

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// Translate paints its child shifted by the given offset without affecting
// layout. Surrounding widgets keep their positions, which makes Translate
// suitable for slide-in effects where the occupied space must stay stable.
type Translate struct {
	core.RenderObjectBase
	Offset graphics.Offset
	Child  core.Widget
}

func (t Translate) ChildWidget() core.Widget {
	return t.Child
}

func (t Translate) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	translate := &renderTranslate{offset: t.Offset}
	translate.SetSelf(translate)
	return translate
}

func (t Translate) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if translate, ok := renderObject.(*renderTranslate); ok {
		translate.offset = t.Offset
		translate.MarkNeedsPaint()
	}
}

type renderTranslate struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	offset graphics.Offset
}

func (r *renderTranslate) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderTranslate) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderTranslate) PerformLayout() {
	constraints := r.Constraints()
	if r.child != nil {
		r.child.Layout(constraints, true) // true: we read child.Size()
		r.SetSize(r.child.Size())
	} else {
		r.SetSize(constraints.Constrain(graphics.Size{}))
	}
}

func (r *renderTranslate) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, r.offset.Add(getChildOffset(r.child)))
	}
}

func (r *renderTranslate) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if r.child == nil {
		return false
	}
	local := graphics.Offset{X: position.X - r.offset.X, Y: position.Y - r.offset.Y}
	return r.child.HitTest(local, result)
}
