package widgets

import (
	"math"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/errors"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// Text displays a string with the given style.
//
// Text wraps at word boundaries when the available width is bounded. MaxLines
// limits the number of laid-out lines (0 = unlimited).
//
// Example:
//
//	Text{
//	    Content: "Program",
//	    Style:   graphics.TextStyle{FontSize: 24, FontWeight: graphics.FontWeightBold},
//	}
type Text struct {
	core.RenderObjectBase
	Content  string
	Style    graphics.TextStyle
	MaxLines int
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	paragraph := &renderParagraph{
		content:  t.Content,
		style:    t.Style,
		maxLines: t.MaxLines,
	}
	paragraph.SetSelf(paragraph)
	return paragraph
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if paragraph, ok := renderObject.(*renderParagraph); ok {
		if paragraph.content == t.Content && paragraph.style == t.Style && paragraph.maxLines == t.MaxLines {
			return
		}
		paragraph.content = t.Content
		paragraph.style = t.Style
		paragraph.maxLines = t.MaxLines
		paragraph.layout = nil
		paragraph.MarkNeedsLayout()
		paragraph.MarkNeedsPaint()
	}
}

type renderParagraph struct {
	layout.RenderBoxBase
	content     string
	style       graphics.TextStyle
	maxLines    int
	layout      *graphics.TextLayout
	layoutWidth float64
}

func (r *renderParagraph) PerformLayout() {
	constraints := r.Constraints()

	maxWidth := constraints.MaxWidth
	if maxWidth == math.MaxFloat64 {
		maxWidth = 0 // unbounded: single line
	}

	if r.layout == nil || r.layoutWidth != maxWidth {
		manager, err := graphics.DefaultFontManagerErr()
		if err != nil {
			r.SetSize(constraints.Constrain(graphics.Size{}))
			return
		}
		measured, err := manager.Layout(r.content, r.style, maxWidth, r.maxLines)
		if err != nil {
			errors.Report(errors.New("widgets.Text", errors.KindRender, err))
			r.SetSize(constraints.Constrain(graphics.Size{}))
			return
		}
		r.layout = measured
		r.layoutWidth = maxWidth
	}

	r.SetSize(constraints.Constrain(r.layout.Size))
}

func (r *renderParagraph) Paint(ctx *layout.PaintContext) {
	if r.layout == nil || r.content == "" {
		return
	}
	ctx.Canvas.DrawText(r.layout, graphics.Offset{})
}

func (r *renderParagraph) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}
