package widgets

import (
	"image"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// Image displays a decoded image scaled to the chosen dimensions.
//
// When Width or Height is zero, the missing dimension is derived from the
// source's aspect ratio; when both are zero the intrinsic pixel size is used.
// A nil Source renders nothing and occupies the explicit dimensions, so a
// page keeps its layout when an asset fails to load.
type Image struct {
	core.RenderObjectBase
	Source image.Image
	Width  float64
	Height float64
}

func (i Image) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	img := &renderImage{source: i.Source, width: i.Width, height: i.Height}
	img.SetSelf(img)
	return img
}

func (i Image) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if img, ok := renderObject.(*renderImage); ok {
		img.source = i.Source
		img.width = i.Width
		img.height = i.Height
		img.MarkNeedsLayout()
		img.MarkNeedsPaint()
	}
}

type renderImage struct {
	layout.RenderBoxBase
	source image.Image
	width  float64
	height float64
}

func (r *renderImage) intrinsicSize() graphics.Size {
	if r.source == nil {
		return graphics.Size{Width: r.width, Height: r.height}
	}
	bounds := r.source.Bounds()
	intrinsic := graphics.Size{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}
	switch {
	case r.width > 0 && r.height > 0:
		return graphics.Size{Width: r.width, Height: r.height}
	case r.width > 0 && intrinsic.Width > 0:
		return graphics.Size{Width: r.width, Height: r.width * intrinsic.Height / intrinsic.Width}
	case r.height > 0 && intrinsic.Height > 0:
		return graphics.Size{Width: r.height * intrinsic.Width / intrinsic.Height, Height: r.height}
	default:
		return intrinsic
	}
}

func (r *renderImage) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(r.intrinsicSize()))
}

func (r *renderImage) Paint(ctx *layout.PaintContext) {
	if r.source == nil {
		return
	}
	size := r.Size()
	if size.IsEmpty() {
		return
	}
	ctx.Canvas.DrawImage(r.source, graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

func (r *renderImage) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	return false
}
