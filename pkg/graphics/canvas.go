package graphics

import "image"

// Canvas receives drawing commands from render objects. The engine and the
// test harness provide recording implementations; a rasterizing backend can
// replay the recorded display list.
type Canvas interface {
	Save()
	// SaveLayerAlpha pushes a compositing layer; drawing until the matching
	// Restore is blended with the given alpha.
	SaveLayerAlpha(bounds Rect, alpha float64)
	Restore()
	Translate(dx, dy float64)
	ClipRect(rect Rect)
	DrawRect(rect Rect, paint Paint)
	DrawText(layout *TextLayout, offset Offset)
	DrawImage(src image.Image, dst Rect)
}
