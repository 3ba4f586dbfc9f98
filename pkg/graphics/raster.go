package graphics

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas replays drawing commands onto an in-memory RGBA image.
// It implements Canvas and is the rendering backend for headless output.
type RasterCanvas struct {
	dst   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	clip   image.Rectangle
	// layer is non-nil while drawing inside a SaveLayerAlpha scope.
	layer *image.RGBA
	alpha float64
}

// NewRasterCanvas creates a canvas over a fresh image of the given size,
// filled with the background color.
func NewRasterCanvas(size Size, background Color) *RasterCanvas {
	bounds := image.Rect(0, 0, int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(toNRGBA(background)), image.Point{}, draw.Src)
	return &RasterCanvas{
		dst:   dst,
		state: rasterState{clip: bounds},
	}
}

// Image returns the rendered image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.stack = append(c.stack, c.state)
	layer := image.NewRGBA(c.dst.Bounds())
	c.state.layer = layer
	c.state.alpha = clamp01(alpha)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	popped := c.state
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	if popped.layer != nil && popped.layer != c.state.layer {
		mask := image.NewUniform(color.Alpha{A: uint8(math.Round(popped.alpha * 255))})
		draw.DrawMask(c.target(), c.dst.Bounds(), popped.layer, image.Point{}, mask, image.Point{}, draw.Over)
	}
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.deviceRect(rect))
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	if paint.Color.Alpha() <= 0 {
		return
	}
	area := c.deviceRect(rect).Intersect(c.state.clip)
	if area.Empty() {
		return
	}
	draw.Draw(c.target(), area, image.NewUniform(toNRGBA(paint.Color)), image.Point{}, draw.Over)
}

func (c *RasterCanvas) DrawText(layout *TextLayout, offset Offset) {
	if layout == nil || layout.Face == nil {
		return
	}
	drawer := font.Drawer{
		Dst:  &clippedImage{target: c.target(), clip: c.state.clip},
		Src:  image.NewUniform(toNRGBA(layout.Style.Color)),
		Face: layout.Face,
	}
	x := c.state.dx + offset.X
	y := c.state.dy + offset.Y + layout.Ascent
	for _, line := range layout.Lines {
		drawer.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y * 64)),
		}
		drawer.DrawString(line.Text)
		y += layout.LineHeight()
	}
}

func (c *RasterCanvas) DrawImage(src image.Image, dst Rect) {
	if src == nil {
		return
	}
	area := c.deviceRect(dst)
	if area.Intersect(c.state.clip).Empty() {
		return
	}
	draw.CatmullRom.Scale(&clippedImage{target: c.target(), clip: c.state.clip},
		area, src, src.Bounds(), draw.Over, nil)
}

// target returns the image drawing currently lands on, either the base
// image or the active layer.
func (c *RasterCanvas) target() *image.RGBA {
	if c.state.layer != nil {
		return c.state.layer
	}
	return c.dst
}

func (c *RasterCanvas) deviceRect(rect Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(rect.Left+c.state.dx)),
		int(math.Floor(rect.Top+c.state.dy)),
		int(math.Ceil(rect.Right+c.state.dx)),
		int(math.Ceil(rect.Bottom+c.state.dy)),
	)
}

func toNRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// clippedImage restricts writes to a clip rectangle. Reads pass through so
// alpha blending still sees the destination pixels.
type clippedImage struct {
	target *image.RGBA
	clip   image.Rectangle
}

func (m *clippedImage) ColorModel() color.Model { return m.target.ColorModel() }

func (m *clippedImage) Bounds() image.Rectangle { return m.target.Bounds() }

func (m *clippedImage) At(x, y int) color.Color { return m.target.At(x, y) }

func (m *clippedImage) Set(x, y int, c color.Color) {
	if image.Pt(x, y).In(m.clip) {
		m.target.Set(x, y, c)
	}
}
