// Package layout provides box constraints, the render object protocol, and
// the layout/paint pipeline.
package layout

import "github.com/mafeblanco565/mayrav/pkg/graphics"

// Constraints describe the min/max box a render object may occupy.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force an exact size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given one.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain clamps a size into the constraint box.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Deflate shrinks the constraints by the given insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	horizontal := insets.Horizontal()
	vertical := insets.Vertical()
	out := Constraints{
		MinWidth:  nonNegative(c.MinWidth - horizontal),
		MaxWidth:  nonNegative(c.MaxWidth - horizontal),
		MinHeight: nonNegative(c.MinHeight - vertical),
		MaxHeight: nonNegative(c.MaxHeight - vertical),
	}
	return out
}

// EdgeInsets describe offsets from each edge of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns uniform insets on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric returns horizontal/vertical symmetric insets.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly returns insets with each side given explicitly.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns insets grown uniformly by value on all sides.
func (e EdgeInsets) Add(value float64) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + value,
		Top:    e.Top + value,
		Right:  e.Right + value,
		Bottom: e.Bottom + value,
	}
}

// Alignment positions a child within available space. Both components run
// from -1 (start) through 0 (center) to +1 (end).
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignmentTopLeft = Alignment{X: -1, Y: -1}
	AlignmentCenter  = Alignment{}
)

// Resolve returns the child offset within a box of the given free space.
func (a Alignment) Resolve(free graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: (a.X + 1) / 2 * free.Width,
		Y: (a.Y + 1) / 2 * free.Height,
	}
}

func clamp(value, min, max float64) float64 {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

func nonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}
