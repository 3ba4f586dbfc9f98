// Package visibility provides viewport intersection observation for widgets.
//
// An [Observer] watches targets and reports when their visible fraction
// crosses a threshold. A [Tracker] layers one-shot, monotonic trigger
// semantics on top of an observer, which is what scroll-reveal widgets use.
package visibility

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// Target is something whose bounds can be measured in viewport coordinates.
type Target interface {
	// VisibleBounds returns the target's rectangle in viewport coordinates.
	// The second return is false while the target has no layout yet.
	VisibleBounds() (graphics.Rect, bool)
}

// Observer watches targets and fires a callback when a target's visible
// fraction satisfies the threshold. Observe returns a release function that
// cancels the observation; implementations must tolerate release being called
// after the callback has fired.
type Observer interface {
	Observe(target Target, threshold float64, callback func()) (release func())
}

// ElementTarget adapts a mounted element to the [Target] interface. Bounds
// resolve lazily through the element's render object, so a target can be
// constructed before its first layout.
type ElementTarget struct {
	element core.Element
}

// NewElementTarget wraps an element as an observation target.
func NewElementTarget(element core.Element) *ElementTarget {
	return &ElementTarget{element: element}
}

// VisibleBounds reports the element's rectangle in viewport coordinates.
// Scrollable ancestors are already folded in by [core.GlobalOffsetOf].
func (t *ElementTarget) VisibleBounds() (graphics.Rect, bool) {
	if t.element == nil {
		return graphics.Rect{}, false
	}
	renderElement, ok := t.element.(interface{ RenderObject() layout.RenderObject })
	if !ok {
		return graphics.Rect{}, false
	}
	renderObject := renderElement.RenderObject()
	if renderObject == nil {
		return graphics.Rect{}, false
	}
	size := renderObject.Size()
	if size.IsEmpty() {
		return graphics.Rect{}, false
	}
	origin := core.GlobalOffsetOf(t.element)
	return graphics.RectFromOffsetSize(origin, size), true
}

// VisibleFraction returns the portion of the target inside the viewport,
// in the range [0, 1]. A target with no layout yet reports 0.
func VisibleFraction(target Target, viewport graphics.Rect) float64 {
	bounds, ok := target.VisibleBounds()
	if !ok || bounds.IsEmpty() || viewport.IsEmpty() {
		return 0
	}
	visible := bounds.Intersect(viewport)
	if visible.IsEmpty() {
		return 0
	}
	return visible.Area() / bounds.Area()
}

// satisfies reports whether a visible fraction meets the threshold. A zero
// threshold still requires some overlap; a fully hidden target never
// satisfies any threshold.
func satisfies(fraction, threshold float64) bool {
	return fraction > 0 && fraction >= threshold
}
