package widgets

import (
	"math"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// ScrollView provides vertically scrollable content.
//
// ScrollView wraps a single child widget and enables scrolling when the child
// exceeds the viewport. Scrolling clamps at both edges.
//
// Use a [ScrollController] to move or observe the scroll position:
//
//	controller := widgets.NewScrollController()
//	controller.AddListener(func() {
//	    fmt.Println("Offset:", controller.Offset())
//	})
type ScrollView struct {
	core.RenderObjectBase
	Child      core.Widget
	Controller *ScrollController
	Padding    layout.EdgeInsets
}

func (s ScrollView) ChildWidget() core.Widget {
	child := s.Child
	if s.Padding != (layout.EdgeInsets{}) {
		child = Padding{Padding: s.Padding, Child: child}
	}
	return child
}

func (s ScrollView) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	controller := s.Controller
	if controller == nil {
		controller = NewScrollController()
	}
	scroll := &renderScrollView{controller: controller}
	scroll.SetSelf(scroll)
	scroll.unsubscribe = controller.AddListener(scroll.MarkNeedsPaint)
	return scroll
}

func (s ScrollView) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if scroll, ok := renderObject.(*renderScrollView); ok {
		scroll.updateController(s.Controller)
		scroll.MarkNeedsLayout()
		scroll.MarkNeedsPaint()
	}
}

type renderScrollView struct {
	layout.RenderBoxBase
	child       layout.RenderBox
	controller  *ScrollController
	unsubscribe func()
}

func (r *renderScrollView) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderScrollView) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderScrollView) updateController(controller *ScrollController) {
	if controller == nil || controller == r.controller {
		return
	}
	if r.unsubscribe != nil {
		r.unsubscribe()
	}
	r.controller = controller
	r.unsubscribe = controller.AddListener(r.MarkNeedsPaint)
}

func (r *renderScrollView) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	if size.Width <= 0 {
		size.Width = constraints.MinWidth
	}
	if size.Height <= 0 {
		size.Height = constraints.MinHeight
	}
	r.SetSize(size)

	content := 0.0
	if r.child != nil {
		childConstraints := layout.Constraints{
			MinWidth:  size.Width,
			MaxWidth:  size.Width,
			MinHeight: 0,
			MaxHeight: math.MaxFloat64,
		}
		r.child.Layout(childConstraints, true) // true: we read child.Size() for scroll extents
		r.child.SetParentData(&layout.BoxParentData{})
		content = r.child.Size().Height
	}

	// Extent updates notify the controller's listeners, which re-checks
	// any visibility observations against the new geometry.
	r.controller.setExtents(size, content)
}

func (r *renderScrollView) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	size := r.Size()
	clipRect := graphics.RectFromLTWH(0, 0, size.Width, size.Height)

	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(clipRect)
	ctx.Canvas.Translate(0, -r.controller.Offset())
	r.child.Paint(ctx)
	ctx.Canvas.Restore()
}

// ScrollOffset implements [core.ScrollOffsetProvider] so descendant positions
// resolve in viewport coordinates.
func (r *renderScrollView) ScrollOffset() graphics.Offset {
	return graphics.Offset{Y: -r.controller.Offset()}
}

func (r *renderScrollView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		local := graphics.Offset{X: position.X, Y: position.Y + r.controller.Offset()}
		if r.child.HitTest(local, result) {
			result.Add(r)
			return true
		}
	}
	result.Add(r)
	return true
}

// ScrollController controls and observes a scroll position.
//
// The controller reports viewport geometry through ViewportBounds, so it can
// drive a [visibility.ScrollObserver] directly. Listeners fire on scroll and
// whenever the viewport or content extent changes.
//
// ScrollController is not safe for concurrent use.
type ScrollController struct {
	offset        float64
	viewportSize  graphics.Size
	contentExtent float64
	listeners     map[int]func()
	nextID        int
}

// NewScrollController creates a controller at offset zero.
func NewScrollController() *ScrollController {
	return &ScrollController{listeners: make(map[int]func())}
}

// Offset returns the current scroll offset in pixels from the top.
func (c *ScrollController) Offset() float64 {
	return c.offset
}

// ViewportExtent returns the height of the visible region.
func (c *ScrollController) ViewportExtent() float64 {
	return c.viewportSize.Height
}

// ContentExtent returns the total scrollable content height.
func (c *ScrollController) ContentExtent() float64 {
	return c.contentExtent
}

// MaxScrollExtent returns the largest valid scroll offset.
func (c *ScrollController) MaxScrollExtent() float64 {
	max := c.contentExtent - c.viewportSize.Height
	if max < 0 {
		return 0
	}
	return max
}

// ViewportBounds returns the visible region in viewport coordinates.
func (c *ScrollController) ViewportBounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, c.viewportSize.Width, c.viewportSize.Height)
}

// JumpTo moves the scroll position, clamped to the valid range.
func (c *ScrollController) JumpTo(offset float64) {
	clamped := Clamp(offset, 0, c.MaxScrollExtent())
	if clamped == c.offset {
		return
	}
	c.offset = clamped
	c.notifyListeners()
}

// ScrollBy moves the scroll position by a delta, clamped to the valid range.
func (c *ScrollController) ScrollBy(delta float64) {
	c.JumpTo(c.offset + delta)
}

// AddListener registers a callback for position and geometry changes.
// Returns an unsubscribe function.
func (c *ScrollController) AddListener(listener func()) func() {
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

func (c *ScrollController) setExtents(viewport graphics.Size, content float64) {
	if c.viewportSize == viewport && c.contentExtent == content {
		return
	}
	c.viewportSize = viewport
	c.contentExtent = content
	c.offset = Clamp(c.offset, 0, c.MaxScrollExtent())
	c.notifyListeners()
}

func (c *ScrollController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
