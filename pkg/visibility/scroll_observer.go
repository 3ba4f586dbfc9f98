package visibility

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
)

// Viewport supplies the visible region and notifies when it changes, either
// because the user scrolled or because the viewport was resized.
type Viewport interface {
	core.Listenable
	ViewportBounds() graphics.Rect
}

// ScrollObserver evaluates observations against a scrollable viewport. It
// rides the viewport's change notifications rather than polling, so targets
// are only measured when the visible region actually moves.
//
// ScrollObserver is not safe for concurrent use. All methods must be called
// from the frame loop.
type ScrollObserver struct {
	viewport      Viewport
	registrations map[int]*registration
	nextID        int
	unsubscribe   func()
}

type registration struct {
	target    Target
	threshold float64
	callback  func()
}

// NewScrollObserver creates an observer bound to a viewport and subscribes
// to its change notifications. Call Dispose to unsubscribe.
func NewScrollObserver(viewport Viewport) *ScrollObserver {
	observer := &ScrollObserver{
		viewport:      viewport,
		registrations: make(map[int]*registration),
	}
	observer.unsubscribe = viewport.AddListener(observer.Check)
	return observer
}

// Observe registers a target. The callback fires at most once, the first
// time the target's visible fraction satisfies the threshold; the
// registration is then dropped. The returned release function cancels a
// pending observation and is a no-op after the callback has fired.
func (o *ScrollObserver) Observe(target Target, threshold float64, callback func()) func() {
	id := o.nextID
	o.nextID++
	o.registrations[id] = &registration{
		target:    target,
		threshold: threshold,
		callback:  callback,
	}
	return func() {
		delete(o.registrations, id)
	}
}

// Check evaluates all registrations against the current viewport. Satisfied
// registrations fire and are removed before their callbacks run, so a
// callback that mutates the tree cannot re-enter its own registration.
func (o *ScrollObserver) Check() {
	if len(o.registrations) == 0 {
		return
	}
	viewport := o.viewport.ViewportBounds()
	if viewport.IsEmpty() {
		return
	}

	var fired []func()
	for id, reg := range o.registrations {
		fraction := VisibleFraction(reg.target, viewport)
		if satisfies(fraction, reg.threshold) {
			fired = append(fired, reg.callback)
			delete(o.registrations, id)
		}
	}
	for _, callback := range fired {
		callback()
	}
}

// PendingCount returns the number of active registrations.
func (o *ScrollObserver) PendingCount() int {
	return len(o.registrations)
}

// Dispose unsubscribes from the viewport and drops all registrations.
func (o *ScrollObserver) Dispose() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
	o.registrations = nil
}
