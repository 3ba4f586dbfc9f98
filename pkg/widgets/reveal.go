package widgets

import (
	"time"

	"github.com/mafeblanco565/mayrav/pkg/animation"
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/visibility"
)

const (
	// DefaultRevealThreshold is the visible fraction required before a
	// [Reveal] fires.
	DefaultRevealThreshold = 0.2

	// DefaultRevealDuration is the fade and slide duration for [Reveal].
	DefaultRevealDuration = time.Second

	// DefaultRevealDistance is the upward slide distance in pixels.
	DefaultRevealDistance = 10
)

// Reveal fades and slides its child into place the first time it scrolls
// into view.
//
// The child starts fully transparent, shifted down by Distance pixels. When
// the child's visible fraction inside the nearest [visibility.Scope] first
// satisfies Threshold, it animates to full opacity at its natural position
// and stays there permanently. Scrolling the child back out of view does not
// hide it again.
//
// Reveal takes its observer from the nearest enclosing scope. Without one
// the child shows immediately, so content never gets stuck invisible.
type Reveal struct {
	core.StatefulBase
	Child core.Widget
	// Threshold is the visible fraction that triggers the reveal.
	// Zero uses DefaultRevealThreshold.
	Threshold float64
	// Duration is the animation length. Zero uses DefaultRevealDuration.
	Duration time.Duration
	// Distance is the upward slide distance. Zero uses DefaultRevealDistance.
	Distance float64
}

func (r Reveal) CreateState() core.State {
	return &revealState{}
}

func (r Reveal) effectiveThreshold() float64 {
	if r.Threshold <= 0 {
		return DefaultRevealThreshold
	}
	return r.Threshold
}

func (r Reveal) effectiveDuration() time.Duration {
	if r.Duration <= 0 {
		return DefaultRevealDuration
	}
	return r.Duration
}

func (r Reveal) effectiveDistance() float64 {
	if r.Distance <= 0 {
		return DefaultRevealDistance
	}
	return r.Distance
}

type revealState struct {
	core.StateBase
	controller *animation.AnimationController
	tracker    *visibility.Tracker
	observer   visibility.Observer
}

func (s *revealState) widget() Reveal {
	return s.Element().Widget().(Reveal)
}

func (s *revealState) InitState() {
	widget := s.widget()

	s.controller = core.UseController(s, func() *animation.AnimationController {
		controller := animation.NewAnimationController(widget.effectiveDuration())
		controller.Curve = animation.Ease
		return controller
	})
	core.UseListenable(s, s.controller)

	s.tracker = visibility.NewTracker(widget.effectiveThreshold())
	unsub := s.tracker.AddListener(func() {
		s.controller.Forward()
	})
	s.OnDispose(unsub)
	s.OnDispose(s.tracker.Dispose)
}

func (s *revealState) Build(ctx core.BuildContext) core.Widget {
	widget := s.widget()

	observer := visibility.ObserverOf(ctx)
	if observer == nil {
		// No scope: show content immediately.
		return widget.Child
	}
	if observer != s.observer && !s.tracker.Triggered() {
		s.observer = observer
		s.tracker.Bind(observer, visibility.NewElementTarget(s.Element()))
	}

	progress := s.controller.Value
	if s.tracker.Triggered() && !s.controller.IsAnimating() {
		progress = 1
	}

	return Opacity{
		Opacity: progress,
		Child: Translate{
			Offset: graphics.Offset{Y: (1 - progress) * widget.effectiveDistance()},
			Child:  widget.Child,
		},
	}
}
