package widgets

import (
	"time"

	"github.com/mafeblanco565/mayrav/pkg/animation"
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/visibility"
)

const (
	// DefaultRuleThreshold is the visible fraction required before a
	// [RevealRule] starts growing. Rules are short, so half of the rule
	// must be in view.
	DefaultRuleThreshold = 0.5

	// DefaultRuleWidthFactor is the fraction of the available width the
	// rule grows to.
	DefaultRuleWidthFactor = 0.6
)

// RevealRule is a horizontal rule that grows from zero width to a fixed
// fraction of the available width the first time it scrolls into view.
//
// Like [Reveal], the animation runs once and the final width is permanent.
// The rule occupies its full Height and the full available width for layout
// purposes from the start; only the drawn line animates.
type RevealRule struct {
	core.StatefulBase
	// Height is the total vertical space the rule occupies.
	Height float64
	// Thickness is the thickness of the drawn line.
	Thickness float64
	// Color is the line color.
	Color graphics.Color
	// WidthFactor is the final width as a fraction of available width.
	// Zero uses DefaultRuleWidthFactor.
	WidthFactor float64
	// Threshold is the visible fraction that triggers the growth.
	// Zero uses DefaultRuleThreshold.
	Threshold float64
	// Duration is the animation length. Zero uses DefaultRevealDuration.
	Duration time.Duration
}

func (r RevealRule) CreateState() core.State {
	return &revealRuleState{}
}

func (r RevealRule) effectiveWidthFactor() float64 {
	if r.WidthFactor <= 0 {
		return DefaultRuleWidthFactor
	}
	return r.WidthFactor
}

func (r RevealRule) effectiveThreshold() float64 {
	if r.Threshold <= 0 {
		return DefaultRuleThreshold
	}
	return r.Threshold
}

func (r RevealRule) effectiveDuration() time.Duration {
	if r.Duration <= 0 {
		return DefaultRevealDuration
	}
	return r.Duration
}

type revealRuleState struct {
	core.StateBase
	controller *animation.AnimationController
	tracker    *visibility.Tracker
	observer   visibility.Observer
}

func (s *revealRuleState) widget() RevealRule {
	return s.Element().Widget().(RevealRule)
}

func (s *revealRuleState) InitState() {
	widget := s.widget()

	s.controller = core.UseController(s, func() *animation.AnimationController {
		controller := animation.NewAnimationController(widget.effectiveDuration())
		controller.Curve = animation.EaseOut
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

func (s *revealRuleState) Build(ctx core.BuildContext) core.Widget {
	widget := s.widget()

	progress := 1.0
	observer := visibility.ObserverOf(ctx)
	if observer != nil {
		if observer != s.observer && !s.tracker.Triggered() {
			s.observer = observer
			s.tracker.Bind(observer, visibility.NewElementTarget(s.Element()))
		}
		progress = s.controller.Value
		if s.tracker.Triggered() && !s.controller.IsAnimating() {
			progress = 1
		}
	}

	if progress <= 0 {
		// Occupy the final vertical space without drawing a line, so the
		// surrounding layout never shifts when the rule grows.
		return Divider{Height: widget.Height}
	}

	return FractionallySizedBox{
		WidthFactor: progress * widget.effectiveWidthFactor(),
		Child: Divider{
			Height:    widget.Height,
			Thickness: widget.Thickness,
			Color:     widget.Color,
		},
	}
}
