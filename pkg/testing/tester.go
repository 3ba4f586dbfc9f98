// Package testing provides a widget test harness with a fake clock,
// tree finders, and frame pumping over the headless engine.
package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/mafeblanco565/mayrav/pkg/animation"
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/engine"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without real rendering.
// It drives the same build, layout, and paint phases as the engine but
// runs on a fake clock so animations advance deterministically.
type WidgetTester struct {
	engine    *engine.Engine
	clock     *FakeClock
	prevClock animation.Clock
	size      graphics.Size
	lastFrame *graphics.DisplayList
}

// NewWidgetTester creates a tester with the default test surface.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	t := &WidgetTester{
		clock: clk,
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock. Must be
// called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.engine != nil && t.engine.Root() != nil {
		t.engine.Root().Unmount()
	}
	t.engine = nil
	animation.SetClock(t.prevClock)
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// Root returns the root element of the mounted tree, nil before PumpWidget.
func (t *WidgetTester) Root() core.Element {
	if t.engine == nil {
		return nil
	}
	return t.engine.Root()
}

// LastFrame returns the display list recorded by the most recent frame that
// painted anything.
func (t *WidgetTester) LastFrame() *graphics.DisplayList {
	return t.lastFrame
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.engine != nil && t.engine.Root() != nil {
		t.engine.Root().Unmount()
	}
	t.engine = engine.New(t.size)
	t.lastFrame = nil
	if err := t.engine.Mount(widget); err != nil {
		return err
	}
	return t.Pump()
}

// Pump runs a single frame cycle: tickers, build, layout, paint.
func (t *WidgetTester) Pump() error {
	if t.engine == nil {
		return nil
	}
	if frame := t.engine.PumpFrame(); frame != nil {
		t.lastFrame = frame
	}
	return nil
}

// PumpFor advances the fake clock and pumps frames in 16ms steps until the
// given duration has elapsed.
func (t *WidgetTester) PumpFor(duration time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < duration; elapsed += frameDuration {
		t.clock.Advance(frameDuration)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle runs frames until the framework is idle or the timeout is
// reached. Each frame advances the fake clock by 16ms. Returns
// ErrSettleTimeout if the framework does not settle within timeout.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if t.engine == nil || !t.engine.NeedsFrame() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// Find evaluates a finder against the current tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{elements: finder.Evaluate(root), finder: finder}
}

// TapAt delivers a tap at a position in root coordinates.
func (t *WidgetTester) TapAt(position graphics.Offset) bool {
	if t.engine == nil {
		return false
	}
	return t.engine.HandleTap(position)
}

// Tap taps the center of the first element matched by the finder.
func (t *WidgetTester) Tap(finder Finder) bool {
	result := t.Find(finder)
	element := result.FirstOrNil()
	if element == nil {
		return false
	}
	renderObject := result.RenderObject()
	if renderObject == nil {
		return false
	}
	origin := core.GlobalOffsetOf(element)
	size := renderObject.Size()
	return t.TapAt(graphics.Offset{
		X: origin.X + size.Width/2,
		Y: origin.Y + size.Height/2,
	})
}
