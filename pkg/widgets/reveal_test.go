package widgets_test

import (
	"testing"
	"time"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	mayravtest "github.com/mafeblanco565/mayrav/pkg/testing"
	"github.com/mafeblanco565/mayrav/pkg/visibility"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

// revealFixture mounts a Reveal below the fold of a 200x200 viewport.
// The filler is 300 tall, so the reveal's child spans content rows 300
// to 300+childHeight.
func revealFixture(t *testing.T, tester *mayravtest.WidgetTester, childHeight float64) *widgets.ScrollController {
	t.Helper()
	controller := widgets.NewScrollController()
	observer := visibility.NewScrollObserver(controller)
	t.Cleanup(observer.Dispose)

	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	err := tester.PumpWidget(visibility.Scope{
		Observer: observer,
		Child: widgets.ScrollView{
			Controller: controller,
			Child: widgets.Column{
				Children: []core.Widget{
					widgets.VSpace(300),
					widgets.Reveal{Child: widgets.SizedBox{Height: childHeight}},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	return controller
}

func opacityValue(t *testing.T, tester *mayravtest.WidgetTester) float64 {
	t.Helper()
	result := tester.Find(mayravtest.ByType[widgets.Opacity]())
	if !result.Exists() {
		t.Fatal("expected an Opacity element")
	}
	return result.Widget().(widgets.Opacity).Opacity
}

func TestReveal_HiddenWhileBelowFold(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	revealFixture(t, tester, 100)

	if got := opacityValue(t, tester); got != 0 {
		t.Errorf("opacity = %v before scrolling, want 0", got)
	}
}

func TestReveal_IgnoresSubThresholdVisibility(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	controller := revealFixture(t, tester, 100)

	// 10 of the child's 100 rows visible: under the default 0.2 threshold.
	controller.JumpTo(110)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if got := opacityValue(t, tester); got != 0 {
		t.Errorf("opacity = %v at 10%% visible, want 0", got)
	}
}

func TestReveal_AnimatesInWhenThresholdMet(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	controller := revealFixture(t, tester, 100)

	// 40 of 100 rows visible: over the threshold.
	controller.JumpTo(140)
	if err := tester.PumpFor(300 * time.Millisecond); err != nil {
		t.Fatalf("PumpFor: %v", err)
	}
	mid := opacityValue(t, tester)
	if mid <= 0 || mid >= 1 {
		t.Errorf("opacity = %v mid-animation, want strictly between 0 and 1", mid)
	}

	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if got := opacityValue(t, tester); got != 1 {
		t.Errorf("opacity = %v after settling, want 1", got)
	}
}

func TestReveal_StaysVisibleAfterScrollingAway(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	controller := revealFixture(t, tester, 100)

	controller.JumpTo(200)
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}

	controller.JumpTo(0)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if got := opacityValue(t, tester); got != 1 {
		t.Errorf("opacity = %v after scrolling away, want 1", got)
	}
}

func TestReveal_SlidesUpWhileAnimating(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	revealFixture(t, tester, 100)

	result := tester.Find(mayravtest.ByType[widgets.Translate]())
	if !result.Exists() {
		t.Fatal("expected a Translate element")
	}
	offset := result.Widget().(widgets.Translate).Offset
	if offset.Y != widgets.DefaultRevealDistance {
		t.Errorf("hidden offset = %v, want %v", offset.Y, widgets.DefaultRevealDistance)
	}
}

func TestReveal_WithoutScopeShowsImmediately(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	err := tester.PumpWidget(widgets.Reveal{Child: widgets.Text{Content: "always visible"}})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if !tester.Find(mayravtest.ByText("always visible")).Exists() {
		t.Fatal("expected child text to exist")
	}
	if tester.Find(mayravtest.ByType[widgets.Opacity]()).Exists() {
		t.Error("expected no Opacity wrapper without a scope")
	}
}

func TestReveal_InitiallyVisibleContentTriggersOnFirstLayout(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	controller := widgets.NewScrollController()
	observer := visibility.NewScrollObserver(controller)
	t.Cleanup(observer.Dispose)

	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	err := tester.PumpWidget(visibility.Scope{
		Observer: observer,
		Child: widgets.ScrollView{
			Controller: controller,
			Child: widgets.Reveal{Child: widgets.SizedBox{Height: 100}},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	// The child sits in the initial viewport, so no scrolling is needed.
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if got := opacityValue(t, tester); got != 1 {
		t.Errorf("opacity = %v for initially visible content, want 1", got)
	}
}
