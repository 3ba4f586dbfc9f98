package testing_test

import (
	"testing"
	"time"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	mayravtest "github.com/mafeblanco565/mayrav/pkg/testing"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

func TestFakeClock(t *testing.T) {
	clock := mayravtest.NewFakeClock()
	start := clock.Now()

	clock.Advance(time.Second)
	if got := clock.Now().Sub(start); got != time.Second {
		t.Errorf("advanced %v, want 1s", got)
	}

	clock.Set(start)
	if !clock.Now().Equal(start) {
		t.Error("Set did not restore the start time")
	}
}

func TestFinders(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 300, Height: 300})

	err := tester.PumpWidget(widgets.Column{
		Children: []core.Widget{
			widgets.Text{Content: "first"},
			widgets.Text{Content: "second line"},
			widgets.SizedBox{Height: 10},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if got := tester.Find(mayravtest.ByType[widgets.Text]()).Count(); got != 2 {
		t.Errorf("ByType[Text] found %d, want 2", got)
	}
	if !tester.Find(mayravtest.ByText("first")).Exists() {
		t.Error("ByText(first) found nothing")
	}
	if tester.Find(mayravtest.ByText("firs")).Exists() {
		t.Error("ByText matched a prefix")
	}
	if !tester.Find(mayravtest.ByTextContaining("second")).Exists() {
		t.Error("ByTextContaining(second) found nothing")
	}
	if tester.Find(mayravtest.ByText("missing")).FirstOrNil() != nil {
		t.Error("FirstOrNil returned an element for no matches")
	}

	boxes := tester.Find(mayravtest.ByPredicate(func(e core.Element) bool {
		_, ok := e.Widget().(widgets.SizedBox)
		return ok
	}))
	if boxes.Count() != 1 {
		t.Errorf("predicate found %d boxes, want 1", boxes.Count())
	}
}

func TestTap(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	taps := 0
	err := tester.PumpWidget(widgets.GestureDetector{
		OnTap: func() { taps++ },
		Child: widgets.Text{Content: "press"},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if !tester.Tap(mayravtest.ByText("press")) {
		t.Fatal("tap missed the text")
	}
	if taps != 1 {
		t.Errorf("OnTap invoked %d times, want 1", taps)
	}
}

func TestPumpWidget_ReplacesTree(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	if err := tester.PumpWidget(widgets.Text{Content: "old"}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if err := tester.PumpWidget(widgets.Text{Content: "new"}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if tester.Find(mayravtest.ByText("old")).Exists() {
		t.Error("old tree still present after a new PumpWidget")
	}
	if !tester.Find(mayravtest.ByText("new")).Exists() {
		t.Error("new tree not mounted")
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	if err := tester.PumpWidget(widgets.Reveal{Child: widgets.Text{Content: "x"}}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	// A static tree settles immediately.
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("PumpAndSettle on a static tree: %v", err)
	}
}
