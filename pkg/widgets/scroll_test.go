package widgets_test

import (
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/graphics"
	mayravtest "github.com/mafeblanco565/mayrav/pkg/testing"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

func TestScrollController_ClampsToContent(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	controller := widgets.NewScrollController()
	err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 500},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if got := controller.ContentExtent(); got != 500 {
		t.Fatalf("ContentExtent = %v, want 500", got)
	}
	if got := controller.ViewportExtent(); got != 200 {
		t.Fatalf("ViewportExtent = %v, want 200", got)
	}
	if got := controller.MaxScrollExtent(); got != 300 {
		t.Fatalf("MaxScrollExtent = %v, want 300", got)
	}

	controller.JumpTo(1000)
	if got := controller.Offset(); got != 300 {
		t.Errorf("Offset after overscroll = %v, want 300", got)
	}
	controller.ScrollBy(-1000)
	if got := controller.Offset(); got != 0 {
		t.Errorf("Offset after underscroll = %v, want 0", got)
	}
}

func TestScrollController_ShortContentDoesNotScroll(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	controller := widgets.NewScrollController()
	err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 50},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if got := controller.MaxScrollExtent(); got != 0 {
		t.Fatalf("MaxScrollExtent = %v, want 0", got)
	}
	controller.JumpTo(100)
	if got := controller.Offset(); got != 0 {
		t.Errorf("Offset = %v, want 0", got)
	}
}

func TestScrollController_NotifiesOnScrollAndGeometry(t *testing.T) {
	controller := widgets.NewScrollController()

	notified := 0
	unsub := controller.AddListener(func() { notified++ })

	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 500},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if notified == 0 {
		t.Fatal("listener not notified for the initial geometry")
	}

	before := notified
	controller.JumpTo(10)
	if notified != before+1 {
		t.Errorf("listener notified %d times after JumpTo, want %d", notified, before+1)
	}

	// Same offset: no notification.
	controller.JumpTo(10)
	if notified != before+1 {
		t.Errorf("JumpTo to the current offset notified listeners")
	}

	unsub()
	controller.JumpTo(20)
	if notified != before+1 {
		t.Errorf("unsubscribed listener was notified")
	}
}

func TestScrollController_ViewportBounds(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 300})

	controller := widgets.NewScrollController()
	err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 900},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	want := graphics.RectFromLTWH(0, 0, 200, 300)
	if got := controller.ViewportBounds(); got != want {
		t.Errorf("ViewportBounds = %+v, want %+v", got, want)
	}
	// Bounds stay in viewport coordinates regardless of scroll position.
	controller.JumpTo(400)
	if got := controller.ViewportBounds(); got != want {
		t.Errorf("ViewportBounds after scroll = %+v, want %+v", got, want)
	}
}

func TestScrollView_ShrinksContentExtentClampsOffset(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	controller := widgets.NewScrollController()
	err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 800},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	controller.JumpTo(600)

	err = tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 300},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if got := controller.Offset(); got != 100 {
		t.Errorf("Offset after content shrank = %v, want 100", got)
	}
}
