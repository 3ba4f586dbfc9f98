package widgets_test

import (
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
	mayravtest "github.com/mafeblanco565/mayrav/pkg/testing"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

func TestPadding_OffsetsChild(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	if err := tester.PumpWidget(widgets.Padding{
		Padding: layout.EdgeInsetsAll(16),
		Child:   widgets.SizedBox{Width: 50, Height: 50},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	offset := childOffset(t, tester, mayravtest.ByType[widgets.SizedBox](), 0)
	if offset.X != 16 || offset.Y != 16 {
		t.Errorf("child offset = {%v, %v}, want {16, 16}", offset.X, offset.Y)
	}
}

func TestPadding_SizesToChildPlusInsets(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	// Center gives the Padding loose constraints so it can shrink-wrap.
	if err := tester.PumpWidget(widgets.Center{
		Child: widgets.Padding{
			Padding: layout.EdgeInsetsOnly(10, 20, 30, 40),
			Child:   widgets.SizedBox{Width: 50, Height: 50},
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	result := tester.Find(mayravtest.ByType[widgets.Padding]())
	if !result.Exists() {
		t.Fatal("Padding element not found")
	}
	size := result.RenderObject().Size()
	if size.Width != 90 || size.Height != 110 {
		t.Errorf("padding size = {%v, %v}, want {90, 110}", size.Width, size.Height)
	}
}
