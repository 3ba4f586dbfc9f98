package widgets_test

import (
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
	mayravtest "github.com/mafeblanco565/mayrav/pkg/testing"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

func TestContainer_PaintsColor(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 50})

	if err := tester.PumpWidget(widgets.Container{
		Color:  graphics.RGB(255, 0, 0),
		Width:  100,
		Height: 50,
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	frame := tester.LastFrame()
	if frame == nil {
		t.Fatal("no frame recorded")
	}
	canvas := graphics.NewRasterCanvas(graphics.Size{Width: 100, Height: 50}, graphics.RGB(255, 255, 255))
	frame.Paint(canvas)
	pixel := canvas.Image().RGBAAt(10, 10)
	if pixel.R != 255 || pixel.G != 0 || pixel.B != 0 {
		t.Errorf("pixel at (10,10) = %v, want opaque red", pixel)
	}
}

func TestContainer_PaddingOffsetsChild(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	if err := tester.PumpWidget(widgets.Container{
		Padding: layout.EdgeInsetsAll(8),
		Child:   widgets.SizedBox{Width: 40, Height: 40},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	offset := childOffset(t, tester, mayravtest.ByType[widgets.SizedBox](), 0)
	if offset.X != 8 || offset.Y != 8 {
		t.Errorf("child offset = {%v, %v}, want {8, 8}", offset.X, offset.Y)
	}
}

func TestContainer_NoChildUsesExplicitSize(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	if err := tester.PumpWidget(widgets.Center{
		Child: widgets.Container{
			Color:  graphics.RGB(0, 0, 0),
			Width:  60,
			Height: 30,
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	result := tester.Find(mayravtest.ByType[widgets.Container]())
	if !result.Exists() {
		t.Fatal("Container element not found")
	}
	size := result.RenderObject().Size()
	if size.Width != 60 || size.Height != 30 {
		t.Errorf("container size = {%v, %v}, want {60, 30}", size.Width, size.Height)
	}
}
