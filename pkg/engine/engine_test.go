package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/engine"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

// emptyWidget builds nothing, so mounting it yields no render object.
type emptyWidget struct {
	core.StatelessBase
}

func (emptyWidget) Build(ctx core.BuildContext) core.Widget {
	return nil
}

func TestMount_NoRenderObject(t *testing.T) {
	eng := engine.New(graphics.Size{Width: 100, Height: 100})
	err := eng.Mount(emptyWidget{})
	if err == nil {
		t.Fatal("expected Mount to fail")
	}
	if !stderrors.Is(err, engine.ErrNoRenderObject) {
		t.Errorf("error %v does not wrap ErrNoRenderObject", err)
	}
}

func TestPumpFrame_RecordsOnceUntilDirty(t *testing.T) {
	eng := engine.New(graphics.Size{Width: 100, Height: 100})
	err := eng.Mount(widgets.Container{Color: graphics.ColorBlack})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	frame := eng.PumpFrame()
	if frame == nil {
		t.Fatal("first frame produced no display list")
	}
	if frame.OpCount() == 0 {
		t.Error("first frame recorded no operations")
	}
	if size := frame.Size(); size.Width != 100 || size.Height != 100 {
		t.Errorf("frame size = %+v, want 100x100", size)
	}

	if again := eng.PumpFrame(); again != nil {
		t.Error("second frame re-rendered an unchanged tree")
	}
}

func TestHandleTap(t *testing.T) {
	eng := engine.New(graphics.Size{Width: 100, Height: 100})

	tapped := 0
	err := eng.Mount(widgets.GestureDetector{
		OnTap: func() { tapped++ },
		Child: widgets.Container{Color: graphics.ColorWhite},
	})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if eng.PumpFrame() == nil {
		t.Fatal("no initial frame")
	}

	if !eng.HandleTap(graphics.Offset{X: 50, Y: 50}) {
		t.Fatal("tap inside the detector missed")
	}
	if tapped != 1 {
		t.Errorf("OnTap invoked %d times, want 1", tapped)
	}
	if eng.HandleTap(graphics.Offset{X: 150, Y: 50}) {
		t.Error("tap outside the surface hit something")
	}
}

func TestPumpUntilSettled_ReturnsLastFrame(t *testing.T) {
	eng := engine.New(graphics.Size{Width: 100, Height: 100})
	err := eng.Mount(widgets.Container{Color: graphics.ColorBlack})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	frame := eng.PumpUntilSettled(10)
	if frame == nil {
		t.Fatal("settling produced no display list")
	}
	if eng.NeedsFrame() {
		t.Error("engine still needs a frame after settling")
	}
}
