package graphics

import (
	"image/color"
	"testing"
)

func TestRasterCanvas_Background(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 4, Height: 4}, RGB(10, 20, 30))
	got := canvas.Image().RGBAAt(0, 0)
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("background pixel = %+v, want %+v", got, want)
	}
}

func TestRasterCanvas_DrawRect(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 10, Height: 10}, ColorWhite)
	canvas.DrawRect(RectFromLTWH(2, 2, 4, 4), Paint{Color: ColorBlack})

	if got := canvas.Image().RGBAAt(3, 3); got.R != 0 {
		t.Errorf("inside pixel = %+v, want black", got)
	}
	if got := canvas.Image().RGBAAt(8, 8); got.R != 255 {
		t.Errorf("outside pixel = %+v, want white", got)
	}
}

func TestRasterCanvas_TranslateAndClip(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 10, Height: 10}, ColorWhite)

	canvas.Save()
	canvas.ClipRect(RectFromLTWH(0, 0, 5, 10))
	canvas.Translate(4, 0)
	// Device rows 4-9, but the clip keeps only x < 5.
	canvas.DrawRect(RectFromLTWH(0, 0, 6, 10), Paint{Color: ColorBlack})
	canvas.Restore()

	if got := canvas.Image().RGBAAt(4, 5); got.R != 0 {
		t.Errorf("clipped-in pixel = %+v, want black", got)
	}
	if got := canvas.Image().RGBAAt(6, 5); got.R != 255 {
		t.Errorf("clipped-out pixel = %+v, want white", got)
	}

	// The clip does not survive the restore.
	canvas.DrawRect(RectFromLTWH(6, 0, 1, 1), Paint{Color: ColorBlack})
	if got := canvas.Image().RGBAAt(6, 0); got.R != 0 {
		t.Errorf("post-restore pixel = %+v, want black", got)
	}
}

func TestRasterCanvas_LayerAlpha(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 4, Height: 4}, ColorWhite)

	canvas.SaveLayerAlpha(RectFromLTWH(0, 0, 4, 4), 0.5)
	canvas.DrawRect(RectFromLTWH(0, 0, 4, 4), Paint{Color: ColorBlack})
	canvas.Restore()

	got := canvas.Image().RGBAAt(1, 1)
	// Half-transparent black over white lands mid-gray, within rounding.
	if got.R < 120 || got.R > 135 {
		t.Errorf("blended pixel = %+v, want mid-gray", got)
	}
}

func TestRasterCanvas_TransparentPaintSkipped(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 4, Height: 4}, ColorWhite)
	canvas.DrawRect(RectFromLTWH(0, 0, 4, 4), Paint{Color: ColorTransparent})

	if got := canvas.Image().RGBAAt(2, 2); got.R != 255 {
		t.Errorf("pixel = %+v, want untouched white", got)
	}
}

func TestRasterCanvas_ReplaysDisplayList(t *testing.T) {
	var recorder PictureRecorder
	recording := recorder.BeginRecording(Size{Width: 8, Height: 8})
	recording.DrawRect(RectFromLTWH(0, 0, 8, 8), Paint{Color: RGB(200, 0, 0)})
	list := recorder.EndRecording()

	canvas := NewRasterCanvas(list.Size(), ColorWhite)
	list.Paint(canvas)

	got := canvas.Image().RGBAAt(4, 4)
	if got.R != 200 || got.G != 0 || got.B != 0 {
		t.Errorf("replayed pixel = %+v, want red", got)
	}
}
