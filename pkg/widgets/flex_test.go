package widgets_test

import (
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
	mayravtest "github.com/mafeblanco565/mayrav/pkg/testing"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

func childOffset(t *testing.T, tester *mayravtest.WidgetTester, finder mayravtest.Finder, index int) graphics.Offset {
	t.Helper()
	result := tester.Find(finder)
	element := result.At(index)
	renderElement, ok := element.(interface{ RenderObject() layout.RenderObject })
	if !ok {
		t.Fatal("element has no render object")
	}
	data, ok := renderElement.RenderObject().ParentData().(*layout.BoxParentData)
	if !ok {
		t.Fatal("expected BoxParentData")
	}
	return data.Offset
}

func TestColumn_StacksChildren(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	err := tester.PumpWidget(widgets.Center{
		Child: widgets.Column{
			Children: []core.Widget{
				widgets.SizedBox{Width: 50, Height: 30},
				widgets.SizedBox{Width: 80, Height: 40},
			},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	column := tester.Find(mayravtest.ByType[widgets.Column]())
	size := column.RenderObject().Size()
	if size.Width != 80 || size.Height != 70 {
		t.Errorf("column size = %+v, want {80 70}", size)
	}

	boxes := mayravtest.ByType[widgets.SizedBox]()
	if got := childOffset(t, tester, boxes, 0); got.Y != 0 {
		t.Errorf("first child offset = %+v, want Y 0", got)
	}
	if got := childOffset(t, tester, boxes, 1); got.Y != 30 {
		t.Errorf("second child offset = %+v, want Y 30", got)
	}
}

func TestColumn_CrossAxisCenter(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	err := tester.PumpWidget(widgets.Center{
		Child: widgets.Column{
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			Children: []core.Widget{
				widgets.SizedBox{Width: 100, Height: 10},
				widgets.SizedBox{Width: 40, Height: 10},
			},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	boxes := mayravtest.ByType[widgets.SizedBox]()
	if got := childOffset(t, tester, boxes, 1); got.X != 30 {
		t.Errorf("narrow child offset X = %v, want 30", got.X)
	}
}

func TestColumn_ExpandedFillsRemainingSpace(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	err := tester.PumpWidget(widgets.Column{
		MainAxisSize: widgets.MainAxisSizeMax,
		Children: []core.Widget{
			widgets.SizedBox{Width: 200, Height: 50},
			widgets.Expanded{Child: widgets.Container{Color: graphics.ColorBlack}},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	container := tester.Find(mayravtest.ByType[widgets.Container]())
	if got := container.RenderObject().Size().Height; got != 150 {
		t.Errorf("expanded child height = %v, want 150", got)
	}
}

func TestRow_SpaceBetween(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	err := tester.PumpWidget(widgets.Row{
		MainAxisSize:      widgets.MainAxisSizeMax,
		MainAxisAlignment: widgets.MainAxisAlignmentSpaceBetween,
		Children: []core.Widget{
			widgets.SizedBox{Width: 40, Height: 10},
			widgets.SizedBox{Width: 40, Height: 10},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	boxes := mayravtest.ByType[widgets.SizedBox]()
	if got := childOffset(t, tester, boxes, 0); got.X != 0 {
		t.Errorf("first child offset X = %v, want 0", got.X)
	}
	if got := childOffset(t, tester, boxes, 1); got.X != 160 {
		t.Errorf("second child offset X = %v, want 160", got.X)
	}
}

func TestFractionallySizedBox_ScalesConstraints(t *testing.T) {
	tester := mayravtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})

	err := tester.PumpWidget(widgets.FractionallySizedBox{
		WidthFactor: 0.25,
		Child:       widgets.Divider{Height: 20, Thickness: 2, Color: graphics.ColorBlack},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	divider := tester.Find(mayravtest.ByType[widgets.Divider]())
	if got := divider.RenderObject().Size().Width; got != 50 {
		t.Errorf("divider width = %v, want 50", got)
	}
}
