// Package engine drives the build, layout, and paint pipeline headlessly.
//
// An Engine mounts a widget tree at a fixed logical size and pumps frames on
// demand: each frame steps active animation tickers, rebuilds dirty elements,
// runs layout, and records the paint output into a display list. The same
// loop serves the command-line renderer and the widget test harness.
package engine

import (
	stderrors "errors"

	"github.com/mafeblanco565/mayrav/pkg/animation"
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/errors"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// ErrNoRenderObject reports a widget tree that produced nothing to render.
// This is the one unrecoverable setup failure: without a render root there
// is no surface to degrade onto.
var ErrNoRenderObject = stderrors.New("widget tree produced no render object")

// Engine owns a mounted widget tree and renders it frame by frame.
type Engine struct {
	owner *core.BuildOwner
	root  core.Element
	size  graphics.Size
}

// New creates an engine rendering at the given logical size.
func New(size graphics.Size) *Engine {
	return &Engine{
		owner: core.NewBuildOwner(),
		size:  size,
	}
}

// Mount inflates the widget as the root of the element tree. It returns
// ErrNoRenderObject (wrapped) when the tree yields no render object.
func (e *Engine) Mount(widget core.Widget) error {
	e.root = core.MountRoot(widget, e.owner)
	e.owner.FlushBuild()
	if e.rootRenderObject() == nil {
		return errors.New("engine.Mount", errors.KindRender, ErrNoRenderObject)
	}
	return nil
}

// Root returns the root element, nil before Mount.
func (e *Engine) Root() core.Element {
	return e.root
}

// Owner returns the build owner driving the element tree.
func (e *Engine) Owner() *core.BuildOwner {
	return e.owner
}

// Size returns the logical rendering size.
func (e *Engine) Size() graphics.Size {
	return e.size
}

func (e *Engine) rootRenderObject() layout.RenderObject {
	if e.root == nil {
		return nil
	}
	if provider, ok := e.root.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}

// PumpFrame advances animations and renders one frame. It returns the
// recorded display list, or nil when nothing changed since the last frame.
func (e *Engine) PumpFrame() *graphics.DisplayList {
	animation.StepTickers()
	e.owner.FlushBuild()

	root := e.rootRenderObject()
	if root == nil {
		return nil
	}

	pipeline := e.owner.Pipeline()
	pipeline.FlushLayoutForRoot(root, layout.Tight(e.size))

	if !pipeline.NeedsPaint() {
		return nil
	}
	pipeline.ClearPaint()

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(e.size)
	root.Paint(&layout.PaintContext{Canvas: canvas})
	return recorder.EndRecording()
}

// PumpUntilSettled pumps frames until no animations or rebuilds remain,
// up to maxFrames. It returns the last non-nil display list.
func (e *Engine) PumpUntilSettled(maxFrames int) *graphics.DisplayList {
	var last *graphics.DisplayList
	for i := 0; i < maxFrames; i++ {
		frame := e.PumpFrame()
		if frame != nil {
			last = frame
		}
		if !animation.HasActiveTickers() && !e.owner.NeedsWork() {
			break
		}
	}
	return last
}

// NeedsFrame reports whether pending rebuilds, layout, or animations require
// another frame.
func (e *Engine) NeedsFrame() bool {
	return animation.HasActiveTickers() || e.owner.NeedsWork()
}

// HandleTap hit-tests the tree at a position in root coordinates and invokes
// the innermost tap target.
func (e *Engine) HandleTap(position graphics.Offset) bool {
	root := e.rootRenderObject()
	if root == nil {
		return false
	}
	var result layout.HitTestResult
	if !root.HitTest(position, &result) {
		return false
	}
	for _, entry := range result.Entries {
		if target, ok := entry.(layout.TapTarget); ok {
			target.OnTap()
			return true
		}
	}
	return false
}
