package core

import (
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/layout"
)

// ScrollOffsetProvider reports a paint-time scroll offset for descendants.
type ScrollOffsetProvider interface {
	ScrollOffset() graphics.Offset
}

// GlobalOffsetOf returns the accumulated offset for an element in the render
// tree. Scrollable ancestors contribute their negative scroll offset, so the
// result is the element's position in viewport coordinates.
//
// Composed elements (stateless, stateful, inherited) share the render object
// of their nearest render descendant; each distinct render object along the
// ancestor walk contributes exactly once.
func GlobalOffsetOf(element Element) graphics.Offset {
	var offset graphics.Offset
	var last layout.RenderObject
	for current := element; current != nil; current = parentOf(current) {
		renderObject := renderObjectOf(current)
		if renderObject == nil || renderObject == last {
			continue
		}
		offset = offset.Add(layout.ChildOffset(renderObject))
		if provider, ok := renderObject.(ScrollOffsetProvider); ok {
			offset = offset.Add(provider.ScrollOffset())
		}
		last = renderObject
	}
	return offset
}

func renderObjectOf(element Element) layout.RenderObject {
	if provider, ok := element.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}

func parentOf(element Element) Element {
	if provider, ok := element.(interface{ parentElement() Element }); ok {
		return provider.parentElement()
	}
	return nil
}
