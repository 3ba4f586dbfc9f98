// Package core provides the widget and element framework: immutable widget
// configurations, the element tree that holds state between builds, and the
// build scheduling that drives rebuilds in depth order.
package core

import "reflect"

// Widget is an immutable description of part of the user interface.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget across rebuilds. Widgets of the same type
	// with equal keys update in place; otherwise the old element unmounts.
	Key() any
}

// StatelessWidget builds a subtree purely from its own fields.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates mutable State that survives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds mutable state for a StatefulWidget and builds its subtree.
// Embed [StateBase] for default implementations of everything but Build.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget exposes a value to all descendants. Descendants that call
// [BuildContext.DependOnInherited] are rebuilt when the widget updates and
// UpdateShouldNotify returns true.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	UpdateShouldNotify(old InheritedWidget) bool
}

// BuildContext is the element handle passed to Build methods.
type BuildContext interface {
	// Widget returns the widget currently hosted by this element.
	Widget() Widget
	// DependOnInherited finds the nearest ancestor InheritedWidget of the
	// given type, registers this element as a dependent, and returns the
	// widget. Returns nil when no ancestor of that type exists.
	DependOnInherited(inheritedType reflect.Type) any
}

// Element is a node in the element tree, pairing a widget with its state
// and (transitively) its render objects.
type Element interface {
	BuildContext
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
}

// Listenable is a source of change notifications. AddListener returns an
// unsubscribe function.
type Listenable interface {
	AddListener(fn func()) func()
}

// Disposable releases resources when no longer needed.
type Disposable interface {
	Dispose()
}
