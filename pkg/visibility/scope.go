package visibility

import (
	"reflect"

	"github.com/mafeblanco565/mayrav/pkg/core"
)

// Scope provides an [Observer] to descendant widgets. Reveal widgets look up
// the nearest scope to bind their trackers, so a page supplies one observer
// for the whole tree instead of threading it through every constructor.
type Scope struct {
	core.InheritedBase
	Observer Observer
	Child    core.Widget
}

func (s Scope) ChildWidget() core.Widget { return s.Child }

func (s Scope) UpdateShouldNotify(old core.InheritedWidget) bool {
	oldScope, ok := old.(Scope)
	if !ok {
		return true
	}
	return s.Observer != oldScope.Observer
}

// ObserverOf returns the observer from the nearest enclosing [Scope], or nil
// when there is none. Widgets without a scope skip observation entirely.
func ObserverOf(ctx core.BuildContext) Observer {
	widget := ctx.DependOnInherited(reflect.TypeOf(Scope{}))
	if scope, ok := widget.(Scope); ok {
		return scope.Observer
	}
	return nil
}
