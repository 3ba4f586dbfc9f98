package core

import (
	"reflect"
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/errors"
)

type testStatelessWidget struct {
	StatelessBase
	buildFn func(BuildContext) Widget
}

func (w testStatelessWidget) Build(ctx BuildContext) Widget {
	if w.buildFn != nil {
		return w.buildFn(ctx)
	}
	return nil
}

type testStatefulWidget struct {
	StatefulBase
	state *testState
}

func (w testStatefulWidget) CreateState() State {
	if w.state != nil {
		return w.state
	}
	return &testState{}
}

type testState struct {
	StateBase
	initCalls  int
	buildCalls int
	depChanges int
	buildFn    func(BuildContext) Widget
}

func (s *testState) InitState() {
	s.initCalls++
}

func (s *testState) DidChangeDependencies() {
	s.depChanges++
}

func (s *testState) Build(ctx BuildContext) Widget {
	s.buildCalls++
	if s.buildFn != nil {
		return s.buildFn(ctx)
	}
	return nil
}

type testErrorHandler struct {
	errors.LogHandler
	buildErrors []*errors.BuildError
}

func (h *testErrorHandler) HandleBuildError(err *errors.BuildError) {
	h.buildErrors = append(h.buildErrors, err)
}

func TestStatefulElement_Lifecycle(t *testing.T) {
	owner := NewBuildOwner()
	state := &testState{}

	element := MountRoot(testStatefulWidget{state: state}, owner)
	owner.FlushBuild()

	if state.initCalls != 1 {
		t.Errorf("InitState called %d times, want 1", state.initCalls)
	}
	if state.buildCalls != 1 {
		t.Errorf("Build called %d times after mount, want 1", state.buildCalls)
	}

	disposed := false
	state.OnDispose(func() { disposed = true })

	element.Unmount()
	if !disposed {
		t.Error("disposers did not run on unmount")
	}
	if !state.IsDisposed() {
		t.Error("state not disposed on unmount")
	}
}

func TestSetState_SchedulesRebuild(t *testing.T) {
	owner := NewBuildOwner()
	state := &testState{}

	MountRoot(testStatefulWidget{state: state}, owner)
	owner.FlushBuild()

	state.SetState(nil)
	if !owner.NeedsWork() {
		t.Fatal("SetState did not schedule work")
	}
	owner.FlushBuild()

	if state.buildCalls != 2 {
		t.Errorf("Build called %d times after SetState, want 2", state.buildCalls)
	}
}

func TestSetState_AfterDisposeIsNoop(t *testing.T) {
	owner := NewBuildOwner()
	state := &testState{}

	element := MountRoot(testStatefulWidget{state: state}, owner)
	owner.FlushBuild()
	element.Unmount()

	state.SetState(nil)
	owner.FlushBuild()

	if state.buildCalls != 1 {
		t.Errorf("Build called %d times after unmount, want 1", state.buildCalls)
	}
}

func TestBuildPanic_ReportsAndRendersNothing(t *testing.T) {
	handler := &testErrorHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("boom")
		},
	}

	owner := NewBuildOwner()
	element := MountRoot(widget, owner)
	owner.FlushBuild()

	if len(handler.buildErrors) != 1 {
		t.Fatalf("reported %d build errors, want 1", len(handler.buildErrors))
	}
	err := handler.buildErrors[0]
	if err.Recovered != "boom" {
		t.Errorf("Recovered = %v, want boom", err.Recovered)
	}
	if err.StackTrace == "" {
		t.Error("no stack trace captured")
	}
	root, ok := element.(*StatelessElement)
	if !ok {
		t.Fatalf("mounted element is %T, want *StatelessElement", element)
	}
	if root.RenderObject() != nil {
		t.Error("panicking subtree produced a render object")
	}
}

type testInherited struct {
	InheritedBase
	value int
	child Widget
}

func (w testInherited) ChildWidget() Widget { return w.child }

func (w testInherited) UpdateShouldNotify(old InheritedWidget) bool {
	prev, ok := old.(testInherited)
	return !ok || prev.value != w.value
}

func TestInherited_NotifiesDependents(t *testing.T) {
	owner := NewBuildOwner()
	state := &testState{}
	var latest int

	state.buildFn = func(ctx BuildContext) Widget {
		if w, ok := ctx.DependOnInherited(reflect.TypeOf(testInherited{})).(testInherited); ok {
			latest = w.value
		}
		return nil
	}

	root := MountRoot(testInherited{value: 1, child: testStatefulWidget{state: state}}, owner)
	owner.FlushBuild()

	if latest != 1 {
		t.Fatalf("dependent read value %d, want 1", latest)
	}
	if state.depChanges != 0 {
		t.Fatalf("DidChangeDependencies called %d times on mount, want 0", state.depChanges)
	}

	// Same value: the child updates but dependencies did not change.
	root.Update(testInherited{value: 1, child: testStatefulWidget{state: state}})
	owner.FlushBuild()
	if state.depChanges != 0 {
		t.Fatalf("DidChangeDependencies called %d times without a value change", state.depChanges)
	}

	root.Update(testInherited{value: 2, child: testStatefulWidget{state: state}})
	owner.FlushBuild()
	if state.depChanges != 1 {
		t.Fatalf("DidChangeDependencies called %d times after a value change, want 1", state.depChanges)
	}
	if latest != 2 {
		t.Errorf("dependent read value %d after change, want 2", latest)
	}
}
