package core

import "testing"

type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("controller disposed before the state")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("controller not disposed with the state")
	}
}

func TestUseListenable(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)

	if notifier.ListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", notifier.ListenerCount())
	}

	base.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}

	// Notifying after dispose must not panic.
	notifier.Notify()
}

func TestManaged(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 42)

	if state.Value() != 42 {
		t.Errorf("Value = %d, want 42", state.Value())
	}

	state.Set(100)
	if state.Value() != 100 {
		t.Errorf("Value = %d, want 100", state.Value())
	}
}

func TestStateBase_DisposersRunInReverseOrder(t *testing.T) {
	base := &StateBase{}

	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	base.OnDispose(func() { order = append(order, 2) })
	base.OnDispose(func() { order = append(order, 3) })

	base.Dispose()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("disposers ran in order %v, want [3 2 1]", order)
	}
	if !base.IsDisposed() {
		t.Error("IsDisposed = false after Dispose")
	}
}

func TestStateBase_UnregisterDisposer(t *testing.T) {
	base := &StateBase{}

	ran := false
	unregister := base.OnDispose(func() { ran = true })
	unregister()

	base.Dispose()

	if ran {
		t.Error("unregistered disposer still ran")
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	notifier := NewNotifier()

	calls := 0
	unsub := notifier.AddListener(func() { calls++ })

	notifier.Notify()
	unsub()
	notifier.Notify()

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}
