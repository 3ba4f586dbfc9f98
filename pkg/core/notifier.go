package core

// Notifier is a minimal [Listenable] implementation. Types that need change
// notifications can embed or hold one instead of managing listener maps.
//
// Notifier is not safe for concurrent use.
type Notifier struct {
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers a callback. Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// Notify invokes all registered listeners.
func (n *Notifier) Notify() {
	for _, fn := range n.listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}
