package visibility

// Tracker layers one-shot trigger semantics on top of an [Observer].
//
// A tracker starts untriggered. Once its target's visible fraction satisfies
// the threshold, the tracker becomes triggered and stays triggered for the
// rest of its life: rebinding to a new target, releasing the observation, or
// the target scrolling back out of view never resets it.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	threshold float64
	triggered bool
	release   func()
	listeners map[int]func()
	nextID    int
}

// NewTracker creates an untriggered tracker with the given threshold.
// Threshold 0 triggers on any overlap with the viewport; threshold 1
// requires the target to be fully visible.
func NewTracker(threshold float64) *Tracker {
	return &Tracker{threshold: threshold}
}

// Bind starts observing a target through the observer. Any previous
// observation is released first. Binding after the tracker has triggered is
// a no-op: a triggered tracker never observes again.
func (t *Tracker) Bind(observer Observer, target Target) {
	t.releaseObservation()
	if t.triggered || observer == nil || target == nil {
		return
	}
	t.release = observer.Observe(target, t.threshold, t.fire)
}

func (t *Tracker) fire() {
	if t.triggered {
		return
	}
	t.triggered = true
	// Observers may or may not self-remove before firing; releasing here
	// covers both, and Observe handles permit release after the callback.
	t.releaseObservation()
	for _, listener := range t.listeners {
		listener()
	}
}

// Triggered reports whether the target has ever satisfied the threshold.
func (t *Tracker) Triggered() bool {
	return t.triggered
}

// Threshold returns the visible fraction required to trigger.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// AddListener registers a callback invoked when the tracker triggers.
// Returns an unsubscribe function.
func (t *Tracker) AddListener(listener func()) func() {
	if t.listeners == nil {
		t.listeners = make(map[int]func())
	}
	id := t.nextID
	t.nextID++
	t.listeners[id] = listener
	return func() {
		delete(t.listeners, id)
	}
}

func (t *Tracker) releaseObservation() {
	if t.release != nil {
		t.release()
		t.release = nil
	}
}

// Dispose releases any pending observation and drops listeners. The
// triggered flag is retained so a disposed tracker still reports its final
// state.
func (t *Tracker) Dispose() {
	t.releaseObservation()
	t.listeners = nil
}
