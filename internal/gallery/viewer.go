package gallery

import "sync"

// Key is a keyboard key name as delivered by the browser.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// ScrollLock pins the page behind an open viewer.
type ScrollLock interface {
	Acquire()
	Release()
}

// Viewer shows one item of the current page at a time. Navigation stays
// inside the page it was opened on and never wraps.
type Viewer[T any] struct {
	mu    sync.Mutex
	lock  ScrollLock
	held  bool
	items []T
	index int
	open  bool
}

// NewViewer returns a closed viewer. lock may be nil.
func NewViewer[T any](lock ScrollLock) *Viewer[T] {
	return &Viewer[T]{lock: lock}
}

// Open shows items[index] with index clamped into the slice. Opening on an
// empty slice is a no-op.
func (v *Viewer[T]) Open(items []T, index int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(items) == 0 {
		return
	}
	v.items = items
	v.index = clamp(index, 0, len(items)-1)
	v.open = true
	if v.lock != nil && !v.held {
		v.lock.Acquire()
		v.held = true
	}
}

// Close hides the viewer and releases the scroll lock. Safe to call on
// teardown whether or not the viewer is open.
func (v *Viewer[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.open = false
	v.items = nil
	v.index = 0
	if v.lock != nil && v.held {
		v.lock.Release()
		v.held = false
	}
}

// HandleKey applies a key press and reports whether the viewer consumed it.
func (v *Viewer[T]) HandleKey(k Key) bool {
	if k == KeyEscape {
		if !v.IsOpen() {
			return false
		}
		v.Close()
		return true
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open {
		return false
	}
	switch k {
	case KeyArrowRight:
		v.index = clamp(v.index+1, 0, len(v.items)-1)
	case KeyArrowLeft:
		v.index = clamp(v.index-1, 0, len(v.items)-1)
	default:
		return false
	}
	return true
}

// Current returns the displayed item.
func (v *Viewer[T]) Current() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	if !v.open {
		return zero, false
	}
	return v.items[v.index], true
}

// Index returns the position of the displayed item within its page.
func (v *Viewer[T]) Index() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.index
}

func (v *Viewer[T]) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.open
}

func clamp(i, lo, hi int) int {
	return max(lo, min(i, hi))
}
