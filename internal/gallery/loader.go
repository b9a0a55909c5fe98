package gallery

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle of a Loader.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrNotFailed is returned by Retry when the loader is not in the error state.
var ErrNotFailed = errors.New("gallery: retry is only allowed after a failed load")

// FetchFunc loads the full ordered listing for one album.
type FetchFunc func(ctx context.Context) ([]Photo, error)

// Loader fetches an album at most once per lifetime. Concurrent callers share
// the in-flight fetch; a failure is sticky until Retry.
type Loader struct {
	fetch FetchFunc

	mu     sync.Mutex
	state  State
	photos []Photo
	err    error
	done   chan struct{}
}

// NewLoader returns an unloaded Loader.
func NewLoader(fetch FetchFunc) *Loader {
	return &Loader{fetch: fetch}
}

// Load returns the album, fetching it on the first call only.
func (l *Loader) Load(ctx context.Context) ([]Photo, error) {
	l.mu.Lock()
	switch l.state {
	case StateLoaded:
		defer l.mu.Unlock()
		return l.photos, nil
	case StateError:
		defer l.mu.Unlock()
		return nil, l.err
	case StateLoading:
		done := l.done
		l.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.photos, l.err
	}

	l.state = StateLoading
	l.done = make(chan struct{})
	l.mu.Unlock()

	photos, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state, l.err, l.photos = StateError, err, nil
	} else {
		l.state, l.err, l.photos = StateLoaded, nil, photos
	}
	close(l.done)
	return l.photos, l.err
}

// Retry performs a fresh fetch after a failed load.
func (l *Loader) Retry(ctx context.Context) ([]Photo, error) {
	l.mu.Lock()
	if l.state != StateError {
		l.mu.Unlock()
		return nil, ErrNotFailed
	}
	l.state, l.err = StateUnloaded, nil
	l.mu.Unlock()
	return l.Load(ctx)
}

// State returns the current lifecycle state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error of the last failed load.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
