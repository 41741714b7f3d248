// Package controllers holds per-screen view state. Each controller calls its
// repositories, records the outcome in a State and re-derives presentable
// data after mutations. State is guarded by a mutex so a presentation layer
// may read it from another goroutine.
package controllers

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Status is the lifecycle of an asynchronous load.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is a snapshot of a controller. Data keeps the last loaded value
// while a reload is in flight or after it fails.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Message returns the user-facing error message, or "".
func (s State[T]) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

type stateBox[T any] struct {
	mu    sync.RWMutex
	state State[T]
}

// State returns the current snapshot.
func (b *stateBox[T]) State() State[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// begin marks a load in flight and returns the state it replaced.
func (b *stateBox[T]) begin() State[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.state
	b.state = State[T]{Status: StatusLoading, Data: prev.Data}
	return prev
}

func (b *stateBox[T]) succeed(data T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = State[T]{Status: StatusSuccess, Data: data}
}

func (b *stateBox[T]) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = State[T]{Status: StatusError, Data: b.state.Data, Err: err}
}

func (b *stateBox[T]) restore(prev State[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = prev
}

// update applies fn to the loaded data in place.
func (b *stateBox[T]) update(fn func(*T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.state.Data)
}

type loader interface {
	Load(ctx context.Context)
}

// mutate runs a write and reloads on success. On failure the state is left
// as it was and the error is returned to the caller.
func mutate(ctx context.Context, l loader, log *zap.SugaredLogger, action string, write func() error) error {
	if err := write(); err != nil {
		log.Errorw("failed to "+action, "error", err)
		return err
	}
	l.Load(ctx)
	return nil
}
