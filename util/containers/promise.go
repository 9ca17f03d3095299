// Copyright 2021-2022, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package containers

import (
	"context"
	"errors"
	"sync"
)

var ErrNotReady = errors.New("not ready")

// Promise is a one-shot result that can be awaited with a context.
// A Promise must be created with NewPromise, and is produced at most once.
type Promise[T any] struct {
	mutex     sync.Mutex
	result    T
	err       error
	produced  bool
	chanReady chan struct{}
	cancel    func()
}

func NewPromise[T any]() Promise[T] {
	return Promise[T]{
		chanReady: make(chan struct{}),
	}
}

// SetCancel sets the function Cancel calls, and which Await calls when
// its context expires before the promise is produced.
func (p *Promise[T]) SetCancel(cancel func()) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.cancel = cancel
}

func (p *Promise[T]) Cancel() {
	p.mutex.Lock()
	cancel := p.cancel
	p.mutex.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Current returns the result if already produced, otherwise ErrNotReady.
func (p *Promise[T]) Current() (T, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.produced {
		var empty T
		return empty, ErrNotReady
	}
	return p.result, p.err
}

// Await blocks until the promise is produced or ctx expires.
// A context expiry cancels the promise and returns the context's error.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.chanReady:
		return p.Current()
	case <-ctx.Done():
		p.Cancel()
		var empty T
		return empty, ctx.Err()
	}
}

func (p *Promise[T]) Produce(value T) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.produced {
		return
	}
	p.result = value
	p.produced = true
	close(p.chanReady)
}

func (p *Promise[T]) ProduceError(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.produced {
		return
	}
	p.err = err
	p.produced = true
	close(p.chanReady)
}
