package pool

import (
	"sync"
)

// Pool is a typed sync.Pool. Items are optionally reset before they are
// returned to the pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// New creates a Pool whose empty Get calls factory. reset may be nil.
func New[T any](factory func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return factory()
			},
		},
		reset: reset,
	}
}

// Get retrieves an item from the pool, or creates a new one if the pool is empty.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put resets x and returns it to the pool.
func (p *Pool[T]) Put(x T) {
	if p.reset != nil {
		p.reset(x)
	}
	p.pool.Put(x)
}

// With runs fn with a pooled item and puts the item back afterwards. fn must
// not keep references to the item.
func (p *Pool[T]) With(fn func(T) error) error {
	x := p.Get()
	defer p.Put(x)
	return fn(x)
}
