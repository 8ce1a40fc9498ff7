package reactive

import "sync"

// Cell holds a value and notifies subscribers on every Set.
type Cell[T any] struct {
	mu          sync.RWMutex
	value       T
	nextID      int
	subscribers map[int]func(T)
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value:       initial,
		subscribers: make(map[int]func(T)),
	}
}

func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	c.value = value
	subscribers := make([]func(T), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(value)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}
