package responsive

import (
	"sync"
)

// Size is a point-in-time snapshot of the rendering surface.
type Size struct {
	Width  int
	Height int
}

func clampSize(s Size) Size {
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// Source delivers resize notifications.
//
// Subscribe registers fn and returns the func that releases exactly that
// registration. Releasing twice is a no-op.
type Source interface {
	Size() Size
	Subscribe(fn func(Size)) (unsubscribe func())
}

// Broadcaster is a Source fed by explicit Publish calls. The TUI publishes
// every window size message through one; tests use it to simulate resizes.
type Broadcaster struct {
	mu     sync.Mutex
	size   Size
	nextID int
	subs   map[int]func(Size)
}

// NewBroadcaster creates a Broadcaster reporting initial until the first Publish.
func NewBroadcaster(initial Size) *Broadcaster {
	return &Broadcaster{
		size: clampSize(initial),
		subs: make(map[int]func(Size)),
	}
}

// Size returns the last published size.
func (b *Broadcaster) Size() Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Subscribe implements Source.
func (b *Broadcaster) Subscribe(fn func(Size)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish records size and notifies every subscriber.
// Callbacks run outside the lock so they may read the broadcaster.
func (b *Broadcaster) Publish(size Size) {
	size = clampSize(size)

	b.mu.Lock()
	b.size = size
	fns := make([]func(Size), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(size)
	}
}

// Subscribers returns the number of live registrations.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
