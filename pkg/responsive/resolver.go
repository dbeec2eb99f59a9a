package responsive

import "sync"

// State is an immutable view of a Resolver at one instant.
type State struct {
	Size       Size
	Breakpoint Breakpoint
	Class      DeviceClass
}

// IsMobile reports width < md.
func (s State) IsMobile() bool { return s.Class == Mobile }

// IsTablet reports md <= width < lg.
func (s State) IsTablet() bool { return s.Class == Tablet }

// IsDesktop reports width >= lg.
func (s State) IsDesktop() bool { return s.Class == Desktop }

// Resolver tracks the viewport size and derives the active breakpoint.
// It holds at most one Source subscription at a time.
type Resolver struct {
	table Table

	mu          sync.RWMutex
	size        Size
	unsubscribe func()
	onChange    func(State)
}

// NewResolver creates an inactive resolver over table. Until it is activated
// or resized the size is {0,0}, which resolves to the table floor.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Table returns the breakpoint table.
func (r *Resolver) Table() Table { return r.table }

// OnChange registers fn to run after every size change. Passing nil clears it.
func (r *Resolver) OnChange(fn func(State)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Activate subscribes to src after synchronously capturing its current size,
// so readers never observe a stale size once Activate returns.
// A previous subscription is released first.
func (r *Resolver) Activate(src Source) {
	r.Deactivate()

	r.Resize(src.Size())
	unsubscribe := src.Subscribe(r.Resize)

	r.mu.Lock()
	r.unsubscribe = unsubscribe
	r.mu.Unlock()
}

// Deactivate releases the subscription, if any. The last size is kept.
func (r *Resolver) Deactivate() {
	r.mu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Active reports whether the resolver currently holds a subscription.
func (r *Resolver) Active() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unsubscribe != nil
}

// Resize records a new viewport size. Negative dimensions clamp to zero.
func (r *Resolver) Resize(size Size) {
	size = clampSize(size)

	r.mu.Lock()
	changed := size != r.size
	r.size = size
	fn := r.onChange
	r.mu.Unlock()

	if changed && fn != nil {
		fn(r.stateFor(size))
	}
}

// Size returns the current viewport size.
func (r *Resolver) Size() Size {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

// Current returns the largest breakpoint reached by the current width.
func (r *Resolver) Current() Breakpoint {
	return r.table.Resolve(r.Size().Width)
}

// IsAtLeast reports whether the current width reaches bp's threshold.
func (r *Resolver) IsAtLeast(bp Breakpoint) bool {
	return r.table.AtLeast(r.Size().Width, bp)
}

// IsMobile reports width < md.
func (r *Resolver) IsMobile() bool { return r.Class() == Mobile }

// IsTablet reports md <= width < lg.
func (r *Resolver) IsTablet() bool { return r.Class() == Tablet }

// IsDesktop reports width >= lg.
func (r *Resolver) IsDesktop() bool { return r.Class() == Desktop }

// Class returns the current device class.
func (r *Resolver) Class() DeviceClass {
	return r.table.Class(r.Size().Width)
}

// State returns a consistent snapshot of size, breakpoint and class.
func (r *Resolver) State() State {
	return r.stateFor(r.Size())
}

func (r *Resolver) stateFor(size Size) State {
	return State{
		Size:       size,
		Breakpoint: r.table.Resolve(size.Width),
		Class:      r.table.Class(size.Width),
	}
}
