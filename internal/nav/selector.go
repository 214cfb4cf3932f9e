package nav

// Change describes one Select call.
type Change struct {
	From Destination
	To   Destination
}

// Selector tracks the single active destination. It starts at Home and is
// not safe for concurrent use; the owning view serializes access.
type Selector struct {
	active    Destination
	observers []*observer
}

type observer struct {
	fn func(Change)
}

// NewSelector returns a selector with Home active.
func NewSelector() *Selector {
	return &Selector{active: Home}
}

// Active returns the current destination.
func (s *Selector) Active() Destination {
	return s.active
}

// Select makes d active and notifies every observer, in registration order.
// Re-selecting the active destination still notifies, with From == To.
func (s *Selector) Select(d Destination) {
	c := Change{From: s.active, To: d}
	s.active = d
	for _, o := range s.observers {
		o.fn(c)
	}
}

// Subscribe registers fn to be called after every Select. The returned func
// removes the registration; calling it more than once is a no-op.
func (s *Selector) Subscribe(fn func(Change)) (unsubscribe func()) {
	o := &observer{fn: fn}
	s.observers = append(s.observers, o)
	return func() {
		for i, cur := range s.observers {
			if cur == o {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
