package event

import "sync"

// HandlerFunc handles a fired event. The argument is the payload passed to Fire,
// or nil when the event carries no payload.
type HandlerFunc func(arg any)

// Subscription represents a persistent handler registration created via On.
// Close removes the handler; closing an already-closed subscription is a no-op.
type Subscription struct {
	emitter *emitter
	key     string
	fn      HandlerFunc
	closed  bool
}

// Close removes this subscription from its emitter. Idempotent.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.emitter.remove(s)
}

// emitter is the implementation of the Emitter interface.
type emitter struct {
	mu   sync.Mutex
	on   map[string][]*Subscription
	once map[string]HandlerFunc
}

// Emitter defines a keyed event dispatcher. Handlers registered via Once fire at
// most one time per registration, and re-registering on the same key replaces the
// previous handler rather than accumulating a second one. Handlers registered via
// On persist until their Subscription is closed.
type Emitter interface {
	// On registers a persistent handler for the given key.
	//
	// Parameters:
	//   - key: the event key to listen on
	//   - fn: the handler to invoke on every Fire for the key
	//
	// Returns:
	//   - *Subscription: a handle used to remove the handler
	On(key string, fn HandlerFunc) *Subscription

	// Once registers a one-shot handler for the given key, replacing any
	// previously registered one-shot handler for the same key.
	//
	// Parameters:
	//   - key: the event key to listen on
	//   - fn: the handler to invoke on the next Fire for the key
	Once(key string, fn HandlerFunc)

	// Off removes the one-shot handler registered for the given key, if any.
	// Removing an absent handler is a no-op.
	//
	// Parameters:
	//   - key: the event key whose one-shot handler should be removed
	Off(key string)

	// Fire invokes the one-shot handler (consuming it) and every persistent
	// handler registered for the given key.
	//
	// Parameters:
	//   - key: the event key to fire
	//   - arg: the payload delivered to each handler
	Fire(key string, arg any)
}

var _ Emitter = &emitter{}

// NewEmitter creates a new empty Emitter.
//
// Returns:
//   - Emitter: a new instance of Emitter
func NewEmitter() Emitter {
	return &emitter{
		on:   make(map[string][]*Subscription),
		once: make(map[string]HandlerFunc),
	}
}

func (e *emitter) On(key string, fn HandlerFunc) *Subscription {
	sub := &Subscription{emitter: e, key: key, fn: fn}
	e.mu.Lock()
	e.on[key] = append(e.on[key], sub)
	e.mu.Unlock()
	return sub
}

func (e *emitter) Once(key string, fn HandlerFunc) {
	e.mu.Lock()
	e.once[key] = fn
	e.mu.Unlock()
}

func (e *emitter) Off(key string) {
	e.mu.Lock()
	delete(e.once, key)
	e.mu.Unlock()
}

func (e *emitter) Fire(key string, arg any) {
	e.mu.Lock()
	oneShot := e.once[key]
	delete(e.once, key)
	subs := make([]*Subscription, len(e.on[key]))
	copy(subs, e.on[key])
	e.mu.Unlock()

	// Handlers run outside the lock so they can re-subscribe on the same key.
	if oneShot != nil {
		oneShot(arg)
	}
	for _, sub := range subs {
		if !sub.closed {
			sub.fn(arg)
		}
	}
}

// remove drops a persistent subscription from the handler list for its key.
func (e *emitter) remove(sub *Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	subs := e.on[sub.key]
	for i, s := range subs {
		if s == sub {
			e.on[sub.key] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(e.on[sub.key]) == 0 {
		delete(e.on, sub.key)
	}
}
