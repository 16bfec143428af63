package object

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrClosed    = errors.New("object registry closed")
	ErrNilObject = errors.New("cannot register nil object")
)

// Handle is an opaque, generation-checked reference to a registered object.
// Handle 0 is reserved and always invalid. Slots are reused after release,
// but the generation bump makes every stale handle fail Deref instead of
// resolving to the slot's new occupant.
type Handle uint64

func newHandle(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx)+1)
}

func (h Handle) index() (uint32, bool) {
	low := uint32(h)
	if low == 0 {
		return 0, false
	}
	return low - 1, true
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

// Event types for object lifecycle notifications.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventReleased
)

// Event represents an object lifecycle event.
type Event struct {
	Object Object
	Handle Handle
	Type   EventType
}

// Observer receives notifications about object lifecycle events.
type Observer interface {
	OnObjectEvent(Event)
}

// Registry owns the liveness of host objects. Wrappers and other borrowers
// hold Refs, never the objects themselves; a Ref to a released object
// resolves to nothing rather than to freed state.
type Registry struct {
	entries   []regEntry
	freeList  []uint32
	mu        sync.RWMutex
	closed    bool
	observers []Observer
	obsMu     sync.RWMutex
}

type regEntry struct {
	obj  Object
	gen  uint32
	live bool
}

// NewRegistry creates an empty object registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make([]regEntry, 0, 16),
		freeList: make([]uint32, 0, 8),
	}
}

// Register stores an object and returns its handle.
func (r *Registry) Register(obj Object) (Handle, error) {
	if obj == nil {
		return 0, ErrNilObject
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0, ErrClosed
	}

	var idx uint32
	if n := len(r.freeList); n > 0 {
		idx = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.entries[idx].obj = obj
		r.entries[idx].live = true
	} else {
		idx = uint32(len(r.entries))
		r.entries = append(r.entries, regEntry{obj: obj, live: true})
	}
	h := newHandle(idx, r.entries[idx].gen)
	r.mu.Unlock()

	Logger().Debug("registered object",
		zap.String("name", obj.ObjectName()),
		zap.Uint64("handle", uint64(h)))

	r.notify(Event{Type: EventRegistered, Handle: h, Object: obj})
	return h, nil
}

// Deref resolves a handle to its object. A released or reused slot fails
// the generation check and reports the object as gone.
func (r *Registry) Deref(h Handle) (Object, bool) {
	idx, ok := h.index()
	if !ok {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if int(idx) >= len(r.entries) {
		return nil, false
	}
	e := r.entries[idx]
	if !e.live || e.gen != h.generation() {
		return nil, false
	}
	return e.obj, true
}

// Release removes an object and returns it if the handle was live.
func (r *Registry) Release(h Handle) (Object, bool) {
	idx, ok := h.index()
	if !ok {
		return nil, false
	}

	r.mu.Lock()
	if int(idx) >= len(r.entries) {
		r.mu.Unlock()
		return nil, false
	}
	e := &r.entries[idx]
	if !e.live || e.gen != h.generation() {
		r.mu.Unlock()
		return nil, false
	}

	obj := e.obj
	e.obj = nil
	e.live = false
	e.gen++
	r.freeList = append(r.freeList, idx)
	r.mu.Unlock()

	Logger().Debug("released object",
		zap.String("name", obj.ObjectName()),
		zap.Uint64("handle", uint64(h)))

	r.notify(Event{Type: EventReleased, Handle: h, Object: obj})
	return obj, true
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.entries {
		if e.live {
			count++
		}
	}
	return count
}

// Each iterates over all live objects in registration order.
func (r *Registry) Each(fn func(Handle, Object) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if e.live {
			if !fn(newHandle(uint32(i), e.gen), e.obj) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Close releases all objects and stops accepting registrations.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	for i := range r.entries {
		if r.entries[i].live {
			r.entries[i].obj = nil
			r.entries[i].live = false
			r.entries[i].gen++
		}
	}

	r.entries = nil
	r.freeList = nil
	return nil
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnObjectEvent(e)
	}
}
