package object

import (
	"sync"
	"sync/atomic"
)

// ID identifies an object within the arena that created it
// Zero means the object was created outside any arena
type ID uint64

// Object is a named game entity with a z-order
// Objects are only reachable through a Handle; the object is destroyed when
// the last handle referencing it is released
type Object struct {
	mu     sync.RWMutex
	id     ID
	name   string
	zOrder int
	x, y   int
	glyph  rune
	color  string

	refs      atomic.Int64
	dead      atomic.Bool
	onDestroy []func(*Object)
}

// Option configures an object at creation
type Option func(*Object)

// WithID sets the arena identifier
func WithID(id ID) Option {
	return func(o *Object) { o.id = id }
}

// WithPosition places the object on the grid
func WithPosition(x, y int) Option {
	return func(o *Object) { o.x, o.y = x, y }
}

// WithGlyph sets the rune drawn for the object
func WithGlyph(r rune) Option {
	return func(o *Object) { o.glyph = r }
}

// WithColor sets the foreground color name (any name tcell.GetColor accepts)
func WithColor(c string) Option {
	return func(o *Object) { o.color = c }
}

// WithOnDestroy registers a hook called once when the last reference is dropped
// Hooks run in registration order on the goroutine that made the final Release
func WithOnDestroy(fn func(*Object)) Option {
	return func(o *Object) {
		if fn != nil {
			o.onDestroy = append(o.onDestroy, fn)
		}
	}
}

// New creates an object and returns the first handle to it
// The reference count starts at 1
func New(name string, zOrder int, opts ...Option) *Handle {
	o := &Object{
		name:   name,
		zOrder: zOrder,
		glyph:  '?',
	}
	for _, opt := range opts {
		opt(o)
	}
	o.refs.Store(1)

	h := &Handle{}
	h.obj.Store(o)
	return h
}

// ID returns the arena identifier, 0 if none
func (o *Object) ID() ID {
	return o.id
}

// Name returns the identifier matched by HasName
func (o *Object) Name() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.name
}

// SetName renames the object
func (o *Object) SetName(name string) {
	o.mu.Lock()
	o.name = name
	o.mu.Unlock()
}

// ZOrder returns the draw priority; higher is drawn on top
func (o *Object) ZOrder() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.zOrder
}

// SetZOrder changes the draw priority; lists holding the object must be re-sorted
func (o *Object) SetZOrder(z int) {
	o.mu.Lock()
	o.zOrder = z
	o.mu.Unlock()
}

// Position returns the grid cell
func (o *Object) Position() (x, y int) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.x, o.y
}

// SetPosition moves the object to another grid cell
func (o *Object) SetPosition(x, y int) {
	o.mu.Lock()
	o.x, o.y = x, y
	o.mu.Unlock()
}

// Glyph returns the rune drawn for the object
func (o *Object) Glyph() rune {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.glyph
}

// Color returns the foreground color name, empty for the renderer's base style
func (o *Object) Color() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.color
}

// Refs returns the current reference count, 0 once destroyed
func (o *Object) Refs() int64 {
	return o.refs.Load()
}

// Destroyed reports whether the last reference has been released
func (o *Object) Destroyed() bool {
	return o.dead.Load()
}

// retain increments the count unless the object is already destroyed
// CAS loop so a concurrent final release cannot be resurrected
func (o *Object) retain() bool {
	for {
		n := o.refs.Load()
		if n <= 0 {
			return false
		}
		if o.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (o *Object) release() {
	if o.refs.Add(-1) != 0 {
		return
	}
	if !o.dead.CompareAndSwap(false, true) {
		return
	}
	for _, fn := range o.onDestroy {
		fn(o)
	}
}
