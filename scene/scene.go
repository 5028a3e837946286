// Package scene provides an arena that creates game objects and tracks which are alive
package scene

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/lixenwraith/scenery/object"
)

// Scene is an arena of game objects
// It assigns IDs, holds one reference to every object it spawns, and indexes
// all objects that are still alive, including ones it no longer references
type Scene struct {
	mu     sync.RWMutex
	nextID object.ID
	live   map[object.ID]*object.Object
	root   object.List // Scene-owned references, spawn order

	onDestroy func(*object.Object)
}

// Option configures a Scene
type Option func(*Scene)

// WithDestroyHook is called after an object has been dropped from the live index
func WithDestroyHook(fn func(*object.Object)) Option {
	return func(s *Scene) { s.onDestroy = fn }
}

// New creates an empty scene
func New(opts ...Option) *Scene {
	s := &Scene{
		nextID: 1,
		live:   make(map[object.ID]*object.Object),
		root:   make(object.List, 0, 64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spawn creates an object owned by the scene and returns a shared handle to it
// The caller must release the returned handle
func (s *Scene) Spawn(name string, zOrder int, opts ...object.Option) *object.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	// Scene options go last so callers cannot override the ID or skip the index cleanup
	opts = append(slices.Clip(opts), object.WithID(id), object.WithOnDestroy(s.forget))
	h := object.New(name, zOrder, opts...)
	o, _ := h.Object()

	s.live[id] = o
	s.root = append(s.root, h)
	return h.Share()
}

// forget drops a destroyed object from the live index
// Runs from object release, which never happens while s.mu is held
func (s *Scene) forget(o *object.Object) {
	s.mu.Lock()
	delete(s.live, o.ID())
	s.mu.Unlock()

	log.Printf("scene: object %d %q destroyed", o.ID(), o.Name())
	if s.onDestroy != nil {
		s.onDestroy(o)
	}
}

// Lookup returns a shared handle to a live object by ID
func (s *Scene) Lookup(id object.ID) (*object.Handle, bool) {
	s.mu.RLock()
	o, ok := s.live[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	h := object.Acquire(o)
	if !h.Valid() {
		return nil, false
	}
	return h, true
}

// Find returns a shared handle to the first scene-owned object named name
func (s *Scene) Find(name string) (*object.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.root.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("scene find: %w", err)
	}
	return h.Share(), nil
}

// Destroy drops the scene's references to every object named name
// Objects still held elsewhere stay alive until their holders release them
func (s *Scene) Destroy(name string) int {
	s.mu.Lock()
	var dropped object.List
	kept := s.root[:0]
	for _, h := range s.root {
		if object.HasName(h, name) {
			dropped = append(dropped, h)
		} else {
			kept = append(kept, h)
		}
	}
	clear(s.root[len(kept):])
	s.root = kept
	s.mu.Unlock()

	// Released outside the lock: a final release re-enters through forget
	dropped.Release()
	return len(dropped)
}

// Live returns the number of objects not yet destroyed
func (s *Scene) Live() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.live)
}

// Len returns the number of objects the scene itself references
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.root)
}

// Objects returns shared handles to scene-owned objects in spawn order
// The caller must release the list
func (s *Scene) Objects() object.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Share()
}

// DrawOrder returns shared handles sorted by ascending z-order, back to front
// Equal z-orders keep spawn order. The caller must release the list
func (s *Scene) DrawOrder() object.List {
	l := s.Objects()
	// Objects() only returns valid handles, so sorting cannot fail
	_ = l.SortByZOrder()
	return l
}

// Close releases every scene-owned reference
func (s *Scene) Close() {
	s.mu.Lock()
	root := s.root
	s.root = nil
	s.mu.Unlock()

	root.Release()
}
