package object

import "sync/atomic"

// Handle is one shared reference to an Object
// Any number of handles may reference the same object; each must be released
// exactly once by its holder. A nil or released handle is empty
type Handle struct {
	obj atomic.Pointer[Object]
}

// Share returns a new handle to the same object, incrementing the reference count
// Sharing an empty handle, or one whose object is already gone, returns an empty handle
func (h *Handle) Share() *Handle {
	nh := &Handle{}
	if h == nil {
		return nh
	}
	o := h.obj.Load()
	if o == nil || !o.retain() {
		return nh
	}
	nh.obj.Store(o)
	return nh
}

// Release drops this handle's reference; the handle is empty afterwards
// Calling Release more than once on the same handle is a no-op
func (h *Handle) Release() {
	if h == nil {
		return
	}
	if o := h.obj.Swap(nil); o != nil {
		o.release()
	}
}

// Object returns the referenced object, false if the handle is empty
func (h *Handle) Object() (*Object, bool) {
	if h == nil {
		return nil, false
	}
	o := h.obj.Load()
	return o, o != nil
}

// Valid reports whether the handle references a live object
func (h *Handle) Valid() bool {
	_, ok := h.Object()
	return ok
}

// Same reports whether both handles reference the same object
// Two empty handles are not the same
func (h *Handle) Same(other *Handle) bool {
	a, ok := h.Object()
	if !ok {
		return false
	}
	b, ok := other.Object()
	return ok && a == b
}

// Acquire returns a new handle to o, or an empty handle if o is nil or destroyed
// Used by arenas that index objects by ID and hand out references on lookup
func Acquire(o *Object) *Handle {
	h := &Handle{}
	if o != nil && o.retain() {
		h.obj.Store(o)
	}
	return h
}
