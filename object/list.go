package object

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidHandle is returned when an operation meets a nil or released handle
	ErrInvalidHandle = errors.New("invalid object handle")
	// ErrNotFound is returned when no object in a list matches
	ErrNotFound = errors.New("object not found")
)

// List is an ordered sequence of handles
// The same object may appear more than once. A list owns the handles it holds:
// removing a handle from a list releases it
type List []*Handle

// Append adds h to the end of the list
// The list takes ownership of h; pass h.Share() to keep a reference of your own
// or to add the same object twice
func (l List) Append(h *Handle) (List, error) {
	if !h.Valid() {
		return l, ErrInvalidHandle
	}
	return append(l, h), nil
}

// Validate reports the first empty handle in the list
func (l List) Validate() error {
	for i, h := range l {
		if !h.Valid() {
			return fmt.Errorf("index %d: %w", i, ErrInvalidHandle)
		}
	}
	return nil
}

// IndexByName returns the index of the first object named name
func (l List) IndexByName(name string) (int, error) {
	for i, h := range l {
		if !h.Valid() {
			return -1, fmt.Errorf("index %d: %w", i, ErrInvalidHandle)
		}
		if HasName(h, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// FindByName returns the first handle whose object is named name
// The returned handle is still owned by the list
func (l List) FindByName(name string) (*Handle, error) {
	i, err := l.IndexByName(name)
	if err != nil {
		return nil, err
	}
	return l[i], nil
}

// FilterByName returns every handle whose object is named name, in list order
// The result aliases the list's handles and must not be released
func (l List) FilterByName(name string) (List, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var out List
	for _, h := range l {
		if HasName(h, name) {
			out = append(out, h)
		}
	}
	return out, nil
}

// RemoveByName removes and releases every handle whose object is named name
// Returns the shortened list and the number of handles removed
// A list holding an empty handle is returned unchanged with ErrInvalidHandle
func (l List) RemoveByName(name string) (List, int, error) {
	if err := l.Validate(); err != nil {
		return l, 0, err
	}
	removed := 0
	l = slices.DeleteFunc(l, func(h *Handle) bool {
		if HasName(h, name) {
			h.Release()
			removed++
			return true
		}
		return false
	})
	return l, removed, nil
}

// SortByZOrder sorts the list into ascending z-order in place
// The sort is stable: objects with equal z keep their relative order
func (l List) SortByZOrder() error {
	if err := l.Validate(); err != nil {
		return err
	}
	slices.SortStableFunc(l, CompareZOrder)
	return nil
}

// Top returns the handle with the highest z-order, nil for an empty list
// On ties the later handle wins since it is drawn last
func (l List) Top() (*Handle, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var top *Handle
	for _, h := range l {
		if top == nil || CompareZOrder(h, top) >= 0 {
			top = h
		}
	}
	return top, nil
}

// Share returns a copy of the list holding its own references
// Empty handles are dropped from the copy
func (l List) Share() List {
	out := make(List, 0, len(l))
	for _, h := range l {
		if s := h.Share(); s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

// Release releases every handle in the list
func (l List) Release() {
	for _, h := range l {
		h.Release()
	}
}
