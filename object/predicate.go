package object

import "cmp"

// Z-order constants for common draw layers
// Higher values are drawn later, i.e. on top
const (
	ZBackground = 0
	ZDefault    = 100
	ZForeground = 500
	ZOverlay    = 1000
)

// HasName reports whether the handle's object is named exactly name (case-sensitive)
// Empty handles never match
func HasName(h *Handle, name string) bool {
	o, ok := h.Object()
	if !ok {
		return false
	}
	return o.Name() == name
}

// NameIs returns HasName bound to name, for use with slices.IndexFunc and friends
func NameIs(name string) func(*Handle) bool {
	return func(h *Handle) bool {
		return HasName(h, name)
	}
}

// LessZOrder reports whether a is strictly below b in z-order
func LessZOrder(a, b *Handle) bool {
	return CompareZOrder(a, b) < 0
}

// CompareZOrder is the three-way z-order comparison for slices.SortFunc
// Empty handles are equal to each other and order before any live handle
func CompareZOrder(a, b *Handle) int {
	oa, okA := a.Object()
	ob, okB := b.Object()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	if oa == ob {
		return 0
	}
	return cmp.Compare(oa.ZOrder(), ob.ZOrder())
}
