// Package object provides shared-ownership handles to game objects, ordered
// object lists, and the two helpers call sites use on them: a name-match
// predicate for lookup and a z-order comparator for draw-order sorting.
//
// Ownership is reference counted. Every Handle is one reference; Share adds
// one and Release drops it. The object is destroyed, and its destroy hooks
// run, when the last reference is released.
//
// Predicates and comparators never mutate the objects they inspect.
package object
