// Package nodestore implements the growable backing store for linked-stack
// nodes.
//
// The store is an append-only sequence of value+link records addressed by
// 1-based indices, so that index 0 stays available as the shared "no node"
// sentinel. Slots are never removed; a slot freed by the pool layer is
// relinked onto its free list and later overwritten in place.
//
// Accessors are unguarded hot-path operations: callers own index validity.
package nodestore
