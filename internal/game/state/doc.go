// Package state defines the root game value and its sub-records.
//
// Game is a plain, serializable value. Commands never mutate a Game they
// were handed: they copy the touched sub-records and return a new root
// sharing the unchanged branches. That discipline is what makes snapshot
// undo and replay cheap.
package state
