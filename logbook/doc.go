// Package logbook implements the domain operations over the stored
// nutrition log: read, add, update, delete, and search.
//
// Every operation is one read-modify-write cycle: fetch the document and its
// version tag from the store, apply a pure macro transformation, commit the
// new body. Nothing is held across invocations and there is no local
// locking; concurrency safety is delegated entirely to the store's tag-gated
// conditional write, so overlapping writers race and the loser surfaces
// store.ErrRemoteConflict. Failures are never retried here.
package logbook
