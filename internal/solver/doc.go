// Package solver provides a string-addressable façade over an incremental
// linear-arithmetic constraint solver (Cassowary family).
//
// Callers register constraints under stable string IDs; re-registering an ID
// replaces the previous constraint, which makes a full rebuild per layout
// pass idempotent. Variables are memoized per (node, property) pair and only
// released in bulk by Clear or Reset.
//
// All operations the underlying solver rejects are swallowed: the engine
// generates constraints itself, and a best-effort visual layout beats
// propagating errors out of a render pass.
package solver
