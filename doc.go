// Package layout provides the constraint-based layout engine for a vector
// design canvas.
//
// Users import this single package for the complete public API: the engine,
// its cached per-node layout data, pin constraint and auto-layout
// configuration types, and the scene-graph interface the engine consumes.
//
// Two positioning systems cooperate. Containers with auto-layout enabled
// place their children with a flexbox-like algorithm; everything else is
// positioned by per-axis pin constraints fed to an incremental linear
// constraint solver. A dirty-node set plus a coalesced deferred recompute
// ties the two together: bursts of scene mutations produce one solve.
package layout
