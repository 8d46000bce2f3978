package layout

import "time"

// markDirtyLocked adds a node to the dirty set. Marking is monotonic within
// a cycle: nothing leaves the set until a pass clears it atomically.
func (e *Engine) markDirtyLocked(id NodeID) {
	e.dirty[id] = struct{}{}
}

// markDirtyWithChildrenLocked adds a node and its full descendant subtree.
func (e *Engine) markDirtyWithChildrenLocked(id NodeID) {
	e.dirty[id] = struct{}{}
	for _, desc := range e.scene.Descendants(id) {
		e.dirty[desc.ID] = struct{}{}
	}
}

// scheduleLocked arms the coalesced deferred pass. Redundant requests while
// one is pending are no-ops; a burst of mutations yields exactly one solve.
func (e *Engine) scheduleLocked() {
	if e.pending || e.disposed {
		return
	}
	e.pending = true
	if e.timer == nil {
		e.timer = time.AfterFunc(e.frameInterval, e.scheduledPass)
	} else {
		e.timer.Reset(e.frameInterval)
	}
}

// scheduledPass is the timer callback for the deferred recompute.
func (e *Engine) scheduledPass() {
	e.mu.Lock()
	if !e.pending || e.disposed {
		// Cancelled by LayoutNow or Dispose after the timer fired.
		e.mu.Unlock()
		return
	}
	e.pending = false
	events := e.performLayoutLocked()
	e.mu.Unlock()

	for _, ev := range events {
		e.events.Emit(ev)
	}
}
