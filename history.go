package pixed

import (
	"fmt"
	"slices"
)

// DefaultHistoryLimit is the number of states kept when no limit is given.
const DefaultHistoryLimit = 100

// History is a bounded, linear undo/redo log of buffer snapshots.
//
// The past sequence holds committed states oldest first; its last entry is
// the current state and it is never empty. The future sequence holds undone
// states available for redo, most recently undone last.
//
// When past grows beyond the limit the oldest entry is dropped. Dropped
// states are gone for good: very old history cannot be undone to.
//
// History is not safe for concurrent use.
type History struct {
	past   []*Snapshot
	future []*Snapshot
	limit  int
}

// NewHistory creates a history whose only state is initial.
// A limit of zero or less selects DefaultHistoryLimit.
func NewHistory(initial *Snapshot, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	h := &History{limit: limit}
	h.Reset(initial)
	return h
}

// Reset discards all states and starts over from initial.
func (h *History) Reset(initial *Snapshot) {
	if initial == nil {
		panic("pixed: history reset with nil snapshot")
	}
	h.past = []*Snapshot{initial}
	h.future = nil
}

// Commit snapshots b and makes it the current state.
// Redo history is discarded.
func (h *History) Commit(b *Buffer) *Snapshot {
	s := b.Snapshot()
	h.past = append(h.past, s)
	if excess := len(h.past) - h.limit; excess > 0 {
		h.past = slices.Delete(h.past, 0, excess)
		Logger().Debug("pixed: history limit reached, oldest state dropped",
			"dropped", excess, "limit", h.limit)
	}
	clear(h.future)
	h.future = h.future[:0]
	return s
}

// Undo steps back one state and returns the new current state.
// At the oldest state it does nothing and returns false.
func (h *History) Undo() (*Snapshot, bool) {
	h.check()
	if len(h.past) <= 1 {
		return nil, false
	}
	last := len(h.past) - 1
	h.future = append(h.future, h.past[last])
	h.past[last] = nil
	h.past = h.past[:last]
	return h.past[last-1], true
}

// Redo reapplies the most recently undone state and returns it.
// With nothing to redo it does nothing and returns false.
func (h *History) Redo() (*Snapshot, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	last := len(h.future) - 1
	s := h.future[last]
	h.future[last] = nil
	h.future = h.future[:last]
	h.past = append(h.past, s)
	return s, true
}

// JumpTo makes past entry i the current state, dropping every later entry
// and all redo history. It behaves like undoing to i and then committing.
func (h *History) JumpTo(i int) (*Snapshot, error) {
	h.check()
	if i < 0 || i >= len(h.past) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrHistoryIndex, i, len(h.past))
	}
	clear(h.past[i+1:])
	h.past = h.past[:i+1]
	clear(h.future)
	h.future = h.future[:0]
	return h.past[i], nil
}

// Current returns the current state.
func (h *History) Current() *Snapshot {
	h.check()
	return h.past[len(h.past)-1]
}

// Entry returns past entry i, oldest first.
func (h *History) Entry(i int) (*Snapshot, bool) {
	if i < 0 || i >= len(h.past) {
		return nil, false
	}
	return h.past[i], true
}

// Entries returns the past states, oldest first. The returned slice is a
// copy; the snapshots themselves are immutable.
func (h *History) Entries() []*Snapshot {
	return slices.Clone(h.past)
}

// Len returns the number of past states, including the current one.
func (h *History) Len() int {
	return len(h.past)
}

// FutureLen returns the number of states available for redo.
func (h *History) FutureLen() int {
	return len(h.future)
}

// Limit returns the maximum number of past states.
func (h *History) Limit() int {
	return h.limit
}

// CanUndo reports whether Undo would change state.
func (h *History) CanUndo() bool {
	return len(h.past) > 1
}

// CanRedo reports whether Redo would change state.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

func (h *History) check() {
	if len(h.past) == 0 {
		panic("pixed: history has no current state")
	}
}
