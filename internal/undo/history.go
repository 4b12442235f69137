// Package undo tracks recognized-sentence history so the pipeline
// orchestrator can undo and redo the user's most recent utterances.
package undo

import "time"

// Entry is one recognized sentence and whether it has been undone.
type Entry struct {
	Text      string
	Timestamp time.Time
	Undone    bool
}

// DefaultCapacity is the bounded history size used when none is specified.
const DefaultCapacity = 50

// History is a bounded deque of recognition entries supporting undo/redo by
// scanning from the most recent entry for the first one in the needed
// state, rather than a plain stack pop.
type History struct {
	entries    []Entry
	maxHistory int
}

// New creates a history bounded to maxHistory entries.
func New(maxHistory int) *History {
	return &History{maxHistory: maxHistory}
}

// Push appends a newly recognized sentence, evicting the oldest entry once
// the bound is exceeded.
func (h *History) Push(text string) {
	h.entries = append(h.entries, Entry{Text: text, Timestamp: time.Now()})
	for len(h.entries) > h.maxHistory {
		h.entries = h.entries[1:]
	}
}

// Undo marks the most recent not-yet-undone entry as undone and returns its
// text, or "", false if nothing can be undone.
func (h *History) Undo() (string, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if !h.entries[i].Undone {
			h.entries[i].Undone = true
			return h.entries[i].Text, true
		}
	}
	return "", false
}

// Redo restores the newest entry that is currently undone and returns its
// text, or "", false if nothing can be redone.
func (h *History) Redo() (string, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Undone {
			h.entries[i].Undone = false
			return h.entries[i].Text, true
		}
	}
	return "", false
}

// ActiveHistory returns the text of every entry that has not been undone,
// oldest first.
func (h *History) ActiveHistory() []string {
	var active []string
	for _, e := range h.entries {
		if !e.Undone {
			active = append(active, e.Text)
		}
	}
	return active
}

// Clear removes all entries.
func (h *History) Clear() { h.entries = nil }

// Len returns the number of entries currently held, undone or not.
func (h *History) Len() int { return len(h.entries) }

// IsEmpty reports whether the history holds no entries.
func (h *History) IsEmpty() bool { return len(h.entries) == 0 }

// CanUndo reports whether at least one entry is not yet undone.
func (h *History) CanUndo() bool {
	for _, e := range h.entries {
		if !e.Undone {
			return true
		}
	}
	return false
}

// CanRedo reports whether at least one entry has been undone.
func (h *History) CanRedo() bool {
	for _, e := range h.entries {
		if e.Undone {
			return true
		}
	}
	return false
}
