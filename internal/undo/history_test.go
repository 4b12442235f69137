package undo

import "testing"

func TestPushAndUndo(t *testing.T) {
	h := New(10)
	h.Push("hello")
	h.Push("world")

	if !h.CanUndo() {
		t.Fatal("expected CanUndo to be true")
	}

	text, ok := h.Undo()
	if !ok || text != "world" {
		t.Fatalf("expected to undo %q, got %q, ok=%v", "world", text, ok)
	}

	active := h.ActiveHistory()
	if len(active) != 1 || active[0] != "hello" {
		t.Fatalf("unexpected active history: %v", active)
	}

	text, ok = h.Undo()
	if !ok || text != "hello" {
		t.Fatalf("expected to undo %q, got %q, ok=%v", "hello", text, ok)
	}

	if h.CanUndo() {
		t.Fatal("expected CanUndo to be false once everything is undone")
	}
	if len(h.ActiveHistory()) != 0 {
		t.Fatal("expected no active history once everything is undone")
	}

	if _, ok := h.Undo(); ok {
		t.Fatal("expected Undo to fail with nothing left to undo")
	}
}

func TestRedo(t *testing.T) {
	h := New(10)
	h.Push("one")
	h.Push("two")
	h.Push("three")

	h.Undo()
	h.Undo()

	if !h.CanRedo() {
		t.Fatal("expected CanRedo to be true")
	}

	text, ok := h.Redo()
	if !ok || text != "three" {
		t.Fatalf("expected to redo %q, got %q, ok=%v", "three", text, ok)
	}

	active := h.ActiveHistory()
	if len(active) != 2 || active[0] != "one" || active[1] != "three" {
		t.Fatalf("unexpected active history: %v", active)
	}

	text, ok = h.Redo()
	if !ok || text != "two" {
		t.Fatalf("expected to redo %q, got %q, ok=%v", "two", text, ok)
	}

	if h.CanRedo() {
		t.Fatal("expected CanRedo to be false once everything is redone")
	}

	if _, ok := h.Redo(); ok {
		t.Fatal("expected Redo to fail with nothing left to redo")
	}
}

func TestMaxHistory(t *testing.T) {
	h := New(3)
	h.Push("one")
	h.Push("two")
	h.Push("three")
	h.Push("four")

	if h.Len() != 3 {
		t.Fatalf("expected length capped at 3, got %d", h.Len())
	}

	active := h.ActiveHistory()
	if len(active) != 3 || active[0] != "two" || active[1] != "three" || active[2] != "four" {
		t.Fatalf("expected oldest entry evicted, got %v", active)
	}
}

func TestClear(t *testing.T) {
	h := New(10)
	h.Push("one")
	h.Push("two")

	if h.IsEmpty() {
		t.Fatal("expected history to be non-empty before clear")
	}

	h.Clear()

	if !h.IsEmpty() {
		t.Fatal("expected history to be empty after clear")
	}
	if h.Len() != 0 {
		t.Fatalf("expected length 0 after clear, got %d", h.Len())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("expected no undo/redo available after clear")
	}
}

func TestUndoRedoNonContiguous(t *testing.T) {
	h := New(10)
	h.Push("one")
	h.Push("two")
	h.Push("three")

	// Undo the middle entry specifically by undoing "three" then "two",
	// then redo: Redo restores the newest undone entry, "three", leaving
	// "two" undone and "one"/"three" active.
	h.Undo() // undoes "three"
	h.Undo() // undoes "two"
	h.Redo() // redoes "three"

	active := h.ActiveHistory()
	if len(active) != 2 || active[0] != "one" || active[1] != "three" {
		t.Fatalf("unexpected active history: %v", active)
	}
	if !h.CanRedo() {
		t.Fatal("expected CanRedo true with \"two\" still undone")
	}
}
