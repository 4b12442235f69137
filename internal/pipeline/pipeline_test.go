package pipeline

import "testing"

func TestSplitStableUnstableShortText(t *testing.T) {
	stable, unstable := splitStableUnstable("你好")
	if stable != "" || unstable != "你好" {
		t.Fatalf("expected everything unstable for short text, got stable=%q unstable=%q", stable, unstable)
	}
}

func TestSplitStableUnstableLongText(t *testing.T) {
	stable, unstable := splitStableUnstable("今天天气很好")
	if stable != "今天天气" || unstable != "很好" {
		t.Fatalf("unexpected split: stable=%q unstable=%q", stable, unstable)
	}
}

func TestSplitStableUnstableHoldsChineseNumbers(t *testing.T) {
	stable, unstable := splitStableUnstable("价格是一百二十元")
	if stable != "" {
		t.Fatalf("expected entire text held unstable when it contains a Chinese digit, got stable=%q", stable)
	}
	if unstable != "价格是一百二十元" {
		t.Fatalf("unexpected unstable text: %q", unstable)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateIdle:        "idle",
		StateRecognizing: "recognizing",
		StateCompleted:   "completed",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestUndoHistoryCapacityDefault(t *testing.T) {
	if got := undoHistoryCapacity(0); got != 50 {
		t.Fatalf("expected default capacity 50, got %d", got)
	}
	if got := undoHistoryCapacity(-1); got != 50 {
		t.Fatalf("expected default capacity for negative input, got %d", got)
	}
	if got := undoHistoryCapacity(20); got != 20 {
		t.Fatalf("expected explicit capacity to be preserved, got %d", got)
	}
}
