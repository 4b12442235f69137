package asr

import "testing"

func TestTokensFromRawDerivesEndFromNextStart(t *testing.T) {
	texts := []string{"今", "天"}
	timestamps := []float32{0.0, 0.32}
	tokens := tokensFromRaw(texts, timestamps)

	if tokens[0].StartMs != 0 || tokens[0].EndMs != 320 {
		t.Fatalf("unexpected first token span: %+v", tokens[0])
	}
	if tokens[1].StartMs != 320 || tokens[1].EndMs != 520 {
		t.Fatalf("unexpected last token span (tail estimate): %+v", tokens[1])
	}
}

func TestTokenDurationMsSaturatesAtZero(t *testing.T) {
	tok := Token{StartMs: 100, EndMs: 50}
	if tok.DurationMs() != 0 {
		t.Fatalf("expected saturating duration 0, got %d", tok.DurationMs())
	}
}

func TestTokensFromRawSingleToken(t *testing.T) {
	tokens := tokensFromRaw([]string{"好"}, []float32{1.0})
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].EndMs-tokens[0].StartMs != tailEstimateMs {
		t.Fatalf("expected tail estimate duration, got %d", tokens[0].DurationMs())
	}
}
