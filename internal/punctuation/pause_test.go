package punctuation

import "testing"

func TestPauseEngineBasic(t *testing.T) {
	e := NewPauseEngine(Professional(), nil)
	if e.AddToken(TokenInfo{Text: "你好", StartMs: 0, EndMs: 200}) {
		t.Fatal("first token should never trigger a comma")
	}
}

func TestPauseEngineMinTokens(t *testing.T) {
	e := NewPauseEngine(Professional(), nil)
	for i := 0; i < 5; i++ {
		tok := TokenInfo{Text: "t", StartMs: int64(i) * 200, EndMs: int64(i)*200 + 180}
		if e.AddToken(tok) {
			t.Fatal("should not insert comma before min tokens reached")
		}
	}
	if e.TokenCount() != 5 {
		t.Fatalf("expected 5 tokens, got %d", e.TokenCount())
	}
}

func TestPauseEngineDetectsPause(t *testing.T) {
	e := NewPauseEngine(Professional(), nil)
	for i := 0; i < 6; i++ {
		tok := TokenInfo{Text: "t", StartMs: int64(i) * 200, EndMs: int64(i)*200 + 180}
		e.AddToken(tok)
	}
	// Average duration over history is 180ms. Pushing a token whose own
	// span is 1200ms makes it the new "last token"; the comma decision
	// fires on the NEXT call, which evaluates that absorbed pause against
	// the (now slightly higher) rolling average — the ratio still clears
	// the 3.5 threshold.
	e.AddToken(TokenInfo{Text: "long", StartMs: 1180, EndMs: 2380})
	if !e.AddToken(TokenInfo{Text: "next", StartMs: 2380, EndMs: 2560}) {
		t.Fatal("expected comma once the prior token's absorbed pause exceeds the ratio threshold")
	}
}

func TestPauseEngineMinTokensBetweenCommas(t *testing.T) {
	e := NewPauseEngine(Professional(), nil)
	for i := 0; i < 6; i++ {
		tok := TokenInfo{Text: "t", StartMs: int64(i) * 200, EndMs: int64(i)*200 + 180}
		e.AddToken(tok)
	}
	e.AddToken(TokenInfo{Text: "long", StartMs: 1180, EndMs: 2380})
	if !e.AddToken(TokenInfo{Text: "next", StartMs: 2380, EndMs: 2560}) {
		t.Fatal("expected first comma to fire")
	}
	// Immediately after a comma, a second one is suppressed regardless of
	// duration until MinTokensBetweenCommas more tokens have passed.
	if e.AddToken(TokenInfo{Text: "another", StartMs: 2560, EndMs: 2740}) {
		t.Fatal("second comma should be suppressed by MinTokensBetweenCommas")
	}
}

func TestPauseEngineReset(t *testing.T) {
	e := NewPauseEngine(Professional(), nil)
	e.AddToken(TokenInfo{Text: "test", StartMs: 0, EndMs: 200})
	if e.TokenCount() != 1 {
		t.Fatalf("expected 1 token, got %d", e.TokenCount())
	}
	e.Reset()
	if e.TokenCount() != 0 {
		t.Fatal("expected token count 0 after reset")
	}
}

func TestTokenInfoDurationSaturatesAtZero(t *testing.T) {
	tok := TokenInfo{StartMs: 300, EndMs: 100}
	if tok.DurationMs() != 0 {
		t.Fatalf("expected saturating duration 0, got %d", tok.DurationMs())
	}
}
