package vad

import "testing"

func TestManagerWithoutSileroFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hysteresis.MinSpeechDuration = 0
	m := NewManager(cfg, nil, nil)

	var last Result
	for i := 0; i < 3; i++ {
		last = m.Process(loudFrame(512, 0.5))
	}
	if last.State != StateSpeech {
		t.Fatalf("expected Speech via fallback probability, got %v", last.State)
	}
}

func TestManagerForceStateClearsPreRoll(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg, nil, nil)
	m.Process(silentFrame(512))
	m.ForceState(StateSpeech)
	if m.State() != StateSpeech {
		t.Fatal("expected forced Speech state")
	}
	if m.preRoll.Len() != 0 {
		t.Fatal("expected pre-roll cleared on forced Speech")
	}
}

func TestManagerResetReturnsToSilence(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg, nil, nil)
	m.ForceState(StateSpeech)
	m.Reset()
	if m.State() != StateSilence {
		t.Fatal("expected reset to Silence")
	}
}
