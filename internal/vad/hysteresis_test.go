package vad

import (
	"testing"
	"time"
)

func fakeClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time { return t }
}

func TestHysteresisSilenceToSpeechRequiresDwell(t *testing.T) {
	cfg := DefaultHysteresisConfig()
	h := NewHysteresis(cfg)
	start := time.Now()
	clock := start
	h.now = func() time.Time { return clock }

	state, changed := h.Process(0.9)
	if state != StateSpeechCandidate || !changed {
		t.Fatalf("expected SpeechCandidate, got %v", state)
	}

	// Not enough dwell time yet.
	clock = clock.Add(cfg.MinSpeechDuration / 2)
	state, _ = h.Process(0.9)
	if state != StateSpeechCandidate {
		t.Fatalf("expected still SpeechCandidate, got %v", state)
	}

	clock = clock.Add(cfg.MinSpeechDuration)
	state, changed = h.Process(0.9)
	if state != StateSpeech || !changed {
		t.Fatalf("expected Speech after dwell, got %v", state)
	}
}

func TestHysteresisCandidateDropsBackToSilence(t *testing.T) {
	h := NewHysteresis(DefaultHysteresisConfig())
	h.Process(0.9) // -> SpeechCandidate
	state, _ := h.Process(0.1)
	if state != StateSilence {
		t.Fatalf("expected Silence, got %v", state)
	}
}

func TestHysteresisDeadZoneDoesNotResetSilenceTimer(t *testing.T) {
	cfg := DefaultHysteresisConfig()
	h := NewHysteresis(cfg)
	start := time.Now()
	clock := start
	h.now = func() time.Time { return clock }

	// Drive to Speech then to SilenceCandidate.
	h.Process(0.9)
	clock = clock.Add(cfg.MinSpeechDuration)
	state, _ := h.Process(0.9)
	if state != StateSpeech {
		t.Fatalf("expected Speech, got %v", state)
	}
	clock = clock.Add(time.Millisecond)
	state, _ = h.Process(0.1)
	if state != StateSilenceCandidate {
		t.Fatalf("expected SilenceCandidate, got %v", state)
	}

	// Dead zone samples must not reset candidateEntered.
	dz := (cfg.StartThreshold + cfg.EndThreshold) / 2
	clock = clock.Add(cfg.MinSilenceDuration / 2)
	h.Process(dz)
	clock = clock.Add(cfg.MinSilenceDuration/2 + time.Millisecond)
	// A dead-zone sample only holds the state; the next below-end sample
	// confirms Silence at once because the timer kept running.
	state, _ = h.Process(dz)
	if state != StateSilenceCandidate {
		t.Fatalf("expected dead-zone sample to hold SilenceCandidate, got %v", state)
	}
	state, changed := h.Process(cfg.EndThreshold / 2)
	if state != StateSilence || !changed {
		t.Fatalf("expected Silence after full dwell despite dead-zone samples, got %v", state)
	}
}

func TestHysteresisStrongReentryNoDwell(t *testing.T) {
	h := NewHysteresis(DefaultHysteresisConfig())
	h.Process(0.9)
	h.Process(0.9) // needs dwell; use ForceState to reach Speech deterministically
	h.ForceState(StateSpeech)
	state, _ := h.Process(0.1)
	if state != StateSilenceCandidate {
		t.Fatalf("expected SilenceCandidate, got %v", state)
	}
	state, changed := h.Process(0.95)
	if state != StateSpeech || !changed {
		t.Fatalf("expected immediate re-entry to Speech, got %v", state)
	}
}

func TestHysteresisForceState(t *testing.T) {
	h := NewHysteresis(DefaultHysteresisConfig())
	h.ForceState(StateSpeech)
	if h.State() != StateSpeech {
		t.Fatal("expected forced state to take effect")
	}
}
