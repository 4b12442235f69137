package vad

import (
	"testing"
	"time"
)

func TestTransientFilterAcceptsSustainedSpeech(t *testing.T) {
	cfg := DefaultTransientFilterConfig()
	f := NewTransientFilter(cfg)
	start := time.Now()
	clock := start
	f.now = func() time.Time { return clock }

	frame := loudFrame(512, 0.2)
	if !f.Process(frame, true) {
		t.Fatal("expected initial burst frame accepted provisionally")
	}
	clock = clock.Add(cfg.MaxDuration + time.Millisecond)
	if !f.Process(frame, true) {
		t.Fatal("expected sustained speech confirmed past max duration")
	}
}

func TestTransientFilterRejectsShortClick(t *testing.T) {
	cfg := DefaultTransientFilterConfig()
	f := NewTransientFilter(cfg)
	start := time.Now()
	clock := start
	f.now = func() time.Time { return clock }

	frame := loudFrame(512, 0.2)
	f.Process(frame, true)

	clock = clock.Add(cfg.MaxDuration / 4)
	if f.Process(silentFrame(512), false) {
		t.Fatal("expected click rejected once signal collapses early")
	}
}

func TestTransientFilterPassesThroughQuietNonSpeech(t *testing.T) {
	f := NewTransientFilter(DefaultTransientFilterConfig())
	if f.Process(silentFrame(512), false) {
		t.Fatal("expected non-speech quiet frame to stay non-speech")
	}
}
