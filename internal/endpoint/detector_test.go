package endpoint

import (
	"testing"
	"time"
)

func TestWaitingForSpeechRequiresTwoConsecutiveFrames(t *testing.T) {
	d := New(DefaultConfig())
	if d.ProcessVAD(true) != OutcomeContinue || d.State() != StateWaitingForSpeech {
		t.Fatal("single speech frame should not confirm speech")
	}
	d.ProcessVAD(true)
	if d.State() != StateSpeechDetected {
		t.Fatalf("expected SpeechDetected after two frames, got state %v", d.State())
	}
}

func TestTrailingSilenceTooShort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSpeechDuration = 500 * time.Millisecond
	cfg.TrailingSilence = 10 * time.Millisecond
	cfg.VadSilenceConfirmFrames = 1
	d := New(cfg)
	clock := time.Now()
	d.now = func() time.Time { return clock }

	d.ProcessVAD(true)
	d.ProcessVAD(true) // -> SpeechDetected
	clock = clock.Add(5 * time.Millisecond)
	outcome := d.ProcessVAD(false) // -> TrailingSilence
	if outcome != OutcomeContinue || d.State() != StateTrailingSilence {
		t.Fatalf("expected TrailingSilence, got %v/%v", outcome, d.State())
	}
	clock = clock.Add(20 * time.Millisecond)
	outcome = d.ProcessVAD(false)
	if outcome != OutcomeTooShort {
		t.Fatalf("expected TooShort, got %v", outcome)
	}
}

func TestTrailingSilenceDetectedAfterEnoughSpeech(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSpeechDuration = 1 * time.Millisecond
	cfg.TrailingSilence = 10 * time.Millisecond
	cfg.VadSilenceConfirmFrames = 1
	d := New(cfg)
	clock := time.Now()
	d.now = func() time.Time { return clock }

	d.ProcessVAD(true)
	d.ProcessVAD(true)
	clock = clock.Add(5 * time.Millisecond)
	d.ProcessVAD(false)
	clock = clock.Add(20 * time.Millisecond)
	outcome := d.ProcessVAD(false)
	if outcome != OutcomeDetected {
		t.Fatalf("expected Detected, got %v", outcome)
	}
}

func TestTrailingSilenceReentersSpeechDetected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VadSilenceConfirmFrames = 1
	d := New(cfg)
	d.ProcessVAD(true)
	d.ProcessVAD(true) // SpeechDetected
	d.ProcessVAD(false) // TrailingSilence
	d.ProcessVAD(true)
	d.ProcessVAD(true)
	if d.State() != StateSpeechDetected {
		t.Fatalf("expected re-entry to SpeechDetected, got %v", d.State())
	}
}

func TestForcedSegmentationOnMaxSpeechDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSpeechDuration = 10 * time.Millisecond
	d := New(cfg)
	clock := time.Now()
	d.now = func() time.Time { return clock }
	d.ProcessVAD(true)
	d.ProcessVAD(true)
	clock = clock.Add(20 * time.Millisecond)
	if outcome := d.ProcessVAD(true); outcome != OutcomeForcedSegmentation {
		t.Fatalf("expected ForcedSegmentation, got %v", outcome)
	}
}

func TestProcessASREndpointRespectsMinSpeechDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSpeechDuration = 100 * time.Millisecond
	d := New(cfg)
	clock := time.Now()
	d.now = func() time.Time { return clock }
	d.ProcessVAD(true)
	d.ProcessVAD(true) // speechStart = clock
	if outcome := d.ProcessASREndpoint(true); outcome != OutcomeContinue {
		t.Fatalf("expected Continue before min duration, got %v", outcome)
	}
	clock = clock.Add(200 * time.Millisecond)
	if outcome := d.ProcessASREndpoint(true); outcome != OutcomeDetected {
		t.Fatalf("expected Detected after min duration, got %v", outcome)
	}
}

func TestEnergyRisingDetectsUpwardTrend(t *testing.T) {
	d := New(DefaultConfig())
	for _, v := range []float32{0.01, 0.01, 0.2, 0.3} {
		frame := make([]float32, 4)
		for i := range frame {
			frame[i] = v
		}
		d.TrackEnergy(frame)
	}
	if !d.EnergyRising() {
		t.Fatal("expected rising energy trend")
	}
}
