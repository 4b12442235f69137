// Package endpoint combines VAD frame-level state and the ASR decoder's own
// endpoint flag into utterance segment boundaries.
package endpoint

import (
	"math"
	"time"
)

// State is one of the three endpoint-detector states.
type State int

const (
	StateWaitingForSpeech State = iota
	StateSpeechDetected
	StateTrailingSilence
)

// Outcome is what the orchestrator should do in response to one
// ProcessVAD/ProcessASREndpoint call.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeTooShort
	OutcomeForcedSegmentation
	OutcomeTimeout
	OutcomeDetected
)

// Config bundles the detector's timing parameters.
type Config struct {
	MinSpeechDuration       time.Duration `toml:"min_speech_duration"`
	MaxSpeechDuration       time.Duration `toml:"max_speech_duration"`
	TrailingSilence         time.Duration `toml:"trailing_silence"`
	ForceTimeout            time.Duration `toml:"force_timeout"`
	VadSilenceConfirmFrames int           `toml:"vad_silence_confirm_frames"`
	VadAssisted             bool          `toml:"vad_assisted"`
}

// DefaultConfig returns the parameters named in SPEC_FULL.md §4.9.
func DefaultConfig() Config {
	return Config{
		MinSpeechDuration:       300 * time.Millisecond,
		MaxSpeechDuration:       30 * time.Second,
		TrailingSilence:         800 * time.Millisecond,
		ForceTimeout:            60 * time.Second,
		VadSilenceConfirmFrames: 5,
		VadAssisted:             true,
	}
}

// Detector holds the endpoint state machine plus the trailing energy-trend
// estimate used for question-mark detection.
type Detector struct {
	cfg Config
	now func() time.Time

	state State

	sessionStart time.Time
	speechStart  time.Time
	silenceStart time.Time

	consecutiveSpeech  int
	consecutiveSilence int

	// Energy trend over the final ~300ms of the utterance, tracked as a
	// short ring of recent RMS values.
	energyWindow    []float64
	energyWindowCap int
}

// New creates a detector and starts its session clock.
func New(cfg Config) *Detector {
	d := &Detector{cfg: cfg, now: time.Now, energyWindowCap: 10}
	d.reset()
	return d
}

func (d *Detector) reset() {
	d.state = StateWaitingForSpeech
	d.sessionStart = d.now()
	d.speechStart = time.Time{}
	d.silenceStart = time.Time{}
	d.consecutiveSpeech = 0
	d.consecutiveSilence = 0
	d.energyWindow = d.energyWindow[:0]
}

// Reset returns the detector to its initial WaitingForSpeech state.
func (d *Detector) Reset() { d.reset() }

// State returns the current state.
func (d *Detector) State() State { return d.state }

// TrackEnergy feeds one frame's samples into the trailing energy-trend
// estimate; call this every frame while Recognizing.
func (d *Detector) TrackEnergy(samples []float32) {
	var sumSq float64
	for _, s := range samples {
		sumSq += float64(s) * float64(s)
	}
	rms := math.Sqrt(sumSq / math.Max(1, float64(len(samples))))
	d.energyWindow = append(d.energyWindow, rms)
	if len(d.energyWindow) > d.energyWindowCap {
		d.energyWindow = d.energyWindow[len(d.energyWindow)-d.energyWindowCap:]
	}
}

// EnergyRising reports whether the tracked energy trend is increasing,
// consulted only for strict-mode "呢" disambiguation; it is explicitly
// unreliable in push-to-talk mode.
func (d *Detector) EnergyRising() bool {
	if len(d.energyWindow) < 2 {
		return false
	}
	mid := len(d.energyWindow) / 2
	var firstHalf, secondHalf float64
	for i, v := range d.energyWindow {
		if i < mid {
			firstHalf += v
		} else {
			secondHalf += v
		}
	}
	return secondHalf > firstHalf
}

// ProcessVAD advances the state machine with one frame's VAD speech flag.
func (d *Detector) ProcessVAD(isSpeech bool) Outcome {
	if !d.cfg.VadAssisted {
		return OutcomeContinue
	}

	t := d.now()

	switch d.state {
	case StateWaitingForSpeech:
		if isSpeech {
			d.consecutiveSpeech++
			if d.consecutiveSpeech >= 2 {
				d.state = StateSpeechDetected
				d.speechStart = t
				d.consecutiveSpeech = 0
			}
		} else {
			d.consecutiveSpeech = 0
		}
		return OutcomeContinue

	case StateSpeechDetected:
		if t.Sub(d.sessionStart) > d.cfg.ForceTimeout {
			return OutcomeTimeout
		}
		if t.Sub(d.speechStart) > d.cfg.MaxSpeechDuration {
			return OutcomeForcedSegmentation
		}
		if isSpeech {
			d.consecutiveSilence = 0
		} else {
			d.consecutiveSilence++
			if d.consecutiveSilence >= d.cfg.VadSilenceConfirmFrames {
				d.state = StateTrailingSilence
				d.silenceStart = t
				d.consecutiveSilence = 0
			}
		}
		return OutcomeContinue

	case StateTrailingSilence:
		if isSpeech {
			d.consecutiveSpeech++
			if d.consecutiveSpeech >= 2 {
				d.state = StateSpeechDetected
				d.consecutiveSpeech = 0
				return OutcomeContinue
			}
			return OutcomeContinue
		}
		d.consecutiveSpeech = 0
		if t.Sub(d.silenceStart) >= d.cfg.TrailingSilence {
			if t.Sub(d.speechStart) < d.cfg.MinSpeechDuration {
				return OutcomeTooShort
			}
			return OutcomeDetected
		}
		return OutcomeContinue
	}
	return OutcomeContinue
}

// ProcessASREndpoint folds in the decoder's own endpoint signal.
func (d *Detector) ProcessASREndpoint(flag bool) Outcome {
	if !flag {
		return OutcomeContinue
	}
	if d.now().Sub(d.speechStart) >= d.cfg.MinSpeechDuration {
		return OutcomeDetected
	}
	return OutcomeContinue
}

// SpeechDuration returns elapsed time since speech start, zero if speech has
// not yet begun this session.
func (d *Detector) SpeechDuration() time.Duration {
	if d.speechStart.IsZero() {
		return 0
	}
	return d.now().Sub(d.speechStart)
}
