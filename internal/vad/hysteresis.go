package vad

import "time"

// State is one of the four hysteresis states.
type State int

const (
	StateSilence State = iota
	StateSpeechCandidate
	StateSpeech
	StateSilenceCandidate
)

func (s State) String() string {
	switch s {
	case StateSilence:
		return "silence"
	case StateSpeechCandidate:
		return "speech_candidate"
	case StateSpeech:
		return "speech"
	case StateSilenceCandidate:
		return "silence_candidate"
	default:
		return "unknown"
	}
}

// Hysteresis is the dual-threshold, dwell-timer state machine that turns a
// noisy per-frame speech probability into a stable voice/silence signal. The
// dead zone on the SilenceCandidate->Silence path (end <= prob < start) is
// the load-bearing rule: it keeps the silence timer running instead of
// resetting it, so intermittent noise during trailing silence cannot hold
// an utterance open indefinitely.
type Hysteresis struct {
	cfg   HysteresisConfig
	state State

	candidateEntered time.Time
	now              func() time.Time
}

// NewHysteresis creates a controller with the given config. Config values
// are not re-validated here; callers are expected to pass a sane
// EndThreshold <= StartThreshold.
func NewHysteresis(cfg HysteresisConfig) *Hysteresis {
	return &Hysteresis{cfg: cfg, state: StateSilence, now: time.Now}
}

// Process advances the state machine with a new probability sample and
// returns the resulting state plus whether it changed from the previous
// call.
func (h *Hysteresis) Process(prob float64) (State, bool) {
	prev := h.state
	t := h.now()

	switch h.state {
	case StateSilence:
		if prob > h.cfg.StartThreshold {
			h.state = StateSpeechCandidate
			h.candidateEntered = t
		}

	case StateSpeechCandidate:
		if prob > h.cfg.StartThreshold {
			if t.Sub(h.candidateEntered) >= h.cfg.MinSpeechDuration {
				h.state = StateSpeech
			}
		} else {
			h.state = StateSilence
		}

	case StateSpeech:
		if prob < h.cfg.EndThreshold {
			h.state = StateSilenceCandidate
			h.candidateEntered = t
		}

	case StateSilenceCandidate:
		switch {
		case prob >= h.cfg.StartThreshold:
			// Strong re-entry: no dwell required.
			h.state = StateSpeech
		case prob < h.cfg.EndThreshold:
			if t.Sub(h.candidateEntered) >= h.cfg.MinSilenceDuration {
				h.state = StateSilence
			}
		default:
			// Dead zone: end <= prob < start. Stay, timer keeps running.
		}
	}

	return h.state, h.state != prev
}

// State returns the current state without advancing the machine.
func (h *Hysteresis) State() State { return h.state }

// ForceState sets the state unconditionally and clears dwell timers, for
// push-to-talk.
func (h *Hysteresis) ForceState(s State) {
	h.state = s
	h.candidateEntered = h.now()
}

// Reset returns the controller to Silence with cleared timers.
func (h *Hysteresis) Reset() {
	h.state = StateSilence
	h.candidateEntered = time.Time{}
}
