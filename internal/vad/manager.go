package vad

import "go.uber.org/zap"

// Result is the per-frame outcome of the VAD stack.
type Result struct {
	State              State
	StateChanged       bool
	SpeechProbability  float64
	PreRollAudio       []float32 // non-nil only on the frame that confirms Speech
	PassedEnergyGate   bool
	PassedTransient    bool
}

// Manager composes the energy gate, Silero estimator, hysteresis controller,
// pre-roll buffer, and transient filter into the single per-frame decision
// the pipeline orchestrator consumes. Processing order is fixed: energy gate
// first (cheap reject), then Silero only if the gate passed, then hysteresis
// on the resulting probability, then transient filtering, then pre-roll
// bookkeeping keyed off the (possibly just-changed) hysteresis state.
type Manager struct {
	energyGate *EnergyGate
	silero     *Silero
	hysteresis *Hysteresis
	preRoll    *PreRoll
	transient  *TransientFilter

	sampleRate int
	logger     *zap.Logger

	frameCount int
}

// NewManager builds a VAD manager. silero may be nil for configurations
// where the neural estimator is unavailable; in that case every frame
// passing the energy gate is treated as speech-probable (probability 1.0)
// and every frame failing it as silence (probability 0.0) — a deliberately
// crude fallback, never the default for a production build.
func NewManager(cfg Config, silero *Silero, logger *zap.Logger) *Manager {
	return &Manager{
		energyGate: NewEnergyGate(cfg.EnergyGate),
		silero:     silero,
		hysteresis: NewHysteresis(cfg.Hysteresis),
		preRoll:    NewPreRoll(cfg.PreRoll.CapacitySamples),
		transient:  NewTransientFilter(cfg.TransientFilter),
		sampleRate: cfg.Silero.SampleRate,
		logger:     logger,
	}
}

// Process runs one audio frame through the full VAD stack.
func (m *Manager) Process(frame []float32) Result {
	passedEnergy := m.energyGate.Process(frame)

	var prob float64
	if passedEnergy {
		if m.silero != nil {
			p, err := m.silero.Process(frame)
			if err == nil {
				prob = p
			}
		} else {
			prob = 1.0
		}
	}

	state, changed := m.hysteresis.Process(prob)

	isSpeech := state == StateSpeech || state == StateSpeechCandidate
	passedTransient := m.transient.Process(frame, isSpeech)

	var preRollAudio []float32
	switch state {
	case StateSilence, StateSpeechCandidate:
		m.preRoll.Push(frame)
	case StateSpeech:
		if changed {
			preRollAudio = m.preRoll.Retrieve()
		}
		// No further pushes while in confirmed Speech.
	case StateSilenceCandidate:
		// Neither pushes nor retrieves; holding pattern.
	}
	if state == StateSilence && changed {
		m.preRoll.Clear()
	}

	m.frameCount++
	if m.logger != nil && m.frameCount%100 == 0 {
		m.logger.Debug("vad diagnostic",
			zap.Float64("speech_prob", prob),
			zap.String("state", state.String()),
			zap.Bool("passed_energy_gate", passedEnergy),
		)
	}

	return Result{
		State:             state,
		StateChanged:      changed,
		SpeechProbability: prob,
		PreRollAudio:      preRollAudio,
		PassedEnergyGate:  passedEnergy,
		PassedTransient:   passedTransient,
	}
}

// ForceState forwards to the hysteresis controller for push-to-talk,
// clearing the pre-roll buffer since a forced Speech state has no leading
// silence to recover audio from.
func (m *Manager) ForceState(s State) {
	m.hysteresis.ForceState(s)
	if s == StateSpeech {
		m.preRoll.Clear()
	}
}

// Reset returns every sub-component to its initial state.
func (m *Manager) Reset() {
	m.energyGate.Reset()
	if m.silero != nil {
		m.silero.Reset()
	}
	m.hysteresis.Reset()
	m.preRoll.Clear()
	m.transient.Reset()
}

// State returns the current hysteresis state.
func (m *Manager) State() State { return m.hysteresis.State() }
