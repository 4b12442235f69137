// Package vad implements the voice-activity stack: an energy gate, a
// Silero neural speech-probability estimator, a hysteresis state machine,
// a pre-roll ring buffer, and a transient (keyboard click) filter, combined
// by Manager into one per-frame decision.
package vad

import "time"

// EnergyGateConfig configures the first-stage RMS gate (see energygate.go).
type EnergyGateConfig struct {
	Enabled         bool    `toml:"enabled"`
	NoiseMultiplier float64 `toml:"noise_multiplier"`
	BaselineAlpha   float64 `toml:"baseline_alpha"`
	InitialBaseline float64 `toml:"initial_baseline"`
}

func DefaultEnergyGateConfig() EnergyGateConfig {
	return EnergyGateConfig{
		Enabled:         true,
		NoiseMultiplier: 2.5,
		BaselineAlpha:   0.95,
		InitialBaseline: 0.001,
	}
}

// HysteresisConfig configures the dual-threshold dwell-timer state machine
// (see hysteresis.go).
type HysteresisConfig struct {
	StartThreshold     float64       `toml:"start_threshold"`
	EndThreshold       float64       `toml:"end_threshold"`
	MinSpeechDuration  time.Duration `toml:"min_speech_duration"`
	MinSilenceDuration time.Duration `toml:"min_silence_duration"`
}

// DefaultHysteresisConfig is the free-running preset.
func DefaultHysteresisConfig() HysteresisConfig {
	return HysteresisConfig{
		StartThreshold:     0.7,
		EndThreshold:       0.35,
		MinSpeechDuration:  100 * time.Millisecond,
		MinSilenceDuration: 700 * time.Millisecond,
	}
}

// PushToTalkHysteresisConfig is the eager-onset, quick-close preset used
// when the host drives VAD state explicitly via a hold-to-talk key: speech
// is recognized sooner and trailing silence is confirmed sooner once the
// key is released, since the key itself — not the dwell timer — is the
// primary signal of intent.
func PushToTalkHysteresisConfig() HysteresisConfig {
	return HysteresisConfig{
		StartThreshold:     0.6,
		EndThreshold:       0.35,
		MinSpeechDuration:  100 * time.Millisecond,
		MinSilenceDuration: 500 * time.Millisecond,
	}
}

// PreRollConfig configures the pre-speech audio cache (see preroll.go).
type PreRollConfig struct {
	CapacitySamples int `toml:"capacity_samples"`
}

func DefaultPreRollConfig() PreRollConfig {
	return PreRollConfig{CapacitySamples: 4000}
}

// TransientFilterConfig configures the keyboard-click rejector (see
// transient.go).
type TransientFilterConfig struct {
	RMSThreshold float64       `toml:"rms_threshold"`
	MaxDuration  time.Duration `toml:"max_duration"`
}

func DefaultTransientFilterConfig() TransientFilterConfig {
	return TransientFilterConfig{
		RMSThreshold: 0.05,
		MaxDuration:  80 * time.Millisecond,
	}
}

// SileroConfig configures the neural speech-probability estimator (see
// silero.go).
type SileroConfig struct {
	ModelPath  string `toml:"model_path"`
	SampleRate int    `toml:"sample_rate"`
}

func DefaultSileroConfig() SileroConfig {
	return SileroConfig{SampleRate: 16000}
}

// Config bundles every sub-config the VAD stack needs.
type Config struct {
	Silero          SileroConfig           `toml:"silero"`
	EnergyGate      EnergyGateConfig       `toml:"energy_gate"`
	Hysteresis      HysteresisConfig       `toml:"hysteresis"`
	PreRoll         PreRollConfig          `toml:"pre_roll"`
	TransientFilter TransientFilterConfig  `toml:"transient_filter"`
}

// DefaultConfig is the free-running preset.
func DefaultConfig() Config {
	return Config{
		Silero:          DefaultSileroConfig(),
		EnergyGate:      DefaultEnergyGateConfig(),
		Hysteresis:      DefaultHysteresisConfig(),
		PreRoll:         DefaultPreRollConfig(),
		TransientFilter: DefaultTransientFilterConfig(),
	}
}

// PushToTalkDefault substitutes the push-to-talk hysteresis preset into an
// otherwise-default config.
func PushToTalkDefault() Config {
	cfg := DefaultConfig()
	cfg.Hysteresis = PushToTalkHysteresisConfig()
	return cfg
}
