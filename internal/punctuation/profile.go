// Package punctuation implements the streaming comma/period/question
// decision engine driven by token-level timestamps.
package punctuation

// StyleProfile bundles every tunable parameter of the punctuation engine
// under one named preset.
type StyleProfile struct {
	Name string `toml:"name"`

	StreamingPauseRatio    float64 `toml:"streaming_pause_ratio"`
	StreamingMinTokens     int     `toml:"streaming_min_tokens"`
	MinTokensBetweenCommas int     `toml:"min_tokens_between_commas"`
	MinPauseDurationMs     int64   `toml:"min_pause_duration_ms"`
	AllowExclamation       bool    `toml:"allow_exclamation"`
	StrictQuestion         bool    `toml:"strict_question"`
	LogicStrength          float64 `toml:"logic_strength"`
	LogicWordMinTokens     int     `toml:"logic_word_min_tokens"`
}

// ResolveNamedPreset returns the preset matching p.Name outright, discarding
// every other field p carries. A config table picks one of two shapes: a
// bare preset name, or a fully inline set of tunables with no name; this
// does not merge the two, so a name alongside inline overrides is not a
// supported combination. Config loading calls this once after decode to
// turn a named choice into the full, concrete profile.
func (p StyleProfile) ResolveNamedPreset() StyleProfile {
	if p.Name == "" {
		return p
	}
	return ProfileByName(p.Name)
}

// Professional: conservative, no exclamation, strict question handling.
func Professional() StyleProfile {
	return StyleProfile{
		Name:                   "professional",
		StreamingPauseRatio:    3.5,
		StreamingMinTokens:     6,
		MinTokensBetweenCommas: 4,
		MinPauseDurationMs:     500,
		AllowExclamation:       false,
		StrictQuestion:         true,
		LogicStrength:          0.8,
		LogicWordMinTokens:     8,
	}
}

// Balanced is the middle-of-the-road preset, and the one ProfileByName
// returns for an unrecognized name.
func Balanced() StyleProfile {
	return StyleProfile{
		Name:                   "balanced",
		StreamingPauseRatio:    2.8,
		StreamingMinTokens:     4,
		MinTokensBetweenCommas: 3,
		MinPauseDurationMs:     400,
		AllowExclamation:       false,
		StrictQuestion:         false,
		LogicStrength:          1.0,
		LogicWordMinTokens:     6,
	}
}

// Expressive punctuates eagerly and allows exclamation marks.
func Expressive() StyleProfile {
	return StyleProfile{
		Name:                   "expressive",
		StreamingPauseRatio:    2.2,
		StreamingMinTokens:     3,
		MinTokensBetweenCommas: 2,
		MinPauseDurationMs:     300,
		AllowExclamation:       true,
		StrictQuestion:         false,
		LogicStrength:          1.2,
		LogicWordMinTokens:     5,
	}
}

// ProfileByName resolves a named preset, defaulting to Balanced for an
// unrecognized name.
func ProfileByName(name string) StyleProfile {
	switch name {
	case "professional":
		return Professional()
	case "expressive":
		return Expressive()
	default:
		return Balanced()
	}
}
