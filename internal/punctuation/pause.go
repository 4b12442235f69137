package punctuation

import "go.uber.org/zap"

// TokenInfo is one decoded token's text and timing span, as fed to the pause
// engine by the pipeline orchestrator.
type TokenInfo struct {
	Text    string
	StartMs int64
	EndMs   int64
}

// DurationMs returns the token's span, saturating at zero.
func (t TokenInfo) DurationMs() int64 {
	if t.EndMs < t.StartMs {
		return 0
	}
	return t.EndMs - t.StartMs
}

const avgWindowSize = 10

// PauseEngine flags tokens that should be preceded by a comma because the
// previous token's duration (which, for sherpa-onnx's contiguous timestamps,
// absorbs any pause) is abnormally long relative to the recent average.
type PauseEngine struct {
	profile          StyleProfile
	tokenHistory     []TokenInfo
	lastCommaPosition int
	haveLastComma     bool
	logger            *zap.Logger
}

// NewPauseEngine creates an engine bound to one style profile.
func NewPauseEngine(profile StyleProfile, logger *zap.Logger) *PauseEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PauseEngine{profile: profile, logger: logger}
}

// AddToken appends a token and reports whether a comma should precede it.
func (p *PauseEngine) AddToken(token TokenInfo) bool {
	shouldInsert := p.shouldInsertComma(token)
	if shouldInsert {
		p.logger.Debug("pause detected, inserting comma", zap.String("token", token.Text))
		p.lastCommaPosition = len(p.tokenHistory)
		p.haveLastComma = true
	}
	p.tokenHistory = append(p.tokenHistory, token)
	return shouldInsert
}

func (p *PauseEngine) shouldInsertComma(token TokenInfo) bool {
	if len(p.tokenHistory) < p.profile.StreamingMinTokens {
		return false
	}

	if p.haveLastComma {
		tokensSinceComma := len(p.tokenHistory) - p.lastCommaPosition
		if tokensSinceComma < p.profile.MinTokensBetweenCommas {
			return false
		}
	}

	if len(p.tokenHistory) == 0 {
		return false
	}
	lastToken := p.tokenHistory[len(p.tokenHistory)-1]
	lastDuration := lastToken.DurationMs()

	if lastDuration < p.profile.MinPauseDurationMs {
		return false
	}

	avg := p.averageTokenDuration()
	if avg == 0 {
		return false
	}

	ratio := float64(lastDuration) / float64(avg)
	return ratio > p.profile.StreamingPauseRatio
}

func (p *PauseEngine) averageTokenDuration() int64 {
	window := p.tokenHistory
	if len(window) > avgWindowSize {
		window = window[len(window)-avgWindowSize:]
	}
	if len(window) == 0 {
		return 0
	}
	var total int64
	for _, t := range window {
		total += t.DurationMs()
	}
	return total / int64(len(window))
}

// Reset clears token history for a new VAD segment.
func (p *PauseEngine) Reset() {
	p.tokenHistory = p.tokenHistory[:0]
	p.haveLastComma = false
}

// TokenCount reports the number of tokens seen since the last reset.
func (p *PauseEngine) TokenCount() int { return len(p.tokenHistory) }

// UpdateProfile swaps the active style profile without losing history.
func (p *PauseEngine) UpdateProfile(profile StyleProfile) { p.profile = profile }
