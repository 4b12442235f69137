package punctuation

import "go.uber.org/zap"

// Result is the outcome of processing one token.
type Result struct {
	Text        string
	HasComma    bool
}

// Engine combines the pause engine and rule layer into the single entry
// point the pipeline orchestrator calls per token and per segment boundary.
type Engine struct {
	pause   *PauseEngine
	rules   *RuleLayer
	profile StyleProfile

	currentSentence []string
	logger          *zap.Logger
}

// New creates an engine for the given style profile.
func New(profile StyleProfile, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("punctuation engine configured",
		zap.Float64("pause_ratio", profile.StreamingPauseRatio),
		zap.Int("min_tokens", profile.StreamingMinTokens),
		zap.Bool("allow_exclamation", profile.AllowExclamation),
	)
	return &Engine{
		pause:   NewPauseEngine(profile, logger),
		rules:   NewRuleLayer(profile),
		profile: profile,
		logger:  logger,
	}
}

// Default creates an engine using the Professional profile, the original
// system's default.
func Default() *Engine { return New(Professional(), nil) }

// ProcessToken appends token to the current sentence and returns its text,
// prefixed with a comma if either the logic-connective rule or the pause
// engine decided one belongs there.
func (e *Engine) ProcessToken(token TokenInfo) string {
	word := token.Text

	commaByRule := e.rules.ShouldInsertCommaBefore(word, len(e.currentSentence))
	commaByPause := e.pause.AddToken(token)
	insertComma := commaByRule || commaByPause

	e.currentSentence = append(e.currentSentence, word)

	if insertComma {
		return "，" + word
	}
	return word
}

// FinalizeSentence decides the sentence-ending punctuation — "？", "。", or
// "" to keep waiting — and resets sentence state whenever it emits one.
func (e *Engine) FinalizeSentence(vadSilenceMs int64, energyRising bool) string {
	sentenceText := ""
	for _, w := range e.currentSentence {
		sentenceText += w
	}

	if e.rules.ShouldEndWithQuestion(sentenceText, energyRising) {
		e.ResetSentence()
		return "？"
	}

	if e.rules.ShouldInsertPeriod(sentenceText, vadSilenceMs) {
		e.ResetSentence()
		return "。"
	}

	return ""
}

// ResetSentence clears sentence state for a new VAD segment.
func (e *Engine) ResetSentence() {
	e.currentSentence = e.currentSentence[:0]
	e.pause.Reset()
}

// CurrentSentence returns the text accumulated so far, without punctuation.
func (e *Engine) CurrentSentence() string {
	out := ""
	for _, w := range e.currentSentence {
		out += w
	}
	return out
}

// UpdateProfile swaps the active style profile on all sub-engines.
func (e *Engine) UpdateProfile(profile StyleProfile) {
	e.profile = profile
	e.pause.UpdateProfile(profile)
	e.rules.UpdateProfile(profile)
}

// Profile returns the active style profile.
func (e *Engine) Profile() StyleProfile { return e.profile }
