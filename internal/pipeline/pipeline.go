// Package pipeline wires the VAD stack, streaming ASR recognizer, endpoint
// detector, punctuation engine, ITN, hotwords store, and undo history into
// the single per-frame orchestrator the host plugin drives.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/deepinfan/vinput-core/internal/asr"
	"github.com/deepinfan/vinput-core/internal/endpoint"
	"github.com/deepinfan/vinput-core/internal/hotwords"
	"github.com/deepinfan/vinput-core/internal/itn"
	"github.com/deepinfan/vinput-core/internal/punctuation"
	"github.com/deepinfan/vinput-core/internal/undo"
	"github.com/deepinfan/vinput-core/internal/vad"
	"github.com/deepinfan/vinput-core/internal/verrors"
)

// State is the orchestrator's own coarse state, distinct from (but driven
// by) the VAD and endpoint sub-state machines.
type State int

const (
	StateIdle State = iota
	StateRecognizing
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecognizing:
		return "recognizing"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// keepLastChars is the number of trailing characters held unstable in the
// host's preedit area while a result has no Chinese digits in flight.
const keepLastChars = 2

// Result is produced once per fed audio frame.
type Result struct {
	StableText    string
	UnstableText  string
	IsFinal       bool
	VadState      vad.State
	PipelineState State
	SpeechProb    float64
	ElapsedMs     int64
}

// Config bundles every sub-component's configuration.
type Config struct {
	VAD         vad.Config
	ASR         asr.Config
	Endpoint    endpoint.Config
	Punctuation punctuation.StyleProfile
	Hotwords    hotwords.Config
	UndoHistory int
}

// Pipeline is the per-session orchestrator: it owns every stateful
// sub-component and the single ASR stream live during recognition.
type Pipeline struct {
	vadManager *vad.Manager
	recognizer *asr.Recognizer
	stream     *asr.Stream
	punct      *punctuation.Engine
	endpoint   *endpoint.Detector
	hotwords   *hotwords.Engine
	history    *undo.History
	itn        *itn.Engine

	state       State
	speechStart time.Time

	totalFrames uint64
	asrFrames   uint64

	logger *zap.Logger
}

// New builds every sub-component, warms up the ASR recognizer, and returns
// an orchestrator ready to accept frames.
func New(cfg Config, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("pipeline configured",
		zap.Float64("punctuation_pause_ratio", cfg.Punctuation.StreamingPauseRatio),
		zap.Int("punctuation_min_tokens", cfg.Punctuation.StreamingMinTokens),
		zap.Duration("endpoint_trailing_silence", cfg.Endpoint.TrailingSilence),
		zap.Duration("endpoint_min_speech", cfg.Endpoint.MinSpeechDuration),
	)

	var silero *vad.Silero
	if cfg.VAD.Silero.ModelPath != "" {
		s, err := vad.NewSilero(cfg.VAD.Silero)
		if err != nil {
			return nil, err
		}
		silero = s
	}

	hw, err := hotwords.NewFromConfig(cfg.Hotwords)
	if err != nil {
		return nil, err
	}

	asrCfg := cfg.ASR
	if asrCfg.HotwordsFile == "" && hw.Count() > 0 {
		asrCfg.HotwordsScore = hw.GlobalWeight()
	}

	recognizer, err := asr.New(asrCfg)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		vadManager: vad.NewManager(cfg.VAD, silero, logger),
		recognizer: recognizer,
		punct:      punctuation.New(cfg.Punctuation, logger),
		endpoint:   endpoint.New(cfg.Endpoint),
		hotwords:   hw,
		history:    undo.New(undoHistoryCapacity(cfg.UndoHistory)),
		itn:        itn.New(itn.ModeAuto),
		state:      StateIdle,
		logger:     logger,
	}

	if err := recognizer.Warmup(); err != nil {
		return nil, err
	}

	return p, nil
}

func undoHistoryCapacity(n int) int {
	if n <= 0 {
		return undo.DefaultCapacity
	}
	return n
}

// Process runs one audio frame through the full pipeline and returns the
// partial result to show in the host's preedit area.
func (p *Pipeline) Process(frame []float32) (Result, error) {
	p.totalFrames++

	vadResult := p.vadManager.Process(frame)

	if p.state == StateRecognizing {
		p.endpoint.TrackEnergy(frame)
	}

	isSpeech := vadResult.State == vad.StateSpeech || vadResult.State == vad.StateSpeechCandidate
	outcome := p.endpoint.ProcessVAD(isSpeech)

	switch outcome {
	case endpoint.OutcomeTooShort:
		p.logger.Debug("pipeline: speech too short, discarding")
		if err := p.Reset(); err != nil {
			return Result{}, err
		}
	case endpoint.OutcomeForcedSegmentation, endpoint.OutcomeTimeout, endpoint.OutcomeDetected:
		p.finishStreamInput()
		p.state = StateCompleted
	case endpoint.OutcomeContinue:
		p.advance(vadResult, frame)
	}

	if p.state == StateRecognizing && p.stream != nil {
		p.pumpDecoder()
	}

	var partial asr.Result
	if p.stream != nil {
		partial = p.stream.Result()
	}

	stable, unstable := splitStableUnstable(partial.Text)

	elapsed := int64(0)
	if !p.speechStart.IsZero() {
		elapsed = time.Since(p.speechStart).Milliseconds()
	}

	return Result{
		StableText:    stable,
		UnstableText:  unstable,
		IsFinal:       p.state == StateCompleted,
		VadState:      vadResult.State,
		PipelineState: p.state,
		SpeechProb:    vadResult.SpeechProbability,
		ElapsedMs:     elapsed,
	}, nil
}

// advance handles VAD-driven ASR stream lifecycle once the endpoint
// detector has said to proceed normally.
func (p *Pipeline) advance(vadResult vad.Result, frame []float32) {
	switch {
	case p.state == StateIdle && vadResult.State == vad.StateSpeech && vadResult.StateChanged:
		stream, err := p.recognizer.CreateStream()
		if err != nil {
			p.logger.Warn("pipeline: failed to create ASR stream", zap.Error(err))
			return
		}
		p.stream = stream
		if len(vadResult.PreRollAudio) > 0 {
			p.stream.AcceptWaveform(vadResult.PreRollAudio)
			p.asrFrames++
		}
		p.state = StateRecognizing
		p.speechStart = time.Now()

	case p.state == StateRecognizing &&
		(vadResult.State == vad.StateSpeech || vadResult.State == vad.StateSpeechCandidate || vadResult.State == vad.StateSilenceCandidate):
		if p.stream != nil {
			p.stream.AcceptWaveform(frame)
			p.asrFrames++
		}
	}
}

// pumpDecoder runs the decoder forward and lets the endpoint detector
// arbitrate the decoder's own endpoint signal.
func (p *Pipeline) pumpDecoder() {
	for p.stream.IsReady() {
		p.stream.Decode()
	}

	if p.endpoint.ProcessASREndpoint(p.stream.IsEndpoint()) == endpoint.OutcomeDetected {
		p.finishStreamInput()
		p.state = StateCompleted
	}
}

func (p *Pipeline) finishStreamInput() {
	if p.stream != nil {
		p.stream.InputFinished()
	}
}

// splitStableUnstable separates committable (stable) text from text that
// must stay in the host's preedit area: if the whole partial contains a
// Chinese digit, it all stays unstable since ITN may still rewrite it;
// otherwise the final keepLastChars runes are held back.
func splitStableUnstable(text string) (stable, unstable string) {
	if itn.ContainsChineseDigit(text) {
		return "", text
	}

	runes := []rune(text)
	if len(runes) <= keepLastChars {
		return "", text
	}

	stableCount := len(runes) - keepLastChars
	return string(runes[:stableCount]), string(runes[stableCount:])
}

// GetFinalResultWithPunctuation drains the current stream's detailed
// result through the punctuation engine, appends a terminal mark, runs
// ITN, commits the result to undo history, resets the pipeline, and
// returns the finished text.
func (p *Pipeline) GetFinalResultWithPunctuation() string {
	if p.stream == nil {
		_ = p.Reset()
		return ""
	}

	result := p.stream.Result()

	var finalText string
	for _, token := range result.Tokens {
		finalText += p.punct.ProcessToken(punctuation.TokenInfo{
			Text:    token.Text,
			StartMs: token.StartMs,
			EndMs:   token.EndMs,
		})
	}

	energyRising := p.endpoint.EnergyRising()
	speechDurationMs := p.endpoint.SpeechDuration().Milliseconds()
	finalText += p.punct.FinalizeSentence(speechDurationMs, energyRising)

	normalized := p.itn.Process(finalText)
	finalText = normalized.Text

	if finalText != "" {
		p.history.Push(finalText)
	}

	_ = p.Reset()
	return finalText
}

// GetFinalResult returns the stream's raw, unpunctuated result and resets
// the pipeline, for callers that only want the ASR hypothesis.
func (p *Pipeline) GetFinalResult() string {
	var text string
	if p.stream != nil {
		text = p.stream.Result().Text
	}
	_ = p.Reset()
	return text
}

// Reset tears down the active ASR stream (finalizing it first if live) and
// returns every sub-component to its initial state.
func (p *Pipeline) Reset() error {
	if p.stream != nil {
		p.stream.InputFinished()
		if err := p.stream.Close(); err != nil {
			p.logger.Warn("pipeline: failed to close ASR stream", zap.Error(err))
		}
		p.stream = nil
	}

	p.vadManager.Reset()
	p.punct.ResetSentence()
	p.endpoint.Reset()

	p.state = StateIdle
	p.speechStart = time.Time{}
	return nil
}

// ForceVADState forwards to the VAD manager, for push-to-talk hosts.
func (p *Pipeline) ForceVADState(s vad.State) { p.vadManager.ForceState(s) }

// State returns the orchestrator's coarse state.
func (p *Pipeline) State() State { return p.state }

// VadState returns the VAD manager's current hysteresis state.
func (p *Pipeline) VadState() vad.State { return p.vadManager.State() }

// Undo marks the most recent not-yet-undone committed text as undone, returning it so the
// host can remove it from the input buffer.
func (p *Pipeline) Undo() (string, error) {
	text, ok := p.history.Undo()
	if !ok {
		return "", verrors.EmptyUndoHistory()
	}
	return text, nil
}

// Redo restores the newest committed text that is currently undone.
func (p *Pipeline) Redo() (string, error) {
	text, ok := p.history.Redo()
	if !ok {
		return "", verrors.EmptyUndoHistory()
	}
	return text, nil
}

// Stats reports frame-processing counters, for diagnostics.
type Stats struct {
	TotalFrames      uint64
	ASRFrames        uint64
	SpeechDurationMs int64
}

// Stats returns current frame-processing counters.
func (p *Pipeline) Stats() Stats {
	var speechMs int64
	if !p.speechStart.IsZero() {
		speechMs = time.Since(p.speechStart).Milliseconds()
	}
	return Stats{
		TotalFrames:      p.totalFrames,
		ASRFrames:        p.asrFrames,
		SpeechDurationMs: speechMs,
	}
}

// Close releases the underlying ASR recognizer and any live stream.
func (p *Pipeline) Close() error {
	if p.stream != nil {
		_ = p.stream.Close()
		p.stream = nil
	}
	return p.recognizer.Close()
}
