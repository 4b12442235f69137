package asr

import (
	"github.com/deepinfan/vinput-core/internal/sherpa"
)

// Stream wraps one utterance's decoding session. It must not outlive the
// Recognizer that created it.
type Stream struct {
	impl       *sherpa.OnlineStream
	recognizer *sherpa.OnlineRecognizer
	sampleRate int
}

// AcceptWaveform appends samples to the decoder's feature queue. Never
// blocks.
func (s *Stream) AcceptWaveform(samples []float32) {
	s.impl.AcceptWaveform(s.sampleRate, samples)
}

// IsReady reports whether the decoder has enough buffered features to run
// another decode step.
func (s *Stream) IsReady() bool {
	return s.recognizer.IsReady(s.impl)
}

// Decode advances the decoder by one step. Callers should pump this in a
// `for IsReady() { Decode() }` loop after every AcceptWaveform.
func (s *Stream) Decode() {
	s.recognizer.Decode(s.impl)
}

// Result returns the current best hypothesis with per-token timestamps.
// Token stability is not guaranteed across decode steps until the stream is
// finalized with InputFinished.
func (s *Stream) Result() Result {
	raw := s.recognizer.GetResult(s.impl)
	return Result{
		Text:   raw.Text,
		Tokens: tokensFromRaw(raw.Tokens, raw.Timestamps),
	}
}

// IsEndpoint reports the decoder's own endpoint indicator.
func (s *Stream) IsEndpoint() bool {
	return s.recognizer.IsEndpoint(s.impl)
}

// Reset begins a new segment within the same stream, for forced
// segmentation without tearing down the stream object.
func (s *Stream) Reset() {
	s.recognizer.Reset(s.impl)
}

// InputFinished signals EOF; subsequent Decode calls drain residual state.
// Must always be called (along with a final Decode/Result) before Close.
func (s *Stream) InputFinished() {
	s.impl.InputFinished()
}

// Close releases the underlying stream.
func (s *Stream) Close() error {
	sherpa.DeleteOnlineStream(s.impl)
	return nil
}
