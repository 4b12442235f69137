package asr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deepinfan/vinput-core/internal/sherpa"
	"github.com/deepinfan/vinput-core/internal/verrors"
)

// Recognizer owns the streaming transducer model and creates one Stream per
// utterance.
type Recognizer struct {
	impl *sherpa.OnlineRecognizer
	cfg  Config
}

// New validates the model directory and constructs the underlying streaming
// recognizer.
func New(cfg Config) (*Recognizer, error) {
	for _, name := range []string{EncoderFile, DecoderFile, JoinerFile, TokensFile} {
		p := filepath.Join(cfg.ModelDir, name)
		if _, err := os.Stat(p); err != nil {
			return nil, verrors.ModelLoad(p, err)
		}
	}

	sc := &sherpa.OnlineRecognizerConfig{}
	sc.ModelConfig.Transducer.Encoder = filepath.Join(cfg.ModelDir, EncoderFile)
	sc.ModelConfig.Transducer.Decoder = filepath.Join(cfg.ModelDir, DecoderFile)
	sc.ModelConfig.Transducer.Joiner = filepath.Join(cfg.ModelDir, JoinerFile)
	sc.ModelConfig.Tokens = filepath.Join(cfg.ModelDir, TokensFile)
	sc.ModelConfig.NumThreads = cfg.NumThreads
	sc.ModelConfig.Provider = cfg.Provider
	sc.FeatConfig.SampleRate = cfg.SampleRate
	sc.FeatConfig.FeatureDim = cfg.FeatDim
	sc.DecodingMethod = cfg.DecodingMethod
	sc.MaxActivePaths = cfg.MaxActivePaths
	sc.HotwordsFile = cfg.HotwordsFile
	sc.HotwordsScore = cfg.HotwordsScore
	sc.EnableEndpoint = boolToInt(cfg.EnableEndpoint)
	sc.Rule1MinTrailingSilence = cfg.Rule1MinTrailingSilenceSec
	sc.Rule2MinTrailingSilence = cfg.Rule2MinTrailingSilenceSec
	sc.Rule3MinUtteranceLength = cfg.Rule3MinUtteranceLengthSec

	impl := sherpa.NewOnlineRecognizer(sc)
	if impl == nil {
		return nil, verrors.ModelLoad(cfg.ModelDir, fmt.Errorf("sherpa returned nil recognizer"))
	}

	return &Recognizer{impl: impl, cfg: cfg}, nil
}

// CreateStream starts a new per-utterance decoding stream.
func (r *Recognizer) CreateStream() (*Stream, error) {
	s := sherpa.NewOnlineStream(r.impl)
	if s == nil {
		return nil, verrors.RecognizerNotReady()
	}
	return &Stream{impl: s, recognizer: r.impl, sampleRate: r.cfg.SampleRate}, nil
}

// Warmup creates a throw-away stream, feeds one frame of silence, and
// decodes while the stream is ready, amortizing first-frame latency into construction time
// rather than the first real utterance.
func (r *Recognizer) Warmup() error {
	s, err := r.CreateStream()
	if err != nil {
		return err
	}
	defer s.Close()

	s.AcceptWaveform(make([]float32, 512))
	for s.IsReady() {
		s.Decode()
	}
	_ = s.Result()
	return nil
}

// Close releases the underlying recognizer.
func (r *Recognizer) Close() error {
	sherpa.DeleteOnlineRecognizer(r.impl)
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
