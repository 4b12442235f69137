// Package asr wraps the streaming (online) transducer recognizer: stream
// creation, waveform feeding, decode pumping, and token/timestamp
// extraction, following the contract in SPEC_FULL.md §4.8.
package asr

// Config configures the online recognizer.
type Config struct {
	ModelDir         string  `toml:"model_dir"`
	SampleRate       int     `toml:"sample_rate"`
	FeatDim          int     `toml:"feat_dim"`
	DecodingMethod   string  `toml:"decoding_method"` // "greedy_search" | "modified_beam_search"
	MaxActivePaths   int     `toml:"max_active_paths"`
	HotwordsFile     string  `toml:"hotwords_file"`
	HotwordsScore    float32 `toml:"hotwords_score"`
	NumThreads       int     `toml:"num_threads"`
	Provider         string  `toml:"provider"`

	// Endpoint flags forwarded to the decoder's own endpoint rule, which
	// the endpoint detector (internal/endpoint) arbitrates alongside the
	// VAD-driven signal.
	EnableEndpoint             bool    `toml:"enable_endpoint"`
	Rule1MinTrailingSilenceSec float32 `toml:"rule1_min_trailing_silence_sec"`
	Rule2MinTrailingSilenceSec float32 `toml:"rule2_min_trailing_silence_sec"`
	Rule3MinUtteranceLengthSec float32 `toml:"rule3_min_utterance_length_sec"`
}

// DefaultConfig returns the recognizer defaults named in SPEC_FULL.md §4.8.
func DefaultConfig() Config {
	return Config{
		SampleRate:                 16000,
		FeatDim:                    80,
		DecodingMethod:             "greedy_search",
		MaxActivePaths:             4,
		HotwordsScore:              1.5,
		EnableEndpoint:             true,
		Rule1MinTrailingSilenceSec: 2.4,
		Rule2MinTrailingSilenceSec: 1.2,
		Rule3MinUtteranceLengthSec: 20.0,
	}
}

// Encoder/decoder/joiner/tokens file names within ModelDir, matching the
// INT8-quantized streaming transducer artifact layout.
const (
	EncoderFile = "encoder-epoch-99-avg-1.int8.onnx"
	DecoderFile = "decoder-epoch-99-avg-1.int8.onnx"
	JoinerFile  = "joiner-epoch-99-avg-1.int8.onnx"
	TokensFile  = "tokens.txt"
)
