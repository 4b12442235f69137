// Package config loads and saves the module's TOML configuration document,
// replacing the teacher's CLI-flag parsing with a file-plus-defaults shape
// appropriate for a library linked into a host plugin.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/deepinfan/vinput-core/internal/asr"
	"github.com/deepinfan/vinput-core/internal/endpoint"
	"github.com/deepinfan/vinput-core/internal/hotwords"
	"github.com/deepinfan/vinput-core/internal/punctuation"
	"github.com/deepinfan/vinput-core/internal/vad"
	"github.com/deepinfan/vinput-core/internal/verrors"
)

// modelDirEnvVar overrides the default ASR/VAD model directory, matching
// the grounding source's VINPUT_MODEL_DIR escape hatch.
const modelDirEnvVar = "VINPUT_MODEL_DIR"
const defaultModelDir = "/home/deepin/deepin-v2t/models/streaming"

// Config is the full, typed configuration document.
type Config struct {
	VAD         vad.Config               `toml:"vad"`
	ASR         asr.Config               `toml:"asr"`
	Endpoint    endpoint.Config          `toml:"endpoint"`
	Punctuation punctuation.StyleProfile `toml:"punctuation"`
	Hotwords    hotwords.Config          `toml:"hotwords"`
}

// Default returns the compiled-in defaults for every sub-config.
func Default() Config {
	modelDir := os.Getenv(modelDirEnvVar)
	if modelDir == "" {
		modelDir = defaultModelDir
	}

	asrCfg := asr.DefaultConfig()
	asrCfg.ModelDir = modelDir

	sileroCfg := vad.DefaultConfig()
	sileroCfg.Silero.ModelPath = filepath.Join(modelDir, "silero_vad.onnx")

	return Config{
		VAD:         sileroCfg,
		ASR:         asrCfg,
		Endpoint:    endpoint.DefaultConfig(),
		Punctuation: punctuation.Professional(),
		Hotwords:    hotwords.DefaultConfig(),
	}
}

// Path returns the platform's per-user config file location,
// $XDG_CONFIG_HOME/vinput/config.toml or its OS-specific equivalent.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", verrors.ConfigNotFound("user config directory unavailable")
	}
	return filepath.Join(dir, "vinput", "config.toml"), nil
}

// Load reads and decodes the config file at path. A missing file is not an
// error: it logs at info level and returns Default(). Unknown keys are
// logged (not rejected) via the decoder's metadata.
func Load(path string, logger *zap.Logger) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("config file not found, using defaults", zap.String("path", path))
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, verrors.ConfigParse(path, err)
	}

	for _, key := range meta.Undecoded() {
		logger.Info("ignoring unknown config key", zap.String("key", key.String()))
	}

	cfg.Punctuation = cfg.Punctuation.ResolveNamedPreset()

	logger.Info("loaded config",
		zap.String("path", path),
		zap.Float64("punctuation_pause_ratio", cfg.Punctuation.StreamingPauseRatio),
		zap.Int("punctuation_min_tokens", cfg.Punctuation.StreamingMinTokens),
		zap.Bool("punctuation_allow_exclamation", cfg.Punctuation.AllowExclamation),
	)

	return cfg, nil
}

// LoadDefault calls Load against the platform's well-known config path.
func LoadDefault(logger *zap.Logger) (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path, logger)
}

// Save serializes cfg back to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return verrors.ConfigParse(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return verrors.ConfigParse(path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return verrors.ConfigParse(path, err)
	}
	return nil
}
