package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Punctuation.Name != "professional" {
		t.Fatalf("unexpected default punctuation profile: %q", cfg.Punctuation.Name)
	}
	if cfg.ASR.SampleRate != 16000 {
		t.Fatalf("unexpected default sample rate: %d", cfg.ASR.SampleRate)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Default()
	cfg.Punctuation = cfg.Punctuation.ResolveNamedPreset()
	cfg.Hotwords.Words = map[string]float32{"深度学习": 3.0}
	cfg.Hotwords.GlobalWeight = 3.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if loaded.Hotwords.GlobalWeight != 3.5 {
		t.Fatalf("unexpected global weight after round trip: %v", loaded.Hotwords.GlobalWeight)
	}
	if loaded.Hotwords.Words["深度学习"] != 3.0 {
		t.Fatalf("unexpected hotword weight after round trip: %v", loaded.Hotwords.Words["深度学习"])
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[vad.silero]\nsample_rate = 16000\n\n[bogus_table]\nfoo = 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path, zap.NewNop()); err != nil {
		t.Fatalf("expected unknown keys to be ignored, got error: %v", err)
	}
}

func TestPunctuationPresetByName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[punctuation]\nname = \"expressive\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Punctuation.AllowExclamation {
		t.Fatal("expected the expressive preset to allow exclamation marks")
	}
}
