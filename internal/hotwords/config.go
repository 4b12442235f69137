package hotwords

// Config is the config-file representation of the hotword list: an inline
// phrase-to-weight map plus the global boost applied at the decoder, and an
// optional external file that the inline map is merged on top of.
type Config struct {
	FilePath     string             `toml:"file_path"`
	Words        map[string]float32 `toml:"words"`
	GlobalWeight float32            `toml:"global_weight"`
	MaxHotwords  int                `toml:"max_hotwords"`
}

// DefaultConfig returns an empty hotword list at the default global weight.
func DefaultConfig() Config {
	return Config{
		Words:        map[string]float32{},
		GlobalWeight: defaultGlobalWeight,
		MaxHotwords:  defaultMaxHotwords,
	}
}

// NewFromConfig builds an Engine from a decoded Config, loading FilePath
// first (if set) and then layering the inline Words map on top so explicit
// config entries take precedence over the file.
func NewFromConfig(cfg Config) (*Engine, error) {
	e := New()
	if cfg.MaxHotwords > 0 {
		e.SetMaxHotwords(cfg.MaxHotwords)
	}
	if cfg.FilePath != "" {
		if err := e.LoadFromFile(cfg.FilePath); err != nil {
			return nil, err
		}
	}
	for word, weight := range cfg.Words {
		if weight == 0 {
			weight = defaultWeight
		}
		if err := e.AddHotword(word, weight); err != nil {
			return nil, err
		}
	}
	if cfg.GlobalWeight > 0 {
		e.SetGlobalWeight(cfg.GlobalWeight)
	}
	return e, nil
}
