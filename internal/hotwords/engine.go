package hotwords

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deepinfan/vinput-core/internal/verrors"
)

const (
	defaultMaxHotwords   = 10000
	defaultGlobalWeight  = 2.5
	minGlobalWeight      = 1.0
	maxGlobalWeight      = 5.0
)

// Engine owns the active hotword list and the global weight applied to it
// via the ASR recognizer's hotwords_score parameter.
type Engine struct {
	words        map[string]float32
	filePath     string
	maxHotwords  int
	globalWeight float32
}

// New creates an empty engine with default limits.
func New() *Engine {
	return &Engine{
		words:        make(map[string]float32),
		maxHotwords:  defaultMaxHotwords,
		globalWeight: defaultGlobalWeight,
	}
}

// LoadFromFile replaces the active hotword list with the contents of path.
func (e *Engine) LoadFromFile(path string) error {
	words, err := LoadFile(path)
	if err != nil {
		return err
	}
	if len(words) > e.maxHotwords {
		return verrors.Hotword(fmt.Errorf("too many hotwords: %d > %d", len(words), e.maxHotwords))
	}
	e.words = words
	e.filePath = path
	return nil
}

// AddHotword inserts or updates one entry.
func (e *Engine) AddHotword(word string, weight float32) error {
	if !ValidWeight(weight) {
		return verrors.Hotword(fmt.Errorf("weight out of range (1.0-5.0): %v", weight))
	}
	if _, exists := e.words[word]; !exists && len(e.words) >= e.maxHotwords {
		return verrors.Hotword(fmt.Errorf("max hotwords limit reached: %d", e.maxHotwords))
	}
	e.words[word] = weight
	return nil
}

// RemoveHotword deletes word, reporting whether it was present.
func (e *Engine) RemoveHotword(word string) bool {
	if _, ok := e.words[word]; !ok {
		return false
	}
	delete(e.words, word)
	return true
}

// Clear removes every hotword.
func (e *Engine) Clear() { e.words = make(map[string]float32) }

// ToSherpaFormat renders the hotword list as sherpa-onnx expects it: one
// word per line, weight omitted since a single global_weight governs all
// entries.
func (e *Engine) ToSherpaFormat() string {
	words := make([]string, 0, len(e.words))
	for w := range e.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\n")
}

// GetHotwords returns the active word-to-weight map.
func (e *Engine) GetHotwords() map[string]float32 { return e.words }

// Count returns the number of active hotwords.
func (e *Engine) Count() int { return len(e.words) }

// SetGlobalWeight clamps and stores the decoder's hotwords_score.
func (e *Engine) SetGlobalWeight(weight float32) {
	if weight < minGlobalWeight {
		weight = minGlobalWeight
	}
	if weight > maxGlobalWeight {
		weight = maxGlobalWeight
	}
	e.globalWeight = weight
}

// GlobalWeight returns the decoder's hotwords_score.
func (e *Engine) GlobalWeight() float32 { return e.globalWeight }

// SetMaxHotwords changes the capacity limit.
func (e *Engine) SetMaxHotwords(max int) { e.maxHotwords = max }
