// Package hotwords parses and manages the boosted-vocabulary list fed to the
// ASR decoder's hotwords_score parameter.
package hotwords

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/deepinfan/vinput-core/internal/verrors"
)

// Entry is one hotword and its boost weight.
type Entry struct {
	Word   string
	Weight float32
}

// ValidWeight reports whether weight falls in the accepted 1.0-5.0 range.
func ValidWeight(weight float32) bool { return weight >= 1.0 && weight <= 5.0 }

const defaultWeight = 2.5

// ParseTxt parses the line-oriented "word [weight]" format, one entry per
// line, "#"-prefixed comments and blank lines skipped.
func ParseTxt(content string) (map[string]float32, error) {
	hotwords := make(map[string]float32)

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		word := parts[0]
		weight := float32(defaultWeight)
		if len(parts) >= 2 {
			parsed, err := strconv.ParseFloat(parts[1], 32)
			if err != nil {
				return nil, verrors.Hotword(fmt.Errorf("invalid weight at line %d: %q", lineNum+1, parts[1]))
			}
			weight = float32(parsed)
		}

		if !ValidWeight(weight) {
			return nil, verrors.Hotword(fmt.Errorf("weight out of range (1.0-5.0) at line %d: %v", lineNum+1, weight))
		}

		hotwords[word] = weight
	}

	return hotwords, nil
}

// ParseToml parses the grouped TOML format: [group] tables of word = weight.
func ParseToml(content string) (map[string]map[string]float32, error) {
	var raw map[string]map[string]interface{}
	if _, err := toml.Decode(content, &raw); err != nil {
		return nil, verrors.Hotword(fmt.Errorf("failed to parse TOML: %w", err))
	}

	groups := make(map[string]map[string]float32)
	for groupName, entries := range raw {
		hw := make(map[string]float32)
		for word, value := range entries {
			var weight float32
			switch v := value.(type) {
			case float64:
				weight = float32(v)
			case int64:
				weight = float32(v)
			default:
				return nil, verrors.Hotword(fmt.Errorf("invalid weight for %q in group %q", word, groupName))
			}
			if !ValidWeight(weight) {
				return nil, verrors.Hotword(fmt.Errorf("weight out of range (1.0-5.0) for %q: %v", word, weight))
			}
			hw[word] = weight
		}
		groups[groupName] = hw
	}
	return groups, nil
}

// LoadFile reads a hotwords file, auto-detecting TOML by extension and
// falling back to the txt format otherwise; TOML groups are merged.
func LoadFile(path string) (map[string]float32, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, verrors.Hotword(fmt.Errorf("failed to read hotwords file: %w", err))
	}

	if filepath.Ext(path) == ".toml" {
		groups, err := ParseToml(string(content))
		if err != nil {
			return nil, err
		}
		merged := make(map[string]float32)
		for _, hw := range groups {
			for word, weight := range hw {
				merged[word] = weight
			}
		}
		return merged, nil
	}

	return ParseTxt(string(content))
}
