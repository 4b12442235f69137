package punctuation

import "strings"

// logicWords are connective words that, appearing mid-sentence past the
// minimum token count, warrant a preceding comma.
var logicWords = []string{
	"因为", "所以", "但是", "然而", "如果", "虽然", "因此", "同时", "另外",
}

// questionKeywords mark sentence-final tokens that strongly suggest a
// question.
var questionKeywords = []string{
	"吗", "呢", "么",
	"是否", "是不是", "能否", "可以吗", "对吗", "行吗", "好吗",
	"能不能", "有没有", "会不会", "要不要", "该不该",
}

var whWords = []string{"什么", "怎么", "哪", "谁", "为什么", "几", "多少"}

// RuleLayer applies the fixed linguistic rules (logic connectives, question
// detection, period placement) on top of the pause engine's statistical
// signal.
type RuleLayer struct {
	profile StyleProfile
}

// NewRuleLayer creates a rule layer bound to one style profile.
func NewRuleLayer(profile StyleProfile) *RuleLayer {
	return &RuleLayer{profile: profile}
}

// ShouldInsertCommaBefore reports whether word, a logic connective appearing
// at totalTokens into the sentence, should be preceded by a comma.
func (r *RuleLayer) ShouldInsertCommaBefore(word string, totalTokens int) bool {
	if totalTokens < r.profile.LogicWordMinTokens {
		return false
	}
	if !IsLogicWord(word) {
		return false
	}
	return r.profile.LogicStrength >= 0.8
}

// ShouldEndWithQuestion reports whether sentence should end with a question
// mark. energyRising is the trailing acoustic energy trend, unreliable in
// push-to-talk mode.
func (r *RuleLayer) ShouldEndWithQuestion(sentence string, energyRising bool) bool {
	if len([]rune(sentence)) < 2 {
		return false
	}

	hasKeyword := false
	for _, kw := range questionKeywords {
		if strings.HasSuffix(sentence, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return false
	}

	if r.profile.StrictQuestion {
		if strings.HasSuffix(sentence, "呢") {
			hasWh := false
			for _, w := range whWords {
				if strings.Contains(sentence, w) {
					hasWh = true
					break
				}
			}
			return hasWh || energyRising
		}
		return true
	}

	return true
}

// ShouldInsertPeriod decides period placement from the VAD-measured trailing
// silence. A zero duration means manual stop: any non-empty sentence still
// gets a period so the user's own stop action yields complete punctuation.
func (r *RuleLayer) ShouldInsertPeriod(sentence string, vadSilenceMs int64) bool {
	if vadSilenceMs > 0 {
		return vadSilenceMs >= 800
	}
	return sentence != ""
}

// IsLogicWord reports whether word is a recognized logic connective.
func IsLogicWord(word string) bool {
	for _, w := range logicWords {
		if w == word {
			return true
		}
	}
	return false
}

// UpdateProfile swaps the active style profile.
func (r *RuleLayer) UpdateProfile(profile StyleProfile) { r.profile = profile }
