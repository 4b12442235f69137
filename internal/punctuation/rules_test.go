package punctuation

import "testing"

func TestIsLogicWord(t *testing.T) {
	if !IsLogicWord("因为") || !IsLogicWord("所以") || !IsLogicWord("但是") {
		t.Fatal("expected known connectives to be recognized")
	}
	if IsLogicWord("你好") {
		t.Fatal("did not expect a non-connective to match")
	}
}

func TestShouldInsertCommaBefore(t *testing.T) {
	layer := NewRuleLayer(Professional())
	if layer.ShouldInsertCommaBefore("所以", 5) {
		t.Fatal("expected no comma below logic_word_min_tokens")
	}
	if !layer.ShouldInsertCommaBefore("所以", 10) {
		t.Fatal("expected comma once threshold reached for a connective")
	}
	if layer.ShouldInsertCommaBefore("你好", 10) {
		t.Fatal("did not expect comma for a non-connective")
	}
}

func TestShouldEndWithQuestionStrictMode(t *testing.T) {
	layer := NewRuleLayer(Professional())
	if !layer.ShouldEndWithQuestion("你好吗", false) {
		t.Fatal("expected question mark for unambiguous keyword regardless of energy")
	}
	if !layer.ShouldEndWithQuestion("你好吗", true) {
		t.Fatal("expected question mark with energy rising too")
	}
	if !layer.ShouldEndWithQuestion("可以是否", false) {
		t.Fatal("expected question mark when keyword is sentence-final")
	}
	if layer.ShouldEndWithQuestion("是否可行", false) {
		t.Fatal("did not expect question mark when keyword is sentence-initial")
	}
}

func TestShouldEndWithQuestionNonStrict(t *testing.T) {
	layer := NewRuleLayer(Balanced())
	if !layer.ShouldEndWithQuestion("你好吗", false) {
		t.Fatal("expected question mark in non-strict mode with a keyword")
	}
	if layer.ShouldEndWithQuestion("是否可行", false) {
		t.Fatal("did not expect question mark when keyword is sentence-initial")
	}
	if !layer.ShouldEndWithQuestion("这样能否", false) {
		t.Fatal("expected question mark for sentence-final 能否")
	}
}

func TestShouldInsertPeriod(t *testing.T) {
	layer := NewRuleLayer(Professional())
	if layer.ShouldInsertPeriod("测试句子", 500) {
		t.Fatal("did not expect period before 800ms silence")
	}
	if !layer.ShouldInsertPeriod("测试句子", 800) {
		t.Fatal("expected period at exactly 800ms silence")
	}
	if !layer.ShouldInsertPeriod("测试句子", 1000) {
		t.Fatal("expected period past 800ms silence")
	}
}

func TestShouldInsertPeriodOnManualStop(t *testing.T) {
	layer := NewRuleLayer(Professional())
	if !layer.ShouldInsertPeriod("测试句子", 0) {
		t.Fatal("expected period on manual stop with non-empty sentence")
	}
	if layer.ShouldInsertPeriod("", 0) {
		t.Fatal("did not expect period on manual stop with empty sentence")
	}
}

func TestNoQuestionWithoutKeyword(t *testing.T) {
	layer := NewRuleLayer(Professional())
	if layer.ShouldEndWithQuestion("这是一句普通的话", false) {
		t.Fatal("did not expect question mark without a keyword")
	}
	if layer.ShouldEndWithQuestion("这是一句普通的话", true) {
		t.Fatal("did not expect question mark without a keyword even with rising energy")
	}
}

func TestLogicWordMinTokensOverride(t *testing.T) {
	profile := Professional()
	profile.LogicWordMinTokens = 12
	layer := NewRuleLayer(profile)

	if layer.ShouldInsertCommaBefore("所以", 10) {
		t.Fatal("expected no comma below the overridden threshold")
	}
	if !layer.ShouldInsertCommaBefore("所以", 12) {
		t.Fatal("expected comma once the overridden threshold is reached")
	}
}
