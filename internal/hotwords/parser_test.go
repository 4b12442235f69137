package hotwords

import "testing"

func TestParseTxtBasic(t *testing.T) {
	content := "\n# comment\n深度学习 2.8\n人工智能 2.5\nTransformer\n"
	words, err := ParseTxt(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(words))
	}
	if words["深度学习"] != 2.8 {
		t.Fatalf("unexpected weight: %v", words["深度学习"])
	}
	if words["Transformer"] != defaultWeight {
		t.Fatalf("expected default weight, got %v", words["Transformer"])
	}
}

func TestParseTxtEmptyLines(t *testing.T) {
	content := "\n\n# comment\n\n深度学习 2.8\n\n"
	words, err := ParseTxt(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(words))
	}
}

func TestParseTxtInvalidWeight(t *testing.T) {
	if _, err := ParseTxt("深度学习 invalid"); err == nil {
		t.Fatal("expected an error for an unparseable weight")
	}
}

func TestParseTxtWeightOutOfRange(t *testing.T) {
	if _, err := ParseTxt("深度学习 6.0"); err == nil {
		t.Fatal("expected an error for an out-of-range weight")
	}
	if _, err := ParseTxt("深度学习 0.5"); err == nil {
		t.Fatal("expected an error for an out-of-range weight")
	}
}

func TestParseTomlBasic(t *testing.T) {
	content := "[default]\n\"深度学习\" = 2.8\n\"人工智能\" = 2.5\n\n[names]\n\"张三\" = 3.0\n\"李四\" = 3.0\n"
	groups, err := ParseToml(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups["default"]["深度学习"] != 2.8 {
		t.Fatalf("unexpected weight: %v", groups["default"]["深度学习"])
	}
	if groups["names"]["张三"] != 3.0 {
		t.Fatalf("unexpected weight: %v", groups["names"]["张三"])
	}
}

func TestValidateWeight(t *testing.T) {
	if !ValidWeight(1.0) || !ValidWeight(2.5) || !ValidWeight(5.0) {
		t.Fatal("expected in-range weights to validate")
	}
	if ValidWeight(0.9) || ValidWeight(5.1) {
		t.Fatal("did not expect out-of-range weights to validate")
	}
}
