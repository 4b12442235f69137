package itn

import "testing"

func TestRawModeNoConversion(t *testing.T) {
	e := New(ModeRaw)
	result := e.Process("一千二百三十四")
	if result.Text != "一千二百三十四" {
		t.Fatalf("got %q", result.Text)
	}
	if len(result.Changes) != 0 {
		t.Fatalf("expected no changes, got %d", len(result.Changes))
	}
}

func TestEngineChineseNumberConversion(t *testing.T) {
	e := New(ModeAuto)
	result := e.Process("一千二百三十四")
	if result.Text != "1234" {
		t.Fatalf("got %q", result.Text)
	}
	if len(result.Changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(result.Changes))
	}
}

func TestEngineEnglishNumberConversion(t *testing.T) {
	e := New(ModeAuto)
	if got := e.Process("one").Text; got != "1" {
		t.Fatalf("got %q", got)
	}
	if got := e.Process("twenty").Text; got != "20" {
		t.Fatalf("got %q", got)
	}
}

func TestEnginePercentageConversion(t *testing.T) {
	e := New(ModeAuto)
	if got := e.Process("百分之五十").Text; got != "50%" {
		t.Fatalf("got %q", got)
	}
}

func TestEngineContextGuardSkipsURL(t *testing.T) {
	e := New(ModeAuto)
	result := e.Process("http://example.com")
	if result.Text != "http://example.com" {
		t.Fatalf("got %q", result.Text)
	}
	if len(result.Changes) != 0 {
		t.Fatalf("expected no changes, got %d", len(result.Changes))
	}
}

func TestEngineContextGuardSkipsCamelCase(t *testing.T) {
	e := New(ModeAuto)
	result := e.Process("CamelCase")
	if result.Text != "CamelCase" {
		t.Fatalf("got %q", result.Text)
	}
}

func TestEngineRollback(t *testing.T) {
	e := New(ModeAuto)
	result := e.Process("一千二百三十四")
	if result.Text != "1234" {
		t.Fatalf("got %q", result.Text)
	}
	if got := Rollback(result); got != "一千二百三十四" {
		t.Fatalf("got %q", got)
	}
}

func TestEngineModeSwitching(t *testing.T) {
	e := New(ModeAuto)
	if got := e.Process("一千").Text; got != "1000" {
		t.Fatalf("got %q", got)
	}
	e.SetMode(ModeRaw)
	if got := e.Process("一千").Text; got != "一千" {
		t.Fatalf("got %q", got)
	}
}

func TestEngineNumbersOnlyMode(t *testing.T) {
	e := New(ModeNumbersOnly)
	if got := e.Process("一千二百三十四").Text; got != "1234" {
		t.Fatalf("got %q", got)
	}
}
