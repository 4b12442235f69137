package itn

import "strings"

// Mode selects how aggressively the engine normalizes text.
type Mode int

const (
	// ModeAuto runs every rule: numbers, percentages, dates, units.
	ModeAuto Mode = iota
	// ModeNumbersOnly converts numerals only.
	ModeNumbersOnly
	// ModeRaw skips ITN entirely.
	ModeRaw
)

// Change records one block's normalization, kept so a session can roll back
// to the originally recognized text.
type Change struct {
	OriginalStart  int
	OriginalEnd    int
	OriginalText   string
	NormalizedText string
}

// Result is the outcome of processing one piece of text.
type Result struct {
	Text    string
	Changes []Change
}

// Engine is the ITN pipeline: tokenize, guard, convert, merge.
type Engine struct {
	mode Mode
}

// New creates an engine in the given mode.
func New(mode Mode) *Engine { return &Engine{mode: mode} }

// Process normalizes text according to the engine's mode, recording a
// Change for every block whose content actually changed.
func (e *Engine) Process(text string) Result {
	if e.mode == ModeRaw {
		return Result{Text: text}
	}

	blocks := Tokenize(text)

	var processed []Block
	var changes []Change
	offset := 0

	for _, block := range blocks {
		out := e.processBlock(block)
		if out.Content != block.Content {
			changes = append(changes, Change{
				OriginalStart:  offset,
				OriginalEnd:    offset + len(block.Content),
				OriginalText:   block.Content,
				NormalizedText: out.Content,
			})
		}
		offset += len(block.Content)
		processed = append(processed, out)
	}

	return Result{Text: mergeBlocks(processed), Changes: changes}
}

func (e *Engine) processBlock(block Block) Block {
	if ShouldSkipBlock(block) {
		return block
	}

	switch block.Type {
	case BlockChinese:
		return e.processChineseBlock(block)
	case BlockEnglish:
		return e.processEnglishBlock(block)
	default:
		return block
	}
}

func (e *Engine) processChineseBlock(block Block) Block {
	content := block.Content

	if e.mode == ModeAuto {
		if strings.HasPrefix(content, "百分之") {
			if converted, err := ConvertChinesePercentage(content); err == nil {
				content = converted
			}
		}
		if IsDateExpression(content) {
			if converted, err := ConvertChineseDate(content); err == nil {
				content = converted
			}
		}
	}

	block.Content = replaceChineseNumbers(content)
	return block
}

func replaceChineseNumbers(text string) string {
	var b strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if chineseNumberChars[runes[i]] {
			start := i
			for i < len(runes) && chineseNumberChars[runes[i]] {
				i++
			}
			numberText := string(runes[start:i])
			if numberText == "一" {
				// Word guard: a lone 一 not followed by a numeric unit
				// (一开始, 一起) is left as written.
				b.WriteString(numberText)
				continue
			}
			if converted, err := ConvertChineseNumber(numberText); err == nil {
				b.WriteString(converted)
			} else {
				b.WriteString(numberText)
			}
		} else {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}

func (e *Engine) processEnglishBlock(block Block) Block {
	content := block.Content

	if IsEnglishNumber(content) {
		if converted, err := ConvertEnglishNumber(content); err == nil {
			content = converted
		}
	}

	if e.mode == ModeAuto {
		words := strings.Fields(content)
		if len(words) == 2 && IsSupportedUnit(words[1]) {
			content = FormatUnit(words[0], words[1])
		}
	}

	block.Content = content
	return block
}

func mergeBlocks(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(blk.Content)
	}
	return b.String()
}

// SetMode changes the active mode.
func (e *Engine) SetMode(mode Mode) { e.mode = mode }

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// Rollback reverts a Result's text to what it was before ITN, by undoing
// each recorded change in reverse order. This is a textual substitution, not
// an offset-accurate replay: it is adequate for undoing the single most
// recent ITN pass, not for composing across multiple passes.
func Rollback(result Result) string {
	if len(result.Changes) == 0 {
		return result.Text
	}
	text := result.Text
	for i := len(result.Changes) - 1; i >= 0; i-- {
		c := result.Changes[i]
		text = strings.Replace(text, c.NormalizedText, c.OriginalText, 1)
	}
	return text
}
