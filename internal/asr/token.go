package asr

// Token is a single decoded unit with its timestamp span. Because the
// decoder only reports start timestamps, End is derived as the start of the
// following token, or Start+tailEstimateMs for the last token of a result.
type Token struct {
	Text       string
	StartMs    int64
	EndMs      int64
	Confidence float32
}

// DurationMs returns the token's span, saturating at zero rather than going
// negative if timestamps are ever out of order.
func (t Token) DurationMs() int64 {
	if t.EndMs < t.StartMs {
		return 0
	}
	return t.EndMs - t.StartMs
}

const tailEstimateMs int64 = 200

// tokensFromRaw builds a Token slice from parallel text/timestamp arrays as
// reported by the decoder, deriving End per token per the rule above.
func tokensFromRaw(texts []string, timestampsSec []float32) []Token {
	tokens := make([]Token, len(texts))
	for i, text := range texts {
		startMs := int64(timestampsSec[i] * 1000)
		var endMs int64
		if i+1 < len(timestampsSec) {
			endMs = int64(timestampsSec[i+1] * 1000)
		} else {
			endMs = startMs + tailEstimateMs
		}
		tokens[i] = Token{Text: text, StartMs: startMs, EndMs: endMs, Confidence: 1.0}
	}
	return tokens
}

// Result is the decoder's current best hypothesis plus its token list.
type Result struct {
	Text   string
	Tokens []Token
}
