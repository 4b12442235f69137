package itn

import (
	"strings"
	"unicode"
)

// ShouldSkipBlock reports whether block looks like a URL, file path,
// CamelCase/snake_case identifier, or all-caps acronym — contexts where ITN
// must not touch the text.
func ShouldSkipBlock(block Block) bool {
	content := block.Content
	return isURL(content) || isFilePath(content) || isCamelCase(content) ||
		isSnakeCase(content) || isAllCaps(content)
}

func isURL(text string) bool {
	return strings.HasPrefix(text, "http://") ||
		strings.HasPrefix(text, "https://") ||
		strings.HasPrefix(text, "ftp://") ||
		strings.HasPrefix(text, "www.") ||
		strings.Contains(text, "://")
}

func isFilePath(text string) bool {
	if strings.HasPrefix(text, "/") || strings.HasPrefix(text, "./") || strings.HasPrefix(text, "../") {
		return true
	}
	runes := []rune(text)
	if len(runes) >= 3 && runes[1] == ':' {
		return true
	}
	if strings.Contains(text, "/") && (strings.Count(text, "/") >= 2 || strings.Contains(text, ".")) {
		return true
	}
	return false
}

func isCamelCase(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	hasLower, hasUpper := false, false
	for _, c := range runes {
		if unicode.IsLower(c) {
			hasLower = true
		}
		if unicode.IsUpper(c) {
			hasUpper = true
		}
	}
	if !hasLower || !hasUpper {
		return false
	}
	for i := 0; i < len(runes)-1; i++ {
		if unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i+1]) {
			return true
		}
	}
	return false
}

func isSnakeCase(text string) bool {
	if !strings.Contains(text, "_") {
		return false
	}
	for _, c := range text {
		if !(unicode.IsLower(c) || c == '_' || unicode.IsDigit(c)) {
			return false
		}
	}
	return true
}

func isAllCaps(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	seenAlpha := false
	for _, c := range runes {
		if unicode.IsLetter(c) {
			seenAlpha = true
			if !unicode.IsUpper(c) {
				return false
			}
		}
	}
	return seenAlpha
}

var currencyKeywords = []string{
	"dollar", "dollars", "usd", "euro", "euros", "yuan", "rmb", "yen", "pounds",
	"人民币", "美元", "欧元", "日元", "英镑", "块钱", "元",
}

var forbiddenQuantifiers = []string{"个", "的", "块的", "件", "份", "次", "台", "张", "条"}

func currencySymbolFor(keyword string) string {
	switch keyword {
	case "dollar", "dollars", "usd", "美元":
		return "$"
	case "euro", "euros", "欧元":
		return "€"
	case "yuan", "rmb", "人民币", "元", "块钱":
		return "¥"
	case "yen", "日元":
		return "¥"
	case "pounds", "英镑":
		return "£"
	default:
		return ""
	}
}

// HasCurrencyKeyword reports whether text names a currency, returning the
// matching symbol (empty if none matched).
func HasCurrencyKeyword(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, kw := range currencyKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true, currencySymbolFor(kw)
		}
	}
	return false, ""
}

// HasForbiddenQuantifier reports whether text contains a colloquial
// quantifier (个/件/次/...) that rules out currency conversion, since spoken
// counts like "一百个" are not amounts of money.
func HasForbiddenQuantifier(text string) bool {
	for _, q := range forbiddenQuantifiers {
		if strings.Contains(text, q) {
			return true
		}
	}
	return false
}

// CanConvertToCurrency reports whether text may be converted to a currency
// amount: it must name a currency and must not contain a colloquial
// quantifier.
func CanConvertToCurrency(text string) (bool, string) {
	hasCurrency, symbol := HasCurrencyKeyword(text)
	if !hasCurrency {
		return false, ""
	}
	if HasForbiddenQuantifier(text) {
		return false, ""
	}
	return true, symbol
}
