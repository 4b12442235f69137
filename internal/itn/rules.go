package itn

import (
	"fmt"
	"strings"

	"github.com/deepinfan/vinput-core/internal/verrors"
)

// FormatCurrency renders amount with its currency symbol. Professional mode
// default: no thousands separator, no forced decimal places.
func FormatCurrency(amount, symbol string) string {
	return symbol + amount
}

// FormatCurrencyMillion renders a magnitude expression like "3.5 million
// USD" without expanding it to its full digit form.
func FormatCurrencyMillion(amount, unit, currency string) string {
	return amount + " " + unit + " " + currency
}

var supportedUnits = map[string]bool{
	"GB": true, "MB": true, "KB": true, "TB": true,
	"CPU": true,
	"Hz": true, "MHz": true, "GHz": true,
	"ms": true, "s": true,
	"%": true,
}

// IsSupportedUnit reports whether unit is a recognized measurement unit.
func IsSupportedUnit(unit string) bool { return supportedUnits[unit] }

// FormatUnit joins a number and its unit with a space.
func FormatUnit(number, unit string) string { return number + " " + unit }

var chinesePercentageNumbers = map[string]string{
	"十": "10", "二十": "20", "三十": "30", "四十": "40", "五十": "50",
	"六十": "60", "七十": "70", "八十": "80", "九十": "90",
	"一百": "100", "百": "100",
}

// ConvertChinesePercentage converts a "百分之X" expression into "X%". Only a
// fixed set of simple magnitudes is handled; any other number part is
// reported as an error.
func ConvertChinesePercentage(text string) (string, error) {
	const prefix = "百分之"
	if !strings.HasPrefix(text, prefix) {
		return "", verrors.ItnConversion(fmt.Errorf("not a valid percentage expression"))
	}
	numberPart := text[len(prefix):]
	number, ok := chinesePercentageNumbers[numberPart]
	if !ok {
		return "", verrors.ItnConversion(fmt.Errorf("unsupported percentage number: %s", numberPart))
	}
	return number + "%", nil
}

// FormatPercentage appends a percent sign to an already-converted number.
func FormatPercentage(number string) string { return number + "%" }

var chineseDateNumberChars = map[rune]bool{
	'零': true, '一': true, '二': true, '三': true, '四': true,
	'五': true, '六': true, '七': true, '八': true, '九': true,
	'十': true, '百': true, '千': true, '万': true, '亿': true,
}

var chineseDigitOnlyChars = map[rune]bool{
	'零': true, '一': true, '二': true, '三': true, '四': true,
	'五': true, '六': true, '七': true, '八': true, '九': true,
}

var chineseYearDigits = map[rune]byte{
	'零': '0', '一': '1', '二': '2', '三': '3', '四': '4',
	'五': '5', '六': '6', '七': '7', '八': '8', '九': '9',
}

// IsDateExpression reports whether text looks like a Chinese date (it
// contains any of 年/月/日/号).
func IsDateExpression(text string) bool {
	return strings.ContainsAny(text, "年月日号")
}

// ConvertChineseDate converts a spoken Chinese date like "二零二六年三月五号"
// into its digit form "2026年3月5日".
func ConvertChineseDate(text string) (string, error) {
	result := strings.ReplaceAll(text, "号", "日")
	result = convertDateComponent(result, '年', true)
	result = convertDateComponent(result, '月', false)
	result = convertDateComponent(result, '日', false)
	return result, nil
}

func convertDateComponent(text string, delimiter rune, isYear bool) string {
	runes := []rune(text)
	delimIdx := -1
	for i, c := range runes {
		if c == delimiter {
			delimIdx = i
			break
		}
	}
	if delimIdx < 0 {
		return text
	}

	start := delimIdx
	for start > 0 && chineseDateNumberChars[runes[start-1]] {
		start--
	}
	if start == delimIdx {
		return text
	}

	numberChars := string(runes[start:delimIdx])

	var converted string
	if isYear && isChineseDigitSequence(numberChars) {
		converted = convertYearDigits(numberChars)
	} else if c, err := ConvertChineseNumber(numberChars); err == nil {
		converted = c
	} else {
		converted = numberChars
	}

	before := string(runes[:start])
	after := string(runes[delimIdx:])
	return before + converted + after
}

func isChineseDigitSequence(text string) bool {
	for _, c := range text {
		if !chineseDigitOnlyChars[c] {
			return false
		}
	}
	return true
}

func convertYearDigits(text string) string {
	var b strings.Builder
	for _, c := range text {
		if d, ok := chineseYearDigits[c]; ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}
