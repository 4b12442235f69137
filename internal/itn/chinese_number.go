package itn

import (
	"fmt"
	"strings"

	"github.com/deepinfan/vinput-core/internal/verrors"
)

var chineseDigits = map[rune]int64{
	'零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var chineseDecimalDigits = map[rune]byte{
	'零': '0', '一': '1', '二': '2', '三': '3', '四': '4',
	'五': '5', '六': '6', '七': '7', '八': '8', '九': '9',
}

// ConvertChineseNumber converts a spoken Chinese numeral expression (e.g.
// "一千二百三十四") into its digit-string form (e.g. "1234").
func ConvertChineseNumber(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	isNegative := false
	if strings.HasPrefix(text, "负") {
		isNegative = true
		text = text[len("负"):]
	}

	if dotIdx := strings.Index(text, "点"); dotIdx >= 0 {
		integerPart := text[:dotIdx]
		decimalPart := text[dotIdx+len("点"):]

		hasDigitBefore := false
		for _, c := range integerPart {
			if _, ok := chineseDigits[c]; ok {
				hasDigitBefore = true
				break
			}
			if c == '十' || c == '百' || c == '千' || c == '万' || c == '亿' {
				hasDigitBefore = true
				break
			}
		}

		hasDigitAfter := false
		if decimalPart != "" {
			first := []rune(decimalPart)[0]
			if _, ok := chineseDigits[first]; ok {
				hasDigitAfter = true
			}
		}

		if hasDigitBefore && hasDigitAfter {
			var integer int64
			var err error
			if integerPart != "" {
				integer, err = parseChineseInteger(integerPart)
				if err != nil {
					return "", err
				}
			}
			decimal, err := parseChineseDecimal(decimalPart)
			if err != nil {
				return "", err
			}
			if isNegative {
				return fmt.Sprintf("-%d.%s", integer, decimal), nil
			}
			return fmt.Sprintf("%d.%s", integer, decimal), nil
		}
	}

	integer, err := parseChineseInteger(text)
	if err != nil {
		return "", err
	}
	if isNegative {
		return fmt.Sprintf("-%d", integer), nil
	}
	return fmt.Sprintf("%d", integer), nil
}

func parseChineseInteger(text string) (int64, error) {
	if text == "" {
		return 0, nil
	}
	if text == "零" {
		return 0, nil
	}

	var result, current int64
	for _, ch := range text {
		switch ch {
		case '零':
			continue
		case '一', '二', '三', '四', '五', '六', '七', '八', '九':
			current = chineseDigits[ch]
		case '十':
			if current == 0 {
				current = 1
			}
			current *= 10
			result += current
			current = 0
		case '百':
			if current == 0 {
				return 0, verrors.ItnConversion(fmt.Errorf("invalid expression: 百 without number"))
			}
			current *= 100
			result += current
			current = 0
		case '千':
			if current == 0 {
				return 0, verrors.ItnConversion(fmt.Errorf("invalid expression: 千 without number"))
			}
			current *= 1000
			result += current
			current = 0
		case '万':
			if current > 0 {
				result += current
			}
			result *= 10000
			current = 0
		case '亿':
			if current > 0 {
				result += current
			}
			result *= 100000000
			current = 0
		default:
			return 0, verrors.ItnConversion(fmt.Errorf("invalid character in Chinese number: %c", ch))
		}
	}
	result += current
	return result, nil
}

func parseChineseDecimal(text string) (string, error) {
	var b strings.Builder
	for _, ch := range text {
		digit, ok := chineseDecimalDigits[ch]
		if !ok {
			return "", verrors.ItnConversion(fmt.Errorf("invalid character in decimal part: %c", ch))
		}
		b.WriteByte(digit)
	}
	return b.String(), nil
}

// IsChineseNumber reports whether text consists solely of recognized
// Chinese-numeral characters.
func IsChineseNumber(text string) bool {
	if text == "" {
		return false
	}
	for _, ch := range text {
		if !chineseNumberChars[ch] {
			return false
		}
	}
	return true
}
