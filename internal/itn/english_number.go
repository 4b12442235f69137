package itn

import (
	"fmt"
	"strings"

	"github.com/deepinfan/vinput-core/internal/verrors"
)

var englishBaseWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var englishDecimalDigits = map[string]byte{
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
}

var englishValidWords = map[string]bool{
	"zero": true, "one": true, "two": true, "three": true, "four": true,
	"five": true, "six": true, "seven": true, "eight": true, "nine": true,
	"ten": true, "eleven": true, "twelve": true, "thirteen": true, "fourteen": true,
	"fifteen": true, "sixteen": true, "seventeen": true, "eighteen": true, "nineteen": true,
	"twenty": true, "thirty": true, "forty": true, "fifty": true,
	"sixty": true, "seventy": true, "eighty": true, "ninety": true,
	"hundred": true, "thousand": true, "million": true, "billion": true,
	"point": true, "and": true,
}

// ConvertEnglishNumber converts a spoken English numeral expression (e.g.
// "one thousand two hundred thirty four") into its digit-string form.
func ConvertEnglishNumber(text string) (string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", nil
	}

	pointIdx := -1
	for i, w := range words {
		if strings.ToLower(w) == "point" {
			pointIdx = i
			break
		}
	}

	if pointIdx >= 0 {
		integerPart := words[:pointIdx]
		decimalPart := words[pointIdx+1:]

		var integer int64
		var err error
		if len(integerPart) > 0 {
			integer, err = parseEnglishInteger(integerPart)
			if err != nil {
				return "", err
			}
		}
		decimal, err := parseEnglishDecimal(decimalPart)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d.%s", integer, decimal), nil
	}

	integer, err := parseEnglishInteger(words)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", integer), nil
}

func parseEnglishInteger(words []string) (int64, error) {
	var result, current int64
	for _, word := range words {
		lower := strings.ToLower(word)
		if n, ok := englishBaseWords[lower]; ok {
			current += n
			continue
		}
		switch lower {
		case "hundred":
			if current == 0 {
				return 0, verrors.ItnConversion(fmt.Errorf("invalid expression: hundred without number"))
			}
			current *= 100
		case "thousand":
			if current == 0 {
				current = 1
			}
			result += current * 1000
			current = 0
		case "million":
			if current == 0 {
				current = 1
			}
			result += current * 1_000_000
			current = 0
		case "billion":
			if current == 0 {
				current = 1
			}
			result += current * 1_000_000_000
			current = 0
		case "and":
			continue
		default:
			return 0, verrors.ItnConversion(fmt.Errorf("invalid English number word: %s", word))
		}
	}
	result += current
	return result, nil
}

func parseEnglishDecimal(words []string) (string, error) {
	var b strings.Builder
	for _, word := range words {
		digit, ok := englishDecimalDigits[strings.ToLower(word)]
		if !ok {
			return "", verrors.ItnConversion(fmt.Errorf("invalid digit in decimal part: %s", word))
		}
		b.WriteByte(digit)
	}
	return b.String(), nil
}

// IsEnglishNumber reports whether text is entirely composed of recognized
// English number words.
func IsEnglishNumber(text string) bool {
	for _, word := range strings.Fields(text) {
		if !englishValidWords[strings.ToLower(word)] {
			return false
		}
	}
	return true
}
