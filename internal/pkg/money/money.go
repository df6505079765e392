// Package money normalizes the price and mileage strings typed into the
// admin forms. Everything is pt-BR: "." groups thousands, "," separates
// decimals, prices are BRL.
package money

import (
	"strconv"
	"strings"
)

// ParseCurrency reads a BRL amount out of free text: thousands dots are
// dropped, a decimal comma becomes a decimal point, anything else that is
// not a digit or point is discarded. Empty or unparseable input yields 0.
func ParseCurrency(input string) float64 {
	if input == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(input, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	var b strings.Builder
	for _, r := range cleaned {
		if r >= '0' && r <= '9' || r == '.' {
			b.WriteRune(r)
		}
	}

	return parseFloatPrefix(b.String())
}

// parseFloatPrefix parses the longest leading "digits[.digits]" run, so
// stray trailing separators never make the whole value unparseable.
func parseFloatPrefix(s string) float64 {
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatCurrency renders an amount as a canonical BRL display string,
// e.g. FormatCurrency(125000) == "R$ 125.000,00".
func FormatCurrency(amount float64) string {
	cents := int64(amount*100 + 0.5)
	if amount < 0 {
		cents = -int64(-amount*100 + 0.5)
	}

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	intPart := cents / 100
	frac := cents % 100
	return sign + "R$ " + groupThousands(intPart) + "," + pad2(frac)
}

// ParseMileage reads an integer mileage out of free text, ignoring every
// non-digit character. Empty or unparseable input yields 0.
func ParseMileage(input string) int {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return v
}

// FormatMileage renders a mileage as its canonical display string,
// e.g. FormatMileage(34500) == "34.500 KM".
func FormatMileage(amount int) string {
	return groupThousands(int64(amount)) + " KM"
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	first := len(s) % 3
	if first > 0 {
		b.WriteString(s[:first])
	}
	for i := first; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
