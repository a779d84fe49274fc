package card

import (
	"strings"
	"unicode"
)

const (
	maxNumberLen     = 16
	maxNumberLenAmex = 15
	maxCVCLen        = 3
	maxCVCLenAmex    = 4
	maxExpiryLen     = 4
)

// DigitsOnly strips every character that is not a decimal digit. It never
// fails; garbage in, digits out.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Sanitize strips characters that are not safe to echo back into a
// document: everything outside letters, digits and hyphen goes, plus
// whitespace unless allowSpaces is set. This is the only line of defense
// against reflected markup from the card and postal fields.
func Sanitize(s string, allowSpaces bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
			b.WriteRune(r)
		case allowSpaces && unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber groups a card number for display: 4-4-4-4 for most brands,
// 4-6-5 for Amex. Digits beyond the brand's maximum are dropped silently.
// No validation happens here.
func FormatNumber(s string, isAmex bool) string {
	digits := DigitsOnly(s)
	if isAmex {
		return strings.Join(splitGroups(digits, maxNumberLenAmex, 4, 6, 5), " ")
	}
	return strings.Join(splitGroups(digits, maxNumberLen, 4, 4, 4, 4), " ")
}

func splitGroups(digits string, maxLen int, sizes ...int) []string {
	if len(digits) > maxLen {
		digits = digits[:maxLen]
	}
	var groups []string
	for _, size := range sizes {
		if digits == "" {
			break
		}
		if size > len(digits) {
			size = len(digits)
		}
		groups = append(groups, digits[:size])
		digits = digits[size:]
	}
	return groups
}

// FormatExpiry renders up to four digits as MM/YY; one or two digits come
// back unchanged so the user can keep typing.
func FormatExpiry(s string) string {
	digits := DigitsOnly(s)
	if len(digits) > maxExpiryLen {
		digits = digits[:maxExpiryLen]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVC truncates a security code to the brand's length.
func FormatCVC(s string, isAmex bool) string {
	digits := DigitsOnly(s)
	maxLen := maxCVCLen
	if isAmex {
		maxLen = maxCVCLenAmex
	}
	if len(digits) > maxLen {
		digits = digits[:maxLen]
	}
	return digits
}

// MaskNumber renders a number safe for logs and stored records: first six
// and last four digits kept, the middle replaced with asterisks. Numbers
// too short to mask meaningfully come back digits-only.
func MaskNumber(number string) string {
	digits := DigitsOnly(number)
	if len(digits) <= 10 {
		return digits
	}
	return digits[:6] + strings.Repeat("*", len(digits)-10) + digits[len(digits)-4:]
}
