package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var phoneRe = regexp.MustCompile(`^\d{10,15}$`)

// NormalizePhone strips every non-digit rune and converts localized digits
// (e.g. Persian/Arabic numerals) to ASCII.
func NormalizePhone(value string) string {
	if value == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if !unicode.IsDigit(r) {
			continue
		}
		b.WriteByte(byte('0' + digitValue(r)))
	}
	return b.String()
}

// ValidPhone reports whether a normalized phone has 10-15 digits.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// digitValue returns the numeric value of a decimal digit rune.
// Unicode guarantees decimal digits appear in contiguous 0-9 runs, so the
// value is the offset from the block's zero rune.
func digitValue(r rune) int {
	zero := r
	for zero > r-9 && unicode.IsDigit(zero-1) {
		zero--
	}
	return int(r - zero)
}
