package decoder

import (
	"regexp"
	"strings"
)

const normalizedPhoneLength = 11

var nonDigitPattern = regexp.MustCompile(`[^0-9]`)

// NormalizePhone converts raw phone text into 11 digits starting with 7.
// Extension suffixes must be removed by the caller.
// It returns false when phone can't be normalized.
func NormalizePhone(raw string) (string, bool) {
	phone := nonDigitPattern.ReplaceAllString(raw, "")

	switch {
	case strings.HasPrefix(phone, "8") && len(phone) == normalizedPhoneLength:
		phone = "7" + phone[1:]
	case strings.HasPrefix(phone, "9") && len(phone) == normalizedPhoneLength-1:
		phone = "7" + phone
	}

	if len(phone) != normalizedPhoneLength || phone[0] != '7' {
		return "", false
	}

	return phone, true
}
