package form

import "strings"

const maxPhoneDigits = 11

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone keeps only digits, truncates to 11 of them and groups them
// 3-4-4: "010 1234 5678" -> "010-1234-5678", "0101234" -> "010-1234".
func FormatPhone(raw string) string {
	digits := extractDigits(raw)
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 7:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	}
}
