package model

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseAmount parses an amount written as a plain number, optionally with
// comma grouping and a trailing "원" ("1,000,000원"). Anything else, such
// as "1.5억", "-500" or "약 300만원", gives ok=false so callers keep the
// text as typed.
func ParseAmount(text string) (amount int64, ok bool) {
	t := strings.TrimSpace(text)
	t = strings.TrimSpace(strings.TrimSuffix(t, "원"))
	if t == "" || t[0] == ',' || t[len(t)-1] == ',' {
		return 0, false
	}
	var b strings.Builder
	for _, r := range t {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',':
		default:
			return 0, false
		}
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatAmount renders the amount with grouped digits. Text without any
// digit is returned trimmed but otherwise untouched.
func FormatAmount(text string) string {
	n, ok := ParseAmount(text)
	if !ok {
		return strings.TrimSpace(text)
	}
	return humanize.Comma(n)
}
