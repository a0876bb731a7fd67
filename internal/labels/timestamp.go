package labels

import (
	"fmt"
	"time"
)

// KST is Korea Standard Time. Korea has no daylight saving.
var KST = time.FixedZone("KST", 9*60*60)

// Timestamp renders t the way Korean locales print a date-time:
// "2025. 1. 5. 오후 3:04:05".
func Timestamp(t time.Time) string {
	t = t.In(KST)
	meridiem := "오전"
	if t.Hour() >= 12 {
		meridiem = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), meridiem, hour, t.Minute(), t.Second())
}
