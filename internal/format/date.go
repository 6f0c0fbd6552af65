package format

import (
	"fmt"
	"time"
)

// DayMonth renders a date as ordinal day plus abbreviated month ("9th Apr").
// Every chart and list label goes through this one function so date display
// stays uniform across the whole CLI.
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%d%s %s", t.Day(), ordinalSuffix(t.Day()), t.Format("Jan"))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
