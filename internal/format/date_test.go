package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "ninth", date: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), want: "9th Apr"},
		{name: "first", date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: "1st Jan"},
		{name: "second", date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), want: "2nd Jun"},
		{name: "third", date: time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC), want: "3rd Dec"},
		{name: "eleventh is th", date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), want: "11th Mar"},
		{name: "twelfth is th", date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), want: "12th Mar"},
		{name: "thirteenth is th", date: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), want: "13th Mar"},
		{name: "twenty-first", date: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC), want: "21st Aug"},
		{name: "twenty-second", date: time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC), want: "22nd Aug"},
		{name: "thirty-first", date: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), want: "31st Oct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayMonth(tt.date))
		})
	}
}
