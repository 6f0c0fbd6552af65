package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "plain date",
			input: `"2025-04-09"`,
			want:  time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "naive timestamp",
			input: `"2025-04-09T13:45:00"`,
			want:  time.Date(2025, 4, 9, 13, 45, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: `"2025-04-09T13:45:00Z"`,
			want:  time.Date(2025, 4, 9, 13, 45, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"next tuesday"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next tuesday")
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2025, 4, 9, 18, 30, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-04-09"`, string(data))
}

func TestDate_RoundTripInExpense(t *testing.T) {
	e := Expense{Category: "Groceries", Amount: 120, Date: NewDate(time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC))}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2025-04-09"`)

	var back Expense
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, e.Date.String(), back.Date.String())
}
