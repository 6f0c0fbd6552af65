package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AlertStatus
	}{
		{name: "exceeded", in: `"EXCEEDED"`, want: AlertExceeded},
		{name: "warning", in: `"WARNING"`, want: AlertWarning},
		{name: "near limit maps to warning", in: `"NEAR_LIMIT"`, want: AlertWarning},
		{name: "unknown passes through", in: `"SOMETHING_ELSE"`, want: AlertStatus("SOMETHING_ELSE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AlertStatus
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBudgetAlert_DecodeNearLimit(t *testing.T) {
	var alert BudgetAlert
	require.NoError(t, json.Unmarshal([]byte(
		`{"category": "Groceries", "icon": "🛒", "budget": 500, "spent": 420, "status": "NEAR_LIMIT"}`,
	), &alert))

	assert.Equal(t, AlertWarning, alert.Status)
	assert.Equal(t, "Groceries", alert.Category)
	assert.InDelta(t, 420.0, alert.Spent, 0.001)
}
