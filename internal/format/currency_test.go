package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		amount float64
	}{
		{name: "zero", amount: 0, want: "Rs. 0.00"},
		{name: "under a thousand", amount: 123, want: "Rs. 123.00"},
		{name: "four digits", amount: 1234, want: "Rs. 1,234.00"},
		{name: "five digits", amount: 12345, want: "Rs. 12,345.00"},
		{name: "lakh", amount: 123456, want: "Rs. 1,23,456.00"},
		{name: "lakhs with fraction", amount: 1234567.5, want: "Rs. 12,34,567.50"},
		{name: "crore", amount: 12345678, want: "Rs. 1,23,45,678.00"},
		{name: "rounds to two places", amount: 99.999, want: "Rs. 100.00"},
		{name: "fraction only", amount: 0.5, want: "Rs. 0.50"},
		{name: "negative", amount: -1234.5, want: "Rs. -1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"100000", "1,00,000"},
		{"10000000", "1,00,00,000"},
		{"1234567890", "1,23,45,67,890"},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, groupIndian(tt.digits))
		})
	}
}
