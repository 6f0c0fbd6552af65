package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two words", input: "Mock Aashika", want: "MA"},
		{name: "empty", input: "", want: ""},
		{name: "single word", input: "plato", want: "P"},
		{name: "three words uses first two", input: "ana maria silva", want: "AM"},
		{name: "extra whitespace", input: "  leading  spaces ", want: "LS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly", Truncate("exactly", 7))
	assert.Equal(t, "long ...", Truncate("long string here", 8))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "🛒 Groc...", Truncate("🛒 Groceries and more", 10))
	assert.Equal(t, "🛒 Food", Truncate("🛒 Food", 10))
}
