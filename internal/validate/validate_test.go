package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple address", email: "user@example.com", want: true},
		{name: "subdomain", email: "a.b@mail.example.co", want: true},
		{name: "plus tag", email: "user+tag@example.com", want: true},
		{name: "missing at", email: "userexample.com", want: false},
		{name: "missing domain dot", email: "user@example", want: false},
		{name: "whitespace in local part", email: "us er@example.com", want: false},
		{name: "two at signs", email: "a@b@example.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.email))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "valid", password: "Abc123", want: ""},
		{name: "empty", password: "", want: "Please enter the password"},
		{name: "too short beats missing classes", password: "Ab1", want: "Password must be at least 6 characters long."},
		{name: "missing lowercase", password: "ABC123", want: "Password must contain at least one lowercase letter."},
		{name: "missing uppercase", password: "abc123", want: "Password must contain at least one uppercase letter."},
		{name: "missing digit", password: "Abcdef", want: "Password must contain at least one number."},
		{name: "longer valid", password: "CorrectHorse7", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Password(tt.password))
		})
	}
}
