package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name      string
		email     string
		expected  string
		expectErr bool
	}{
		{name: "valid", email: "a@x.com", expected: "a@x.com"},
		{name: "uppercase normalized", email: "Staff@Example.COM", expected: "staff@example.com"},
		{name: "surrounding whitespace", email: "  a@x.com ", expected: "a@x.com"},
		{name: "missing domain", email: "a@", expectErr: true},
		{name: "missing at", email: "ax.com", expectErr: true},
		{name: "empty", email: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateEmail(tc.email)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestValidateMobile(t *testing.T) {
	testCases := []struct {
		name      string
		mobile    string
		expected  string
		expectErr bool
	}{
		{name: "bare digits", mobile: "9990001111", expected: "9990001111"},
		{name: "with plus", mobile: "+919990001111", expected: "919990001111"},
		{name: "with separators", mobile: "999-000 1111", expected: "9990001111"},
		{name: "too short", mobile: "12345", expectErr: true},
		{name: "letters", mobile: "99900011ab", expectErr: true},
		{name: "empty", mobile: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateMobile(tc.mobile)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
