package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Regexp(t, `^[0-9]{6}$`, code)
}

func TestGenerateNumericCode_Lengths(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := GenerateNumericCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestGenerateNumericCode_InvalidLength(t *testing.T) {
	_, err := GenerateNumericCode(0)
	assert.Error(t, err)

	_, err = GenerateNumericCode(-3)
	assert.Error(t, err)
}
