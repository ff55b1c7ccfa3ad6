package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Regexp(t, `^[0-9]+$`, code)

	code, err = GenerateOTP(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestLegacyUUID_StablePerTable(t *testing.T) {
	assert.Equal(t, LegacyUUID("titles", "1"), LegacyUUID("titles", "1"))
	assert.NotEqual(t, LegacyUUID("titles", "1"), LegacyUUID("genres", "1"))
	assert.NotEqual(t, LegacyUUID("titles", "1"), LegacyUUID("titles", "2"))
}

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("123456")
	require.NoError(t, err)

	assert.True(t, CheckSecretHash("123456", hash))
	assert.False(t, CheckSecretHash("654321", hash))
}
