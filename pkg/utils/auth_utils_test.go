package utils

import (
	"strings"
	"testing"

	apperrors "smart-gmao/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, ComparePasswords(hash, "admin123"))
	assert.ErrorIs(t, ComparePasswords(hash, "admin124"), apperrors.ErrInvalidCredentials)

	err = ComparePasswords("not-a-bcrypt-hash", "admin123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestHashPassword_Policy(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{"слишком короткий", "abc12"},
		{"длиннее 72 байт", strings.Repeat("é", 40)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := HashPassword(tc.password)
			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "password", vErr.Field)
		})
	}
}
