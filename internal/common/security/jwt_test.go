package security

import (
	"errors"
	"testing"
	"time"

	"fitastic/internal/common"
	"fitastic/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
	InitJWT()
}

func TestGenerateAndExtractSubject(t *testing.T) {
	setupJWT(t)

	access, err := GenerateAccessToken("alice")
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken("alice")
	require.NoError(t, err)

	for _, raw := range []string{access, refresh} {
		subject, err := ExtractSubject(raw)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	}
}

func TestTokensIssuedTogetherDiffer(t *testing.T) {
	setupJWT(t)

	first, err := GenerateAccessToken("alice")
	require.NoError(t, err)
	second, err := GenerateAccessToken("alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExtractSubjectRejectsGarbage(t *testing.T) {
	setupJWT(t)

	_, err := ExtractSubject("not-a-jwt")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestExtractSubjectRejectsExpired(t *testing.T) {
	setupJWT(t)
	config.AppConfig.AccessTokenTTL = -time.Minute

	raw, err := GenerateAccessToken("alice")
	require.NoError(t, err)

	_, err = ExtractSubject(raw)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestExtractSubjectRejectsWrongKey(t *testing.T) {
	setupJWT(t)

	raw, err := GenerateAccessToken("alice")
	require.NoError(t, err)

	config.AppConfig.JWTKey = []byte("another-secret")
	InitJWT()

	_, err = ExtractSubject(raw)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer ", "", false},
		{"bearer abc", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := BearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.want, got, "header %q", tc.header)
	}
}
