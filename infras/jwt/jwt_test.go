package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/config"
	"hotelier/infras/jwt"
)

func testService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hotelier"
	cfg.JWT.AccessSecret = "test_access_secret"
	cfg.JWT.RefreshSecret = "test_refresh_secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.JWT.RefreshExpireMin = 1440

	return jwt.New(cfg)
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
}

func TestValidateToken_RejectsWrongType(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin", "admin")
	require.NoError(t, err)

	// a refresh token is not valid where an access token is expected
	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := testService()

	_, err := svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin", "admin")
	require.NoError(t, err)

	renewed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)

	claims, err := svc.ValidateToken(renewed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing bearer prefix", header: "Basic abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
