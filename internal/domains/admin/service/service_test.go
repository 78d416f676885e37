package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/jwt"
	jwtMocks "hotelier/infras/jwt/mocks"
	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/admin/model"
	"hotelier/internal/domains/admin/model/dto"
	"hotelier/internal/domains/admin/service"
	"hotelier/shared/constant"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Name = "Admin"
	cfg.Admin.Role = "Manager"
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "1234"

	return cfg
}

func TestIdentity_Login(t *testing.T) {
	identity := model.NewIdentity(testConfig())

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "correct credentials", username: "admin", password: "1234", want: true},
		{name: "wrong password", username: "admin", password: "12345", want: false},
		{name: "wrong username", username: "root", password: "1234", want: false},
		{name: "case sensitive username", username: "Admin", password: "1234", want: false},
		{name: "empty credentials", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.Login(tt.username, tt.password))
		})
	}
}

func TestAdminService_Login(t *testing.T) {
	t.Run("issues a token pair for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cfg := testConfig()
		mockJWT := jwtMocks.NewMockJWT(ctrl)
		svc := service.New(model.NewIdentity(cfg), cfg, otelMocks.NewOtel(), mockJWT)

		mockJWT.EXPECT().
			GenerateTokenPair("admin", constant.RoleAdmin).
			Return(&jwt.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    900,
			}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "1234"})

		require.NoError(t, err)
		assert.Equal(t, "Admin", res.Name)
		assert.Equal(t, "Manager", res.Role)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
	})

	t.Run("rejects wrong credentials without issuing tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cfg := testConfig()
		mockJWT := jwtMocks.NewMockJWT(ctrl)
		svc := service.New(model.NewIdentity(cfg), cfg, otelMocks.NewOtel(), mockJWT)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})

		assert.Error(t, err)
	})

	t.Run("propagates token generation failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cfg := testConfig()
		mockJWT := jwtMocks.NewMockJWT(ctrl)
		svc := service.New(model.NewIdentity(cfg), cfg, otelMocks.NewOtel(), mockJWT)

		mockJWT.EXPECT().
			GenerateTokenPair("admin", constant.RoleAdmin).
			Return(nil, errors.New("signing error"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "1234"})

		assert.Error(t, err)
	})
}

func TestAdminService_RefreshToken(t *testing.T) {
	t.Run("exchanges a valid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cfg := testConfig()
		mockJWT := jwtMocks.NewMockJWT(ctrl)
		svc := service.New(model.NewIdentity(cfg), cfg, otelMocks.NewOtel(), mockJWT)

		mockJWT.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("rejects an invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cfg := testConfig()
		mockJWT := jwtMocks.NewMockJWT(ctrl)
		svc := service.New(model.NewIdentity(cfg), cfg, otelMocks.NewOtel(), mockJWT)

		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("token is expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
	})
}
