package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/admin/model"
	"hotelier/internal/domains/admin/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

type Admin interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	identity   *model.Identity
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(identity *model.Identity, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Admin {
	return &serviceImpl{
		identity:   identity,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.identity.Login(req.Username, req.Password) {
		log.Warn().Str("username", req.Username).Msg("admin login attempt with wrong credentials")

		return res, failure.Unauthorized("invalid username or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(s.identity.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(s.identity.Name, s.identity.Role, tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
