package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
)

// Auth guards the admin surface. Every guarded request must carry a bearer
// access token with the admin role.
type Auth interface {
	AdminOnly(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

func (m *authImpl) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("missing or malformed authorization header")

			response.WithError(writer, failure.Unauthorized("missing or malformed authorization header"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("invalid access token")

			response.WithError(writer, failure.Unauthorized("invalid or expired token"))

			return
		}

		if claims.Role != constant.RoleAdmin {
			log.Warn().Str("username", claims.Username).Msg("non-admin token on admin endpoint")

			response.WithError(writer, failure.Forbidden("admin access required"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyAdminUser, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
