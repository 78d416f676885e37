package middleware

import (
	"fmt"
	"net/http"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
)

const otelHTTPScopeName = "http"

type App interface {
	Tracing(next http.Handler) http.Handler
}

type appImpl struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) App {
	return &appImpl{
		otel:   otel,
		config: config,
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Tracing opens a span around each request and records the basic HTTP
// attributes on it.
func (a *appImpl) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
		})

		sw := &statusWriter{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(sw, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": sw.status,
		})
	})
}
