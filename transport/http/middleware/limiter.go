package middleware

import (
	"net"
	"net/http"
	"strconv"

	"hotelier/config"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"
)

const cacheKeyRateLimit = "limiter"

type RateLimiter interface {
	Limit(next http.Handler) http.Handler
}

type rateLimiterImpl struct {
	config *config.Config
	cache  cache.RedisCache
}

func NewRateLimiter(config *config.Config, cache cache.RedisCache) RateLimiter {
	return &rateLimiterImpl{
		config: config,
		cache:  cache,
	}
}

// Limit applies a fixed window counter per client IP, backed by redis. The
// limiter fails open when redis is unavailable.
func (a *rateLimiterImpl) Limit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(request))

		// Increment expires the key only when it creates it, so the window
		// deadline stays fixed no matter how often the client retries.
		count, err := a.cache.Increment(request.Context(), cacheKey, windowSecs)
		if err != nil {
			next.ServeHTTP(writer, request)

			return
		}

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(writer)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-int(count))))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}

func clientIP(request *http.Request) string {
	if ip := request.Header.Get(constant.RequestHeaderRealIP); ip != constant.Empty {
		return ip
	}

	if ip := request.Header.Get(constant.RequestHeaderForwardedFor); ip != constant.Empty {
		return ip
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}
