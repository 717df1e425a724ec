package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"leavn/pkg/auth"
	"leavn/pkg/common"
)

// AuthOptions configures the authentication middleware.
type AuthOptions struct {
	// Validator checks bearer tokens. May be nil when AllowAnonymous is set.
	Validator *auth.JWTValidator
	// AllowAnonymous admits requests without a token as the anonymous user.
	// Set in development so the app works before sign-in is wired up.
	AllowAnonymous bool
	// Limiter throttles requests per client IP. Optional.
	Limiter auth.RateLimiter
	Logger  *zap.Logger
}

// Authenticate attaches the user identity from a bearer token to the
// request context.
func Authenticate(opts AuthOptions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if opts.Limiter != nil {
				allowed, err := opts.Limiter.Allow(r.Context(), clientIP(r))
				if err == nil && !allowed {
					common.RespondError(w, http.StatusTooManyRequests,
						common.StandardErrorCodes.TooManyRequests, "rate limit exceeded")
					return
				}
			}

			token := extractToken(r)
			if token == "" {
				if opts.AllowAnonymous {
					ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{UserID: auth.AnonymousUserID})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "missing authentication token")
				return
			}

			if opts.Validator == nil {
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "authentication not configured")
				return
			}

			claims, err := opts.Validator.ValidateToken(token)
			if err != nil {
				if opts.Logger != nil {
					opts.Logger.Warn("rejected token",
						zap.Error(err), zap.String("path", r.URL.Path))
				}
				message := "invalid token"
				if err == auth.ErrExpiredToken {
					message = "token has expired"
				}
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, message)
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// clientIP extracts the client IP address
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
