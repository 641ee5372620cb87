package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/jwt"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenDenylist reports tokens revoked by logout.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores its claims in the request context. denylist may be nil.
func AuthMiddleware(tokener Tokener, denylist TokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.Log.Errorw("failed to check token denylist", "token_id", claims.ID, "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					logger.Log.Infow("revoked token used", "token_id", claims.ID, "user_id", claims.UserID)
					writeError(w, http.StatusUnauthorized, "Token has been revoked")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(SetClaims(ctx, claims)))
		})
	}
}

type claimsKey struct{}

// SetClaims stores token claims in the context.
func SetClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext returns the claims stored by AuthMiddleware, or nil.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
