package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=middlewares

// AdminChecker reports whether a user holds the admin flag.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// AdminMiddleware lets only admins through. It must run after AuthMiddleware.
func AdminMiddleware(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims := GetClaimsFromContext(ctx)
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			isAdmin, err := checker.IsAdmin(ctx, claims.UserID)
			if err != nil && !errors.Is(err, services.ErrNotFound) {
				logger.Log.Errorw("failed to check admin flag", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !isAdmin {
				logger.Log.Infow("admin action denied", "user_id", claims.UserID, "method", r.Method, "uri", r.RequestURI)
				writeError(w, http.StatusForbidden, "Only admin can perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
