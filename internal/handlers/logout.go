package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter revokes an access token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler revoking the caller's token. It
// must run behind the auth middleware.
// @Summary User logout
// @Description Revokes the bearer token until it expires
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Logged out successfully"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil || claims.ExpiresAt == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		if err := svc.Logout(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, internalError)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
