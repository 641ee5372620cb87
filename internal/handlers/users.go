package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserManager defines the user operations used by the user handlers.
type UserManager interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.UserDetail, error)
	Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req models.UserUpdateRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

var userResource = resource{Title: "User", Key: "user"}

// NewListUsersHandler returns an HTTP handler listing users. Password hashes are never serialized.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users/ [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetUserHandler returns the user with nested user_cards, trades_offered,
// trades_received and wishlists.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDetail
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create user
// @Description Admin only. Unlike registration it can grant the admin flag.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserCreateRequest true "User"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /users/ [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return createHandler(userResource, svc.Create)
}

// NewUpdateUserHandler returns an HTTP handler updating a user. Absent fields keep their value.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body models.UserUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /users/{id} [put]
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return updateHandler(userResource, svc.Update, func(u *models.User) string { return u.Username })
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete user
// @Description Removes the user with its card copies, wishlist entries and trades.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return deleteHandler(userResource, svc.Delete)
}
