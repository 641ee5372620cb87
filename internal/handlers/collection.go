package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=collection.go -destination=collection_mock.go -package=handlers

// UserCardManager defines the user card operations used by the handlers.
type UserCardManager interface {
	List(ctx context.Context) ([]models.UserCard, error)
	Get(ctx context.Context, id int64) (*models.UserCard, error)
	Create(ctx context.Context, req models.UserCardCreateRequest) (*models.UserCard, error)
	Update(ctx context.Context, id int64, req models.UserCardUpdateRequest) (*models.UserCard, error)
	Delete(ctx context.Context, id int64) error
}

// WishlistManager defines the wishlist operations used by the handlers.
type WishlistManager interface {
	List(ctx context.Context) ([]models.Wishlist, error)
	Get(ctx context.Context, id int64) (*models.Wishlist, error)
	Create(ctx context.Context, req models.WishlistCreateRequest) (*models.Wishlist, error)
	Update(ctx context.Context, id int64, req models.WishlistUpdateRequest) (*models.Wishlist, error)
	Delete(ctx context.Context, id int64) error
}

var (
	userCardResource = resource{Title: "User card", Key: "user_card"}
	wishlistResource = resource{Title: "Wishlist", Key: "wishlist"}
)

func noLabel[T any](*T) string { return "" }

// NewListUserCardsHandler returns an HTTP handler listing collection entries.
// @Summary List user cards
// @Tags user-cards
// @Produce json
// @Success 200 {array} models.UserCard
// @Router /user-cards/ [get]
func NewListUserCardsHandler(svc UserCardManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetUserCardHandler returns an HTTP handler returning one collection entry.
// @Summary Get user card
// @Tags user-cards
// @Produce json
// @Param id path int true "User card ID"
// @Success 200 {object} models.UserCard
// @Failure 404 {object} handlers.ErrorResponse
// @Router /user-cards/{id} [get]
func NewGetUserCardHandler(svc UserCardManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateUserCardHandler returns an HTTP handler adding a card to a user's collection.
// @Summary Add card copy to a collection
// @Tags user-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_card body models.UserCardCreateRequest true "User card"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} handlers.ErrorResponse "Unknown user, card or condition"
// @Router /user-cards/ [post]
func NewCreateUserCardHandler(svc UserCardManager) http.HandlerFunc {
	return createHandler(userCardResource, svc.Create)
}

// NewUpdateUserCardHandler returns an HTTP handler updating a collection entry.
// @Summary Update user card
// @Tags user-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User card ID"
// @Param user_card body models.UserCardUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Router /user-cards/{id} [put]
// @Router /user-cards/{id} [patch]
func NewUpdateUserCardHandler(svc UserCardManager) http.HandlerFunc {
	return updateHandler(userCardResource, svc.Update, noLabel[models.UserCard])
}

// NewDeleteUserCardHandler returns an HTTP handler removing a collection entry.
// @Summary Delete user card
// @Tags user-cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "User card ID"
// @Success 200 {object} handlers.MessageResponse
// @Router /user-cards/{id} [delete]
func NewDeleteUserCardHandler(svc UserCardManager) http.HandlerFunc {
	return deleteHandler(userCardResource, svc.Delete)
}

// NewListWishlistsHandler returns an HTTP handler listing wishlist entries.
// @Summary List wishlist entries
// @Tags wishlists
// @Produce json
// @Success 200 {array} models.Wishlist
// @Router /wishlists/ [get]
func NewListWishlistsHandler(svc WishlistManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetWishlistHandler returns an HTTP handler returning one wishlist entry.
// @Summary Get wishlist entry
// @Tags wishlists
// @Produce json
// @Param id path int true "Wishlist ID"
// @Success 200 {object} models.Wishlist
// @Failure 404 {object} handlers.ErrorResponse
// @Router /wishlists/{id} [get]
func NewGetWishlistHandler(svc WishlistManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateWishlistHandler returns an HTTP handler adding a card to a user's wishlist.
// @Summary Add wishlist entry
// @Tags wishlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param wishlist body models.WishlistCreateRequest true "Wishlist entry"
// @Success 201 {object} map[string]interface{}
// @Router /wishlists/ [post]
func NewCreateWishlistHandler(svc WishlistManager) http.HandlerFunc {
	return createHandler(wishlistResource, svc.Create)
}

// NewUpdateWishlistHandler returns an HTTP handler updating a wishlist entry.
// @Summary Update wishlist entry
// @Tags wishlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wishlist ID"
// @Param wishlist body models.WishlistUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Router /wishlists/{id} [put]
// @Router /wishlists/{id} [patch]
func NewUpdateWishlistHandler(svc WishlistManager) http.HandlerFunc {
	return updateHandler(wishlistResource, svc.Update, noLabel[models.Wishlist])
}

// NewDeleteWishlistHandler returns an HTTP handler removing a wishlist entry.
// @Summary Delete wishlist entry
// @Tags wishlists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wishlist ID"
// @Success 200 {object} handlers.MessageResponse
// @Router /wishlists/{id} [delete]
func NewDeleteWishlistHandler(svc WishlistManager) http.HandlerFunc {
	return deleteHandler(wishlistResource, svc.Delete)
}
