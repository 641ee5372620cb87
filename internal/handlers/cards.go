package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=cards.go -destination=cards_mock.go -package=handlers

// CardManager defines the card operations used by the card handlers.
type CardManager interface {
	List(ctx context.Context) ([]models.Card, error)
	Get(ctx context.Context, id int64) (*models.Card, error)
	Create(ctx context.Context, req models.CardCreateRequest) (*models.Card, error)
	Update(ctx context.Context, id int64, req models.CardUpdateRequest) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
}

var cardResource = resource{Title: "Card", Key: "card"}

// NewListCardsHandler returns an HTTP handler listing all cards.
// @Summary List cards
// @Description Returns every card with its rarity and set names
// @Tags cards
// @Produce json
// @Success 200 {array} models.Card
// @Failure 500 {object} handlers.ErrorResponse
// @Router /cards/ [get]
func NewListCardsHandler(svc CardManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetCardHandler returns an HTTP handler returning one card.
// @Summary Get card
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.Card
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Card with ID <id> does not exist"
// @Router /cards/{id} [get]
func NewGetCardHandler(svc CardManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateCardHandler returns an HTTP handler adding a card.
// @Summary Add card
// @Description Admin only. Rarity and set must exist.
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param card body models.CardCreateRequest true "Card"
// @Success 201 {object} map[string]interface{} "Card added successfully"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed / unknown rarity or set"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Only admin can perform this action"
// @Router /cards/ [post]
func NewCreateCardHandler(svc CardManager) http.HandlerFunc {
	return createHandler(cardResource, svc.Create)
}

// NewUpdateCardHandler returns an HTTP handler updating a card. Absent fields keep their value.
// @Summary Update card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Param card body models.CardUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Card '<name>' updated successfully"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /cards/{id} [put]
// @Router /cards/{id} [patch]
func NewUpdateCardHandler(svc CardManager) http.HandlerFunc {
	return updateHandler(cardResource, svc.Update, func(c *models.Card) string { return c.Name })
}

// NewDeleteCardHandler returns an HTTP handler deleting a card.
// @Summary Delete card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} handlers.MessageResponse "Card deleted successfully"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /cards/{id} [delete]
func NewDeleteCardHandler(svc CardManager) http.HandlerFunc {
	return deleteHandler(cardResource, svc.Delete)
}
