package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=lookups.go -destination=lookups_mock.go -package=handlers

// RarityManager defines the rarity operations used by the rarity handlers.
type RarityManager interface {
	List(ctx context.Context) ([]models.Rarity, error)
	Get(ctx context.Context, id int64) (*models.Rarity, error)
	Create(ctx context.Context, name string) (*models.Rarity, error)
	Update(ctx context.Context, id int64, name string) (*models.Rarity, error)
	Delete(ctx context.Context, id int64) error
}

// ConditionManager defines the condition operations used by the condition handlers.
type ConditionManager interface {
	List(ctx context.Context) ([]models.Condition, error)
	Get(ctx context.Context, id int64) (*models.Condition, error)
	Create(ctx context.Context, name string) (*models.Condition, error)
	Update(ctx context.Context, id int64, name string) (*models.Condition, error)
	Delete(ctx context.Context, id int64) error
}

// StatusReader lists trade statuses.
type StatusReader interface {
	List(ctx context.Context) ([]models.Status, error)
	Get(ctx context.Context, id int64) (*models.Status, error)
}

var (
	rarityResource    = resource{Title: "Rarity", Key: "rarity"}
	conditionResource = resource{Title: "Condition", Key: "condition"}
)

// NewListRaritiesHandler returns an HTTP handler listing rarities.
// @Summary List rarities
// @Tags rarities
// @Produce json
// @Success 200 {array} models.Rarity
// @Router /rarities/ [get]
func NewListRaritiesHandler(svc RarityManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetRarityHandler returns an HTTP handler returning one rarity.
// @Summary Get rarity
// @Tags rarities
// @Produce json
// @Param id path int true "Rarity ID"
// @Success 200 {object} models.Rarity
// @Failure 404 {object} handlers.ErrorResponse
// @Router /rarities/{id} [get]
func NewGetRarityHandler(svc RarityManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateRarityHandler returns an HTTP handler adding a rarity.
// @Summary Add rarity
// @Tags rarities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rarity body models.RarityRequest true "Rarity"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} handlers.ErrorResponse "Rarity already exists"
// @Router /rarities/ [post]
func NewCreateRarityHandler(svc RarityManager) http.HandlerFunc {
	return createHandler(rarityResource, func(ctx context.Context, req models.RarityRequest) (*models.Rarity, error) {
		return svc.Create(ctx, req.RarityName)
	})
}

// NewUpdateRarityHandler returns an HTTP handler renaming a rarity.
// @Summary Rename rarity
// @Tags rarities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rarity ID"
// @Param rarity body models.RarityRequest true "Rarity"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.ErrorResponse
// @Router /rarities/{id} [put]
// @Router /rarities/{id} [patch]
func NewUpdateRarityHandler(svc RarityManager) http.HandlerFunc {
	return updateHandler(rarityResource, func(ctx context.Context, id int64, req models.RarityRequest) (*models.Rarity, error) {
		return svc.Update(ctx, id, req.RarityName)
	}, func(r *models.Rarity) string { return r.RarityName })
}

// NewDeleteRarityHandler returns an HTTP handler deleting a rarity. A rarity still used by a card gives 409.
// @Summary Delete rarity
// @Tags rarities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rarity ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /rarities/{id} [delete]
func NewDeleteRarityHandler(svc RarityManager) http.HandlerFunc {
	return deleteHandler(rarityResource, svc.Delete)
}

// NewListConditionsHandler returns an HTTP handler listing card conditions.
// @Summary List conditions
// @Tags conditions
// @Produce json
// @Success 200 {array} models.Condition
// @Router /conditions/ [get]
func NewListConditionsHandler(svc ConditionManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetConditionHandler returns an HTTP handler returning one card condition.
// @Summary Get condition
// @Tags conditions
// @Produce json
// @Param id path int true "Condition ID"
// @Success 200 {object} models.Condition
// @Failure 404 {object} handlers.ErrorResponse
// @Router /conditions/{id} [get]
func NewGetConditionHandler(svc ConditionManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateConditionHandler returns an HTTP handler adding a card condition.
// @Summary Add condition
// @Tags conditions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param condition body models.ConditionRequest true "Condition"
// @Success 201 {object} map[string]interface{}
// @Router /conditions/ [post]
func NewCreateConditionHandler(svc ConditionManager) http.HandlerFunc {
	return createHandler(conditionResource, func(ctx context.Context, req models.ConditionRequest) (*models.Condition, error) {
		return svc.Create(ctx, req.ConditionName)
	})
}

// NewUpdateConditionHandler returns an HTTP handler renaming a card condition.
// @Summary Rename condition
// @Tags conditions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condition ID"
// @Param condition body models.ConditionRequest true "Condition"
// @Success 200 {object} map[string]interface{}
// @Router /conditions/{id} [put]
// @Router /conditions/{id} [patch]
func NewUpdateConditionHandler(svc ConditionManager) http.HandlerFunc {
	return updateHandler(conditionResource, func(ctx context.Context, id int64, req models.ConditionRequest) (*models.Condition, error) {
		return svc.Update(ctx, id, req.ConditionName)
	}, func(c *models.Condition) string { return c.ConditionName })
}

// NewDeleteConditionHandler returns an HTTP handler deleting a card condition.
// @Summary Delete condition
// @Tags conditions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condition ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /conditions/{id} [delete]
func NewDeleteConditionHandler(svc ConditionManager) http.HandlerFunc {
	return deleteHandler(conditionResource, svc.Delete)
}

// NewListStatusesHandler returns an HTTP handler listing trade statuses.
// @Summary List trade statuses
// @Tags statuses
// @Produce json
// @Success 200 {array} models.Status
// @Router /statuses/ [get]
func NewListStatusesHandler(svc StatusReader) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetStatusHandler returns an HTTP handler returning one trade status.
// @Summary Get trade status
// @Tags statuses
// @Produce json
// @Param id path int true "Status ID"
// @Success 200 {object} models.Status
// @Failure 404 {object} handlers.ErrorResponse
// @Router /statuses/{id} [get]
func NewGetStatusHandler(svc StatusReader) http.HandlerFunc {
	return getHandler(svc.Get)
}
