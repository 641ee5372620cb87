package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=sets.go -destination=sets_mock.go -package=handlers

// SetManager defines the set operations used by the set handlers.
type SetManager interface {
	List(ctx context.Context) ([]models.Set, error)
	Get(ctx context.Context, id int64) (*models.Set, error)
	Create(ctx context.Context, req models.SetCreateRequest) (*models.Set, error)
	Update(ctx context.Context, id int64, req models.SetUpdateRequest) (*models.Set, error)
	Delete(ctx context.Context, id int64) error
}

var setResource = resource{Title: "Set", Key: "set"}

// NewListSetsHandler returns an HTTP handler listing card sets.
// @Summary List sets
// @Tags sets
// @Produce json
// @Success 200 {array} models.Set
// @Router /sets/ [get]
func NewListSetsHandler(svc SetManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetSetHandler returns an HTTP handler returning one card set.
// @Summary Get set
// @Tags sets
// @Produce json
// @Param id path int true "Set ID"
// @Success 200 {object} models.Set
// @Failure 404 {object} handlers.ErrorResponse
// @Router /sets/{id} [get]
func NewGetSetHandler(svc SetManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateSetHandler returns an HTTP handler adding a card set.
// @Summary Add set
// @Tags sets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param set body models.SetCreateRequest true "Set"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /sets/ [post]
func NewCreateSetHandler(svc SetManager) http.HandlerFunc {
	return createHandler(setResource, svc.Create)
}

// NewUpdateSetHandler returns an HTTP handler updating a card set.
// @Summary Update set
// @Tags sets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Param set body models.SetUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.ErrorResponse
// @Router /sets/{id} [put]
// @Router /sets/{id} [patch]
func NewUpdateSetHandler(svc SetManager) http.HandlerFunc {
	return updateHandler(setResource, svc.Update, func(s *models.Set) string { return s.SetName })
}

// NewDeleteSetHandler returns an HTTP handler deleting a card set.
// @Summary Delete set
// @Tags sets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Set still has cards"
// @Router /sets/{id} [delete]
func NewDeleteSetHandler(svc SetManager) http.HandlerFunc {
	return deleteHandler(setResource, svc.Delete)
}
