package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=trades.go -destination=trades_mock.go -package=handlers

// TradeManager defines the trade operations used by the trade handlers.
type TradeManager interface {
	List(ctx context.Context) ([]models.Trade, error)
	Get(ctx context.Context, id int64) (*models.Trade, error)
	Create(ctx context.Context, req models.TradeCreateRequest) (*models.Trade, error)
	Update(ctx context.Context, id int64, req models.TradeUpdateRequest) (*models.Trade, error)
	Delete(ctx context.Context, id int64) error
}

var tradeResource = resource{Title: "Trade", Key: "trade"}

// NewListTradesHandler returns an HTTP handler listing trades.
// @Summary List trades
// @Tags trades
// @Produce json
// @Success 200 {array} models.Trade
// @Router /trades/ [get]
func NewListTradesHandler(svc TradeManager) http.HandlerFunc {
	return listHandler(svc.List)
}

// NewGetTradeHandler returns an HTTP handler returning one trade.
// @Summary Get trade
// @Tags trades
// @Produce json
// @Param id path int true "Trade ID"
// @Success 200 {object} models.Trade
// @Failure 404 {object} handlers.ErrorResponse
// @Router /trades/{id} [get]
func NewGetTradeHandler(svc TradeManager) http.HandlerFunc {
	return getHandler(svc.Get)
}

// NewCreateTradeHandler proposes a trade. Quantities default to 1 and the status to Pending.
// @Summary Propose trade
// @Tags trades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trade body models.TradeCreateRequest true "Trade"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /trades/ [post]
func NewCreateTradeHandler(svc TradeManager) http.HandlerFunc {
	return createHandler(tradeResource, svc.Create)
}

// NewUpdateTradeHandler changes a trade. Any status may follow any other.
// @Summary Update trade
// @Tags trades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trade ID"
// @Param trade body models.TradeUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} handlers.ErrorResponse
// @Router /trades/{id} [put]
// @Router /trades/{id} [patch]
func NewUpdateTradeHandler(svc TradeManager) http.HandlerFunc {
	return updateHandler(tradeResource, svc.Update, noLabel[models.Trade])
}

// NewDeleteTradeHandler returns an HTTP handler deleting a trade.
// @Summary Delete trade
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trade ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /trades/{id} [delete]
func NewDeleteTradeHandler(svc TradeManager) http.HandlerFunc {
	return deleteHandler(tradeResource, svc.Delete)
}
