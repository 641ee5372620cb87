package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

const tradeSelect = `
	SELECT t.id, t.offering_user_id, t.receiving_user_id,
	       t.offering_card_id, t.receiving_card_id,
	       t.offering_quantity, t.receiving_quantity,
	       t.status_id, s.status_name
	FROM trades t
	JOIN statuses s ON s.id = t.status_id
`

// TradeRepository stores trade proposals.
type TradeRepository struct {
	baseRepository
}

func NewTradeRepository(db *sqlx.DB, txGetter TxGetter) *TradeRepository {
	return &TradeRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *TradeRepository) List(ctx context.Context) ([]models.Trade, error) {
	trades := []models.Trade{}
	err := r.selectAll(ctx, &trades, tradeSelect+` ORDER BY t.id`)
	return trades, err
}

// ListOfferedBy returns trades proposed by the user.
func (r *TradeRepository) ListOfferedBy(ctx context.Context, userID int64) ([]models.Trade, error) {
	trades := []models.Trade{}
	err := r.selectAll(ctx, &trades, tradeSelect+` WHERE t.offering_user_id = $1 ORDER BY t.id`, userID)
	return trades, err
}

// ListReceivedBy returns trades proposed to the user.
func (r *TradeRepository) ListReceivedBy(ctx context.Context, userID int64) ([]models.Trade, error) {
	trades := []models.Trade{}
	err := r.selectAll(ctx, &trades, tradeSelect+` WHERE t.receiving_user_id = $1 ORDER BY t.id`, userID)
	return trades, err
}

func (r *TradeRepository) GetByID(ctx context.Context, id int64) (*models.Trade, error) {
	var trade models.Trade
	if err := r.get(ctx, &trade, tradeSelect+` WHERE t.id = $1`, id); err != nil {
		return nil, err
	}
	return &trade, nil
}

// Create inserts a trade. The caller resolves defaults for quantities and status.
func (r *TradeRepository) Create(ctx context.Context, t models.Trade) (int64, error) {
	const query = `
		INSERT INTO trades (offering_user_id, receiving_user_id, offering_card_id, receiving_card_id,
		                    offering_quantity, receiving_quantity, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.get(ctx, &id, query,
		t.OfferingUserID, t.ReceivingUserID, t.OfferingCardID, t.ReceivingCardID,
		t.OfferingQuantity, t.ReceivingQuantity, t.StatusID,
	)
	return id, err
}

func (r *TradeRepository) Update(ctx context.Context, id int64, req models.TradeUpdateRequest) error {
	const query = `
		UPDATE trades
		SET offering_user_id   = COALESCE($2, offering_user_id),
		    receiving_user_id  = COALESCE($3, receiving_user_id),
		    offering_card_id   = COALESCE($4, offering_card_id),
		    receiving_card_id  = COALESCE($5, receiving_card_id),
		    offering_quantity  = COALESCE($6, offering_quantity),
		    receiving_quantity = COALESCE($7, receiving_quantity),
		    status_id          = COALESCE($8, status_id)
		WHERE id = $1
	`
	return r.execAffecting(ctx, query, id,
		req.OfferingUserID, req.ReceivingUserID, req.OfferingCardID, req.ReceivingCardID,
		req.OfferingQuantity, req.ReceivingQuantity, req.StatusID,
	)
}

func (r *TradeRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM trades WHERE id = $1`, id)
}
