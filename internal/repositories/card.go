package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

const cardSelect = `
	SELECT c.id, c.name, c.card_type, c.rarity_id, c.set_id,
	       r.rarity_name, s.set_name
	FROM cards c
	JOIN rarities r ON r.id = c.rarity_id
	JOIN sets s ON s.id = c.set_id
`

// CardRepository stores the card catalog.
type CardRepository struct {
	baseRepository
}

func NewCardRepository(db *sqlx.DB, txGetter TxGetter) *CardRepository {
	return &CardRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *CardRepository) List(ctx context.Context) ([]models.Card, error) {
	cards := []models.Card{}
	err := r.selectAll(ctx, &cards, cardSelect+` ORDER BY c.id`)
	return cards, err
}

// GetByID returns sql.ErrNoRows when the card does not exist.
func (r *CardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	var card models.Card
	if err := r.get(ctx, &card, cardSelect+` WHERE c.id = $1`, id); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) Create(ctx context.Context, req models.CardCreateRequest) (int64, error) {
	const query = `
		INSERT INTO cards (name, card_type, rarity_id, set_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.get(ctx, &id, query, req.Name, req.CardType, req.RarityID, req.SetID)
	return id, err
}

// Update applies the non-nil fields of req.
func (r *CardRepository) Update(ctx context.Context, id int64, req models.CardUpdateRequest) error {
	const query = `
		UPDATE cards
		SET name      = COALESCE($2, name),
		    card_type = COALESCE($3, card_type),
		    rarity_id = COALESCE($4, rarity_id),
		    set_id    = COALESCE($5, set_id)
		WHERE id = $1
	`
	return r.execAffecting(ctx, query, id, req.Name, req.CardType, req.RarityID, req.SetID)
}

func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM cards WHERE id = $1`, id)
}
