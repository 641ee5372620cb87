package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

type SetRepository struct {
	baseRepository
}

func NewSetRepository(db *sqlx.DB, txGetter TxGetter) *SetRepository {
	return &SetRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *SetRepository) List(ctx context.Context) ([]models.Set, error) {
	sets := []models.Set{}
	err := r.selectAll(ctx, &sets, `SELECT id, set_name, release_date FROM sets ORDER BY id`)
	return sets, err
}

func (r *SetRepository) GetByID(ctx context.Context, id int64) (*models.Set, error) {
	var set models.Set
	if err := r.get(ctx, &set, `SELECT id, set_name, release_date FROM sets WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *SetRepository) Create(ctx context.Context, name string, releaseDate models.Date) (int64, error) {
	var id int64
	err := r.get(ctx, &id, `INSERT INTO sets (set_name, release_date) VALUES ($1, $2) RETURNING id`, name, releaseDate)
	return id, err
}

// Update applies the non-nil arguments.
func (r *SetRepository) Update(ctx context.Context, id int64, name *string, releaseDate *models.Date) error {
	const query = `
		UPDATE sets
		SET set_name     = COALESCE($2, set_name),
		    release_date = COALESCE($3::DATE, release_date)
		WHERE id = $1
	`
	return r.execAffecting(ctx, query, id, name, releaseDate)
}

func (r *SetRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM sets WHERE id = $1`, id)
}
