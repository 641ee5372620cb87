package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

// RarityRepository stores rarity tiers.
type RarityRepository struct {
	baseRepository
}

func NewRarityRepository(db *sqlx.DB, txGetter TxGetter) *RarityRepository {
	return &RarityRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *RarityRepository) List(ctx context.Context) ([]models.Rarity, error) {
	rarities := []models.Rarity{}
	err := r.selectAll(ctx, &rarities, `SELECT id, rarity_name FROM rarities ORDER BY id`)
	return rarities, err
}

func (r *RarityRepository) GetByID(ctx context.Context, id int64) (*models.Rarity, error) {
	var rarity models.Rarity
	if err := r.get(ctx, &rarity, `SELECT id, rarity_name FROM rarities WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &rarity, nil
}

func (r *RarityRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.get(ctx, &id, `INSERT INTO rarities (rarity_name) VALUES ($1) RETURNING id`, name)
	return id, err
}

func (r *RarityRepository) Update(ctx context.Context, id int64, name string) error {
	return r.execAffecting(ctx, `UPDATE rarities SET rarity_name = $2 WHERE id = $1`, id, name)
}

func (r *RarityRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM rarities WHERE id = $1`, id)
}

// ConditionRepository stores card condition grades.
type ConditionRepository struct {
	baseRepository
}

func NewConditionRepository(db *sqlx.DB, txGetter TxGetter) *ConditionRepository {
	return &ConditionRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *ConditionRepository) List(ctx context.Context) ([]models.Condition, error) {
	conditions := []models.Condition{}
	err := r.selectAll(ctx, &conditions, `SELECT id, condition_name FROM conditions ORDER BY id`)
	return conditions, err
}

func (r *ConditionRepository) GetByID(ctx context.Context, id int64) (*models.Condition, error) {
	var condition models.Condition
	if err := r.get(ctx, &condition, `SELECT id, condition_name FROM conditions WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &condition, nil
}

func (r *ConditionRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.get(ctx, &id, `INSERT INTO conditions (condition_name) VALUES ($1) RETURNING id`, name)
	return id, err
}

func (r *ConditionRepository) Update(ctx context.Context, id int64, name string) error {
	return r.execAffecting(ctx, `UPDATE conditions SET condition_name = $2 WHERE id = $1`, id, name)
}

func (r *ConditionRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM conditions WHERE id = $1`, id)
}

// StatusRepository reads trade statuses. Statuses are only written by seeding.
type StatusRepository struct {
	baseRepository
}

func NewStatusRepository(db *sqlx.DB, txGetter TxGetter) *StatusRepository {
	return &StatusRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *StatusRepository) List(ctx context.Context) ([]models.Status, error) {
	statuses := []models.Status{}
	err := r.selectAll(ctx, &statuses, `SELECT id, status_name FROM statuses ORDER BY id`)
	return statuses, err
}

func (r *StatusRepository) GetByID(ctx context.Context, id int64) (*models.Status, error) {
	var status models.Status
	if err := r.get(ctx, &status, `SELECT id, status_name FROM statuses WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *StatusRepository) GetByName(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	if err := r.get(ctx, &status, `SELECT id, status_name FROM statuses WHERE status_name = $1`, name); err != nil {
		return nil, err
	}
	return &status, nil
}
