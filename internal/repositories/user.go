package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

const userSelect = `SELECT id, username, email, password_hash, is_admin FROM users`

// UserRepository stores user accounts.
type UserRepository struct {
	baseRepository
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.selectAll(ctx, &users, userSelect+` ORDER BY id`)
	return users, err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.get(ctx, &user, userSelect+` WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail matches on either column; nil arguments are ignored.
// It returns sql.ErrNoRows when nothing matches.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.User, error) {
	const query = userSelect + `
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		ORDER BY id
		LIMIT 1
	`
	var user models.User
	if err := r.get(ctx, &user, query, username, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.get(ctx, &id, query, username, email, passwordHash, isAdmin)
	return id, err
}

// Update applies the non-nil arguments. passwordHash must already be hashed.
func (r *UserRepository) Update(ctx context.Context, id int64, username, email, passwordHash *string, isAdmin *bool) error {
	const query = `
		UPDATE users
		SET username      = COALESCE($2, username),
		    email         = COALESCE($3, email),
		    password_hash = COALESCE($4, password_hash),
		    is_admin      = COALESCE($5, is_admin)
		WHERE id = $1
	`
	return r.execAffecting(ctx, query, id, username, email, passwordHash, isAdmin)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *UserRepository) DeleteByUsername(ctx context.Context, username string) error {
	return r.execAffecting(ctx, `DELETE FROM users WHERE username = $1`, username)
}

// IsAdmin reports the admin flag of the user. sql.ErrNoRows means the user is gone.
func (r *UserRepository) IsAdmin(ctx context.Context, id int64) (bool, error) {
	var isAdmin bool
	err := r.get(ctx, &isAdmin, `SELECT is_admin FROM users WHERE id = $1`, id)
	return isAdmin, err
}
