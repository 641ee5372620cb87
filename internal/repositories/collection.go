package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

const userCardSelect = `
	SELECT uc.id, uc.user_id, uc.card_id, uc.condition_id,
	       u.username, c.name AS card_name, cd.condition_name
	FROM user_cards uc
	JOIN users u ON u.id = uc.user_id
	JOIN cards c ON c.id = uc.card_id
	JOIN conditions cd ON cd.id = uc.condition_id
`

// UserCardRepository stores the card copies owned by users.
type UserCardRepository struct {
	baseRepository
}

func NewUserCardRepository(db *sqlx.DB, txGetter TxGetter) *UserCardRepository {
	return &UserCardRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *UserCardRepository) List(ctx context.Context) ([]models.UserCard, error) {
	userCards := []models.UserCard{}
	err := r.selectAll(ctx, &userCards, userCardSelect+` ORDER BY uc.id`)
	return userCards, err
}

func (r *UserCardRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserCard, error) {
	userCards := []models.UserCard{}
	err := r.selectAll(ctx, &userCards, userCardSelect+` WHERE uc.user_id = $1 ORDER BY uc.id`, userID)
	return userCards, err
}

func (r *UserCardRepository) GetByID(ctx context.Context, id int64) (*models.UserCard, error) {
	var userCard models.UserCard
	if err := r.get(ctx, &userCard, userCardSelect+` WHERE uc.id = $1`, id); err != nil {
		return nil, err
	}
	return &userCard, nil
}

func (r *UserCardRepository) Create(ctx context.Context, req models.UserCardCreateRequest) (int64, error) {
	const query = `
		INSERT INTO user_cards (user_id, card_id, condition_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.get(ctx, &id, query, req.UserID, req.CardID, req.ConditionID)
	return id, err
}

func (r *UserCardRepository) Update(ctx context.Context, id int64, req models.UserCardUpdateRequest) error {
	const query = `
		UPDATE user_cards
		SET user_id      = COALESCE($2, user_id),
		    card_id      = COALESCE($3, card_id),
		    condition_id = COALESCE($4, condition_id)
		WHERE id = $1
	`
	return r.execAffecting(ctx, query, id, req.UserID, req.CardID, req.ConditionID)
}

func (r *UserCardRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM user_cards WHERE id = $1`, id)
}

const wishlistSelect = `
	SELECT w.id, w.user_id, w.card_id, u.username, c.name AS card_name
	FROM wishlists w
	JOIN users u ON u.id = w.user_id
	JOIN cards c ON c.id = w.card_id
`

// WishlistRepository stores the cards users want.
type WishlistRepository struct {
	baseRepository
}

func NewWishlistRepository(db *sqlx.DB, txGetter TxGetter) *WishlistRepository {
	return &WishlistRepository{baseRepository{db: db, txGetter: txGetter}}
}

func (r *WishlistRepository) List(ctx context.Context) ([]models.Wishlist, error) {
	wishlists := []models.Wishlist{}
	err := r.selectAll(ctx, &wishlists, wishlistSelect+` ORDER BY w.id`)
	return wishlists, err
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID int64) ([]models.Wishlist, error) {
	wishlists := []models.Wishlist{}
	err := r.selectAll(ctx, &wishlists, wishlistSelect+` WHERE w.user_id = $1 ORDER BY w.id`, userID)
	return wishlists, err
}

func (r *WishlistRepository) GetByID(ctx context.Context, id int64) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.get(ctx, &wishlist, wishlistSelect+` WHERE w.id = $1`, id); err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *WishlistRepository) Create(ctx context.Context, req models.WishlistCreateRequest) (int64, error) {
	var id int64
	err := r.get(ctx, &id, `INSERT INTO wishlists (user_id, card_id) VALUES ($1, $2) RETURNING id`, req.UserID, req.CardID)
	return id, err
}

func (r *WishlistRepository) Update(ctx context.Context, id int64, req models.WishlistUpdateRequest) error {
	const query = `
		UPDATE wishlists
		SET user_id = COALESCE($2, user_id),
		    card_id = COALESCE($3, card_id)
		WHERE id = $1
	`
	return r.execAffecting(ctx, query, id, req.UserID, req.CardID)
}

func (r *WishlistRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
}
