package repositories

import (
	"context"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

// UserRelationsRepository loads the records attached to a user for the user detail view.
type UserRelationsRepository struct {
	userCards *UserCardRepository
	wishlists *WishlistRepository
	trades    *TradeRepository
}

func NewUserRelationsRepository(userCards *UserCardRepository, wishlists *WishlistRepository, trades *TradeRepository) *UserRelationsRepository {
	return &UserRelationsRepository{userCards: userCards, wishlists: wishlists, trades: trades}
}

func (r *UserRelationsRepository) UserCards(ctx context.Context, userID int64) ([]models.UserCard, error) {
	return r.userCards.ListByUser(ctx, userID)
}

func (r *UserRelationsRepository) Wishlists(ctx context.Context, userID int64) ([]models.Wishlist, error) {
	return r.wishlists.ListByUser(ctx, userID)
}

func (r *UserRelationsRepository) TradesOffered(ctx context.Context, userID int64) ([]models.Trade, error) {
	return r.trades.ListOfferedBy(ctx, userID)
}

func (r *UserRelationsRepository) TradesReceived(ctx context.Context, userID int64) ([]models.Trade, error) {
	return r.trades.ListReceivedBy(ctx, userID)
}
