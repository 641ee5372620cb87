package services

import (
	"context"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=collection.go -destination=collection_mock.go -package=services

// UserCardRepository stores owned card copies.
type UserCardRepository interface {
	List(ctx context.Context) ([]models.UserCard, error)
	GetByID(ctx context.Context, id int64) (*models.UserCard, error)
	Create(ctx context.Context, req models.UserCardCreateRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.UserCardUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

// WishlistRepository stores wishlist entries.
type WishlistRepository interface {
	List(ctx context.Context) ([]models.Wishlist, error)
	GetByID(ctx context.Context, id int64) (*models.Wishlist, error)
	Create(ctx context.Context, req models.WishlistCreateRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.WishlistUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

// UserCardService manages the card copies users own.
type UserCardService struct {
	repo UserCardRepository
}

func NewUserCardService(repo UserCardRepository) *UserCardService {
	return &UserCardService{repo: repo}
}

func (s *UserCardService) List(ctx context.Context) ([]models.UserCard, error) {
	return s.repo.List(ctx)
}

func (s *UserCardService) Get(ctx context.Context, id int64) (*models.UserCard, error) {
	userCard, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "User card", id)
	}
	return userCard, nil
}

func (s *UserCardService) Create(ctx context.Context, req models.UserCardCreateRequest) (*models.UserCard, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to create user card", "user_id", req.UserID, "card_id", req.CardID, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *UserCardService) Update(ctx context.Context, id int64, req models.UserCardUpdateRequest) (*models.UserCard, error) {
	if err := s.repo.Update(ctx, id, req); err != nil {
		err = notFound(err, "User card", id)
		logger.Log.Errorw("failed to update user card", "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *UserCardService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, "User card", id)
		logger.Log.Errorw("failed to delete user card", "id", id, "error", err)
		return err
	}
	return nil
}

// WishlistService manages wishlist entries.
type WishlistService struct {
	repo WishlistRepository
}

func NewWishlistService(repo WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

func (s *WishlistService) List(ctx context.Context) ([]models.Wishlist, error) {
	return s.repo.List(ctx)
}

func (s *WishlistService) Get(ctx context.Context, id int64) (*models.Wishlist, error) {
	wishlist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Wishlist", id)
	}
	return wishlist, nil
}

func (s *WishlistService) Create(ctx context.Context, req models.WishlistCreateRequest) (*models.Wishlist, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to create wishlist entry", "user_id", req.UserID, "card_id", req.CardID, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *WishlistService) Update(ctx context.Context, id int64, req models.WishlistUpdateRequest) (*models.Wishlist, error) {
	if err := s.repo.Update(ctx, id, req); err != nil {
		err = notFound(err, "Wishlist", id)
		logger.Log.Errorw("failed to update wishlist entry", "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *WishlistService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, "Wishlist", id)
		logger.Log.Errorw("failed to delete wishlist entry", "id", id, "error", err)
		return err
	}
	return nil
}
