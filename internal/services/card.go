package services

import (
	"context"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=card.go -destination=card_mock.go -package=services

// CardRepository is the card storage used by CardService.
type CardRepository interface {
	List(ctx context.Context) ([]models.Card, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	Create(ctx context.Context, req models.CardCreateRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.CardUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

// CardService manages the card catalog.
type CardService struct {
	repo CardRepository
}

func NewCardService(repo CardRepository) *CardService {
	return &CardService{repo: repo}
}

func (s *CardService) List(ctx context.Context) ([]models.Card, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list cards", "error", err)
		return nil, err
	}
	return cards, nil
}

func (s *CardService) Get(ctx context.Context, id int64) (*models.Card, error) {
	card, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Card", id)
	}
	return card, nil
}

// Create adds a card. A rarity or set that does not exist surfaces as a
// foreign key *sqlerr.Error.
func (s *CardService) Create(ctx context.Context, req models.CardCreateRequest) (*models.Card, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to create card", "name", req.Name, "rarity_id", req.RarityID, "set_id", req.SetID, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update changes the fields present in req and leaves the others unchanged.
func (s *CardService) Update(ctx context.Context, id int64, req models.CardUpdateRequest) (*models.Card, error) {
	if err := s.repo.Update(ctx, id, req); err != nil {
		err = notFound(err, "Card", id)
		logger.Log.Errorw("failed to update card", "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *CardService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, "Card", id)
		logger.Log.Errorw("failed to delete card", "id", id, "error", err)
		return err
	}
	return nil
}
