package services

import (
	"context"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

// SetRepository is the set storage used by SetService.
type SetRepository interface {
	List(ctx context.Context) ([]models.Set, error)
	GetByID(ctx context.Context, id int64) (*models.Set, error)
	Create(ctx context.Context, name string, releaseDate models.Date) (int64, error)
	Update(ctx context.Context, id int64, name *string, releaseDate *models.Date) error
	Delete(ctx context.Context, id int64) error
}

// LookupRepository stores a single-name lookup table (rarities, conditions).
type LookupRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// StatusRepository reads trade statuses.
type StatusRepository interface {
	List(ctx context.Context) ([]models.Status, error)
	GetByID(ctx context.Context, id int64) (*models.Status, error)
	GetByName(ctx context.Context, name string) (*models.Status, error)
}

// SetService manages card sets.
type SetService struct {
	repo SetRepository
}

func NewSetService(repo SetRepository) *SetService {
	return &SetService{repo: repo}
}

func (s *SetService) List(ctx context.Context) ([]models.Set, error) {
	return s.repo.List(ctx)
}

func (s *SetService) Get(ctx context.Context, id int64) (*models.Set, error) {
	set, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Set", id)
	}
	return set, nil
}

func (s *SetService) Create(ctx context.Context, req models.SetCreateRequest) (*models.Set, error) {
	releaseDate, err := models.ParseDate(req.ReleaseDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	id, err := s.repo.Create(ctx, req.SetName, releaseDate)
	if err != nil {
		logger.Log.Errorw("failed to create set", "set_name", req.SetName, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *SetService) Update(ctx context.Context, id int64, req models.SetUpdateRequest) (*models.Set, error) {
	var releaseDate *models.Date
	if req.ReleaseDate != nil {
		d, err := models.ParseDate(*req.ReleaseDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		releaseDate = &d
	}
	if err := s.repo.Update(ctx, id, req.SetName, releaseDate); err != nil {
		err = notFound(err, "Set", id)
		logger.Log.Errorw("failed to update set", "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *SetService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, "Set", id)
		logger.Log.Errorw("failed to delete set", "id", id, "error", err)
		return err
	}
	return nil
}

// LookupService manages a lookup table whose rows are a single name.
// Resource is the display name used in not-found messages.
type LookupService[T any] struct {
	resource string
	repo     LookupRepository[T]
}

func NewRarityService(repo LookupRepository[models.Rarity]) *LookupService[models.Rarity] {
	return &LookupService[models.Rarity]{resource: "Rarity", repo: repo}
}

func NewConditionService(repo LookupRepository[models.Condition]) *LookupService[models.Condition] {
	return &LookupService[models.Condition]{resource: "Condition", repo: repo}
}

func (s *LookupService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *LookupService[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, s.resource, id)
	}
	return item, nil
}

func (s *LookupService[T]) Create(ctx context.Context, name string) (*T, error) {
	id, err := s.repo.Create(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to create lookup", "resource", s.resource, "name", name, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *LookupService[T]) Update(ctx context.Context, id int64, name string) (*T, error) {
	if err := s.repo.Update(ctx, id, name); err != nil {
		err = notFound(err, s.resource, id)
		logger.Log.Errorw("failed to update lookup", "resource", s.resource, "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *LookupService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, s.resource, id)
		logger.Log.Errorw("failed to delete lookup", "resource", s.resource, "id", id, "error", err)
		return err
	}
	return nil
}

// StatusService exposes the fixed set of trade statuses.
type StatusService struct {
	repo StatusRepository
}

func NewStatusService(repo StatusRepository) *StatusService {
	return &StatusService{repo: repo}
}

func (s *StatusService) List(ctx context.Context) ([]models.Status, error) {
	return s.repo.List(ctx)
}

func (s *StatusService) Get(ctx context.Context, id int64) (*models.Status, error) {
	status, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Status", id)
	}
	return status, nil
}
