package services

import (
	"context"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// UserRepository is the user storage used by UserService.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (int64, error)
	Update(ctx context.Context, id int64, username, email, passwordHash *string, isAdmin *bool) error
	Delete(ctx context.Context, id int64) error
	IsAdmin(ctx context.Context, id int64) (bool, error)
}

// UserRelations loads the records a user owns or takes part in.
type UserRelations interface {
	UserCards(ctx context.Context, userID int64) ([]models.UserCard, error)
	Wishlists(ctx context.Context, userID int64) ([]models.Wishlist, error)
	TradesOffered(ctx context.Context, userID int64) ([]models.Trade, error)
	TradesReceived(ctx context.Context, userID int64) ([]models.Trade, error)
}

// UserService manages user accounts.
type UserService struct {
	repo      UserRepository
	relations UserRelations
}

func NewUserService(repo UserRepository, relations UserRelations) *UserService {
	return &UserService{repo: repo, relations: relations}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Get returns the user with its cards, wishlist entries and trades.
func (s *UserService) Get(ctx context.Context, id int64) (*models.UserDetail, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "User", id)
	}

	detail := &models.UserDetail{User: *user}
	if detail.UserCards, err = s.relations.UserCards(ctx, id); err != nil {
		logger.Log.Errorw("failed to load user cards", "user_id", id, "error", err)
		return nil, err
	}
	if detail.Wishlists, err = s.relations.Wishlists(ctx, id); err != nil {
		logger.Log.Errorw("failed to load wishlists", "user_id", id, "error", err)
		return nil, err
	}
	if detail.TradesOffered, err = s.relations.TradesOffered(ctx, id); err != nil {
		logger.Log.Errorw("failed to load offered trades", "user_id", id, "error", err)
		return nil, err
	}
	if detail.TradesReceived, err = s.relations.TradesReceived(ctx, id); err != nil {
		logger.Log.Errorw("failed to load received trades", "user_id", id, "error", err)
		return nil, err
	}
	return detail, nil
}

func (s *UserService) Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, req.Username, req.Email, hash, req.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "username", req.Username, "error", err)
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update changes the fields present in req. A new password is hashed before storing.
func (s *UserService) Update(ctx context.Context, id int64, req models.UserUpdateRequest) (*models.User, error) {
	var hash *string
	if req.Password != nil {
		h, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		hash = &h
	}
	if err := s.repo.Update(ctx, id, req.Username, req.Email, hash, req.IsAdmin); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		err = notFound(err, "User", id)
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "User", id)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, "User", id)
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	return nil
}

// IsAdmin reads the admin flag from storage on every call.
func (s *UserService) IsAdmin(ctx context.Context, id int64) (bool, error) {
	isAdmin, err := s.repo.IsAdmin(ctx, id)
	if err != nil {
		return false, notFound(err, "User", id)
	}
	return isAdmin, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}
