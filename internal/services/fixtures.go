package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
)

//go:generate mockgen -source=fixtures.go -destination=fixtures_mock.go -package=services

// FixtureStore manages the schema and bulk seed data.
type FixtureStore interface {
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
	Seed(ctx context.Context, seed models.Seed) error
	Counts(ctx context.Context) (models.TableCounts, error)
}

// SetStore creates sets and looks them up.
type SetStore interface {
	GetByID(ctx context.Context, id int64) (*models.Set, error)
	Create(ctx context.Context, name string, releaseDate models.Date) (int64, error)
}

// RarityStore creates rarities and looks them up.
type RarityStore interface {
	GetByID(ctx context.Context, id int64) (*models.Rarity, error)
	Create(ctx context.Context, name string) (int64, error)
}

// CardCreator inserts cards.
type CardCreator interface {
	Create(ctx context.Context, req models.CardCreateRequest) (int64, error)
}

// AccountStore creates and removes user accounts.
type AccountStore interface {
	Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (int64, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// FixtureService backs the command line fixture operations.
type FixtureService struct {
	store    FixtureStore
	sets     SetStore
	rarities RarityStore
	cards    CardCreator
	users    AccountStore
}

func NewFixtureService(store FixtureStore, sets SetStore, rarities RarityStore, cards CardCreator, users AccountStore) *FixtureService {
	return &FixtureService{
		store:    store,
		sets:     sets,
		rarities: rarities,
		cards:    cards,
		users:    users,
	}
}

// CreateSchema drops and recreates every table.
func (s *FixtureService) CreateSchema(ctx context.Context) error {
	if err := s.store.CreateSchema(ctx); err != nil {
		logger.Log.Errorw("failed to create schema", "error", err)
		return err
	}
	return nil
}

func (s *FixtureService) DropSchema(ctx context.Context) error {
	if err := s.store.DropSchema(ctx); err != nil {
		logger.Log.Errorw("failed to drop schema", "error", err)
		return err
	}
	return nil
}

// Seed replaces all rows with DefaultSeed and returns the resulting row counts.
func (s *FixtureService) Seed(ctx context.Context) (models.TableCounts, error) {
	seed, err := DefaultSeed()
	if err != nil {
		return nil, err
	}
	if err := s.store.Seed(ctx, seed); err != nil {
		logger.Log.Errorw("failed to seed database", "error", err)
		return nil, err
	}
	return s.store.Counts(ctx)
}

func (s *FixtureService) AddSet(ctx context.Context, name, releaseDate string) (int64, error) {
	date, err := models.ParseDate(releaseDate)
	if err != nil {
		return 0, ErrInvalidDate
	}
	id, err := s.sets.Create(ctx, name, date)
	if err != nil {
		logger.Log.Errorw("failed to add set", "set_name", name, "error", err)
		return 0, err
	}
	return id, nil
}

// AddCard inserts a card after checking that its rarity and set exist.
func (s *FixtureService) AddCard(ctx context.Context, req models.CardCreateRequest) (int64, error) {
	if _, err := s.rarities.GetByID(ctx, req.RarityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRarityOrSetNotFound
		}
		return 0, err
	}
	if _, err := s.sets.GetByID(ctx, req.SetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRarityOrSetNotFound
		}
		return 0, err
	}

	id, err := s.cards.Create(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to add card", "name", req.Name, "error", err)
		return 0, err
	}
	return id, nil
}

func (s *FixtureService) AddRarity(ctx context.Context, name string) (int64, error) {
	id, err := s.rarities.Create(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to add rarity", "rarity_name", name, "error", err)
		return 0, err
	}
	return id, nil
}

func (s *FixtureService) CreateUser(ctx context.Context, username, email, password string, isAdmin bool) (int64, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	id, err := s.users.Create(ctx, username, email, hash, isAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "username", username, "error", err)
		return 0, err
	}
	return id, nil
}

func (s *FixtureService) DeleteUser(ctx context.Context, username string) error {
	if err := s.users.DeleteByUsername(ctx, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to delete user", "username", username, "error", err)
		return err
	}
	return nil
}

// DefaultSeed returns the fixture data loaded by Seed. Passwords are hashed
// on every call, so the hashes differ between calls.
func DefaultSeed() (models.Seed, error) {
	seed := models.Seed{
		Sets: []models.Set{
			{SetName: "Base Set", ReleaseDate: models.NewDate(1999, 1, 9)},
			{SetName: "Jungle", ReleaseDate: models.NewDate(1999, 6, 16)},
			{SetName: "Fossil", ReleaseDate: models.NewDate(1999, 10, 10)},
		},
		Rarities:   []string{"Common", "Uncommon", "Rare", "Holographic Rare"},
		Conditions: []string{"Mint", "Near Mint", "Good", "Fair", "Poor"},
		Cards: []models.SeedCard{
			{Name: "Charizard", CardType: "Fire", Rarity: 3, Set: 0},
			{Name: "Pikachu", CardType: "Electric", Rarity: 0, Set: 1},
			{Name: "Snorlax", CardType: "Normal", Rarity: 2, Set: 2},
			{Name: "Bulbasaur", CardType: "Grass", Rarity: 0, Set: 0},
			{Name: "Mewtwo", CardType: "Psychic", Rarity: 3, Set: 1},
		},
		Wishlists: []models.SeedWishlist{
			{User: 0, Card: 1},
			{User: 1, Card: 0},
			{User: 2, Card: 3},
		},
		UserCards: []models.SeedUserCard{
			{User: 0, Card: 0, Condition: 0},
			{User: 1, Card: 1, Condition: 1},
			{User: 2, Card: 2, Condition: 2},
		},
		Statuses: models.StatusNames,
		Trades: []models.SeedTrade{
			{OfferingUser: 0, ReceivingUser: 1, OfferingCard: 0, ReceivingCard: 1, OfferingQuantity: 1, ReceivingQuantity: 1, Status: 0},
			{OfferingUser: 1, ReceivingUser: 0, OfferingCard: 1, ReceivingCard: 0, OfferingQuantity: 2, ReceivingQuantity: 1, Status: 1},
		},
	}

	accounts := []struct {
		username, email, password string
		isAdmin                   bool
	}{
		{"AshKetchum", "ash@pallet.com", "pikachu", true},
		{"MistyWater", "misty@cerulean.com", "starmie", false},
		{"BrockRock", "brock@pewter.com", "geodude", false},
	}
	for _, a := range accounts {
		hash, err := hashPassword(a.password)
		if err != nil {
			return models.Seed{}, fmt.Errorf("hash password of %s: %w", a.username, err)
		}
		seed.Users = append(seed.Users, models.User{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: hash,
			IsAdmin:      a.isAdmin,
		})
	}
	return seed, nil
}
