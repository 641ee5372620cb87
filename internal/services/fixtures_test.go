package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixtureMocks struct {
	store    *services.MockFixtureStore
	sets     *services.MockSetStore
	rarities *services.MockRarityStore
	cards    *services.MockCardCreator
	users    *services.MockAccountStore
}

func newFixtureService(ctrl *gomock.Controller) (*services.FixtureService, fixtureMocks) {
	m := fixtureMocks{
		store:    services.NewMockFixtureStore(ctrl),
		sets:     services.NewMockSetStore(ctrl),
		rarities: services.NewMockRarityStore(ctrl),
		cards:    services.NewMockCardCreator(ctrl),
		users:    services.NewMockAccountStore(ctrl),
	}
	return services.NewFixtureService(m.store, m.sets, m.rarities, m.cards, m.users), m
}

func TestDefaultSeed(t *testing.T) {
	seed, err := services.DefaultSeed()
	require.NoError(t, err)

	assert.Len(t, seed.Sets, 3)
	assert.Len(t, seed.Rarities, 4)
	assert.Len(t, seed.Conditions, 5)
	assert.Len(t, seed.Cards, 5)
	assert.Len(t, seed.Users, 3)
	assert.Len(t, seed.Wishlists, 3)
	assert.Len(t, seed.UserCards, 3)
	assert.Len(t, seed.Statuses, 4)
	assert.Len(t, seed.Trades, 2)

	ash := seed.Users[0]
	assert.Equal(t, "AshKetchum", ash.Username)
	assert.True(t, ash.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(ash.PasswordHash), []byte("pikachu")))
	assert.False(t, seed.Users[1].IsAdmin)
	assert.False(t, seed.Users[2].IsAdmin)

	assert.Equal(t, models.StatusPending, seed.Statuses[seed.Trades[0].Status])
	assert.Equal(t, models.StatusAccepted, seed.Statuses[seed.Trades[1].Status])

	for _, c := range seed.Cards {
		assert.Less(t, c.Rarity, len(seed.Rarities), c.Name)
		assert.Less(t, c.Set, len(seed.Sets), c.Name)
	}
}

func TestFixtureService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFixtureService(ctrl)
	ctx := context.Background()

	counts := models.TableCounts{"sets": 3, "cards": 5, "users": 3}
	m.store.EXPECT().Seed(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Counts(gomock.Any()).Return(counts, nil)

	got, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, got)

	m.store.EXPECT().Seed(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
	_, err = svc.Seed(ctx)
	assert.EqualError(t, err, "deadlock")
}

func TestFixtureService_AddCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFixtureService(ctrl)
	ctx := context.Background()

	req := models.CardCreateRequest{Name: "Gengar", CardType: "Ghost", RarityID: 3, SetID: 3}

	t.Run("added", func(t *testing.T) {
		m.rarities.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Rarity{ID: 3}, nil)
		m.sets.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Set{ID: 3}, nil)
		m.cards.EXPECT().Create(gomock.Any(), req).Return(int64(6), nil)

		id, err := svc.AddCard(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(6), id)
	})

	t.Run("unknown rarity", func(t *testing.T) {
		m.rarities.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, sql.ErrNoRows)

		_, err := svc.AddCard(ctx, req)
		assert.ErrorIs(t, err, services.ErrRarityOrSetNotFound)
	})

	t.Run("unknown set", func(t *testing.T) {
		m.rarities.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Rarity{ID: 3}, nil)
		m.sets.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, sql.ErrNoRows)

		_, err := svc.AddCard(ctx, req)
		assert.ErrorIs(t, err, services.ErrRarityOrSetNotFound)
	})
}

func TestFixtureService_AddSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFixtureService(ctrl)
	ctx := context.Background()

	m.sets.EXPECT().Create(gomock.Any(), "Team Rocket", models.NewDate(2000, 4, 24)).Return(int64(4), nil)
	id, err := svc.AddSet(ctx, "Team Rocket", "2000-04-24")
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	_, err = svc.AddSet(ctx, "Gym Heroes", "08/14/2000")
	assert.ErrorIs(t, err, services.ErrInvalidDate)

	m.rarities.EXPECT().Create(gomock.Any(), "Secret Rare").Return(int64(5), nil)
	id, err = svc.AddRarity(ctx, "Secret Rare")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestFixtureService_Users(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newFixtureService(ctrl)
	ctx := context.Background()

	m.users.EXPECT().Create(gomock.Any(), "admin", "admin@localhost", gomock.Any(), true).Return(int64(4), nil)
	id, err := svc.CreateUser(ctx, "admin", "admin@localhost", "admin", true)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	m.users.EXPECT().DeleteByUsername(gomock.Any(), "admin").Return(nil)
	assert.NoError(t, svc.DeleteUser(ctx, "admin"))

	m.users.EXPECT().DeleteByUsername(gomock.Any(), "admin").Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.DeleteUser(ctx, "admin"), services.ErrUserDoesNotExist)

	m.store.EXPECT().CreateSchema(gomock.Any()).Return(nil)
	assert.NoError(t, svc.CreateSchema(ctx))
	m.store.EXPECT().DropSchema(gomock.Any()).Return(errors.New("permission denied"))
	assert.EqualError(t, svc.DropSchema(ctx), "permission denied")
}
