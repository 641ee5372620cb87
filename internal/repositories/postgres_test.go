package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a Postgres container and creates the schema.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, NewFixtureRepository(db).CreateSchema(ctx))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}
	return db, teardown
}

// testSeed is a small fixture with plain-text password hashes.
func testSeed() models.Seed {
	return models.Seed{
		Sets: []models.Set{
			{SetName: "Base Set", ReleaseDate: models.NewDate(1999, 1, 9)},
			{SetName: "Jungle", ReleaseDate: models.NewDate(1999, 6, 16)},
		},
		Rarities:   []string{"Common", "Rare"},
		Conditions: []string{"Mint", "Poor"},
		Cards: []models.SeedCard{
			{Name: "Charizard", CardType: "Fire", Rarity: 1, Set: 0},
			{Name: "Pikachu", CardType: "Electric", Rarity: 0, Set: 1},
		},
		Users: []models.User{
			{Username: "AshKetchum", Email: "ash@pallet.com", PasswordHash: "hash-ash", IsAdmin: true},
			{Username: "MistyWater", Email: "misty@cerulean.com", PasswordHash: "hash-misty"},
		},
		Wishlists: []models.SeedWishlist{{User: 0, Card: 1}},
		UserCards: []models.SeedUserCard{{User: 0, Card: 0, Condition: 0}, {User: 1, Card: 1, Condition: 1}},
		Statuses:  models.StatusNames,
		Trades: []models.SeedTrade{
			{OfferingUser: 0, ReceivingUser: 1, OfferingCard: 0, ReceivingCard: 1, OfferingQuantity: 1, ReceivingQuantity: 1, Status: 0},
		},
	}
}
