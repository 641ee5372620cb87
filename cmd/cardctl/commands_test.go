package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
)

type fakeFixtures struct {
	err    error
	counts models.TableCounts

	calls    []string
	card     models.CardCreateRequest
	user     []string
	admin    bool
	setDate  string
	username string
}

func (f *fakeFixtures) CreateSchema(context.Context) error {
	f.calls = append(f.calls, "create")
	return f.err
}

func (f *fakeFixtures) DropSchema(context.Context) error {
	f.calls = append(f.calls, "drop")
	return f.err
}

func (f *fakeFixtures) Seed(context.Context) (models.TableCounts, error) {
	f.calls = append(f.calls, "seed")
	return f.counts, f.err
}

func (f *fakeFixtures) AddSet(_ context.Context, _, releaseDate string) (int64, error) {
	f.calls = append(f.calls, "add-set")
	f.setDate = releaseDate
	return 1, f.err
}

func (f *fakeFixtures) AddCard(_ context.Context, req models.CardCreateRequest) (int64, error) {
	f.calls = append(f.calls, "add-card")
	f.card = req
	return 1, f.err
}

func (f *fakeFixtures) AddRarity(context.Context, string) (int64, error) {
	f.calls = append(f.calls, "add-rarity")
	return 1, f.err
}

func (f *fakeFixtures) CreateUser(_ context.Context, username, email, password string, isAdmin bool) (int64, error) {
	f.calls = append(f.calls, "create-user")
	f.user = []string{username, email, password}
	f.admin = isAdmin
	return 1, f.err
}

func (f *fakeFixtures) DeleteUser(_ context.Context, username string) error {
	f.calls = append(f.calls, "delete-user")
	f.username = username
	return f.err
}

func execute(t *testing.T, fx *fakeFixtures, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	closed := false
	root := newRootCmd(func(context.Context, string) (fixtures, func(), error) {
		return fx, func() { closed = true }, nil
	})

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	if len(fx.calls) > 0 {
		assert.True(t, closed, "database must be closed after the command")
	}
	return out.String(), errOut.String(), err
}

func TestCommands_Success(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stdout string
	}{
		{"create-db", []string{"create-db"}, "Tables created successfully.\n"},
		{"drop-db", []string{"drop-db"}, "Tables dropped successfully.\n"},
		{"add-set", []string{"add-set", "Team Rocket", "2000-04-24"}, "Set 'Team Rocket' added successfully with release date 2000-04-24.\n"},
		{"add-card", []string{"add-card", "Dark Charizard", "Fire", "4", "2"}, "Card 'Dark Charizard' added successfully.\n"},
		{"add-rarity", []string{"add-rarity", "Secret Rare"}, "Rarity 'Secret Rare' added successfully.\n"},
		{"create-user", []string{"create-user", "gary", "gary@pallet.town", "eevee"}, "User 'gary' created successfully.\n"},
		{"delete-user", []string{"delete-user", "gary"}, "User 'gary' deleted successfully.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := &fakeFixtures{}
			stdout, stderr, err := execute(t, fx, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.stdout, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestAddCard_ParsesIDs(t *testing.T) {
	fx := &fakeFixtures{}
	_, _, err := execute(t, fx, "add-card", "Dark Charizard", "Fire", "4", "2")
	require.NoError(t, err)
	assert.Equal(t, models.CardCreateRequest{Name: "Dark Charizard", CardType: "Fire", RarityID: 4, SetID: 2}, fx.card)

	fx = &fakeFixtures{}
	_, stderr, err := execute(t, fx, "add-card", "Dark Charizard", "Fire", "four", "2")
	assert.Error(t, err)
	assert.Equal(t, "Invalid RARITY_ID \"four\".\n", stderr)
	assert.Empty(t, fx.calls)
}

func TestCreateUser_Defaults(t *testing.T) {
	fx := &fakeFixtures{}
	stdout, _, err := execute(t, fx, "create-user", "--admin")

	require.NoError(t, err)
	assert.Equal(t, []string{"user", "user@localhost", "user"}, fx.user)
	assert.True(t, fx.admin)
	assert.Equal(t, "User 'user' created successfully.\n", stdout)
}

func TestSeedDB_PrintsCounts(t *testing.T) {
	fx := &fakeFixtures{counts: models.TableCounts{"sets": 3, "cards": 5}}
	stdout, _, err := execute(t, fx, "seed-db")

	require.NoError(t, err)
	assert.Equal(t, "Tables seeded successfully.\n  cards       5\n  sets        3\n", stdout)
}

func TestCommands_Failures(t *testing.T) {
	fkErr := sqlerr.Convert(&pgconn.PgError{
		Code:   "23503",
		Detail: `Key (set_id)=(9) is not present in table "sets".`,
	})

	tests := []struct {
		name   string
		args   []string
		err    error
		stderr string
	}{
		{"invalid date", []string{"add-set", "Jungle", "16/06/1999"}, services.ErrInvalidDate, "Invalid date format. Please use YYYY-MM-DD.\n"},
		{"unknown rarity or set", []string{"add-card", "Mew", "Psychic", "1", "9"}, services.ErrRarityOrSetNotFound, "Rarity ID or Set ID not found.\n"},
		{"duplicate user", []string{"create-user", "ash", "ash@pallet.town"}, services.ErrUserAlreadyExists, "Error: Email or username 'ash@pallet.town' is already registered.\n"},
		{"missing user", []string{"delete-user", "nobody"}, services.ErrUserDoesNotExist, "User 'nobody' does not exist.\n"},
		{"constraint", []string{"add-card", "Mew", "Psychic", "1", "9"}, fkErr, "Database error occurred while adding card: referenced record does not exist: Key (set_id)=(9) is not present in table \"sets\"\n"},
		{"seed failure", []string{"seed-db"}, errors.New("connection reset"), "Error seeding the database: connection reset\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := &fakeFixtures{err: tt.err}
			stdout, stderr, err := execute(t, fx, tt.args...)

			assert.ErrorIs(t, err, errReported)
			assert.Empty(t, stdout)
			assert.Equal(t, tt.stderr, stderr)
		})
	}
}

func TestOpenFailure(t *testing.T) {
	root := newRootCmd(func(context.Context, string) (fixtures, func(), error) {
		return nil, nil, errors.New("postgres connection: refused")
	})

	var errOut bytes.Buffer
	root.SetErr(&errOut)
	root.SetArgs([]string{"create-db"})

	assert.Error(t, root.Execute())
	assert.Equal(t, "postgres connection: refused\n", errOut.String())
}

func TestConfigFlag(t *testing.T) {
	var got string
	root := newRootCmd(func(_ context.Context, path string) (fixtures, func(), error) {
		got = path
		return &fakeFixtures{}, func() {}, nil
	})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"-c", "test.env", "drop-db"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "test.env", got)
}
