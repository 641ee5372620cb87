package repositories

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
)

var (
	//go:embed sql/create.sql
	createSchemaSQL string

	//go:embed sql/drop.sql
	dropSchemaSQL string
)

// Tables in dependency order: every table only references tables before it.
var Tables = []string{"users", "sets", "rarities", "conditions", "cards", "user_cards", "wishlists", "statuses", "trades"}

// FixtureRepository manages the schema and the seed data.
type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// CreateSchema drops and recreates every table.
func (r *FixtureRepository) CreateSchema(ctx context.Context) error {
	if err := r.DropSchema(ctx); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, createSchemaSQL)
	logQuery("CREATE SCHEMA", nil, nil, err)
	return err
}

// DropSchema drops every table.
func (r *FixtureRepository) DropSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, dropSchemaSQL)
	logQuery("DROP SCHEMA", nil, nil, err)
	return err
}

// Seed replaces the content of every table with seed in one transaction.
func (r *FixtureRepository) Seed(ctx context.Context, seed models.Seed) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to roll back seed", "error", rbErr)
			}
		}
	}()

	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+Tables[i]); err != nil {
			return sqlerr.Convert(err)
		}
	}

	s := seeder{ctx: ctx, tx: tx}

	setIDs := make([]int64, len(seed.Sets))
	for i, set := range seed.Sets {
		setIDs[i] = s.insert(`INSERT INTO sets (set_name, release_date) VALUES ($1, $2) RETURNING id`, set.SetName, set.ReleaseDate)
	}
	rarityIDs := make([]int64, len(seed.Rarities))
	for i, name := range seed.Rarities {
		rarityIDs[i] = s.insert(`INSERT INTO rarities (rarity_name) VALUES ($1) RETURNING id`, name)
	}
	conditionIDs := make([]int64, len(seed.Conditions))
	for i, name := range seed.Conditions {
		conditionIDs[i] = s.insert(`INSERT INTO conditions (condition_name) VALUES ($1) RETURNING id`, name)
	}
	cardIDs := make([]int64, len(seed.Cards))
	for i, c := range seed.Cards {
		cardIDs[i] = s.insert(`INSERT INTO cards (name, card_type, rarity_id, set_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			c.Name, c.CardType, s.ref(rarityIDs, c.Rarity, "rarity"), s.ref(setIDs, c.Set, "set"))
	}
	userIDs := make([]int64, len(seed.Users))
	for i, u := range seed.Users {
		userIDs[i] = s.insert(`INSERT INTO users (username, email, password_hash, is_admin) VALUES ($1, $2, $3, $4) RETURNING id`,
			u.Username, u.Email, u.PasswordHash, u.IsAdmin)
	}
	for _, w := range seed.Wishlists {
		s.insert(`INSERT INTO wishlists (user_id, card_id) VALUES ($1, $2) RETURNING id`,
			s.ref(userIDs, w.User, "user"), s.ref(cardIDs, w.Card, "card"))
	}
	for _, uc := range seed.UserCards {
		s.insert(`INSERT INTO user_cards (user_id, card_id, condition_id) VALUES ($1, $2, $3) RETURNING id`,
			s.ref(userIDs, uc.User, "user"), s.ref(cardIDs, uc.Card, "card"), s.ref(conditionIDs, uc.Condition, "condition"))
	}
	statusIDs := make([]int64, len(seed.Statuses))
	for i, name := range seed.Statuses {
		statusIDs[i] = s.insert(`INSERT INTO statuses (status_name) VALUES ($1) RETURNING id`, name)
	}
	for _, t := range seed.Trades {
		s.insert(`
			INSERT INTO trades (offering_user_id, receiving_user_id, offering_card_id, receiving_card_id,
			                    offering_quantity, receiving_quantity, status_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			s.ref(userIDs, t.OfferingUser, "user"), s.ref(userIDs, t.ReceivingUser, "user"),
			s.ref(cardIDs, t.OfferingCard, "card"), s.ref(cardIDs, t.ReceivingCard, "card"),
			t.OfferingQuantity, t.ReceivingQuantity, s.ref(statusIDs, t.Status, "status"))
	}
	if s.err != nil {
		err = s.err
		return err
	}

	err = tx.Commit()
	return err
}

// Counts returns the number of rows in every table.
func (r *FixtureRepository) Counts(ctx context.Context) (models.TableCounts, error) {
	counts := make(models.TableCounts, len(Tables))
	for _, table := range Tables {
		var n int
		if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, nil
}

// seeder keeps the first error and turns later calls into no-ops.
type seeder struct {
	ctx context.Context
	tx  *sqlx.Tx
	err error
}

func (s *seeder) insert(query string, args ...any) int64 {
	if s.err != nil {
		return 0
	}
	var id int64
	err := s.tx.GetContext(s.ctx, &id, query, args...)
	logQuery(query, args, id, err)
	s.err = sqlerr.Convert(err)
	return id
}

func (s *seeder) ref(ids []int64, idx int, what string) int64 {
	if s.err != nil {
		return 0
	}
	if idx < 0 || idx >= len(ids) {
		s.err = fmt.Errorf("seed references %s #%d, only %d defined", what, idx, len(ids))
		return 0
	}
	return ids[idx]
}
