package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRepository_Postgres(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	require.NoError(t, NewFixtureRepository(db).Seed(ctx, testSeed()))

	cards := NewCardRepository(db, nil)
	sets := NewSetRepository(db, nil)
	rarities := NewRarityRepository(db, nil)

	setList, err := sets.List(ctx)
	require.NoError(t, err)
	rarityList, err := rarities.List(ctx)
	require.NoError(t, err)

	t.Run("unknown rarity violates foreign key", func(t *testing.T) {
		_, err := cards.Create(ctx, models.CardCreateRequest{Name: "Mew", CardType: "Psychic", RarityID: 9999, SetID: setList[0].ID})
		assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))
	})

	t.Run("unknown set violates foreign key", func(t *testing.T) {
		_, err := cards.Create(ctx, models.CardCreateRequest{Name: "Mew", CardType: "Psychic", RarityID: rarityList[0].ID, SetID: 9999})
		assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		id, err := cards.Create(ctx, models.CardCreateRequest{Name: "Mew", CardType: "Psychic", RarityID: rarityList[1].ID, SetID: setList[1].ID})
		require.NoError(t, err)

		newName := "Mew ex"
		require.NoError(t, cards.Update(ctx, id, models.CardUpdateRequest{Name: &newName}))

		card, err := cards.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Mew ex", card.Name)
		assert.Equal(t, "Psychic", card.CardType)
		assert.Equal(t, rarityList[1].ID, card.RarityID)
		assert.Equal(t, setList[1].ID, card.SetID)
		assert.Equal(t, "Rare", card.RarityName)
		assert.Equal(t, "Jungle", card.SetName)
	})

	t.Run("set release date round trip", func(t *testing.T) {
		id, err := sets.Create(ctx, "Fossil", models.NewDate(1999, 10, 10))
		require.NoError(t, err)

		newDate := models.NewDate(1999, 10, 11)
		require.NoError(t, sets.Update(ctx, id, nil, &newDate))

		set, err := sets.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Fossil", set.SetName)
		assert.Equal(t, "1999-10-11", set.ReleaseDate.String())
	})

	t.Run("rarity still referenced", func(t *testing.T) {
		err := rarities.Delete(ctx, rarityList[0].ID)
		assert.Equal(t, sqlerr.ForeignKeyInUse, sqlerr.ErrCode(err))
		assert.Contains(t, err.Error(), "record is still referenced")
	})

	t.Run("delete missing card", func(t *testing.T) {
		assert.ErrorIs(t, cards.Delete(ctx, 9999), sql.ErrNoRows)
	})
}

func TestTradeRepository_Postgres(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	require.NoError(t, NewFixtureRepository(db).Seed(ctx, testSeed()))

	txGetter := TxGetter(func(context.Context) *sqlx.Tx { return nil })
	trades := NewTradeRepository(db, txGetter)
	statuses := NewStatusRepository(db, txGetter)
	users := NewUserRepository(db, txGetter)
	relations := NewUserRelationsRepository(NewUserCardRepository(db, txGetter), NewWishlistRepository(db, txGetter), trades)

	ashName := "AshKetchum"
	ash, err := users.GetByUsernameOrEmail(ctx, &ashName, nil)
	require.NoError(t, err)

	offered, err := relations.TradesOffered(ctx, ash.ID)
	require.NoError(t, err)
	require.Len(t, offered, 1)
	assert.Equal(t, models.StatusPending, offered[0].Status)

	received, err := relations.TradesReceived(ctx, ash.ID)
	require.NoError(t, err)
	assert.Empty(t, received)

	userCards, err := relations.UserCards(ctx, ash.ID)
	require.NoError(t, err)
	require.Len(t, userCards, 1)
	assert.Equal(t, "Charizard", userCards[0].CardName)
	assert.Equal(t, "Mint", userCards[0].ConditionName)

	wishlists, err := relations.Wishlists(ctx, ash.ID)
	require.NoError(t, err)
	require.Len(t, wishlists, 1)
	assert.Equal(t, "Pikachu", wishlists[0].CardName)

	cancelled, err := statuses.GetByName(ctx, models.StatusCancelled)
	require.NoError(t, err)
	require.NoError(t, trades.Update(ctx, offered[0].ID, models.TradeUpdateRequest{StatusID: &cancelled.ID}))

	pending, err := statuses.GetByName(ctx, models.StatusPending)
	require.NoError(t, err)
	require.NoError(t, trades.Update(ctx, offered[0].ID, models.TradeUpdateRequest{StatusID: &pending.ID}))

	trade, err := trades.GetByID(ctx, offered[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, trade.Status)
	assert.Equal(t, 1, trade.OfferingQuantity)

	zero := 0
	err = trades.Update(ctx, trade.ID, models.TradeUpdateRequest{OfferingQuantity: &zero})
	assert.Equal(t, sqlerr.CheckViolation, sqlerr.ErrCode(err))

	_, err = trades.Create(ctx, models.Trade{
		OfferingUserID: ash.ID, ReceivingUserID: ash.ID,
		OfferingCardID: trade.OfferingCardID, ReceivingCardID: trade.ReceivingCardID,
		OfferingQuantity: 1, ReceivingQuantity: 1, StatusID: pending.ID,
	})
	assert.Equal(t, sqlerr.CheckViolation, sqlerr.ErrCode(err))
}
