package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCardService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockUserCardRepository(ctrl)
	svc := services.NewUserCardService(repo)
	ctx := context.Background()

	req := models.UserCardCreateRequest{UserID: 1, CardID: 5, ConditionID: 2}
	created := &models.UserCard{ID: 4, UserID: 1, CardID: 5, ConditionID: 2, Username: "AshKetchum", CardName: "Mewtwo", ConditionName: "Near Mint"}

	repo.EXPECT().Create(gomock.Any(), req).Return(int64(4), nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(created, nil)

	userCard, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created, userCard)

	update := models.UserCardUpdateRequest{ConditionID: int64Ptr(3)}
	repo.EXPECT().Update(gomock.Any(), int64(4), update).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.UserCard{ID: 4, UserID: 1, CardID: 5, ConditionID: 3}, nil)

	userCard, err = svc.Update(ctx, 4, update)
	require.NoError(t, err)
	assert.Equal(t, int64(3), userCard.ConditionID)
	assert.Equal(t, int64(5), userCard.CardID)

	repo.EXPECT().Delete(gomock.Any(), int64(40)).Return(sql.ErrNoRows)
	assert.EqualError(t, svc.Delete(ctx, 40), "User card with ID 40 does not exist")
}

func TestWishlistService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockWishlistRepository(ctrl)
	svc := services.NewWishlistService(repo)
	ctx := context.Background()

	entries := []models.Wishlist{{ID: 1, UserID: 1, CardID: 2, Username: "AshKetchum", CardName: "Pikachu"}}
	repo.EXPECT().List(gomock.Any()).Return(entries, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	repo.EXPECT().GetByID(gomock.Any(), int64(12)).Return(nil, sql.ErrNoRows)
	_, err = svc.Get(ctx, 12)
	assert.EqualError(t, err, "Wishlist with ID 12 does not exist")

	update := models.WishlistUpdateRequest{CardID: int64Ptr(9)}
	repo.EXPECT().Update(gomock.Any(), int64(12), update).Return(sql.ErrNoRows)
	_, err = svc.Update(ctx, 12, update)
	assert.ErrorIs(t, err, services.ErrNotFound)

	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	assert.NoError(t, svc.Delete(ctx, 1))
}
