package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeService_Create(t *testing.T) {
	ctx := context.Background()
	pending := &models.Status{ID: 1, StatusName: models.StatusPending}

	t.Run("defaults quantities and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := services.NewMockTradeRepository(ctrl)
		statuses := services.NewMockStatusFinder(ctrl)
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewTradeService(repo, statuses, writer)

		req := models.TradeCreateRequest{OfferingUserID: 1, ReceivingUserID: 2, OfferingCardID: 1, ReceivingCardID: 2}
		stored := models.Trade{
			OfferingUserID: 1, ReceivingUserID: 2, OfferingCardID: 1, ReceivingCardID: 2,
			OfferingQuantity: 1, ReceivingQuantity: 1, StatusID: 1,
		}
		created := stored
		created.ID = 3
		created.Status = models.StatusPending

		statuses.EXPECT().GetByName(gomock.Any(), models.StatusPending).Return(pending, nil)
		repo.EXPECT().Create(gomock.Any(), stored).Return(int64(3), nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&created, nil)
		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "3", string(msgs[0].Key))

				var event models.TradeEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, int64(3), event.TradeID)
				assert.Equal(t, models.TradeCreated, event.Operation)
				assert.Equal(t, models.StatusPending, event.Status)
				assert.NotEmpty(t, event.EventID)
				return nil
			})

		trade, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, &created, trade)
	})

	t.Run("explicit status skips lookup and publish failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := services.NewMockTradeRepository(ctrl)
		statuses := services.NewMockStatusFinder(ctrl)
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewTradeService(repo, statuses, writer)

		req := models.TradeCreateRequest{
			OfferingUserID: 2, ReceivingUserID: 1, OfferingCardID: 2, ReceivingCardID: 1,
			OfferingQuantity: 2, ReceivingQuantity: 1, StatusID: int64Ptr(2),
		}
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr models.Trade) (int64, error) {
				assert.Equal(t, int64(2), tr.StatusID)
				assert.Equal(t, 2, tr.OfferingQuantity)
				return 4, nil
			})
		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.Trade{ID: 4, StatusID: 2, Status: models.StatusAccepted}, nil)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		trade, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(4), trade.ID)
	})

	t.Run("rejected before storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := services.NewTradeService(services.NewMockTradeRepository(ctrl), services.NewMockStatusFinder(ctrl), nil)

		_, err := svc.Create(ctx, models.TradeCreateRequest{OfferingUserID: 1, ReceivingUserID: 1, OfferingCardID: 1, ReceivingCardID: 2})
		assert.ErrorIs(t, err, services.ErrSameUserTrade)

		_, err = svc.Create(ctx, models.TradeCreateRequest{OfferingUserID: 1, ReceivingUserID: 2, OfferingCardID: 1, ReceivingCardID: 2, OfferingQuantity: -1})
		assert.ErrorIs(t, err, services.ErrInvalidTradeQuantities)
	})

	t.Run("statuses not seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		statuses := services.NewMockStatusFinder(ctrl)
		svc := services.NewTradeService(services.NewMockTradeRepository(ctrl), statuses, nil)

		statuses.EXPECT().GetByName(gomock.Any(), models.StatusPending).Return(nil, sql.ErrNoRows)

		_, err := svc.Create(ctx, models.TradeCreateRequest{OfferingUserID: 1, ReceivingUserID: 2, OfferingCardID: 1, ReceivingCardID: 2})
		assert.ErrorIs(t, err, services.ErrStatusNotSeeded)
	})
}

func TestTradeService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockTradeRepository(ctrl)
	svc := services.NewTradeService(repo, services.NewMockStatusFinder(ctrl), nil)
	ctx := context.Background()

	// Cancelled back to Pending is allowed.
	req := models.TradeUpdateRequest{StatusID: int64Ptr(1)}
	repo.EXPECT().Update(gomock.Any(), int64(2), req).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Trade{ID: 2, StatusID: 1, Status: models.StatusPending}, nil)

	trade, err := svc.Update(ctx, 2, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, trade.Status)

	repo.EXPECT().Update(gomock.Any(), int64(20), req).Return(sql.ErrNoRows)
	_, err = svc.Update(ctx, 20, req)
	assert.EqualError(t, err, "Trade with ID 20 does not exist")

	repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	assert.NoError(t, svc.Delete(ctx, 2))

	repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.Delete(ctx, 2), services.ErrNotFound)
}

func TestTradeService_UpdateSameUser(t *testing.T) {
	ctx := context.Background()
	current := &models.Trade{ID: 2, OfferingUserID: 1, ReceivingUserID: 2, StatusID: 1, Status: models.StatusPending}

	tests := []struct {
		name    string
		req     models.TradeUpdateRequest
		setup   func(repo *services.MockTradeRepository)
		wantErr error
	}{
		{
			name:    "both users in request",
			req:     models.TradeUpdateRequest{OfferingUserID: int64Ptr(3), ReceivingUserID: int64Ptr(3)},
			setup:   func(repo *services.MockTradeRepository) {},
			wantErr: services.ErrSameUserTrade,
		},
		{
			name: "receiving user set to current offering user",
			req:  models.TradeUpdateRequest{ReceivingUserID: int64Ptr(1)},
			setup: func(repo *services.MockTradeRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(current, nil)
			},
			wantErr: services.ErrSameUserTrade,
		},
		{
			name: "offering user on missing trade",
			req:  models.TradeUpdateRequest{OfferingUserID: int64Ptr(2)},
			setup: func(repo *services.MockTradeRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, sql.ErrNoRows)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name: "distinct users after merge",
			req:  models.TradeUpdateRequest{OfferingUserID: int64Ptr(5)},
			setup: func(repo *services.MockTradeRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(current, nil)
				repo.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(nil)
				repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(current, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := services.NewMockTradeRepository(ctrl)
			tt.setup(repo)
			svc := services.NewTradeService(repo, services.NewMockStatusFinder(ctrl), nil)

			_, err := svc.Update(ctx, 2, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
