package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=trade.go -destination=trade_mock.go -package=services

// TradeRepository stores trades.
type TradeRepository interface {
	List(ctx context.Context) ([]models.Trade, error)
	GetByID(ctx context.Context, id int64) (*models.Trade, error)
	Create(ctx context.Context, t models.Trade) (int64, error)
	Update(ctx context.Context, id int64, req models.TradeUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

// StatusFinder resolves a trade status by name.
type StatusFinder interface {
	GetByName(ctx context.Context, name string) (*models.Status, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TradeService manages trades and publishes their changes.
type TradeService struct {
	repo        TradeRepository
	statuses    StatusFinder
	kafkaWriter KafkaWriter
}

// NewTradeService creates a TradeService. kafkaWriter may be nil.
func NewTradeService(repo TradeRepository, statuses StatusFinder, kafkaWriter KafkaWriter) *TradeService {
	return &TradeService{
		repo:        repo,
		statuses:    statuses,
		kafkaWriter: kafkaWriter,
	}
}

func (s *TradeService) List(ctx context.Context) ([]models.Trade, error) {
	trades, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list trades", "error", err)
		return nil, err
	}
	return trades, nil
}

func (s *TradeService) Get(ctx context.Context, id int64) (*models.Trade, error) {
	trade, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Trade", id)
	}
	return trade, nil
}

// Create proposes a trade. Missing quantities default to 1 and a missing
// status defaults to Pending.
func (s *TradeService) Create(ctx context.Context, req models.TradeCreateRequest) (*models.Trade, error) {
	if req.OfferingUserID == req.ReceivingUserID {
		return nil, ErrSameUserTrade
	}
	if req.OfferingQuantity < 0 || req.ReceivingQuantity < 0 {
		return nil, ErrInvalidTradeQuantities
	}

	t := models.Trade{
		OfferingUserID:    req.OfferingUserID,
		ReceivingUserID:   req.ReceivingUserID,
		OfferingCardID:    req.OfferingCardID,
		ReceivingCardID:   req.ReceivingCardID,
		OfferingQuantity:  defaultQuantity(req.OfferingQuantity),
		ReceivingQuantity: defaultQuantity(req.ReceivingQuantity),
	}

	if req.StatusID != nil {
		t.StatusID = *req.StatusID
	} else {
		pending, err := s.statuses.GetByName(ctx, models.StatusPending)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrStatusNotSeeded
			}
			logger.Log.Errorw("failed to resolve pending status", "error", err)
			return nil, err
		}
		t.StatusID = pending.ID
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		logger.Log.Errorw("failed to create trade",
			"offering_user_id", t.OfferingUserID, "receiving_user_id", t.ReceivingUserID, "error", err)
		return nil, err
	}

	trade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, trade.ID, models.TradeCreated, trade.Status)
	return trade, nil
}

// Update changes the fields present in req. Any status can be set regardless of the current one.
func (s *TradeService) Update(ctx context.Context, id int64, req models.TradeUpdateRequest) (*models.Trade, error) {
	if req.OfferingUserID != nil || req.ReceivingUserID != nil {
		if err := s.checkDistinctUsers(ctx, id, req); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		err = notFound(err, "Trade", id)
		logger.Log.Errorw("failed to update trade", "id", id, "error", err)
		return nil, err
	}

	trade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, trade.ID, models.TradeUpdated, trade.Status)
	return trade, nil
}

// checkDistinctUsers rejects an update that would leave one user on both sides of the trade.
func (s *TradeService) checkDistinctUsers(ctx context.Context, id int64, req models.TradeUpdateRequest) error {
	offering, receiving := req.OfferingUserID, req.ReceivingUserID
	if offering == nil || receiving == nil {
		current, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		if offering == nil {
			offering = &current.OfferingUserID
		}
		if receiving == nil {
			receiving = &current.ReceivingUserID
		}
	}
	if *offering == *receiving {
		return ErrSameUserTrade
	}
	return nil
}

func (s *TradeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = notFound(err, "Trade", id)
		logger.Log.Errorw("failed to delete trade", "id", id, "error", err)
		return err
	}
	s.publish(ctx, id, models.TradeDeleted, "")
	return nil
}

// publish sends a trade event to Kafka. Failures are logged and never fail the caller.
func (s *TradeService) publish(ctx context.Context, tradeID int64, operation, status string) {
	event := models.TradeEvent{
		EventID:   uuid.NewString(),
		TradeID:   tradeID,
		Operation: operation,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "trade_id", tradeID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal trade event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(tradeID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish trade event to Kafka", "event_id", event.EventID, "trade_id", tradeID, "error", err)
	} else {
		logger.Log.Infow("Trade event published to Kafka", "event_id", event.EventID, "trade_id", tradeID, "operation", operation)
	}
}

func defaultQuantity(q int) int {
	if q == 0 {
		return 1
	}
	return q
}
