package models

// Trade is a proposed exchange of cards between two users.
type Trade struct {
	ID                int64  `json:"id" db:"id"`
	OfferingUserID    int64  `json:"offering_user_id" db:"offering_user_id"`
	ReceivingUserID   int64  `json:"receiving_user_id" db:"receiving_user_id"`
	OfferingCardID    int64  `json:"offering_card_id" db:"offering_card_id"`
	ReceivingCardID   int64  `json:"receiving_card_id" db:"receiving_card_id"`
	OfferingQuantity  int    `json:"offering_quantity" db:"offering_quantity"`
	ReceivingQuantity int    `json:"receiving_quantity" db:"receiving_quantity"`
	StatusID          int64  `json:"status_id" db:"status_id"`
	Status            string `json:"status" db:"status_name"`
}

// TradeCreateRequest represents the JSON body for proposing a trade.
// Quantities default to 1 and the status defaults to Pending.
// swagger:model TradeCreateRequest
type TradeCreateRequest struct {
	OfferingUserID    int64  `json:"offering_user_id" validate:"required,gt=0"`
	ReceivingUserID   int64  `json:"receiving_user_id" validate:"required,gt=0,nefield=OfferingUserID"`
	OfferingCardID    int64  `json:"offering_card_id" validate:"required,gt=0"`
	ReceivingCardID   int64  `json:"receiving_card_id" validate:"required,gt=0"`
	OfferingQuantity  int    `json:"offering_quantity" validate:"gte=0"`
	ReceivingQuantity int    `json:"receiving_quantity" validate:"gte=0"`
	StatusID          *int64 `json:"status_id" validate:"omitempty,gt=0"`
}

// TradeUpdateRequest represents a partial trade update. Any status may be set.
// swagger:model TradeUpdateRequest
type TradeUpdateRequest struct {
	OfferingUserID    *int64 `json:"offering_user_id" validate:"omitempty,gt=0"`
	ReceivingUserID   *int64 `json:"receiving_user_id" validate:"omitempty,gt=0"`
	OfferingCardID    *int64 `json:"offering_card_id" validate:"omitempty,gt=0"`
	ReceivingCardID   *int64 `json:"receiving_card_id" validate:"omitempty,gt=0"`
	OfferingQuantity  *int   `json:"offering_quantity" validate:"omitempty,gt=0"`
	ReceivingQuantity *int   `json:"receiving_quantity" validate:"omitempty,gt=0"`
	StatusID          *int64 `json:"status_id" validate:"omitempty,gt=0"`
}

// Trade event operations.
const (
	TradeCreated = "created"
	TradeUpdated = "updated"
	TradeDeleted = "deleted"
)

// TradeEvent is published to Kafka whenever a trade changes.
type TradeEvent struct {
	EventID   string `json:"event_id"`
	TradeID   int64  `json:"trade_id"`
	Operation string `json:"operation"`
	Status    string `json:"status,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
