package models

// Set is a card set (expansion).
type Set struct {
	ID          int64  `json:"id" db:"id"`
	SetName     string `json:"set_name" db:"set_name"`
	ReleaseDate Date   `json:"release_date" db:"release_date"`
}

// SetCreateRequest represents the JSON body for adding a set
// swagger:model SetCreateRequest
type SetCreateRequest struct {
	// example: Base Set
	SetName string `json:"set_name" validate:"required,max=100"`

	// example: 1999-01-09
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
}

// SetUpdateRequest represents a partial set update
// swagger:model SetUpdateRequest
type SetUpdateRequest struct {
	SetName     *string `json:"set_name" validate:"omitempty,min=1,max=100"`
	ReleaseDate *string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
}

// Rarity is a card rarity tier.
type Rarity struct {
	ID         int64  `json:"id" db:"id"`
	RarityName string `json:"rarity_name" db:"rarity_name"`
}

// RarityRequest is used for both create and update of a rarity
// swagger:model RarityRequest
type RarityRequest struct {
	// example: Holographic Rare
	RarityName string `json:"rarity_name" validate:"required,max=50"`
}

// Condition is the physical grade of an owned card.
type Condition struct {
	ID            int64  `json:"id" db:"id"`
	ConditionName string `json:"condition_name" db:"condition_name"`
}

// ConditionRequest is used for both create and update of a condition
// swagger:model ConditionRequest
type ConditionRequest struct {
	// example: Near Mint
	ConditionName string `json:"condition_name" validate:"required,max=50"`
}

// Trade statuses. The statuses table only accepts these names.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusDeclined  = "Declined"
	StatusCancelled = "Cancelled"
)

// StatusNames lists trade statuses in seed order.
var StatusNames = []string{StatusPending, StatusAccepted, StatusDeclined, StatusCancelled}

// Status is a trade status row.
type Status struct {
	ID         int64  `json:"id" db:"id"`
	StatusName string `json:"status_name" db:"status_name"`
}
