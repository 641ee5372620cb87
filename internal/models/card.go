package models

// Card is a card definition in the catalog.
// RarityName and SetName are filled from joins on read.
type Card struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	CardType   string `json:"card_type" db:"card_type"`
	RarityID   int64  `json:"rarity_id" db:"rarity_id"`
	SetID      int64  `json:"set_id" db:"set_id"`
	RarityName string `json:"rarity_name" db:"rarity_name"`
	SetName    string `json:"set_name" db:"set_name"`
}

// CardCreateRequest represents the JSON body for adding a card
// swagger:model CardCreateRequest
type CardCreateRequest struct {
	// required: true
	// example: Charizard
	Name string `json:"name" validate:"required,max=100"`

	// required: true
	// example: Fire
	CardType string `json:"card_type" validate:"required,max=50"`

	// required: true
	// example: 4
	RarityID int64 `json:"rarity_id" validate:"required,gt=0"`

	// required: true
	// example: 1
	SetID int64 `json:"set_id" validate:"required,gt=0"`
}

// CardUpdateRequest represents a partial card update. Absent fields keep their value.
// swagger:model CardUpdateRequest
type CardUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	CardType *string `json:"card_type" validate:"omitempty,min=1,max=50"`
	RarityID *int64  `json:"rarity_id" validate:"omitempty,gt=0"`
	SetID    *int64  `json:"set_id" validate:"omitempty,gt=0"`
}
