package models

// UserCard is a user's owned copy of a card.
type UserCard struct {
	ID            int64  `json:"id" db:"id"`
	UserID        int64  `json:"user_id" db:"user_id"`
	CardID        int64  `json:"card_id" db:"card_id"`
	ConditionID   int64  `json:"condition_id" db:"condition_id"`
	Username      string `json:"username" db:"username"`
	CardName      string `json:"card_name" db:"card_name"`
	ConditionName string `json:"condition_name" db:"condition_name"`
}

// UserCardCreateRequest represents the JSON body for adding a card copy to a collection
// swagger:model UserCardCreateRequest
type UserCardCreateRequest struct {
	UserID      int64 `json:"user_id" validate:"required,gt=0"`
	CardID      int64 `json:"card_id" validate:"required,gt=0"`
	ConditionID int64 `json:"condition_id" validate:"required,gt=0"`
}

// UserCardUpdateRequest represents a partial user card update
// swagger:model UserCardUpdateRequest
type UserCardUpdateRequest struct {
	UserID      *int64 `json:"user_id" validate:"omitempty,gt=0"`
	CardID      *int64 `json:"card_id" validate:"omitempty,gt=0"`
	ConditionID *int64 `json:"condition_id" validate:"omitempty,gt=0"`
}

// Wishlist is a card a user wants to obtain.
type Wishlist struct {
	ID       int64  `json:"id" db:"id"`
	UserID   int64  `json:"user_id" db:"user_id"`
	CardID   int64  `json:"card_id" db:"card_id"`
	Username string `json:"username" db:"username"`
	CardName string `json:"card_name" db:"card_name"`
}

// WishlistCreateRequest represents the JSON body for adding a wishlist entry
// swagger:model WishlistCreateRequest
type WishlistCreateRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	CardID int64 `json:"card_id" validate:"required,gt=0"`
}

// WishlistUpdateRequest represents a partial wishlist update
// swagger:model WishlistUpdateRequest
type WishlistUpdateRequest struct {
	UserID *int64 `json:"user_id" validate:"omitempty,gt=0"`
	CardID *int64 `json:"card_id" validate:"omitempty,gt=0"`
}
