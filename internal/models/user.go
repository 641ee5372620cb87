package models

// User represents a user record in the database
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`
}

// UserDetail is a user with the records it owns or takes part in.
type UserDetail struct {
	User
	UserCards      []UserCard `json:"user_cards"`
	TradesOffered  []Trade    `json:"trades_offered"`
	TradesReceived []Trade    `json:"trades_received"`
	Wishlists      []Wishlist `json:"wishlists"`
}

// UserCreateRequest represents the JSON body for creating a user as an admin
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// example: AshKetchum
	Username string `json:"username" validate:"required,min=2,max=100"`

	// example: ash@pallet.com
	Email string `json:"email" validate:"required,email,max=255"`

	// example: pikachu
	Password string `json:"password" validate:"required,min=4,max=72"`

	IsAdmin bool `json:"is_admin"`
}

// UserUpdateRequest represents a partial user update
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=4,max=72"`
	IsAdmin  *bool   `json:"is_admin"`
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,min=2,max=100"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=4,max=72"`

	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	Token string `json:"token"`
}
