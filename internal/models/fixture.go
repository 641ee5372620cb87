package models

// Seed describes the fixture rows inserted by seeding. Cross references are
// indexes into the sibling slices, resolved to ids at insert time.
type Seed struct {
	Sets       []Set
	Rarities   []string
	Conditions []string
	Cards      []SeedCard
	Users      []User
	Wishlists  []SeedWishlist
	UserCards  []SeedUserCard
	Statuses   []string
	Trades     []SeedTrade
}

type SeedCard struct {
	Name     string
	CardType string
	Rarity   int
	Set      int
}

type SeedWishlist struct {
	User int
	Card int
}

type SeedUserCard struct {
	User      int
	Card      int
	Condition int
}

type SeedTrade struct {
	OfferingUser      int
	ReceivingUser     int
	OfferingCard      int
	ReceivingCard     int
	OfferingQuantity  int
	ReceivingQuantity int
	Status            int
}

// TableCounts maps table name to row count.
type TableCounts map[string]int
