package product

import "time"

// Product is a menu entry. Prices are integer centavos. Sales counts how
// many units have been ordered, bumped by the order flow.
type Product struct {
	ID          int       `json:"productId"`
	StoreID     int       `json:"storeId"`
	CategoryID  int       `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Sales       int       `json:"sales"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	StatusActive    = "active"
	StatusArchived  = "archived"
	StatusDeleted   = "deleted"
	StatusSuspended = "suspended"
)

// Product types: a main dish, a side, or a paid extra.
const (
	TypeMain  = "main"
	TypeSide  = "side"
	TypeExtra = "extra"
)
