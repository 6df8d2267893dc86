package models

import "github.com/shopspring/decimal"

// OpeningHours is one weekday's service window in local "HH:MM" form.
type OpeningHours struct {
	Open   string `json:"open" yaml:"open"`
	Close  string `json:"close" yaml:"close"`
	Closed bool   `json:"closed,omitempty" yaml:"closed"`
}

type SocialMedia struct {
	Instagram string `json:"instagram,omitempty" yaml:"instagram"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter"`
}

type RestaurantInfo struct {
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description" yaml:"description"`
	Address     string                  `json:"address" yaml:"address"`
	Phone       string                  `json:"phone" yaml:"phone"`
	Email       string                  `json:"email" yaml:"email"`
	Hours       map[string]OpeningHours `json:"hours" yaml:"hours"`
	SocialMedia SocialMedia             `json:"social_media" yaml:"social_media"`
}

type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// MenuItem is read-only catalog data. Orders keep a copy of it inside each line
// so later catalog edits never rewrite history.
type MenuItem struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Description     string          `json:"description" yaml:"description"`
	Price           decimal.Decimal `json:"price" yaml:"price"`
	Category        string          `json:"category" yaml:"category"`
	Image           string          `json:"image" yaml:"image"`
	Ingredients     []string        `json:"ingredients" yaml:"ingredients"`
	IsVegetarian    bool            `json:"is_vegetarian" yaml:"vegetarian"`
	IsGlutenFree    bool            `json:"is_gluten_free" yaml:"gluten_free"`
	IsSpicy         bool            `json:"is_spicy" yaml:"spicy"`
	PreparationTime int             `json:"preparation_time_minutes" yaml:"preparation_time"`
	Rating          float64         `json:"rating" yaml:"rating"`
	Reviews         int             `json:"reviews" yaml:"reviews"`
}

// CartLine aggregates every unit of one menu item; ID always equals MenuItem.ID.
type CartLine struct {
	ID                  string   `json:"id"`
	MenuItem            MenuItem `json:"menu_item"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

// Subtotal is price × quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.MenuItem.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
