// Package model defines the core domain entities for the POS terminal.
package model

import "github.com/shopspring/decimal"

// MenuItem is a single entry of a café menu. Items are immutable once
// loaded from the Gateway; the terminal never edits them in place.
type MenuItem struct {
	// ID is the menu item identifier assigned by the Gateway.
	ID int `json:"id"`
	// Name is the display name of the item.
	Name string `json:"name"`
	// Category groups items on the menu (e.g. "Hot Drinks").
	Category string `json:"category"`
	// Price is the unit price. Never negative.
	Price decimal.Decimal `json:"price"`
}

// CartLine is one menu item's selected quantity within the current,
// unsubmitted order. A line only exists while its quantity is positive.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderLine is one line of an order payload sent to the Gateway.
type OrderLine struct {
	ItemID   int             `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
