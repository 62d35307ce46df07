package entity

import "github.com/shopspring/decimal"

// Product represents a catalog entry. ID is assigned by the store on insert
// and immutable afterward.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	Description string // at most 500 characters in storage
}
