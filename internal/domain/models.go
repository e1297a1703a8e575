package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Immutable once fetched from the backend.
type Product struct {
	ID           string
	Name         string
	ImageRef     string
	PricePerUnit decimal.Decimal
}

// OrderLineItem is one product with its chosen quantity inside a summary.
// Quantity is always > 0; zero-quantity picks never reach a summary.
type OrderLineItem struct {
	ProductID string
	Name      string
	ImageRef  string
	Quantity  int
	LineTotal decimal.Decimal
}

// OrderSummary is the display view of the current composition. Items follow
// catalog iteration order, not quantity-map order.
type OrderSummary struct {
	Items      []OrderLineItem
	GrandTotal decimal.Decimal
}

// SelectionState holds the order-level choices made so far. Setters do no
// validation; missing fields are caught at submit time.
type SelectionState struct {
	ClientID     *string
	CenterID     *string
	DeliveryDate *time.Time
}

// SetClient records the chosen client
func (s *SelectionState) SetClient(id string) {
	s.ClientID = &id
}

// SetCenter records the chosen distribution center
func (s *SelectionState) SetCenter(id string) {
	s.CenterID = &id
}

// SetDeliveryDate records the chosen delivery date
func (s *SelectionState) SetDeliveryDate(d time.Time) {
	s.DeliveryDate = &d
}

// Reset clears every selection back to the unset state.
func (s *SelectionState) Reset() {
	s.ClientID = nil
	s.CenterID = nil
	s.DeliveryDate = nil
}

// ClientOption is a selectable client from the directory.
type ClientOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CenterOption is a selectable distribution center from the directory.
type CenterOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
