package service

import (
	"github.com/medsupply/orderflow/internal/domain"
)

// Validation messages surfaced to the user, one per rule.
const (
	MsgSelectClient  = "select a client"
	MsgSelectCenter  = "select a distribution center"
	MsgSelectDate    = "select a delivery date"
	MsgSelectProduct = "select at least one product"
)

// ValidateOrder runs the submission preconditions in a fixed order and
// returns the first violated one, or nil when the composition is
// submittable. The order decides which single message the user sees when
// several rules fail at once:
//
//  1. commercial users must have picked a client
//  2. a distribution center must be picked
//  3. a delivery date must be picked
//  4. at least one product must have a positive quantity
func ValidateOrder(role domain.Role, sel domain.SelectionState, products []domain.Product, quantities map[string]int) *domain.ValidationError {
	if role.RequiresClient() && sel.ClientID == nil {
		return &domain.ValidationError{Field: "client_id", Message: MsgSelectClient}
	}
	if sel.CenterID == nil {
		return &domain.ValidationError{Field: "distribution_center_id", Message: MsgSelectCenter}
	}
	if sel.DeliveryDate == nil {
		return &domain.ValidationError{Field: "delivery_date", Message: MsgSelectDate}
	}
	if len(products) == 0 || !anyPositive(quantities) {
		return &domain.ValidationError{Field: "products", Message: MsgSelectProduct}
	}
	return nil
}

func anyPositive(quantities map[string]int) bool {
	for _, n := range quantities {
		if n > 0 {
			return true
		}
	}
	return false
}
