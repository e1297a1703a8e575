package service

import (
	"github.com/medsupply/orderflow/internal/domain"
)

// deliveryDateLayout is the plain calendar-date format the backend expects,
// no time component.
const deliveryDateLayout = "2006-01-02"

// SubmissionRequest is the order-creation payload. Comments and ClientID
// serialize as null when absent; ClientID is present only for commercial
// users.
type SubmissionRequest struct {
	Comments             *string           `json:"comments"`
	DeliveryDate         string            `json:"delivery_date"`
	DistributionCenterID string            `json:"distribution_center_id"`
	ClientID             *string           `json:"client_id"`
	Products             []ProductQuantity `json:"products"`
}

type ProductQuantity struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderResult is what the backend reports for an accepted order.
type CreateOrderResult struct {
	OrderID string `json:"order_id"`
}

// BuildSubmissionRequest assembles the wire payload from a validated
// composition. Only positive quantities make it into the product list, in
// catalog order. Callers must have run ValidateOrder first: center and
// delivery date are dereferenced here.
func BuildSubmissionRequest(
	role domain.Role,
	comments *string,
	sel domain.SelectionState,
	products []domain.Product,
	quantities map[string]int,
) SubmissionRequest {
	req := SubmissionRequest{
		Comments:             comments,
		DeliveryDate:         sel.DeliveryDate.Format(deliveryDateLayout),
		DistributionCenterID: *sel.CenterID,
		Products:             make([]ProductQuantity, 0, len(quantities)),
	}

	// Institutional and other roles never send a client, whatever the
	// selection holds.
	if role.RequiresClient() {
		req.ClientID = sel.ClientID
	}

	for _, p := range products {
		if qty := quantities[p.ID]; qty > 0 {
			req.Products = append(req.Products, ProductQuantity{
				ProductID: p.ID,
				Quantity:  qty,
			})
		}
	}

	return req
}
