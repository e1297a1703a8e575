package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/medsupply/orderflow/internal/domain"
)

type productPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	PricePerUnit string `json:"price_per_unit"`
}

type catalogResponse struct {
	Products []productPayload `json:"products"`
}

// ListProducts fetches the catalog in backend order, which is the order
// summaries iterate in.
func (c *Client) ListProducts(ctx context.Context, authToken string) ([]domain.Product, error) {
	var resp catalogResponse
	if err := c.do(ctx, "fetching products", http.MethodGet, "/products", authToken, nil, nil, &resp); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp.Products))
	for _, p := range resp.Products {
		price, err := decimal.NewFromString(p.PricePerUnit)
		if err != nil {
			return nil, fmt.Errorf("invalid price for product %s: %w", p.ID, err)
		}
		products = append(products, domain.Product{
			ID:           p.ID,
			Name:         p.Name,
			ImageRef:     p.ImageURL,
			PricePerUnit: price,
		})
	}

	return products, nil
}
