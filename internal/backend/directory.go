package backend

import (
	"context"
	"net/http"

	"github.com/medsupply/orderflow/internal/domain"
)

// Directory fetches feed the client and distribution-center pickers. Their
// failures surface on their own ops ("fetching clients", "fetching
// distribution centers"), kept apart from submission errors.

type clientListResponse struct {
	Clients []domain.ClientOption `json:"clients"`
}

type centerListResponse struct {
	Centers []domain.CenterOption `json:"distribution_centers"`
}

// ListClients fetches the clients the authenticated user may order for.
func (c *Client) ListClients(ctx context.Context, authToken string) ([]domain.ClientOption, error) {
	var resp clientListResponse
	if err := c.do(ctx, "fetching clients", http.MethodGet, "/clients", authToken, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

// ListCenters fetches the selectable distribution centers.
func (c *Client) ListCenters(ctx context.Context, authToken string) ([]domain.CenterOption, error) {
	var resp centerListResponse
	if err := c.do(ctx, "fetching distribution centers", http.MethodGet, "/distribution-centers", authToken, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Centers, nil
}
