package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/service"
)

// CreateOrder posts a composed order to the backend. Each attempt carries a
// fresh idempotency key so the backend can dedupe retried deliveries of the
// same attempt without collapsing deliberate retries.
func (c *Client) CreateOrder(ctx context.Context, authToken string, req service.SubmissionRequest) (service.CreateOrderResult, error) {
	idempotencyKey := uuid.New().String()

	var result service.CreateOrderResult
	err := c.do(ctx, "creating order", http.MethodPost, "/orders", authToken,
		map[string]string{"X-Idempotency-Key": idempotencyKey}, req, &result)
	if err != nil {
		return service.CreateOrderResult{}, err
	}

	c.logger.Info("Order accepted by backend",
		zap.String("order_id", result.OrderID),
		zap.String("idempotency_key", idempotencyKey),
	)
	return result, nil
}
