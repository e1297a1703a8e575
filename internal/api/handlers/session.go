package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/backend"
	"github.com/medsupply/orderflow/internal/config"
	"github.com/medsupply/orderflow/internal/domain"
	"github.com/medsupply/orderflow/internal/service"
)

const deliveryDateLayout = "2006-01-02"

// CreateSessionRequest starts a composition flow
type CreateSessionRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateSessionResponse returns the new session handle
type CreateSessionResponse struct {
	SessionID string      `json:"session_id"`
	Role      domain.Role `json:"role"`
}

// UpdateSelectionRequest carries the order-level picks. All fields optional;
// only the ones present are applied.
type UpdateSelectionRequest struct {
	ClientID             *string `json:"client_id"`
	DistributionCenterID *string `json:"distribution_center_id"`
	DeliveryDate         *string `json:"delivery_date"`
}

// SubmitRequest carries the optional order comments
type SubmitRequest struct {
	Comments *string `json:"comments"`
}

type summaryItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type summaryResponse struct {
	Items      []summaryItemResponse `json:"items"`
	GrandTotal string                `json:"grand_total"`
}

type stateResponse struct {
	IsLoading    bool   `json:"is_loading"`
	OrderCreated bool   `json:"order_created"`
	ErrorMessage string `json:"error_message,omitempty"`
	OrderID      string `json:"order_id,omitempty"`
}

// HandleCreateSession handles POST /v1/sessions
func HandleCreateSession(cfg *config.Config, store *service.Store, api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		var req CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		// Snapshot the catalog for the lifetime of the flow; summaries
		// iterate in this order.
		products, err := api.ListProducts(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to fetch catalog for session", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		role := domain.ParseRole(req.Role)
		composer := service.NewComposer(role, products, api, cfg.Backend.Timeout, logger)
		id := store.Create(composer)

		c.JSON(http.StatusCreated, CreateSessionResponse{
			SessionID: id,
			Role:      role,
		})
	}
}

// HandleIncrement handles POST /v1/sessions/:id/items/:productID/increment
func HandleIncrement(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}
		composer.Increment(c.Param("productID"))
		c.Status(http.StatusNoContent)
	}
}

// HandleDecrement handles POST /v1/sessions/:id/items/:productID/decrement
func HandleDecrement(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}
		composer.Decrement(c.Param("productID"))
		c.Status(http.StatusNoContent)
	}
}

// HandleUpdateSelection handles PUT /v1/sessions/:id/selection
func HandleUpdateSelection(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}

		var req UpdateSelectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if req.DeliveryDate != nil {
			date, err := time.Parse(deliveryDateLayout, *req.DeliveryDate)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "delivery_date must be YYYY-MM-DD"})
				return
			}
			composer.SetDeliveryDate(date)
		}
		if req.ClientID != nil {
			composer.SetClient(*req.ClientID)
		}
		if req.DistributionCenterID != nil {
			composer.SetCenter(*req.DistributionCenterID)
		}

		c.Status(http.StatusNoContent)
	}
}

// HandleGetSummary handles GET /v1/sessions/:id/summary
func HandleGetSummary(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}

		summary := composer.Summary()
		items := make([]summaryItemResponse, len(summary.Items))
		for i, item := range summary.Items {
			items[i] = summaryItemResponse{
				ProductID: item.ProductID,
				Name:      item.Name,
				ImageURL:  item.ImageRef,
				Quantity:  item.Quantity,
				LineTotal: item.LineTotal.String(),
			}
		}

		c.JSON(http.StatusOK, summaryResponse{
			Items:      items,
			GrandTotal: summary.GrandTotal.String(),
		})
	}
}

// HandleSubmit handles POST /v1/sessions/:id/submit
func HandleSubmit(store *service.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			return
		}

		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := composer.Submit(token, req.Comments); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": verr.Message,
					"field": verr.Field,
				})
				return
			}
			logger.Error("Submit failed before dispatch", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		// The outcome lands in the session state; clients poll or subscribe.
		c.JSON(http.StatusAccepted, gin.H{"status": "submitting"})
	}
}

// HandleGetState handles GET /v1/sessions/:id/state
func HandleGetState(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}

		state := composer.State()
		c.JSON(http.StatusOK, stateResponse{
			IsLoading:    state.Loading,
			OrderCreated: state.OrderCreated,
			ErrorMessage: state.ErrorMessage,
			OrderID:      state.OrderID,
		})
	}
}

// HandleClearError handles DELETE /v1/sessions/:id/error
func HandleClearError(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}
		composer.ClearError()
		c.Status(http.StatusNoContent)
	}
}

// HandleReset handles POST /v1/sessions/:id/reset
func HandleReset(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		composer, ok := sessionFromPath(c, store)
		if !ok {
			return
		}
		composer.Reset()
		c.Status(http.StatusNoContent)
	}
}

func sessionFromPath(c *gin.Context, store *service.Store) (*service.Composer, bool) {
	composer, ok := store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return composer, true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return token, true
}
