package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/domain"
	"github.com/medsupply/orderflow/internal/service"
)

func newComposer(role domain.Role, creator service.OrderCreator) *service.Composer {
	catalog := []domain.Product{
		product("1", "Gauze", "10.0"),
		product("2", "Gloves", "3.5"),
	}
	return service.NewComposer(role, catalog, creator, time.Second, zap.NewNop())
}

// watchResults must be wired before Submit so the terminal notification
// cannot be missed.
func watchResults(c *service.Composer) chan service.SubmitState {
	results := make(chan service.SubmitState, 4)
	c.Subscribe(func(s service.SubmitState) {
		if !s.Loading {
			results <- s
		}
	})
	return results
}

func waitForResult(t *testing.T, results chan service.SubmitState) service.SubmitState {
	t.Helper()
	select {
	case s := <-results:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not finish")
		return service.SubmitState{}
	}
}

func TestComposer_SummaryFollowsMutations(t *testing.T) {
	c := newComposer(domain.RoleInstitutional, nil)

	c.Increment("1")
	c.Increment("1")
	c.Increment("2")
	c.Decrement("2")

	summary := c.Summary()
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "1", summary.Items[0].ProductID)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, "20", summary.GrandTotal.String())
}

func TestComposer_SubmitBlockedByValidation(t *testing.T) {
	creator := &mockOrderCreator{
		createFunc: func(ctx context.Context, token string, req service.SubmissionRequest) (service.CreateOrderResult, error) {
			t.Fatal("validation failure must not reach the backend")
			return service.CreateOrderResult{}, nil
		},
	}
	c := newComposer(domain.RoleCommercial, creator)
	c.Increment("1")

	err := c.Submit("token", nil)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, service.MsgSelectClient, verr.Message)

	// Nothing was dispatched; the flow is still idle.
	assert.False(t, c.State().Loading)
}

func TestComposer_SuccessResetsComposition(t *testing.T) {
	creator := &mockOrderCreator{
		createFunc: func(ctx context.Context, token string, req service.SubmissionRequest) (service.CreateOrderResult, error) {
			return service.CreateOrderResult{OrderID: "ord-1"}, nil
		},
	}
	c := newComposer(domain.RoleInstitutional, creator)
	c.Increment("1")
	c.SetCenter("dc-7")
	c.SetDeliveryDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))

	results := watchResults(c)
	require.NoError(t, c.Submit("token", nil))
	state := waitForResult(t, results)
	assert.True(t, state.OrderCreated)

	// Quantities and selections are back to empty: an immediate resubmit
	// fails the center rule again.
	assert.Empty(t, c.Summary().Items)
	err := c.Submit("token", nil)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, service.MsgSelectCenter, verr.Message)
}

func TestComposer_FailurePreservesCompositionForRetry(t *testing.T) {
	fail := true
	creator := &mockOrderCreator{
		createFunc: func(ctx context.Context, token string, req service.SubmissionRequest) (service.CreateOrderResult, error) {
			if fail {
				return service.CreateOrderResult{}, &domain.RequestError{Op: "creating order", Kind: domain.KindServer, Status: 500}
			}
			return service.CreateOrderResult{OrderID: "ord-1"}, nil
		},
	}
	c := newComposer(domain.RoleInstitutional, creator)
	c.Increment("1")
	c.SetCenter("dc-7")
	c.SetDeliveryDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))

	results := watchResults(c)
	require.NoError(t, c.Submit("token", nil))
	state := waitForResult(t, results)
	assert.False(t, state.OrderCreated)
	assert.Equal(t, "Error creating order: status 500", state.ErrorMessage)

	// Everything is still in place; retrying needs no re-entry.
	require.Len(t, c.Summary().Items, 1)
	fail = false
	require.NoError(t, c.Submit("token", nil))
	state = waitForResult(t, results)
	assert.True(t, state.OrderCreated)
}

func TestComposer_ResetClearsEverything(t *testing.T) {
	c := newComposer(domain.RoleInstitutional, nil)
	c.Increment("1")
	c.SetCenter("dc-7")

	c.Reset()

	assert.Empty(t, c.Summary().Items)
	state := c.State()
	assert.False(t, state.Loading)
	assert.False(t, state.OrderCreated)
	assert.Empty(t, state.ErrorMessage)
}

func TestStore(t *testing.T) {
	store := service.NewStore()
	c := newComposer(domain.RoleInstitutional, nil)

	id := store.Create(c)
	require.NotEmpty(t, id)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Delete(id)
	_, ok = store.Get(id)
	assert.False(t, ok)
}
