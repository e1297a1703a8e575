package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/domain"
)

// Composer owns one order-composition flow: the quantity selector, the
// selection state, and the submitter, all guarded by a single lock so UI
// events and late submission results never interleave. It is created empty
// when the flow starts and cleared back to empty after a successful
// submission; a failed attempt preserves everything for retry.
type Composer struct {
	mu         sync.Mutex
	role       domain.Role
	products   []domain.Product
	quantities *QuantitySelector
	selection  domain.SelectionState
	submitter  *Submitter
	logger     *zap.Logger
}

// NewComposer starts a composition flow over a catalog snapshot
func NewComposer(role domain.Role, products []domain.Product, creator OrderCreator, timeout time.Duration, logger *zap.Logger) *Composer {
	return &Composer{
		role:       role,
		products:   products,
		quantities: NewQuantitySelector(),
		submitter:  NewSubmitter(creator, timeout, logger),
		logger:     logger,
	}
}

// Increment adds one unit of a product.
func (c *Composer) Increment(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities.Increment(productID)
}

// Decrement removes one unit of a product, floored at zero.
func (c *Composer) Decrement(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities.Decrement(productID)
}

// SetClient records the chosen client.
func (c *Composer) SetClient(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.SetClient(id)
}

// SetCenter records the chosen distribution center.
func (c *Composer) SetCenter(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.SetCenter(id)
}

// SetDeliveryDate records the chosen delivery date.
func (c *Composer) SetDeliveryDate(d time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.SetDeliveryDate(d)
}

// Role returns the role this flow was started with.
func (c *Composer) Role() domain.Role {
	return c.role
}

// Products returns the catalog snapshot the flow composes against.
func (c *Composer) Products() []domain.Product {
	return c.products
}

// Summary recomputes the display summary from the current quantities.
func (c *Composer) Summary() domain.OrderSummary {
	c.mu.Lock()
	quantities := c.quantities.Snapshot()
	c.mu.Unlock()
	return BuildSummary(c.products, quantities)
}

// State returns the current submission state.
func (c *Composer) State() SubmitState {
	return c.submitter.State()
}

// ClearError blanks the submission error message.
func (c *Composer) ClearError() {
	c.submitter.ClearError()
}

// Subscribe registers a listener for submission state changes.
func (c *Composer) Subscribe(fn func(SubmitState)) {
	c.submitter.Subscribe(fn)
}

// Submit validates the composition and, if it passes, sends it to the
// backend asynchronously. A *domain.ValidationError return means nothing was
// sent. On success the whole flow resets to empty; on failure quantities and
// selections are kept so the user can retry.
func (c *Composer) Submit(authToken string, comments *string) error {
	c.mu.Lock()
	quantities := c.quantities.Snapshot()
	sel := c.selection
	c.mu.Unlock()

	if verr := ValidateOrder(c.role, sel, c.products, quantities); verr != nil {
		c.logger.Debug("Order rejected locally", zap.String("field", verr.Field))
		return verr
	}

	c.submitter.Submit(authToken, c.role, comments, c.products, quantities, sel, func(err error) {
		if err == nil {
			c.clearComposition()
		}
	})
	return nil
}

// Reset clears the whole flow: quantities, selections, and any in-flight
// submission (whose result will be discarded).
func (c *Composer) Reset() {
	c.clearComposition()
	c.submitter.Reset()
}

func (c *Composer) clearComposition() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities.Reset()
	c.selection.Reset()
}

// Store keeps live composition sessions keyed by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Composer
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Composer),
	}
}

// Create registers a new composition flow and returns its session ID.
func (s *Store) Create(composer *Composer) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = composer
	s.mu.Unlock()
	return id
}

// Get looks up a live session.
func (s *Store) Get(id string) (*Composer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	composer, ok := s.sessions[id]
	return composer, ok
}

// Delete removes a finished session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
