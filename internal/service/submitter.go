package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/domain"
)

// OrderCreator is the backend collaborator that accepts a composed order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, authToken string, req SubmissionRequest) (CreateOrderResult, error)
}

// SubmitState is the observable submission state exposed to callers.
// ErrorMessage is never cleared implicitly; callers clear it before
// re-display.
type SubmitState struct {
	Loading      bool
	OrderCreated bool
	ErrorMessage string
	OrderID      string
}

// Submitter drives one composition's submission lifecycle:
// idle → submitting → succeeded or failed, re-enterable from either end
// state. Results from the backend are applied under the submitter's lock, so
// a late callback never races a user action; results that arrive after a
// Reset (or after a newer Submit) carry a stale generation and are dropped
// instead of applied.
type Submitter struct {
	creator OrderCreator
	timeout time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	state    SubmitState
	gen      uint64
	onChange func(SubmitState)
}

// NewSubmitter creates a submitter with a per-attempt timeout
func NewSubmitter(creator OrderCreator, timeout time.Duration, logger *zap.Logger) *Submitter {
	return &Submitter{
		creator: creator,
		timeout: timeout,
		logger:  logger,
	}
}

// State returns a copy of the current submission state.
func (s *Submitter) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener invoked after every state change. The
// listener runs outside the submitter's lock.
func (s *Submitter) Subscribe(fn func(SubmitState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// ClearError blanks the error message. Nothing clears it implicitly.
func (s *Submitter) ClearError() {
	s.mu.Lock()
	s.state.ErrorMessage = ""
	snap, fn := s.state, s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// Reset returns the submitter to idle and invalidates any in-flight attempt;
// its result will be discarded when it lands.
func (s *Submitter) Reset() {
	s.mu.Lock()
	s.gen++
	s.state = SubmitState{}
	snap, fn := s.state, s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// Submit builds the wire request from an already-validated composition and
// sends it asynchronously. The call returns as soon as the attempt is in
// flight; the outcome lands in State and, when non-nil, in done. A second
// Submit while one is in flight is not prevented — it supersedes the first,
// whose result is then discarded.
func (s *Submitter) Submit(
	authToken string,
	role domain.Role,
	comments *string,
	products []domain.Product,
	quantities map[string]int,
	sel domain.SelectionState,
	done func(err error),
) {
	req := BuildSubmissionRequest(role, comments, sel, products, quantities)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state.Loading = true
	snap, fn := s.state, s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		res, err := s.creator.CreateOrder(ctx, authToken, req)
		s.apply(gen, res, err, done)
	}()
}

// apply marshals a backend result back into the submitter's state. Stale
// generations are dropped without touching state or calling done.
func (s *Submitter) apply(gen uint64, res CreateOrderResult, err error, done func(error)) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug("Discarding stale submission result", zap.Uint64("generation", gen))
		return
	}

	s.state.Loading = false
	if err != nil {
		s.state.ErrorMessage = err.Error()
		s.logger.Error("Order submission failed", zap.Error(err))
	} else {
		s.state.OrderCreated = true
		s.state.OrderID = res.OrderID
		s.logger.Info("Order created", zap.String("order_id", res.OrderID))
	}
	snap, fn := s.state, s.onChange
	s.mu.Unlock()

	// done runs before the change notification so follow-up work (like the
	// composer clearing itself after success) is finished by the time
	// subscribers observe the terminal state.
	if done != nil {
		done(err)
	}
	if fn != nil {
		fn(snap)
	}
}
