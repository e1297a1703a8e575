package service

// QuantitySelector tracks how many units of each product the user has picked.
// Quantities are floor-clamped at zero; entries decremented back to zero stay
// in the map but never surface in summaries or requests.
//
// Not safe for concurrent use; callers confine access to one goroutine or
// wrap it the way Composer does.
type QuantitySelector struct {
	counts map[string]int
}

// NewQuantitySelector creates an empty selector
func NewQuantitySelector() *QuantitySelector {
	return &QuantitySelector{
		counts: make(map[string]int),
	}
}

// Increment adds one unit of the given product. There is no upper bound.
func (q *QuantitySelector) Increment(productID string) {
	q.counts[productID]++
}

// Decrement removes one unit of the given product, never going below zero.
func (q *QuantitySelector) Decrement(productID string) {
	if q.counts[productID] > 0 {
		q.counts[productID]--
	}
}

// Quantity returns the current count for a product, zero if never touched.
func (q *QuantitySelector) Quantity(productID string) int {
	return q.counts[productID]
}

// Snapshot returns an independent copy of the current mapping. Mutating the
// selector afterwards does not affect the returned map.
func (q *QuantitySelector) Snapshot() map[string]int {
	out := make(map[string]int, len(q.counts))
	for id, n := range q.counts {
		out[id] = n
	}
	return out
}

// Reset drops every quantity back to the initial empty state.
func (q *QuantitySelector) Reset() {
	q.counts = make(map[string]int)
}
