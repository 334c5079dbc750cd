package gallery

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/observability"
)

// Limits gate the collection size.
type Limits struct {
	// Min is the count at which the wall layout activates.
	Min int
	// Max is the capacity; adds beyond it are rejected.
	Max int
}

// DefaultLimits are the photo wall's thresholds.
var DefaultLimits = Limits{Min: 10, Max: 100}

// Validate checks that 0 <= Min <= Max and Max > 0.
func (l Limits) Validate() error {
	if l.Max <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max images must be positive, got %d", l.Max)
	}
	if l.Min < 0 || l.Min > l.Max {
		return errors.New(errors.ErrCodeInvalidInput, "min images must be within [0, %d], got %d", l.Max, l.Min)
	}
	return nil
}

// Collection is an ordered, capacity-bounded list of handles.
// It is safe for concurrent use; observers run outside the lock.
type Collection struct {
	mu        sync.Mutex
	limits    Limits
	handles   []Handle
	observers []func(n int)
}

// NewCollection returns an empty collection with the given limits.
func NewCollection(l Limits) *Collection {
	return &Collection{limits: l}
}

// Limits returns the collection's thresholds.
func (c *Collection) Limits() Limits { return c.limits }

// Len returns the number of handles.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Handles returns a copy of the handles in insertion order.
func (c *Collection) Handles() []Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.handles)
}

// Names returns the display names in insertion order.
func (c *Collection) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, len(c.handles))
	for i, h := range c.handles {
		names[i] = h.Name
	}
	return names
}

// Add appends handles until capacity is reached and returns how many were
// accepted. If any were dropped the error is a CAPACITY_EXCEEDED advisory;
// already-accepted handles are unaffected.
func (c *Collection) Add(hs ...Handle) (int, error) {
	c.mu.Lock()
	room := max(c.limits.Max-len(c.handles), 0)
	accepted := min(room, len(hs))
	c.handles = append(c.handles, hs[:accepted]...)
	n := len(c.handles)
	c.mu.Unlock()

	if accepted > 0 {
		c.notify(n)
	}
	if accepted < len(hs) {
		return accepted, errors.New(errors.ErrCodeCapacityExceeded,
			"at most %d images; accepted %d of %d", c.limits.Max, accepted, len(hs))
	}
	return accepted, nil
}

// Remove drops the handle with the given ID.
func (c *Collection) Remove(id uuid.UUID) bool {
	c.mu.Lock()
	i := slices.IndexFunc(c.handles, func(h Handle) bool { return h.ID == id })
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.handles = slices.Delete(c.handles, i, i+1)
	n := len(c.handles)
	c.mu.Unlock()

	c.notify(n)
	return true
}

// Reset discards every handle.
func (c *Collection) Reset() {
	c.mu.Lock()
	had := len(c.handles)
	c.handles = nil
	c.mu.Unlock()

	if had > 0 {
		c.notify(0)
	}
}

// Ready returns an INSUFFICIENT_IMAGES advisory while fewer than Min
// handles are present.
func (c *Collection) Ready() error {
	n := c.Len()
	if n < c.limits.Min {
		return errors.New(errors.ErrCodeInsufficientImages,
			"add at least %d images to build the wall (have %d)", c.limits.Min, n)
	}
	return nil
}

// OnChange registers fn to be called with the new length after every change.
func (c *Collection) OnChange(fn func(n int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Collection) notify(n int) {
	c.mu.Lock()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	observability.Wall().OnCollectionChange(n)
	for _, fn := range observers {
		fn(n)
	}
}
