package browse

import (
	"context"
	"sync"

	"github.com/pexcat/pex/internal/catalog"
)

// ErrFetchFailed is the generic retryable message surfaced to the user when
// a listing fetch fails. The user recovers by changing a filter or
// re-triggering the fetch; there is no automatic retry.
const ErrFetchFailed = "Failed to fetch products. Try again."

// Listing is the observable listing state: the current page of products,
// the total count, the loading flag and the user-facing error. The three
// always change together under the coordinator's lock, so a reader never
// sees loading=false next to a stale error or product set.
type Listing struct {
	Products []catalog.Product
	Total    int
	Loading  bool
	Err      string
}

// Coordinator owns the request lifecycle for the two independent fetch
// streams: the product listing and the one-shot categories load. Each
// stream has a monotonically increasing token; issuing a new request
// supersedes the previous one, whose eventual resolution is discarded
// unconditionally. Token comparison, not response timing, is what keeps an
// older response from ever overwriting newer state.
type Coordinator struct {
	mu sync.Mutex

	listingToken  uint64
	listingCancel context.CancelFunc
	listing       Listing

	categoriesToken  uint64
	categoriesCancel context.CancelFunc
	categories       []catalog.Category
}

// IssueListing begins a new listing request, superseding any in-flight one.
// It returns the request token and the context the fetch must run under;
// the context is cancelled the moment a newer request is issued or the
// coordinator is torn down.
func (c *Coordinator) IssueListing(parent context.Context) (uint64, context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listingCancel != nil {
		c.listingCancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.listingCancel = cancel
	c.listingToken++
	c.listing.Loading = true
	c.listing.Err = ""
	return c.listingToken, ctx
}

// ResolveListing applies a completed fetch. It reports whether the result
// was applied: a stale token (superseded request) changes nothing and
// returns false. On success the product set is replaced wholesale; on
// failure the products are cleared, total drops to zero and the generic
// retryable message is surfaced.
func (c *Coordinator) ResolveListing(token uint64, page catalog.ResultPage, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.listingToken {
		return false
	}
	c.listing.Loading = false
	if err != nil {
		c.listing.Products = nil
		c.listing.Total = 0
		c.listing.Err = ErrFetchFailed
		return true
	}
	c.listing.Products = clone(page.Products)
	c.listing.Total = page.Total
	c.listing.Err = ""
	return true
}

// Listing returns a copy of the current listing state.
func (c *Coordinator) Listing() Listing {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.listing
	out.Products = clone(c.listing.Products)
	return out
}

// IssueCategories begins a categories request. Categories are an
// independent stream: issuing or resolving one never touches listing state.
func (c *Coordinator) IssueCategories(parent context.Context) (uint64, context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.categoriesCancel != nil {
		c.categoriesCancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.categoriesCancel = cancel
	c.categoriesToken++
	return c.categoriesToken, ctx
}

// ResolveCategories applies a completed categories fetch. Failure leaves
// the category list empty; the caller logs it and the UI simply offers no
// category filter.
func (c *Coordinator) ResolveCategories(token uint64, cats []catalog.Category, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.categoriesToken {
		return false
	}
	if err != nil {
		return true
	}
	c.categories = clone(cats)
	return true
}

// Categories returns a copy of the loaded categories.
func (c *Coordinator) Categories() []catalog.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.categories)
}

// Teardown cancels all outstanding requests and invalidates their tokens so
// late responses are dropped. Safe to call more than once.
func (c *Coordinator) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listingCancel != nil {
		c.listingCancel()
		c.listingCancel = nil
	}
	if c.categoriesCancel != nil {
		c.categoriesCancel()
		c.categoriesCancel = nil
	}
	c.listingToken++
	c.categoriesToken++
	c.listing.Loading = false
}

func clone[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
