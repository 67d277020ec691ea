// Package browse holds the client-side browsing state: the filter
// dimensions, derived pagination, and the fetch coordinator that guarantees
// only the most recently issued request's response is ever applied.
//
// # Supersede semantics
//
// Every listing fetch gets a token from the coordinator. Recomputing the
// query (new search text, new category, page turn) issues a new token and
// cancels the previous request's context. When a response eventually
// arrives it is applied only if its token is still current:
//
//	token, ctx := coord.IssueListing(appCtx)
//	go func() {
//		page, err := client.FetchPage(ctx, q)
//		coord.ResolveListing(token, page, err) // false if superseded
//	}()
//
// This makes out-of-order responses structurally harmless: an older
// response can never overwrite state written by a newer one, no matter when
// it arrives. Cancellation is an optimization on top (the transport gives
// up early); correctness comes from the token comparison.
//
// The listing and categories streams are independent. Products, total,
// loading flag and error text mutate together under one lock, so consumers
// always observe a consistent triple.
package browse
