// Package catalog provides the HTTP client and wire types for the remote
// product catalog, plus the query builder that collapses the filter
// dimensions (search text, category, pagination) into a single canonical
// request descriptor.
//
// The API follows the dummyjson shape: three listing endpoints that all
// return {products, total}, and a one-shot categories endpoint. Exactly one
// listing endpoint is called per fetch, chosen by BuildQuery's precedence
// rules (search wins over category, category wins over the plain listing).
package catalog
