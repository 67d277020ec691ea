package catalog

// Product describes a single catalog entry. Identity is ID; everything else
// is display data and is never mutated after decoding.
type Product struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
}

// ResultPage is one page of listing results. It is replaced wholesale on
// every successful fetch; pages are never merged.
type ResultPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// Category mirrors one entry of /products/categories.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// listingResponse is the wire shape of the three listing endpoints. Total is
// a pointer so an omitted field can be told apart from zero.
type listingResponse struct {
	Products []Product `json:"products"`
	Total    *int      `json:"total"`
}
