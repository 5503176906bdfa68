package domain

// Category is one entry of the preloaded category tree. Read-only from the
// orchestrator's perspective; resolution matches on Path, product filters
// reference ID.
type Category struct {
	ID       int    `json:"id"`
	ParentID int    `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Path     string `json:"path"`
}

// Product is a single product list row. Only the fields the orchestrator
// consults are typed; the full detail payload stays raw in SitemapEntry.Data.
type Product struct {
	ID         int      `json:"id"`
	CategoryID int      `json:"category_id,omitempty"`
	SKU        string   `json:"sku,omitempty"`
	Name       string   `json:"name"`
	Path       string   `json:"path,omitempty"`
	Price      float64  `json:"price"`
	StockLevel int      `json:"stock_level,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
}

// ProductList is the paginated products.list response.
type ProductList struct {
	TotalCount int       `json:"total_count"`
	HasMore    bool      `json:"has_more"`
	Data       []Product `json:"data"`
}
