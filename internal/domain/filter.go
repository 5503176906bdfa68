package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// SortSearch is the fixed sort tag the API expects for full-text searches.
const SortSearch = "search"

const attributePrefix = "attributes."

// ProductFilter is the UI-facing product list filter. The API-facing
// representation is produced by APIValues; this struct is the single
// source of truth for the translation.
type ProductFilter struct {
	CategoryID int               `json:"categoryId,omitempty"`
	Search     string            `json:"search,omitempty"`
	PriceFrom  int               `json:"priceFrom"`
	PriceTo    int               `json:"priceTo"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OnSale     bool              `json:"onSale,omitempty"`
	Sort       string            `json:"sort,omitempty"`
	Fields     string            `json:"fields,omitempty"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit,omitempty"`
}

// FilterForCategory builds the filter for a category page from the raw
// location query string. price_from/price_to default to 0 when absent or
// unparseable; any key prefixed "attributes." passes through verbatim.
func FilterForCategory(locationSearch, defaultSort string) ProductFilter {
	query := parseQuery(locationSearch)

	attributes := map[string]string{}
	for key := range query {
		if strings.HasPrefix(key, attributePrefix) {
			attributes[key] = query.Get(key)
		}
	}

	return ProductFilter{
		PriceFrom:  queryInt(query, "price_from"),
		PriceTo:    queryInt(query, "price_to"),
		Attributes: attributes,
		Sort:       defaultSort,
	}
}

// FilterForSearch builds the filter for a search page. The sort is pinned
// to the API's search relevance ordering.
func FilterForSearch(locationSearch string) ProductFilter {
	query := parseQuery(locationSearch)

	return ProductFilter{
		PriceFrom: queryInt(query, "price_from"),
		PriceTo:   queryInt(query, "price_to"),
		Search:    query.Get("search"),
		Sort:      SortSearch,
	}
}

// APIValues renders the filter in the API's snake_case form with attribute
// keys merged in unchanged. Offset is always 0 here: pagination overrides
// it per request, and a rebuilt filter must restart from the first page.
func (f ProductFilter) APIValues() url.Values {
	v := url.Values{}
	if f.OnSale {
		v.Set("on_sale", "true")
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.CategoryID != 0 {
		v.Set("category_id", strconv.Itoa(f.CategoryID))
	}
	v.Set("price_from", strconv.Itoa(f.PriceFrom))
	v.Set("price_to", strconv.Itoa(f.PriceTo))
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	if f.Fields != "" {
		v.Set("fields", f.Fields)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	v.Set("offset", "0")
	for key, val := range f.Attributes {
		v.Set(key, val)
	}
	return v
}

// parseQuery tolerates a leading "?" and malformed pairs; a filter built
// from a bad query string is still a usable filter.
func parseQuery(locationSearch string) url.Values {
	q, err := url.ParseQuery(strings.TrimPrefix(locationSearch, "?"))
	if err != nil {
		return url.Values{}
	}
	return q
}

func queryInt(q url.Values, key string) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return n
}
