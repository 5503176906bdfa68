package domain

import (
	"encoding/json"
	"fmt"
)

// PageType is the closed set of logical page kinds a URL can resolve to.
// Code switching on it must enumerate every constant below and treat
// anything else as an error; see CatalogService.fetchPageData.
type PageType string

const (
	PageProductCategory PageType = "product-category"
	PageSearch          PageType = "search"
	PageProduct         PageType = "product"
	PageStatic          PageType = "page"
	PageNotFound        PageType = "not-found"
)

// Valid reports whether t is one of the five known page types.
func (t PageType) Valid() bool {
	switch t {
	case PageProductCategory, PageSearch, PageProduct, PageStatic, PageNotFound:
		return true
	}
	return false
}

// SitemapEntry describes what a URL path represents. Produced either by
// matching a preloaded category path locally or by the remote sitemap
// resolver; one entry per navigation, replacing the previous one.
type SitemapEntry struct {
	Type     PageType        `json:"type"`
	Path     string          `json:"path"`
	Resource int             `json:"resource,omitempty"` // category id, 0 when absent
	Data     json.RawMessage `json:"data,omitempty"`     // product or page payload, nil when absent
}

// UnmarshalJSON rejects entries with an unknown type so a new page kind
// added server-side fails loudly instead of falling through resolution.
func (e *SitemapEntry) UnmarshalJSON(data []byte) error {
	type alias SitemapEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if !PageType(a.Type).Valid() {
		return fmt.Errorf("sitemap entry: unknown page type %q", a.Type)
	}
	*e = SitemapEntry(a)
	return nil
}
