package domain

import "testing"

func TestFilterForCategory_NumericDefaulting(t *testing.T) {
	cases := []struct {
		name   string
		search string
	}{
		{"absent", ""},
		{"empty values", "price_from=&price_to="},
		{"non numeric", "price_from=abc&price_to=12x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := FilterForCategory(tc.search, "newest")
			if f.PriceFrom != 0 || f.PriceTo != 0 {
				t.Fatalf("expected price bounds 0/0, got %d/%d", f.PriceFrom, f.PriceTo)
			}
		})
	}
}

func TestFilterForCategory_ParsesPricesAndAttributes(t *testing.T) {
	f := FilterForCategory("?price_from=10&price_to=99&attributes.color=red&attributes.size=42&other=x", "newest")

	if f.PriceFrom != 10 || f.PriceTo != 99 {
		t.Fatalf("price bounds: got %d/%d", f.PriceFrom, f.PriceTo)
	}
	if len(f.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %v", f.Attributes)
	}
	if f.Attributes["attributes.color"] != "red" || f.Attributes["attributes.size"] != "42" {
		t.Fatalf("attributes not copied verbatim: %v", f.Attributes)
	}
	if f.Search != "" {
		t.Fatalf("category filter must not carry a search term, got %q", f.Search)
	}
	if f.Sort != "newest" {
		t.Fatalf("sort: got %q", f.Sort)
	}
}

func TestFilterForSearch(t *testing.T) {
	f := FilterForSearch("?search=blue+shoes&price_from=5")

	if f.Search != "blue shoes" {
		t.Fatalf("search: got %q", f.Search)
	}
	if f.CategoryID != 0 {
		t.Fatalf("search filter must not carry a category, got %d", f.CategoryID)
	}
	if f.Sort != SortSearch {
		t.Fatalf("sort must be the search tag, got %q", f.Sort)
	}
	if f.PriceFrom != 5 {
		t.Fatalf("price_from: got %d", f.PriceFrom)
	}
}

func TestAPIValues_OffsetAlwaysZero(t *testing.T) {
	f := FilterForCategory("?price_from=10", "newest")
	f.CategoryID = 7
	f.Offset = 60 // stale pagination state must not leak through

	v := f.APIValues()
	if got := v.Get("offset"); got != "0" {
		t.Fatalf("offset: got %q, want 0", got)
	}
	if got := v.Get("category_id"); got != "7" {
		t.Fatalf("category_id: got %q", got)
	}
	if got := v.Get("price_from"); got != "10" {
		t.Fatalf("price_from: got %q", got)
	}
}

func TestAPIValues_AttributesPassThrough(t *testing.T) {
	f := FilterForCategory("?attributes.color=red&attributes.material=wool", "newest")

	v := f.APIValues()
	if got := v.Get("attributes.color"); got != "red" {
		t.Fatalf("attributes.color: got %q", got)
	}
	if got := v.Get("attributes.material"); got != "wool" {
		t.Fatalf("attributes.material: got %q", got)
	}
}

func TestAPIValues_OmitsEmptyOptionalFields(t *testing.T) {
	var f ProductFilter
	v := f.APIValues()

	for _, key := range []string{"search", "category_id", "on_sale", "sort", "limit"} {
		if v.Has(key) {
			t.Fatalf("empty filter should omit %q, got %q", key, v.Get(key))
		}
	}
}
