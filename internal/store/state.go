// Package store holds the state-container boundary the orchestration
// services dispatch into: the AppState snapshot, the pure reducer, a
// reference FIFO container, and a recording double for tests.
package store

import (
	"encoding/json"

	"storefront/internal/domain"
)

// AppState is one immutable snapshot of storefront state. Services read a
// snapshot at the start of each operation and never mutate it; payloads
// reachable from a snapshot are treated as read-only by convention.
type AppState struct {
	Location    *domain.Location
	CurrentPage *domain.SitemapEntry

	Categories      []domain.Category
	CurrentCategory *domain.Category

	ProductFilter       domain.ProductFilter
	Products            []domain.Product
	ProductsTotalCount  int
	ProductsHasMore     bool
	LoadingProducts     bool
	LoadingMoreProducts bool
	ProductsClaim       string // claim token of the in-flight products fetch

	ProductDetails json.RawMessage
	PageDetails    json.RawMessage

	Cart                   *domain.Cart
	Order                  *domain.Order
	ProcessingCheckout     bool
	ShippingMethods        []domain.ShippingMethod
	PaymentMethods         []domain.PaymentMethod
	LoadingShippingMethods bool
	LoadingPaymentMethods  bool
	CartLayerInitialized   bool

	Customer                 *domain.Customer
	RegisterProperties       json.RawMessage
	ForgotPasswordProperties json.RawMessage
	ResetPasswordProperties  json.RawMessage

	Settings domain.StoreSettings
}

// NewState seeds a snapshot with the preloaded category list and store
// settings. Everything else starts empty and arrives via dispatch.
func NewState(settings domain.StoreSettings, categories []domain.Category) AppState {
	return AppState{
		Settings:   settings,
		Categories: categories,
	}
}

// CategoryByID looks up a preloaded category. Nil when absent.
func (s AppState) CategoryByID(id int) *domain.Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// CategoryByPath looks up a preloaded category by URL path. Nil when absent.
func (s AppState) CategoryByPath(path string) *domain.Category {
	for i := range s.Categories {
		if s.Categories[i].Path == path {
			return &s.Categories[i]
		}
	}
	return nil
}
