package store

import (
	"storefront/internal/action"
	"storefront/internal/domain"
)

// Reduce folds one action into a state snapshot and returns the next
// snapshot. Pure: the input state is never modified.
func Reduce(s AppState, a action.Action) AppState {
	switch a.Type {
	case action.LocationChanged:
		s.Location = a.Location

	case action.SitemapReceive:
		s.CurrentPage = a.Sitemap

	case action.SetCurrentCategory:
		s.CurrentCategory = a.Category

	case action.SetProductsFilter:
		if a.Filter != nil {
			s.ProductFilter = *a.Filter
		}

	case action.ProductsRequest:
		s.LoadingProducts = true
		s.ProductsClaim = a.Claim

	case action.ProductsReceive:
		if a.Products == nil {
			// transient clear between request and result
			s.Products = nil
			break
		}
		s.Products = a.Products.Data
		s.ProductsTotalCount = a.Products.TotalCount
		s.ProductsHasMore = a.Products.HasMore
		s.LoadingProducts = false

	case action.MoreProductsRequest:
		s.LoadingMoreProducts = true

	case action.MoreProductsReceive:
		if a.Products != nil {
			// additive: append to the existing page, never replace
			merged := make([]domain.Product, 0, len(s.Products)+len(a.Products.Data))
			merged = append(merged, s.Products...)
			merged = append(merged, a.Products.Data...)
			s.Products = merged
			s.ProductsTotalCount = a.Products.TotalCount
			s.ProductsHasMore = a.Products.HasMore
		}
		s.LoadingMoreProducts = false

	case action.ProductReceive:
		s.ProductDetails = a.Product

	case action.PageRequest:
		// no state change; marker only

	case action.PageReceive:
		s.PageDetails = a.Page

	case action.CartRequest, action.CartItemAddRequest,
		action.CartItemUpdateRequest, action.CartItemDeleteRequest:
		// markers only

	case action.CartReceive:
		s.Cart = a.Cart

	case action.ShippingMethodsRequest:
		s.LoadingShippingMethods = true

	case action.ShippingMethodsReceive:
		s.ShippingMethods = a.ShippingMethods
		s.LoadingShippingMethods = false

	case action.PaymentMethodsRequest:
		s.LoadingPaymentMethods = true

	case action.PaymentMethodsReceive:
		s.PaymentMethods = a.PaymentMethods
		s.LoadingPaymentMethods = false

	case action.CheckoutRequest:
		s.ProcessingCheckout = true

	case action.CheckoutReceive:
		s.Order = a.Order
		s.ProcessingCheckout = false

	case action.AccountReceive:
		s.Customer = a.Customer

	case action.RegisterProperties:
		s.RegisterProperties = a.Data

	case action.ForgotPasswordProperties:
		s.ForgotPasswordProperties = a.Data

	case action.ResetPasswordProperties:
		s.ResetPasswordProperties = a.Data

	case action.CartLayerInitialized:
		s.CartLayerInitialized = a.Flag

	case action.SettingsReceive:
		if a.Settings != nil {
			s.Settings = *a.Settings
		}
	}

	return s
}
