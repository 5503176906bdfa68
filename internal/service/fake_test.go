package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"storefront/internal/domain"
)

// fakeCommerce stubs the commerce API for service tests. Each method has
// an optional Fn override; the defaults answer with empty-but-valid
// payloads. Call counters let tests assert on network behavior.
type fakeCommerce struct {
	mu sync.Mutex

	ListProductsFn    func(ctx context.Context, filter url.Values) (*domain.ProductList, error)
	RetrieveSitemapFn func(ctx context.Context, path string) (*domain.SitemapEntry, bool, error)
	RetrieveCartFn    func(ctx context.Context) (*domain.Cart, error)
	UpdateCartFn      func(ctx context.Context, draft domain.CartDraft) (*domain.Cart, error)
	AddCartItemFn     func(ctx context.Context, item domain.CartItemDraft) (*domain.Cart, error)
	UpdateCartItemFn  func(ctx context.Context, itemID string, quantity int) (*domain.Cart, error)
	DeleteCartItemFn  func(ctx context.Context, itemID string) (*domain.Cart, error)
	ChargeFn          func(ctx context.Context) (int, error)
	CheckoutFn        func(ctx context.Context) (*domain.Order, error)
	LoginFn           func(ctx context.Context, creds domain.Credentials) (string, error)

	productCalls  int
	sitemapCalls  int
	shippingCalls int
	paymentCalls  int
	chargeCalls   int
	checkoutCalls int

	lastProductFilter url.Values
	lastCartDraft     *domain.CartDraft
}

func (f *fakeCommerce) count(n *int) {
	f.mu.Lock()
	*n++
	f.mu.Unlock()
}

func (f *fakeCommerce) ListProducts(ctx context.Context, filter url.Values) (*domain.ProductList, error) {
	f.count(&f.productCalls)
	f.mu.Lock()
	f.lastProductFilter = filter
	f.mu.Unlock()
	if f.ListProductsFn != nil {
		return f.ListProductsFn(ctx, filter)
	}
	return &domain.ProductList{}, nil
}

func (f *fakeCommerce) RetrieveSitemap(ctx context.Context, path string) (*domain.SitemapEntry, bool, error) {
	f.count(&f.sitemapCalls)
	if f.RetrieveSitemapFn != nil {
		return f.RetrieveSitemapFn(ctx, path)
	}
	return nil, false, nil
}

func (f *fakeCommerce) RetrieveCart(ctx context.Context) (*domain.Cart, error) {
	if f.RetrieveCartFn != nil {
		return f.RetrieveCartFn(ctx)
	}
	return &domain.Cart{}, nil
}

func (f *fakeCommerce) UpdateCart(ctx context.Context, draft domain.CartDraft) (*domain.Cart, error) {
	f.mu.Lock()
	f.lastCartDraft = &draft
	f.mu.Unlock()
	if f.UpdateCartFn != nil {
		return f.UpdateCartFn(ctx, draft)
	}
	return &domain.Cart{}, nil
}

func (f *fakeCommerce) AddCartItem(ctx context.Context, item domain.CartItemDraft) (*domain.Cart, error) {
	if f.AddCartItemFn != nil {
		return f.AddCartItemFn(ctx, item)
	}
	return &domain.Cart{}, nil
}

func (f *fakeCommerce) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*domain.Cart, error) {
	if f.UpdateCartItemFn != nil {
		return f.UpdateCartItemFn(ctx, itemID, quantity)
	}
	return &domain.Cart{}, nil
}

func (f *fakeCommerce) DeleteCartItem(ctx context.Context, itemID string) (*domain.Cart, error) {
	if f.DeleteCartItemFn != nil {
		return f.DeleteCartItemFn(ctx, itemID)
	}
	return &domain.Cart{}, nil
}

func (f *fakeCommerce) Charge(ctx context.Context) (int, error) {
	f.count(&f.chargeCalls)
	if f.ChargeFn != nil {
		return f.ChargeFn(ctx)
	}
	return http.StatusOK, nil
}

func (f *fakeCommerce) Checkout(ctx context.Context) (*domain.Order, error) {
	f.count(&f.checkoutCalls)
	if f.CheckoutFn != nil {
		return f.CheckoutFn(ctx)
	}
	return &domain.Order{ID: "order-1"}, nil
}

func (f *fakeCommerce) ListShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	f.count(&f.shippingCalls)
	return []domain.ShippingMethod{{ID: "ship-std", Name: "Standard"}}, nil
}

func (f *fakeCommerce) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	f.count(&f.paymentCalls)
	return []domain.PaymentMethod{{ID: "pay-card", Name: "Card"}}, nil
}

func (f *fakeCommerce) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, creds)
	}
	return "", nil
}

func (f *fakeCommerce) Register(context.Context, domain.Credentials) (json.RawMessage, error) {
	return json.RawMessage(`{"status":"registered"}`), nil
}

func (f *fakeCommerce) ResetPassword(context.Context, domain.Credentials) (json.RawMessage, error) {
	return json.RawMessage(`{"status":"password-reset"}`), nil
}

func (f *fakeCommerce) ForgotPassword(context.Context, domain.Credentials) (json.RawMessage, error) {
	return json.RawMessage(`{"status":"email-sent"}`), nil
}

func (f *fakeCommerce) RetrieveAccount(context.Context, domain.Credentials) (*domain.Customer, error) {
	return &domain.Customer{Authenticated: true, Token: "tok"}, nil
}

func (f *fakeCommerce) UpdateAccount(context.Context, domain.Credentials) (*domain.Customer, error) {
	return &domain.Customer{Authenticated: true, Token: "tok-updated"}, nil
}
