package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/analytics"
	"storefront/internal/app"
	"storefront/internal/commercetest"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/service"
)

func startApp(t *testing.T, opts ...app.Option) (*app.App, *commercetest.Server) {
	t.Helper()
	fake := commercetest.NewServer()
	srv := httptest.NewServer(fake.Handler())
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL

	a := app.New(cfg, opts...)
	if err := a.Startup(context.Background()); err != nil {
		t.Fatalf("startup: %v", err)
	}
	t.Cleanup(a.Shutdown)
	return a, fake
}

func TestApp_BrowseToCategory(t *testing.T) {
	a, fake := startApp(t)
	ctx := context.Background()

	if err := a.Navigate(ctx, domain.Location{Pathname: "/shoes"}); err != nil {
		t.Fatalf("navigate: %v", err)
	}

	state := a.State()
	if state.CurrentPage == nil || state.CurrentPage.Type != domain.PageProductCategory {
		t.Fatalf("page: %+v", state.CurrentPage)
	}
	if state.CurrentCategory == nil || state.CurrentCategory.ID != 7 {
		t.Fatalf("category: %+v", state.CurrentCategory)
	}
	if len(state.Products) != 2 || state.ProductsTotalCount != 2 {
		t.Fatalf("products: %+v", state.Products)
	}
	// the preloaded category tree resolved the path locally
	if fake.SitemapCalls != 0 {
		t.Fatalf("sitemap calls: %d", fake.SitemapCalls)
	}
}

func TestApp_ProductPageViaSitemap(t *testing.T) {
	a, fake := startApp(t)

	if err := a.Navigate(context.Background(), domain.Location{Pathname: "/shoes/runner"}); err != nil {
		t.Fatalf("navigate: %v", err)
	}

	state := a.State()
	if state.CurrentPage == nil || state.CurrentPage.Type != domain.PageProduct {
		t.Fatalf("page: %+v", state.CurrentPage)
	}
	if state.ProductDetails == nil {
		t.Fatal("product payload missing")
	}
	if fake.SitemapCalls != 1 {
		t.Fatalf("sitemap calls: %d", fake.SitemapCalls)
	}
}

func TestApp_CartToCheckout(t *testing.T) {
	track := &analytics.Capture{}
	a, fake := startApp(t, app.WithTracker(track))
	ctx := context.Background()

	if err := a.AddCartItem(ctx, domain.CartItemDraft{ProductID: 101, SKU: "SHOE-1", Quantity: 2}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if got := len(a.State().Cart.Items); got != 1 {
		t.Fatalf("cart items: %d", got)
	}

	if err := a.FetchShippingMethods(ctx); err != nil {
		t.Fatalf("shipping: %v", err)
	}
	if err := a.FetchPaymentMethods(ctx); err != nil {
		t.Fatalf("payment: %v", err)
	}

	var navigated string
	draft := domain.CartDraft{
		Email:            "buyer@example.com",
		ShippingMethodID: "ship-std",
		PaymentMethodID:  "pay-invoice",
	}
	if err := a.Checkout(ctx, &draft, func(path string) { navigated = path }); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	state := a.State()
	if state.Order == nil || state.Order.GrandTotal != 2*59.90 {
		t.Fatalf("order: %+v", state.Order)
	}
	if navigated != state.Settings.CheckoutSuccessPath {
		t.Fatalf("navigated to %q", navigated)
	}
	// no payment token on the cart, so no charge was attempted
	if fake.ChargeCalls != 0 {
		t.Fatalf("charge calls: %d", fake.ChargeCalls)
	}
	kinds := track.Kinds()
	last := kinds[len(kinds)-1]
	if last != analytics.CheckoutSuccess {
		t.Fatalf("analytics tail: %v", kinds)
	}
}

func TestApp_ChargeDeclineLeavesNoOrder(t *testing.T) {
	a, fake := startApp(t)
	ctx := context.Background()

	fake.Cart.PaymentToken = "tok-pay"
	fake.ChargeStatus = http.StatusPaymentRequired

	if err := a.Checkout(ctx, nil, nil); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if fake.CheckoutCalls != 0 {
		t.Fatal("order created on a declined charge")
	}
	if a.State().Order != nil {
		t.Fatalf("order: %+v", a.State().Order)
	}
}

func TestApp_LoginFlow(t *testing.T) {
	a, _ := startApp(t)

	var navigated string
	creds := domain.Credentials{Email: "buyer@example.com", Password: "pw"}
	err := a.Login(context.Background(), creds, func(path string) { navigated = path })
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	state := a.State()
	if state.Customer == nil || !state.Customer.Authenticated || state.Customer.Token != "tok-test" {
		t.Fatalf("customer: %+v", state.Customer)
	}
	if navigated != state.Settings.AccountPath {
		t.Fatalf("navigated to %q", navigated)
	}

	a.ExpireSession()
	if a.State().Customer.Authenticated {
		t.Fatal("session survived expiry")
	}
}

func TestApp_LoadMoreAppendsAndScrolls(t *testing.T) {
	fake := commercetest.NewServer()
	srv := httptest.NewServer(fake.Handler())
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL
	cfg.Store.ProductsLimit = 1 // force a second page

	emitter := &service.MockEmitter{}
	a := app.New(cfg, app.WithEmitter(emitter))
	if err := a.Startup(context.Background()); err != nil {
		t.Fatalf("startup: %v", err)
	}
	t.Cleanup(a.Shutdown)
	ctx := context.Background()

	if err := a.Navigate(ctx, domain.Location{Pathname: "/shoes"}); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	state := a.State()
	if len(state.Products) != 1 || !state.ProductsHasMore {
		t.Fatalf("first page: %+v", state)
	}

	if err := a.FetchMoreProducts(ctx); err != nil {
		t.Fatalf("fetch more: %v", err)
	}
	state = a.State()
	if len(state.Products) != 2 {
		t.Fatalf("after load more: %+v", state.Products)
	}
	if len(emitter.Events) != 1 || emitter.Events[0].Event != service.ScrollMoreEvent {
		t.Fatalf("emitted: %+v", emitter.Events)
	}
}
