package app

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/service"
)

// Navigation

// Navigate resolves a location change. Repeated calls for the same
// pathname+search are no-ops.
func (a *App) Navigate(ctx context.Context, loc domain.Location) error {
	return a.catalog.ResolveLocation(ctx, loc)
}

// Catalog

func (a *App) FetchProducts(ctx context.Context) error {
	return a.catalog.FetchProducts(ctx)
}

func (a *App) FetchMoreProducts(ctx context.Context) error {
	return a.catalog.FetchMoreProducts(ctx)
}

func (a *App) SetSort(ctx context.Context, sort string) error {
	return a.catalog.SetSort(ctx, sort)
}

func (a *App) SetCategory(categoryID int) {
	a.catalog.SetCategory(categoryID)
}

// Cart / checkout

func (a *App) FetchCart(ctx context.Context) error {
	return a.cart.FetchCart(ctx)
}

func (a *App) AddCartItem(ctx context.Context, item domain.CartItemDraft) error {
	return a.cart.AddItem(ctx, item)
}

func (a *App) UpdateCartItemQuantity(ctx context.Context, itemID string, quantity int) error {
	return a.cart.UpdateItemQuantity(ctx, itemID, quantity)
}

func (a *App) DeleteCartItem(ctx context.Context, itemID string) error {
	return a.cart.DeleteItem(ctx, itemID)
}

func (a *App) UpdateCart(ctx context.Context, draft domain.CartDraft, callback func(*domain.Cart)) error {
	return a.cart.UpdateCart(ctx, draft, callback)
}

func (a *App) FetchShippingMethods(ctx context.Context) error {
	return a.cart.FetchShippingMethods(ctx)
}

func (a *App) FetchPaymentMethods(ctx context.Context) error {
	return a.cart.FetchPaymentMethods(ctx)
}

func (a *App) SetShippingMethod(ctx context.Context, methodID string) {
	a.cart.SetShippingMethod(ctx, methodID)
}

func (a *App) SetPaymentMethod(ctx context.Context, methodID string) {
	a.cart.SetPaymentMethod(ctx, methodID)
}

func (a *App) Checkout(ctx context.Context, draft *domain.CartDraft, navigate service.Navigator) error {
	return a.cart.Checkout(ctx, draft, navigate)
}

// Session

func (a *App) Login(ctx context.Context, creds domain.Credentials, navigate service.Navigator) error {
	return a.session.Login(ctx, creds, navigate)
}

func (a *App) Register(ctx context.Context, creds domain.Credentials) error {
	return a.session.Register(ctx, creds)
}

func (a *App) ResetPassword(ctx context.Context, creds domain.Credentials) error {
	return a.session.ResetPassword(ctx, creds)
}

func (a *App) ForgotPassword(ctx context.Context, creds domain.Credentials) error {
	return a.session.ForgotPassword(ctx, creds)
}

func (a *App) FetchAccount(ctx context.Context, creds domain.Credentials) error {
	return a.session.FetchAccount(ctx, creds)
}

func (a *App) UpdateAccount(ctx context.Context, creds domain.Credentials) error {
	return a.session.UpdateAccount(ctx, creds)
}

func (a *App) ExpireSession() {
	a.session.ExpireSession()
}

func (a *App) InitializeCartLayer(initialized bool) {
	a.session.InitializeCartLayer(initialized)
}
