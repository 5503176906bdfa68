package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/internal/action"
	"storefront/internal/analytics"
	"storefront/internal/domain"
	"storefront/internal/store"
)

// CartAPI is the slice of the commerce API cart orchestration needs.
type CartAPI interface {
	RetrieveCart(ctx context.Context) (*domain.Cart, error)
	UpdateCart(ctx context.Context, draft domain.CartDraft) (*domain.Cart, error)
	AddCartItem(ctx context.Context, item domain.CartItemDraft) (*domain.Cart, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*domain.Cart, error)
	DeleteCartItem(ctx context.Context, itemID string) (*domain.Cart, error)
	Charge(ctx context.Context) (int, error)
	Checkout(ctx context.Context) (*domain.Order, error)
	ListShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// CartService orchestrates cart mutations and the checkout transaction.
// The cart itself is server-owned: every mutation dispatches the returned
// cart verbatim as the new authoritative value.
type CartService struct {
	store  store.Dispatcher
	api    CartAPI
	track  analytics.Tracker
	logger *slog.Logger
}

// NewCartService creates a CartService.
func NewCartService(st store.Dispatcher, api CartAPI, track analytics.Tracker, logger *slog.Logger) *CartService {
	if track == nil {
		track = analytics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CartService{store: st, api: api, track: track, logger: logger}
}

// FetchCart loads the authoritative cart.
func (s *CartService) FetchCart(ctx context.Context) error {
	s.store.Dispatch(action.RequestCart())
	cart, err := s.api.RetrieveCart(ctx)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}
	s.store.Dispatch(action.ReceiveCart(cart))
	return nil
}

// AddItem adds a line item and reports the mutation to analytics.
func (s *CartService) AddItem(ctx context.Context, item domain.CartItemDraft) error {
	s.store.Dispatch(action.RequestAddCartItem())
	cart, err := s.api.AddCartItem(ctx, item)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	s.store.Dispatch(action.ReceiveCart(cart))

	payload, _ := json.Marshal(struct {
		Item domain.CartItemDraft `json:"item"`
		Cart *domain.Cart         `json:"cart"`
	}{item, cart})
	s.track.Track(ctx, analytics.Event{Kind: analytics.CartItemAdded, ItemID: item.SKU, Payload: payload})
	return nil
}

// UpdateItemQuantity changes a line item's quantity. Item changes can
// invalidate previously valid shipping options, so the shipping method
// list is refetched afterwards.
func (s *CartService) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) error {
	s.store.Dispatch(action.RequestUpdateCartItem())
	cart, err := s.api.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	s.store.Dispatch(action.ReceiveCart(cart))

	payload, _ := json.Marshal(cart)
	s.track.Track(ctx, analytics.Event{Kind: analytics.CartItemUpdated, ItemID: itemID, Payload: payload})
	return s.FetchShippingMethods(ctx)
}

// DeleteItem removes a line item. The analytics event reports the cart as
// it stood before the deletion, so the removed line is still visible in
// the report.
func (s *CartService) DeleteItem(ctx context.Context, itemID string) error {
	s.store.Dispatch(action.RequestDeleteCartItem())
	previous := s.store.State().Cart

	cart, err := s.api.DeleteCartItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	s.store.Dispatch(action.ReceiveCart(cart))

	payload, _ := json.Marshal(previous)
	s.track.Track(ctx, analytics.Event{Kind: analytics.CartItemDeleted, ItemID: itemID, Payload: payload})
	return s.FetchShippingMethods(ctx)
}

// UpdateCart pushes editable cart fields and dispatches the result. The
// optional callback observes the new cart (form flows use it to chain).
func (s *CartService) UpdateCart(ctx context.Context, draft domain.CartDraft, callback func(*domain.Cart)) error {
	cart, err := s.api.UpdateCart(ctx, draft)
	if err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	s.store.Dispatch(action.ReceiveCart(cart))
	if callback != nil {
		callback(cart)
	}
	return nil
}

// FetchShippingMethods reloads the shipping method list.
func (s *CartService) FetchShippingMethods(ctx context.Context) error {
	s.store.Dispatch(action.RequestShippingMethods())
	methods, err := s.api.ListShippingMethods(ctx)
	if err != nil {
		return fmt.Errorf("fetch shipping methods: %w", err)
	}
	s.store.Dispatch(action.ReceiveShippingMethods(methods))
	return nil
}

// FetchPaymentMethods reloads the payment method list.
func (s *CartService) FetchPaymentMethods(ctx context.Context) error {
	s.store.Dispatch(action.RequestPaymentMethods())
	methods, err := s.api.ListPaymentMethods(ctx)
	if err != nil {
		return fmt.Errorf("fetch payment methods: %w", err)
	}
	s.store.Dispatch(action.ReceivePaymentMethods(methods))
	return nil
}

// SetShippingMethod reports a shipping method selection to analytics. The
// selection itself travels to the server inside the checkout cart draft.
func (s *CartService) SetShippingMethod(ctx context.Context, methodID string) {
	payload, _ := json.Marshal(s.store.State().ShippingMethods)
	s.track.Track(ctx, analytics.Event{Kind: analytics.ShippingMethodChosen, MethodID: methodID, Payload: payload})
}

// SetPaymentMethod reports a payment method selection to analytics.
func (s *CartService) SetPaymentMethod(ctx context.Context, methodID string) {
	payload, _ := json.Marshal(s.store.State().PaymentMethods)
	s.track.Track(ctx, analytics.Event{Kind: analytics.PaymentMethodChosen, MethodID: methodID, Payload: payload})
}
