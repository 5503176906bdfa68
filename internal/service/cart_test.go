package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"storefront/internal/action"
	"storefront/internal/analytics"
	"storefront/internal/domain"
	"storefront/internal/service"
	"storefront/internal/store"
)

func newCart(rec *store.Recorder, api *fakeCommerce, track analytics.Tracker) *service.CartService {
	return service.NewCartService(rec, api, track, nil)
}

func TestFetchCart_DispatchesServerCart(t *testing.T) {
	rec := store.NewRecorder(store.NewState(testSettings, nil))
	api := &fakeCommerce{
		RetrieveCartFn: func(context.Context) (*domain.Cart, error) {
			return &domain.Cart{ID: "cart-1", Items: []domain.CartItem{{ID: "item-1", Quantity: 1}}}, nil
		},
	}
	svc := newCart(rec, api, nil)

	if err := svc.FetchCart(context.Background()); err != nil {
		t.Fatalf("fetch cart: %v", err)
	}

	types := rec.Types()
	if len(types) != 2 || types[0] != action.CartRequest || types[1] != action.CartReceive {
		t.Fatalf("dispatches: %v", types)
	}
	if rec.State().Cart == nil || rec.State().Cart.ID != "cart-1" {
		t.Fatalf("cart: %+v", rec.State().Cart)
	}
}

func TestAddItem_TracksItemAndCart(t *testing.T) {
	rec := store.NewRecorder(store.NewState(testSettings, nil))
	api := &fakeCommerce{
		AddCartItemFn: func(_ context.Context, item domain.CartItemDraft) (*domain.Cart, error) {
			return &domain.Cart{ID: "cart-1", Items: []domain.CartItem{
				{ID: "item-1", SKU: item.SKU, Quantity: item.Quantity},
			}}, nil
		},
	}
	track := &analytics.Capture{}
	svc := newCart(rec, api, track)

	err := svc.AddItem(context.Background(), domain.CartItemDraft{ProductID: 101, SKU: "SHOE-1", Quantity: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	if rec.State().Cart == nil || len(rec.State().Cart.Items) != 1 {
		t.Fatalf("cart: %+v", rec.State().Cart)
	}

	events := track.Events()
	if len(events) != 1 || events[0].Kind != analytics.CartItemAdded || events[0].ItemID != "SHOE-1" {
		t.Fatalf("analytics: %+v", events)
	}
	var payload struct {
		Item domain.CartItemDraft `json:"item"`
		Cart *domain.Cart         `json:"cart"`
	}
	if err := json.Unmarshal(events[0].Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Item.SKU != "SHOE-1" || payload.Cart == nil || payload.Cart.ID != "cart-1" {
		t.Fatalf("payload: %+v", payload)
	}
}

func TestUpdateItemQuantity_RefetchesShipping(t *testing.T) {
	rec := store.NewRecorder(store.NewState(testSettings, nil))
	api := &fakeCommerce{
		UpdateCartItemFn: func(_ context.Context, itemID string, quantity int) (*domain.Cart, error) {
			return &domain.Cart{ID: "cart-1", Items: []domain.CartItem{{ID: itemID, Quantity: quantity}}}, nil
		},
	}
	track := &analytics.Capture{}
	svc := newCart(rec, api, track)

	if err := svc.UpdateItemQuantity(context.Background(), "item-1", 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	if api.shippingCalls != 1 {
		t.Fatalf("shipping refetch: %d calls", api.shippingCalls)
	}
	if got := rec.State().Cart.Items[0].Quantity; got != 5 {
		t.Fatalf("quantity: %d", got)
	}
	if len(rec.State().ShippingMethods) == 0 {
		t.Fatal("shipping methods not dispatched")
	}
	kinds := track.Kinds()
	if countKind(kinds, analytics.CartItemUpdated) != 1 {
		t.Fatalf("analytics: %v", kinds)
	}
}

// The delete event must report the cart as it stood before the removal so
// the removed line is still visible in the report.
func TestDeleteItem_ReportsPriorCart(t *testing.T) {
	initial := store.NewState(testSettings, nil)
	initial.Cart = &domain.Cart{ID: "cart-1", Items: []domain.CartItem{
		{ID: "item-1", SKU: "SHOE-1", Quantity: 1},
		{ID: "item-2", SKU: "SHIRT-1", Quantity: 3},
	}}
	rec := store.NewRecorder(initial)

	api := &fakeCommerce{
		DeleteCartItemFn: func(_ context.Context, itemID string) (*domain.Cart, error) {
			return &domain.Cart{ID: "cart-1", Items: []domain.CartItem{
				{ID: "item-2", SKU: "SHIRT-1", Quantity: 3},
			}}, nil
		},
	}
	track := &analytics.Capture{}
	svc := newCart(rec, api, track)

	if err := svc.DeleteItem(context.Background(), "item-1"); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	if got := len(rec.State().Cart.Items); got != 1 {
		t.Fatalf("cart after delete: %+v", rec.State().Cart)
	}
	if api.shippingCalls != 1 {
		t.Fatalf("shipping refetch: %d calls", api.shippingCalls)
	}

	events := track.Events()
	if len(events) != 1 || events[0].Kind != analytics.CartItemDeleted {
		t.Fatalf("analytics: %+v", events)
	}
	var reported domain.Cart
	if err := json.Unmarshal(events[0].Payload, &reported); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(reported.Items) != 2 {
		t.Fatalf("event must carry the pre-delete cart, got %+v", reported)
	}
}

func TestUpdateCart_DraftAndCallback(t *testing.T) {
	rec := store.NewRecorder(store.NewState(testSettings, nil))
	api := &fakeCommerce{
		UpdateCartFn: func(_ context.Context, draft domain.CartDraft) (*domain.Cart, error) {
			return &domain.Cart{ID: "cart-1", Email: draft.Email}, nil
		},
	}
	svc := newCart(rec, api, nil)

	var observed *domain.Cart
	draft := domain.CartDraft{Email: "buyer@example.com", ShippingMethodID: "ship-std"}
	err := svc.UpdateCart(context.Background(), draft, func(c *domain.Cart) { observed = c })
	if err != nil {
		t.Fatalf("update cart: %v", err)
	}

	if api.lastCartDraft == nil || api.lastCartDraft.Email != "buyer@example.com" {
		t.Fatalf("draft sent: %+v", api.lastCartDraft)
	}
	if observed == nil || observed.Email != "buyer@example.com" {
		t.Fatalf("callback: %+v", observed)
	}
	if rec.State().Cart == nil || rec.State().Cart.Email != "buyer@example.com" {
		t.Fatalf("state: %+v", rec.State().Cart)
	}
}

func TestFetchMethods(t *testing.T) {
	rec := store.NewRecorder(store.NewState(testSettings, nil))
	api := &fakeCommerce{}
	svc := newCart(rec, api, nil)

	if err := svc.FetchShippingMethods(context.Background()); err != nil {
		t.Fatalf("shipping: %v", err)
	}
	if err := svc.FetchPaymentMethods(context.Background()); err != nil {
		t.Fatalf("payment: %v", err)
	}

	state := rec.State()
	if len(state.ShippingMethods) != 1 || state.ShippingMethods[0].ID != "ship-std" {
		t.Fatalf("shipping methods: %+v", state.ShippingMethods)
	}
	if len(state.PaymentMethods) != 1 || state.PaymentMethods[0].ID != "pay-card" {
		t.Fatalf("payment methods: %+v", state.PaymentMethods)
	}
	types := rec.Types()
	want := []action.Type{
		action.ShippingMethodsRequest, action.ShippingMethodsReceive,
		action.PaymentMethodsRequest, action.PaymentMethodsReceive,
	}
	for i, w := range want {
		if types[i] != w {
			t.Fatalf("dispatches: got %v, want %v", types, want)
		}
	}
}

// Method selection is analytics-only: the choice travels to the server
// inside the checkout draft, never as its own mutation.
func TestSetMethods_AnalyticsOnly(t *testing.T) {
	rec := store.NewRecorder(store.NewState(testSettings, nil))
	track := &analytics.Capture{}
	svc := newCart(rec, &fakeCommerce{}, track)

	svc.SetShippingMethod(context.Background(), "ship-exp")
	svc.SetPaymentMethod(context.Background(), "pay-invoice")

	if len(rec.Actions()) != 0 {
		t.Fatalf("selection dispatched %v", rec.Types())
	}
	events := track.Events()
	if len(events) != 2 ||
		events[0].Kind != analytics.ShippingMethodChosen || events[0].MethodID != "ship-exp" ||
		events[1].Kind != analytics.PaymentMethodChosen || events[1].MethodID != "pay-invoice" {
		t.Fatalf("analytics: %+v", events)
	}
}
