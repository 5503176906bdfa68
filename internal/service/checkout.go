package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront/internal/action"
	"storefront/internal/analytics"
	"storefront/internal/domain"
)

// Checkout runs the four-step checkout transaction:
//
//  1. push the editable draft fields to the server, when a draft is given
//  2. re-retrieve the authoritative cart to learn whether a payment token
//     is present
//  3. with a token, capture the charge: any status other than 200 aborts
//     the transaction silently: no order is created on an unconfirmed
//     charge, and the absence of an order in state is the signal the UI
//     watches for
//  4. create the order, dispatch it, navigate to the success route and
//     report the completed checkout to analytics
func (s *CartService) Checkout(ctx context.Context, draft *domain.CartDraft, navigate Navigator) error {
	s.store.Dispatch(action.RequestCheckout())

	if draft != nil {
		if _, err := s.api.UpdateCart(ctx, *draft); err != nil {
			return fmt.Errorf("checkout: push cart draft: %w", err)
		}
	}

	cart, err := s.api.RetrieveCart(ctx)
	if err != nil {
		return fmt.Errorf("checkout: retrieve cart: %w", err)
	}

	if cart.PaymentToken != "" {
		status, err := s.api.Charge(ctx)
		if err != nil {
			return fmt.Errorf("checkout: charge: %w", err)
		}
		if status != http.StatusOK {
			// fail closed: unconfirmed charge, no retry
			s.logger.Warn("checkout aborted, charge not confirmed", "status", status)
			return nil
		}
	}

	order, err := s.api.Checkout(ctx)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	s.store.Dispatch(action.ReceiveCheckout(order))

	if navigate != nil {
		navigate(s.store.State().Settings.CheckoutSuccessPath)
	}

	payload, _ := json.Marshal(order)
	s.track.Track(ctx, analytics.Event{Kind: analytics.CheckoutSuccess, Payload: payload})
	return nil
}
