package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"storefront/internal/domain"
)

// ListProducts fetches one page of products. The caller builds values via
// domain.ProductFilter.APIValues and overrides offset for pagination.
func (c *Client) ListProducts(ctx context.Context, filter url.Values) (*domain.ProductList, error) {
	var list domain.ProductList
	status, err := c.do(ctx, http.MethodGet, "/products", filter, nil, &list)
	if err := wantOK(status, "products.list", err); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListCategories fetches the category tree used for local path resolution.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	status, err := c.do(ctx, http.MethodGet, "/product_categories", nil, nil, &categories)
	if err := wantOK(status, "categories.list", err); err != nil {
		return nil, err
	}
	return categories, nil
}

// RetrieveSitemap resolves a URL path server-side. A 404 is a first-class
// outcome, (nil, false, nil), not an error.
func (c *Client) RetrieveSitemap(ctx context.Context, path string) (*domain.SitemapEntry, bool, error) {
	var entry domain.SitemapEntry
	q := url.Values{"path": {path}}
	status, err := c.do(ctx, http.MethodGet, "/sitemap", q, nil, &entry)
	if err != nil {
		return nil, false, err
	}
	if status == http.StatusNotFound {
		return nil, false, nil
	}
	if status != http.StatusOK {
		return nil, false, statusErr(status, "sitemap.retrieve")
	}
	return &entry, true, nil
}

func (c *Client) RetrieveCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	status, err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &cart)
	if err := wantOK(status, "cart.retrieve", err); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) UpdateCart(ctx context.Context, draft domain.CartDraft) (*domain.Cart, error) {
	var cart domain.Cart
	status, err := c.do(ctx, http.MethodPut, "/cart", nil, draft, &cart)
	if err := wantOK(status, "cart.update", err); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, item domain.CartItemDraft) (*domain.Cart, error) {
	var cart domain.Cart
	status, err := c.do(ctx, http.MethodPost, "/cart/items", nil, item, &cart)
	if err := wantOK(status, "cart.addItem", err); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	body := map[string]int{"quantity": quantity}
	status, err := c.do(ctx, http.MethodPut, "/cart/items/"+itemID, nil, body, &cart)
	if err := wantOK(status, "cart.updateItem", err); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) DeleteCartItem(ctx context.Context, itemID string) (*domain.Cart, error) {
	var cart domain.Cart
	status, err := c.do(ctx, http.MethodDelete, "/cart/items/"+itemID, nil, nil, &cart)
	if err := wantOK(status, "cart.deleteItem", err); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Charge issues the raw payment-capture POST. Contract exception: the body
// is not consulted, only the status code, which is returned as-is.
func (c *Client) Charge(ctx context.Context) (int, error) {
	return c.do(ctx, http.MethodPost, "/cart/charge", nil, nil, nil)
}

func (c *Client) Checkout(ctx context.Context) (*domain.Order, error) {
	var order domain.Order
	status, err := c.do(ctx, http.MethodPost, "/cart/checkout", nil, nil, &order)
	if err := wantOK(status, "cart.checkout", err); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	var methods []domain.ShippingMethod
	status, err := c.do(ctx, http.MethodGet, "/shipping_methods", nil, nil, &methods)
	if err := wantOK(status, "shippingMethods.list", err); err != nil {
		return nil, err
	}
	return methods, nil
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	status, err := c.do(ctx, http.MethodGet, "/payment_methods", nil, nil, &methods)
	if err := wantOK(status, "paymentMethods.list", err); err != nil {
		return nil, err
	}
	return methods, nil
}

// Login returns the base64-encoded JSON session payload verbatim;
// decoding is the session orchestrator's responsibility.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var encoded string
	status, err := c.do(ctx, http.MethodPost, "/login", nil, creds, &encoded)
	if err := wantOK(status, "login.retrieve", err); err != nil {
		return "", err
	}
	return encoded, nil
}

func (c *Client) Register(ctx context.Context, creds domain.Credentials) (json.RawMessage, error) {
	var data json.RawMessage
	status, err := c.do(ctx, http.MethodPost, "/register", nil, creds, &data)
	if err := wantOK(status, "register.retrieve", err); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) ResetPassword(ctx context.Context, creds domain.Credentials) (json.RawMessage, error) {
	var data json.RawMessage
	status, err := c.do(ctx, http.MethodPost, "/reset_password", nil, creds, &data)
	if err := wantOK(status, "resetPassword.retrieve", err); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) ForgotPassword(ctx context.Context, creds domain.Credentials) (json.RawMessage, error) {
	var data json.RawMessage
	status, err := c.do(ctx, http.MethodPost, "/forgot_password", nil, creds, &data)
	if err := wantOK(status, "forgotPassword.retrieve", err); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) RetrieveAccount(ctx context.Context, creds domain.Credentials) (*domain.Customer, error) {
	var customer domain.Customer
	status, err := c.do(ctx, http.MethodPost, "/customer_account", nil, creds, &customer)
	if err := wantOK(status, "account.retrieve", err); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateAccount(ctx context.Context, creds domain.Credentials) (*domain.Customer, error) {
	var customer domain.Customer
	status, err := c.do(ctx, http.MethodPut, "/customer_account", nil, creds, &customer)
	if err := wantOK(status, "account.update", err); err != nil {
		return nil, err
	}
	return &customer, nil
}
