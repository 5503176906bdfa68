package domain

import "encoding/json"

// Address is a shipping or billing address as the server stores it.
type Address struct {
	FullName   string `json:"full_name,omitempty"`
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	State      string `json:"state,omitempty"`
	Phone      string `json:"phone,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// CartItem is one line item inside the server-owned cart.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID int     `json:"product_id"`
	SKU       string  `json:"sku,omitempty"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart is the server-owned aggregate. The client never constructs one:
// every mutation returns the authoritative cart and it is held verbatim.
type Cart struct {
	ID               string     `json:"id,omitempty"`
	Items            []CartItem `json:"items"`
	ShippingAddress  *Address   `json:"shipping_address,omitempty"`
	BillingAddress   *Address   `json:"billing_address,omitempty"`
	Email            string     `json:"email,omitempty"`
	Mobile           string     `json:"mobile,omitempty"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	Password         string     `json:"password,omitempty"`
	PaymentMethodID  string     `json:"payment_method_id,omitempty"`
	ShippingMethodID string     `json:"shipping_method_id,omitempty"`
	Comments         string     `json:"comments,omitempty"`
	PaymentToken     string     `json:"payment_token,omitempty"`
	GrandTotal       float64    `json:"grand_total,omitempty"`
}

// CartDraft carries the editable cart fields a checkout pushes to the
// server before the authoritative re-retrieve.
type CartDraft struct {
	ShippingAddress  *Address `json:"shipping_address,omitempty"`
	BillingAddress   *Address `json:"billing_address,omitempty"`
	Email            string   `json:"email,omitempty"`
	Mobile           string   `json:"mobile,omitempty"`
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	Password         string   `json:"password,omitempty"`
	PaymentMethodID  string   `json:"payment_method_id,omitempty"`
	ShippingMethodID string   `json:"shipping_method_id,omitempty"`
	Comments         string   `json:"comments,omitempty"`
}

// Draft extracts the editable fields from a cart.
func (c Cart) Draft() CartDraft {
	return CartDraft{
		ShippingAddress:  c.ShippingAddress,
		BillingAddress:   c.BillingAddress,
		Email:            c.Email,
		Mobile:           c.Mobile,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Password:         c.Password,
		PaymentMethodID:  c.PaymentMethodID,
		ShippingMethodID: c.ShippingMethodID,
		Comments:         c.Comments,
	}
}

// CartItemDraft is what addCartItem sends.
type CartItemDraft struct {
	ProductID int    `json:"product_id,omitempty"`
	SKU       string `json:"sku,omitempty"`
	VariantID int    `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Order is the checkout result. Beyond the fields used for navigation and
// analytics it stays opaque to this layer.
type Order struct {
	ID         string          `json:"id"`
	Number     int             `json:"number,omitempty"`
	GrandTotal float64         `json:"grand_total,omitempty"`
	Items      json.RawMessage `json:"items,omitempty"`
}

// ShippingMethod and PaymentMethod are ordered server-side lists; the
// orchestrator only forwards them.
type ShippingMethod struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Gateway     string `json:"gateway,omitempty"`
}
