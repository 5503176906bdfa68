// Package action defines the discriminated state-change descriptors the
// orchestration services dispatch and the reducer folds into state.
// Request actions carry no payload; receive actions carry the resolved
// payload, or nil to signal clearing.
package action

import (
	"encoding/json"

	"storefront/internal/domain"
)

type Type string

const (
	ProductsRequest     Type = "products:request"
	ProductsReceive     Type = "products:receive"
	MoreProductsRequest Type = "products:more-request"
	MoreProductsReceive Type = "products:more-receive"
	ProductReceive      Type = "product:receive"

	PageRequest Type = "page:request"
	PageReceive Type = "page:receive"

	CartRequest           Type = "cart:request"
	CartReceive           Type = "cart:receive"
	CartItemAddRequest    Type = "cart:item-add-request"
	CartItemUpdateRequest Type = "cart:item-update-request"
	CartItemDeleteRequest Type = "cart:item-delete-request"
	CartLayerInitialized  Type = "cart:layer-initialized"

	ShippingMethodsRequest Type = "shipping-methods:request"
	ShippingMethodsReceive Type = "shipping-methods:receive"
	PaymentMethodsRequest  Type = "payment-methods:request"
	PaymentMethodsReceive  Type = "payment-methods:receive"

	CheckoutRequest Type = "checkout:request"
	CheckoutReceive Type = "checkout:receive"

	LocationChanged    Type = "location:changed"
	SitemapReceive     Type = "sitemap:receive"
	SetCurrentCategory Type = "category:set-current"
	SetProductsFilter  Type = "products:set-filter"

	SettingsReceive Type = "settings:receive"

	AccountReceive           Type = "account:receive"
	RegisterProperties       Type = "account:register-properties"
	ForgotPasswordProperties Type = "account:forgot-password-properties"
	ResetPasswordProperties  Type = "account:reset-password-properties"
)

// Action is a single dispatched descriptor. Exactly one payload field is
// set, matching Type; the zero value of the rest is ignored by the reducer.
type Action struct {
	Type Type

	Location *domain.Location
	Sitemap  *domain.SitemapEntry
	Category *domain.Category
	Filter   *domain.ProductFilter

	Products *domain.ProductList
	Claim    string // products fetch claim token, set on ProductsRequest

	Product json.RawMessage
	Page    json.RawMessage

	Cart            *domain.Cart
	Order           *domain.Order
	ShippingMethods []domain.ShippingMethod
	PaymentMethods  []domain.PaymentMethod

	Customer *domain.Customer
	Data     json.RawMessage // register / password-flow property payloads
	Flag     bool            // cart layer initialized

	Settings *domain.StoreSettings
}

func RequestProducts(claim string) Action { return Action{Type: ProductsRequest, Claim: claim} }

func ReceiveProducts(p *domain.ProductList) Action { return Action{Type: ProductsReceive, Products: p} }

func RequestMoreProducts() Action { return Action{Type: MoreProductsRequest} }

func ReceiveMoreProducts(p *domain.ProductList) Action {
	return Action{Type: MoreProductsReceive, Products: p}
}

func ReceiveProduct(product json.RawMessage) Action {
	return Action{Type: ProductReceive, Product: product}
}

func RequestPage() Action { return Action{Type: PageRequest} }

func ReceivePage(page json.RawMessage) Action { return Action{Type: PageReceive, Page: page} }

func RequestCart() Action { return Action{Type: CartRequest} }

func ReceiveCart(cart *domain.Cart) Action { return Action{Type: CartReceive, Cart: cart} }

func RequestAddCartItem() Action { return Action{Type: CartItemAddRequest} }

func RequestUpdateCartItem() Action { return Action{Type: CartItemUpdateRequest} }

func RequestDeleteCartItem() Action { return Action{Type: CartItemDeleteRequest} }

func RequestShippingMethods() Action { return Action{Type: ShippingMethodsRequest} }

func ReceiveShippingMethods(methods []domain.ShippingMethod) Action {
	return Action{Type: ShippingMethodsReceive, ShippingMethods: methods}
}

func RequestPaymentMethods() Action { return Action{Type: PaymentMethodsRequest} }

func ReceivePaymentMethods(methods []domain.PaymentMethod) Action {
	return Action{Type: PaymentMethodsReceive, PaymentMethods: methods}
}

func RequestCheckout() Action { return Action{Type: CheckoutRequest} }

func ReceiveCheckout(order *domain.Order) Action { return Action{Type: CheckoutReceive, Order: order} }

func ChangeLocation(loc domain.Location) Action {
	return Action{Type: LocationChanged, Location: &loc}
}

func ReceiveSitemap(entry domain.SitemapEntry) Action {
	return Action{Type: SitemapReceive, Sitemap: &entry}
}

func CurrentCategory(c domain.Category) Action {
	return Action{Type: SetCurrentCategory, Category: &c}
}

func ProductsFilter(f domain.ProductFilter) Action {
	return Action{Type: SetProductsFilter, Filter: &f}
}

func ReceiveAccount(c domain.Customer) Action { return Action{Type: AccountReceive, Customer: &c} }

func ReceiveRegister(data json.RawMessage) Action {
	return Action{Type: RegisterProperties, Data: data}
}

func ReceiveForgotPassword(data json.RawMessage) Action {
	return Action{Type: ForgotPasswordProperties, Data: data}
}

func ReceiveResetPassword(data json.RawMessage) Action {
	return Action{Type: ResetPasswordProperties, Data: data}
}

func InitializeCartLayer(initialized bool) Action {
	return Action{Type: CartLayerInitialized, Flag: initialized}
}

func ReceiveSettings(s domain.StoreSettings) Action {
	return Action{Type: SettingsReceive, Settings: &s}
}
