package domain

// StoreSettings are the storefront parameters page resolution and checkout
// depend on. Held in state, sourced from config.
type StoreSettings struct {
	DefaultProductSorting string `json:"default_product_sorting" yaml:"default_product_sorting"`
	CheckoutPath          string `json:"checkout_path" yaml:"checkout_path"`
	CheckoutSuccessPath   string `json:"checkout_success_path" yaml:"checkout_success_path"`
	AccountPath           string `json:"account_path" yaml:"account_path"`
	ProductsLimit         int    `json:"products_limit" yaml:"products_limit"`
}
