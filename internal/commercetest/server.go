// Package commercetest is an in-process fake of the commerce API for
// tests and the demo binary. Fixtures live in memory; behavior knobs
// (charge status, sitemap entries) are plain exported fields.
package commercetest

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"storefront/internal/domain"
)

// Server backs every endpoint the orchestration layer calls.
type Server struct {
	mu sync.Mutex

	Categories      []domain.Category
	Products        []domain.Product
	Sitemap         map[string]domain.SitemapEntry
	Cart            domain.Cart
	ShippingMethods []domain.ShippingMethod
	PaymentMethods  []domain.PaymentMethod
	Customer        domain.Customer

	// ChargeStatus is returned by POST /cart/charge. Defaults to 200.
	ChargeStatus int

	// Call counters for assertions.
	SitemapCalls  int
	ChargeCalls   int
	CheckoutCalls int
	ProductCalls  int

	nextItemID int
	router     chi.Router
}

// NewServer seeds a small but complete storefront fixture.
func NewServer() *Server {
	s := &Server{
		Categories: []domain.Category{
			{ID: 7, Name: "Shoes", Path: "/shoes"},
			{ID: 8, Name: "Shirts", Path: "/shirts"},
		},
		Products: []domain.Product{
			{ID: 101, CategoryID: 7, SKU: "SHOE-1", Name: "Runner", Path: "/shoes/runner", Price: 59.90},
			{ID: 102, CategoryID: 7, SKU: "SHOE-2", Name: "Walker", Path: "/shoes/walker", Price: 49.90},
			{ID: 103, CategoryID: 8, SKU: "SHIRT-1", Name: "Oxford", Path: "/shirts/oxford", Price: 29.90},
		},
		Sitemap: map[string]domain.SitemapEntry{
			"/search": {Type: domain.PageSearch, Path: "/search"},
			"/about":  {Type: domain.PageStatic, Path: "/about", Data: json.RawMessage(`{"title":"About"}`)},
			"/checkout": {
				Type: domain.PageStatic,
				Path: "/checkout",
				Data: json.RawMessage(`{"title":"Checkout"}`),
			},
			"/shoes/runner": {
				Type: domain.PageProduct,
				Path: "/shoes/runner",
				Data: json.RawMessage(`{"id":101,"name":"Runner","price":59.9}`),
			},
		},
		ShippingMethods: []domain.ShippingMethod{
			{ID: "ship-std", Name: "Standard", Price: 4.90},
			{ID: "ship-exp", Name: "Express", Price: 9.90},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: "pay-card", Name: "Card", Gateway: "testgw"},
			{ID: "pay-invoice", Name: "Invoice"},
		},
		Customer: domain.Customer{
			Token:         "tok-test",
			Authenticated: true,
		},
		ChargeStatus: http.StatusOK,
		nextItemID:   1,
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler to mount in an httptest.Server.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Get("/products", s.handleListProducts)
	r.Get("/product_categories", s.handleListCategories)
	r.Get("/sitemap", s.handleSitemap)

	r.Get("/cart", s.handleGetCart)
	r.Put("/cart", s.handleUpdateCart)
	r.Post("/cart/items", s.handleAddItem)
	r.Put("/cart/items/{itemID}", s.handleUpdateItem)
	r.Delete("/cart/items/{itemID}", s.handleDeleteItem)
	r.Post("/cart/charge", s.handleCharge)
	r.Post("/cart/checkout", s.handleCheckout)

	r.Get("/shipping_methods", s.handleShippingMethods)
	r.Get("/payment_methods", s.handlePaymentMethods)

	r.Post("/login", s.handleLogin)
	r.Post("/register", s.handleEcho("registered"))
	r.Post("/reset_password", s.handleEcho("password-reset"))
	r.Post("/forgot_password", s.handleEcho("email-sent"))
	r.Post("/customer_account", s.handleAccount)
	r.Put("/customer_account", s.handleAccount)

	s.router = r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ProductCalls++

	q := r.URL.Query()
	categoryID, _ := strconv.Atoi(q.Get("category_id"))
	search := q.Get("search")
	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = len(s.Products)
	}

	var matched []domain.Product
	for _, p := range s.Products {
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if search != "" && !containsFold(p.Name, search) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, domain.ProductList{
		TotalCount: total,
		HasMore:    end < total,
		Data:       matched[offset:end],
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.Categories)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SitemapCalls++

	entry, ok := s.Sitemap[r.URL.Query().Get("path")]
	if !ok {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, entry)
}

func (s *Server) handleGetCart(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.Cart)
}

func (s *Server) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var draft domain.CartDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	applyDraft(&s.Cart, draft)
	writeJSON(w, s.Cart)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item domain.CartItemDraft
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	price := 0.0
	name := ""
	productID := item.ProductID
	for _, p := range s.Products {
		if p.ID == item.ProductID || (item.SKU != "" && p.SKU == item.SKU) {
			price, name, productID = p.Price, p.Name, p.ID
			break
		}
	}

	s.Cart.Items = append(s.Cart.Items, domain.CartItem{
		ID:        "item-" + strconv.Itoa(s.nextItemID),
		ProductID: productID,
		SKU:       item.SKU,
		Name:      name,
		Quantity:  item.Quantity,
		Price:     price,
	})
	s.nextItemID++
	writeJSON(w, s.Cart)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	for i := range s.Cart.Items {
		if s.Cart.Items[i].ID == itemID {
			s.Cart.Items[i].Quantity = body.Quantity
			writeJSON(w, s.Cart)
			return
		}
	}
	http.Error(w, `{"error":"no such item"}`, http.StatusNotFound)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemID := chi.URLParam(r, "itemID")
	items := s.Cart.Items[:0]
	for _, it := range s.Cart.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	s.Cart.Items = items
	writeJSON(w, s.Cart)
}

func (s *Server) handleCharge(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ChargeCalls++
	w.WriteHeader(s.ChargeStatus)
}

func (s *Server) handleCheckout(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CheckoutCalls++

	total := 0.0
	for _, it := range s.Cart.Items {
		total += it.Price * float64(it.Quantity)
	}
	items, _ := json.Marshal(s.Cart.Items)
	order := domain.Order{
		ID:         "order-" + strconv.Itoa(s.CheckoutCalls),
		Number:     1000 + s.CheckoutCalls,
		GrandTotal: total,
		Items:      items,
	}
	s.Cart = domain.Cart{}
	writeJSON(w, order)
}

func (s *Server) handleShippingMethods(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.ShippingMethods)
}

func (s *Server) handlePaymentMethods(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.PaymentMethods)
}

// handleLogin answers with the customer payload base64-encoded, as the
// real API does; the client is expected to decode it.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, _ := json.Marshal(s.Customer)
	writeJSON(w, base64.StdEncoding.EncodeToString(payload))
}

func (s *Server) handleAccount(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.Customer)
}

func (s *Server) handleEcho(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": status})
	}
}

func applyDraft(cart *domain.Cart, draft domain.CartDraft) {
	if draft.ShippingAddress != nil {
		cart.ShippingAddress = draft.ShippingAddress
	}
	if draft.BillingAddress != nil {
		cart.BillingAddress = draft.BillingAddress
	}
	if draft.Email != "" {
		cart.Email = draft.Email
	}
	if draft.Mobile != "" {
		cart.Mobile = draft.Mobile
	}
	if draft.FirstName != "" {
		cart.FirstName = draft.FirstName
	}
	if draft.LastName != "" {
		cart.LastName = draft.LastName
	}
	if draft.Password != "" {
		cart.Password = draft.Password
	}
	if draft.PaymentMethodID != "" {
		cart.PaymentMethodID = draft.PaymentMethodID
	}
	if draft.ShippingMethodID != "" {
		cart.ShippingMethodID = draft.ShippingMethodID
	}
	if draft.Comments != "" {
		cart.Comments = draft.Comments
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
