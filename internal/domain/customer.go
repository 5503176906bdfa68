package domain

import "encoding/json"

// Customer is the authenticated-session payload the account endpoints
// return. Login delivers it base64-encoded; see SessionService.Login.
type Customer struct {
	Token            string          `json:"token,omitempty"`
	Authenticated    bool            `json:"authenticated"`
	CustomerSettings json.RawMessage `json:"customer_settings,omitempty"`
	OrderStatuses    json.RawMessage `json:"order_statuses,omitempty"`
}

// LoggedOut is the synthetic customer record a session expiry dispatches.
// Pure local reset, no server round trip.
func LoggedOut() Customer {
	return Customer{Token: "", Authenticated: false}
}

// Credentials is the form payload for login, registration and the
// password-reset flows. The server ignores fields it doesn't need.
type Credentials struct {
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Token     string `json:"token,omitempty"`
}
