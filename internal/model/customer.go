package model

import "time"

// Customer is the authenticated end-user as known to the storefront backend.
// It is owned exclusively by the session store; everything else reads copies.
type Customer struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone,omitempty"`
}

// Address is one entry in the customer's address book.
type Address struct {
	ID       string `json:"id"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	Province string `json:"province,omitempty"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// AccessToken is the bearer credential for customer-scoped backend calls.
// It is valid iff the token is present and the expiry is strictly in the future.
type AccessToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the credential authorizes requests at the given instant.
func (t *AccessToken) Valid(now time.Time) bool {
	return t != nil && t.Token != "" && t.ExpiresAt.After(now)
}

// CustomerInput carries signup and profile-update fields. Password is only set
// on signup; zero-value fields are omitted from the mutation.
type CustomerInput struct {
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// AddressInput carries address create/update fields.
type AddressInput struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	Province string `json:"province,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
