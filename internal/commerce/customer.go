package commerce

import (
	"context"

	"atelier-storefront/internal/model"
)

// Customer fetches the identity behind an access token. A null customer in the
// response means the backend no longer honors the token, reported as
// model.ErrCustomerNotFound so callers can tell invalidation apart from a
// transport failure.
func (c *Client) Customer(ctx context.Context, token string) (*model.Customer, error) {
	var data struct {
		Customer *wireCustomer `json:"customer"`
	}

	if err := c.do(ctx, queryCustomer, map[string]any{"customerAccessToken": token}, &data); err != nil {
		return nil, err
	}

	if data.Customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return data.Customer.toModel(), nil
}

// CustomerCreate registers a new customer account. The caller logs in
// separately; account creation issues no credential.
func (c *Client) CustomerCreate(ctx context.Context, input model.CustomerInput) (*model.Customer, error) {
	var data struct {
		CustomerCreate struct {
			Customer           *wireCustomer `json:"customer"`
			CustomerUserErrors []userError   `json:"customerUserErrors"`
		} `json:"customerCreate"`
	}

	vars := map[string]any{"input": input}
	if err := c.do(ctx, mutationCustomerCreate, vars, &data); err != nil {
		return nil, err
	}

	if err := firstUserError(data.CustomerCreate.CustomerUserErrors); err != nil {
		return nil, err
	}

	if data.CustomerCreate.Customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return data.CustomerCreate.Customer.toModel(), nil
}

// CustomerAccessTokenCreate exchanges credentials for a bearer token and its
// absolute expiry.
func (c *Client) CustomerAccessTokenCreate(ctx context.Context, email string, password string) (*model.AccessToken, error) {
	var data struct {
		CustomerAccessTokenCreate struct {
			CustomerAccessToken *wireAccessToken `json:"customerAccessToken"`
			CustomerUserErrors  []userError      `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}

	vars := map[string]any{"input": map[string]any{"email": email, "password": password}}
	if err := c.do(ctx, mutationCustomerAccessTokenCreate, vars, &data); err != nil {
		return nil, err
	}

	if err := firstUserError(data.CustomerAccessTokenCreate.CustomerUserErrors); err != nil {
		return nil, err
	}

	if data.CustomerAccessTokenCreate.CustomerAccessToken == nil {
		return nil, model.ErrCustomerNotFound
	}

	return data.CustomerAccessTokenCreate.CustomerAccessToken.toModel(), nil
}

// CustomerAccessTokenDelete revokes a token server side. Local state is not
// touched here; the session manager owns that ordering.
func (c *Client) CustomerAccessTokenDelete(ctx context.Context, token string) error {
	vars := map[string]any{"customerAccessToken": token}
	return c.do(ctx, mutationCustomerAccessTokenDelete, vars, nil)
}

// CustomerRecover asks the backend to start a password-recovery flow.
func (c *Client) CustomerRecover(ctx context.Context, email string) error {
	var data struct {
		CustomerRecover struct {
			CustomerUserErrors []userError `json:"customerUserErrors"`
		} `json:"customerRecover"`
	}

	if err := c.do(ctx, mutationCustomerRecover, map[string]any{"email": email}, &data); err != nil {
		return err
	}

	return firstUserError(data.CustomerRecover.CustomerUserErrors)
}

// CustomerUpdate changes profile fields and returns the updated identity.
func (c *Client) CustomerUpdate(ctx context.Context, token string, input model.CustomerInput) (*model.Customer, error) {
	var data struct {
		CustomerUpdate struct {
			Customer           *wireCustomer `json:"customer"`
			CustomerUserErrors []userError   `json:"customerUserErrors"`
		} `json:"customerUpdate"`
	}

	vars := map[string]any{"customerAccessToken": token, "customer": input}
	if err := c.do(ctx, mutationCustomerUpdate, vars, &data); err != nil {
		return nil, err
	}

	if err := firstUserError(data.CustomerUpdate.CustomerUserErrors); err != nil {
		return nil, err
	}

	if data.CustomerUpdate.Customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return data.CustomerUpdate.Customer.toModel(), nil
}

// CustomerAddresses lists the customer's address book.
func (c *Client) CustomerAddresses(ctx context.Context, token string) ([]model.Address, error) {
	var data struct {
		Customer *struct {
			Addresses struct {
				Edges []struct {
					Node wireAddress `json:"node"`
				} `json:"edges"`
			} `json:"addresses"`
		} `json:"customer"`
	}

	if err := c.do(ctx, queryCustomerAddresses, map[string]any{"customerAccessToken": token}, &data); err != nil {
		return nil, err
	}

	if data.Customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	out := make([]model.Address, 0, len(data.Customer.Addresses.Edges))
	for _, edge := range data.Customer.Addresses.Edges {
		out = append(out, edge.Node.toModel())
	}

	return out, nil
}

// CustomerAddressCreate adds an address book entry.
func (c *Client) CustomerAddressCreate(ctx context.Context, token string, addr model.AddressInput) (*model.Address, error) {
	var data struct {
		CustomerAddressCreate struct {
			CustomerAddress    *wireAddress `json:"customerAddress"`
			CustomerUserErrors []userError  `json:"customerUserErrors"`
		} `json:"customerAddressCreate"`
	}

	vars := map[string]any{"customerAccessToken": token, "address": addr}
	if err := c.do(ctx, mutationCustomerAddressCreate, vars, &data); err != nil {
		return nil, err
	}

	if err := firstUserError(data.CustomerAddressCreate.CustomerUserErrors); err != nil {
		return nil, err
	}

	if data.CustomerAddressCreate.CustomerAddress == nil {
		return nil, model.ErrCustomerNotFound
	}

	created := data.CustomerAddressCreate.CustomerAddress.toModel()
	return &created, nil
}

// CustomerAddressUpdate rewrites an existing address book entry.
func (c *Client) CustomerAddressUpdate(ctx context.Context, token string, id string, addr model.AddressInput) (*model.Address, error) {
	var data struct {
		CustomerAddressUpdate struct {
			CustomerAddress    *wireAddress `json:"customerAddress"`
			CustomerUserErrors []userError  `json:"customerUserErrors"`
		} `json:"customerAddressUpdate"`
	}

	vars := map[string]any{"customerAccessToken": token, "id": id, "address": addr}
	if err := c.do(ctx, mutationCustomerAddressUpdate, vars, &data); err != nil {
		return nil, err
	}

	if err := firstUserError(data.CustomerAddressUpdate.CustomerUserErrors); err != nil {
		return nil, err
	}

	if data.CustomerAddressUpdate.CustomerAddress == nil {
		return nil, model.ErrCustomerNotFound
	}

	updated := data.CustomerAddressUpdate.CustomerAddress.toModel()
	return &updated, nil
}

// CustomerAddressDelete removes an address book entry.
func (c *Client) CustomerAddressDelete(ctx context.Context, token string, id string) error {
	var data struct {
		CustomerAddressDelete struct {
			CustomerUserErrors []userError `json:"customerUserErrors"`
		} `json:"customerAddressDelete"`
	}

	vars := map[string]any{"customerAccessToken": token, "id": id}
	if err := c.do(ctx, mutationCustomerAddressDelete, vars, &data); err != nil {
		return err
	}

	return firstUserError(data.CustomerAddressDelete.CustomerUserErrors)
}
