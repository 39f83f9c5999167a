package commerce

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-storefront/internal/model"
	"atelier-storefront/pkg/apierror"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(server.URL, "shop-token", Options{Timeout: 2 * time.Second}, log)
}

func respond(t *testing.T, w http.ResponseWriter, data string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(`{"data":` + data + `}`))
	require.NoError(t, err)
}

func TestClient_Transport(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the storefront access token header", func(t *testing.T) {
		var gotToken string
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.Header.Get("X-Shopify-Storefront-Access-Token")
			respond(t, w, `{"products":{"edges":[]}}`)
		})

		_, err := c.Products(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, "shop-token", gotToken)
	})

	t.Run("402 maps to the billing taxonomy code", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		})

		_, err := c.Products(ctx, 10)

		require.Error(t, err)
		assert.Equal(t, apierror.CodePaymentRequired, apierror.CodeOf(err))
	})

	t.Run("other error statuses map to network", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.Products(ctx, 10)

		require.Error(t, err)
		assert.Equal(t, apierror.CodeNetwork, apierror.CodeOf(err))
	})

	t.Run("unreachable backend maps to network", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		c := NewClient(server.URL, "shop-token", Options{Timeout: time.Second}, log)

		_, err := c.Products(ctx, 10)

		require.Error(t, err)
		assert.Equal(t, apierror.CodeNetwork, apierror.CodeOf(err))
	})

	t.Run("malformed body maps to network", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		})

		_, err := c.Products(ctx, 10)

		require.Error(t, err)
		assert.Equal(t, apierror.CodeNetwork, apierror.CodeOf(err))
	})

	t.Run("top-level graphql errors surface their message", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"query cost exceeded"}]}`))
		})

		_, err := c.Products(ctx, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "query cost exceeded")
	})
}

func TestClient_CustomerAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("login parses token and expiry", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req graphQLRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			input := req.Variables["input"].(map[string]any)
			assert.Equal(t, "ana@example.com", input["email"])

			respond(t, w, `{"customerAccessTokenCreate":{
				"customerAccessToken":{"accessToken":"tok","expiresAt":"2026-10-01T10:00:00Z"},
				"customerUserErrors":[]}}`)
		})

		token, err := c.CustomerAccessTokenCreate(ctx, "ana@example.com", "hunter2pass")

		require.NoError(t, err)
		assert.Equal(t, "tok", token.Token)
		assert.Equal(t, time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC), token.ExpiresAt)
	})

	t.Run("login user error carries the backend code", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, `{"customerAccessTokenCreate":{
				"customerAccessToken":null,
				"customerUserErrors":[{"code":"UNIDENTIFIED_CUSTOMER","field":["input"],"message":"Unidentified customer"}]}}`)
		})

		_, err := c.CustomerAccessTokenCreate(ctx, "ana@example.com", "wrongpassword")

		require.Error(t, err)
		apiErr, ok := apierror.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, apierror.CodeUserError, apiErr.Code)
		assert.Equal(t, "UNIDENTIFIED_CUSTOMER", apiErr.BackendCode)
		assert.Equal(t, "Unidentified customer", apiErr.Message)
	})

	t.Run("signup taken email surfaces only the first user error", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, `{"customerCreate":{
				"customer":null,
				"customerUserErrors":[
					{"code":"TAKEN","field":["input","email"],"message":"Email has already been taken"},
					{"code":"TOO_SHORT","field":["input","password"],"message":"Password is too short"}]}}`)
		})

		_, err := c.CustomerCreate(ctx, model.CustomerInput{Email: "ana@example.com", Password: "hunter2pass"})

		require.Error(t, err)
		apiErr, ok := apierror.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "TAKEN", apiErr.BackendCode)
		assert.Equal(t, "input.email", apiErr.Field)
	})

	t.Run("null customer means the token was invalidated", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, `{"customer":null}`)
		})

		_, err := c.Customer(ctx, "tok")

		assert.ErrorIs(t, err, model.ErrCustomerNotFound)
	})

	t.Run("customer reshapes into the identity model", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req graphQLRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "tok", req.Variables["customerAccessToken"])

			respond(t, w, `{"customer":{
				"id":"gid://customer/1","email":"ana@example.com",
				"firstName":"Ana","lastName":"Keramik","displayName":"","phone":""}}`)
		})

		customer, err := c.Customer(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "Ana Keramik", customer.DisplayName)
	})
}

func TestClient_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("products parse variants and prices into cents", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, `{"products":{"edges":[{"node":{
				"id":"gid://product/1","handle":"stoneware-mug","title":"Stoneware Mug",
				"description":"Hand-thrown mug.",
				"featuredImage":{"url":"https://cdn.example.com/mug.jpg"},
				"variants":{"edges":[{"node":{
					"id":"gid://variant/11","title":"Small","availableForSale":true,
					"price":{"amount":"24.0","currencyCode":"EUR"},
					"selectedOptions":[{"name":"Size","value":"Small"}]}}]}}}]}}`)
		})

		products, err := c.Products(ctx, 10)

		require.NoError(t, err)
		require.Len(t, products, 1)
		require.Len(t, products[0].Variants, 1)
		assert.Equal(t, int64(2400), products[0].Variants[0].PriceCents)
		assert.Equal(t, "EUR", products[0].Variants[0].Currency)
		assert.Equal(t, "https://cdn.example.com/mug.jpg", products[0].ImageURL)
	})

	t.Run("missing handle reports not found", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, `{"productByHandle":null}`)
		})

		_, err := c.ProductByHandle(ctx, "no-such-thing")

		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestClient_CheckoutCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the redirect URL with the channel parameter", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req graphQLRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			input := req.Variables["input"].(map[string]any)
			lines := input["lineItems"].([]any)
			require.Len(t, lines, 1)

			respond(t, w, `{"checkoutCreate":{
				"checkout":{"webUrl":"https://shop.example.com/checkouts/abc?key=123"},
				"checkoutUserErrors":[]}}`)
		})

		url, err := c.CheckoutCreate(ctx, []model.CheckoutLine{{VariantID: "gid://variant/11", Quantity: 2}})

		require.NoError(t, err)
		assert.Contains(t, url, "channel=storefront")
		assert.Contains(t, url, "key=123")
	})

	t.Run("checkout user errors are surfaced", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, `{"checkoutCreate":{
				"checkout":null,
				"checkoutUserErrors":[{"code":"INVALID","field":["lineItems"],"message":"Variant is no longer available"}]}}`)
		})

		_, err := c.CheckoutCreate(ctx, []model.CheckoutLine{{VariantID: "gid://variant/11", Quantity: 2}})

		require.Error(t, err)
		assert.Equal(t, apierror.CodeUserError, apierror.CodeOf(err))
	})
}

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"29.95", 2995},
		{"24.0", 2400},
		{"12", 1200},
		{"0.5", 50},
		{".99", 99},
		{"10.999", 1099},
		{"-3.25", -325},
	}

	for _, tc := range cases {
		got, err := parseCents(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseCents("abc")
	assert.Error(t, err)
}
