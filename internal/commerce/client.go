// Package commerce wraps the storefront backend's GraphQL API: catalog reads,
// checkout creation and customer account operations. The backend owns all
// pricing and inventory; this client only issues fixed queries and reshapes
// the responses.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"atelier-storefront/pkg/apierror"
)

const storefrontTokenHeader = "X-Shopify-Storefront-Access-Token"

// checkoutChannel is the fixed sales-channel identifier appended to every
// checkout redirect URL.
const checkoutChannel = "storefront"

type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
	limiter  *rate.Limiter
	log      *slog.Logger
}

type Options struct {
	Timeout        time.Duration
	RequestsPerSec float64
	Burst          int
}

func NewClient(endpoint string, token string, opts Options, log *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 4
	}
	if opts.Burst <= 0 {
		opts.Burst = 8
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		endpoint: endpoint,
		token:    token,
		httpc:    &http.Client{Timeout: opts.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(opts.RequestsPerSec), opts.Burst),
		log:      log,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// do posts one GraphQL document and decodes the data envelope into out.
// HTTP 402 is the backend's "shop unavailable on current billing plan" signal
// and gets its own taxonomy code; every other transport-level failure maps to
// a generic network error.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apierror.New(apierror.CodeNetwork, "request cancelled")
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(storefrontTokenHeader, c.token)

	requestID := uuid.NewString()
	c.log.Debug("storefront request", "request_id", requestID, "endpoint", c.endpoint)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apierror.New(apierror.CodeNetwork, "storefront backend unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return apierror.New(apierror.CodePaymentRequired, "storefront unavailable on the current billing plan")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("storefront error status", "request_id", requestID, "status", resp.StatusCode)
		return apierror.New(apierror.CodeNetwork, fmt.Sprintf("storefront backend returned status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.New(apierror.CodeNetwork, "reading storefront response failed")
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apierror.New(apierror.CodeNetwork, "malformed storefront response")
	}

	if len(envelope.Errors) > 0 {
		return apierror.New(apierror.CodeNetwork, envelope.Errors[0].Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return apierror.New(apierror.CodeNetwork, "malformed storefront response")
		}
	}

	return nil
}
