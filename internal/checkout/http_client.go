package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
)

const serviceName = "checkout"

// HTTPClient posts the selection payload to the checkout-session service.
// Every failure mode maps to domain.UnavailableError: transport errors,
// non-2xx statuses, bodies that do not parse, and responses without a
// url. The caller must treat all of them as "do not redirect".
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
	Limiter *rate.Limiter
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (c *HTTPClient) CreateSession(ctx context.Context, payload models.CheckoutPayload) (Result, error) {
	if c.BaseURL == "" {
		return Result{}, domain.UnavailableError{Service: serviceName, Msg: "no checkout endpoint configured"}
	}
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return Result{}, domain.UnavailableError{Service: serviceName, Msg: "rate limit wait cancelled", Err: err}
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, domain.InternalError{Msg: "encode checkout payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/checkout-session", bytes.NewReader(body))
	if err != nil {
		return Result{}, domain.InternalError{Msg: "build checkout request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Result{}, domain.UnavailableError{Service: serviceName, Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, domain.UnavailableError{
			Service: serviceName,
			Msg:     fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, domain.UnavailableError{Service: serviceName, Msg: "malformed response body", Err: err}
	}
	if strings.TrimSpace(out.URL) == "" {
		return Result{}, domain.UnavailableError{Service: serviceName, Msg: "response carried no redirect url"}
	}
	return out, nil
}

func (c *HTTPClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
