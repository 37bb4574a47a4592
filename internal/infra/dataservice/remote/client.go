// Package remote talks to the hosted PostgREST data service over HTTPS.
package remote

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mrisafe/config"
	"mrisafe/internal/errors"

	"github.com/go-resty/resty/v2"
)

const (
	restPrefix = "/rest/v1"

	// single-row contract: the service answers 406 unless exactly one row matched
	acceptSingleObject = "application/vnd.pgrst.object+json"

	// PostgREST error code for "JSON object requested, multiple (or no) rows returned"
	codeSingularityViolation = "PGRST116"
	// PostgreSQL unique_violation
	codeUniqueViolation = "23505"
)

// APIError is the error body returned by the data service.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("data service returned ")
	b.WriteString(http.StatusText(e.Status))
	if e.Code != "" {
		b.WriteString(" (" + e.Code + ")")
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}

	return b.String()
}

// IsSingularityViolation reports whether a single-row fetch matched zero or several rows.
func (e *APIError) IsSingularityViolation() bool {
	return e.Status == http.StatusNotAcceptable || e.Code == codeSingularityViolation
}

// IsUniqueViolation reports whether an insert collided with an existing row.
// Other 409s, such as foreign key violations, are not duplicates.
func (e *APIError) IsUniqueViolation() bool {
	return e.Code == codeUniqueViolation
}

// Client is the connection to the hosted data service. It is built once at
// start-up and shared by the remote repositories.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a data service client from the dataService config section.
func NewClient(cfg *config.DataServiceConfig, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")+restPrefix).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(retryIdempotentServerErrors).
		SetHeader("apikey", cfg.AccessKey).
		SetAuthToken(cfg.AccessKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

func retryIdempotentServerErrors(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	if resp.Request.Method != http.MethodGet {
		return false
	}

	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

// list issues a GET for a collection and decodes it into out.
func (c *Client) list(ctx context.Context, table string, params query, out any) error {
	return c.get(ctx, table, params, out, false)
}

// single issues a GET under the single-row contract.
func (c *Client) single(ctx context.Context, table string, params query, out any) error {
	return c.get(ctx, table, params, out, true)
}

func (c *Client) get(ctx context.Context, table string, params query, out any, single bool) error {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params.values()).
		SetResult(out).
		SetError(&APIError{})
	if single {
		req.SetHeader("Accept", acceptSingleObject)
	}

	resp, err := req.Get("/" + table)

	return c.check(ctx, http.MethodGet, table, resp, err)
}

// insert posts rows without asking for a representation back.
func (c *Client) insert(ctx context.Context, table string, rows any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(rows).
		SetError(&APIError{}).
		Post("/" + table)

	return c.check(ctx, http.MethodPost, table, resp, err)
}

func (c *Client) check(ctx context.Context, method, table string, resp *resty.Response, err error) error {
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, table)
	}

	c.logger.DebugContext(ctx, "Data service call",
		slog.String("method", method),
		slog.String("table", table),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("elapsed", resp.Time()),
	)

	if !resp.IsError() {
		return nil
	}

	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.Status = resp.StatusCode()
	if apiErr.Code == "" && apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(resp.String())
	}

	return errors.WithStack(apiErr)
}
