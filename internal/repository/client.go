package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/pkg/cleanup"
)

const (
	defaultPageSize = 100
	defaultTimeout  = 10 * time.Second
	// Upper bound on pages read by one List call
	maxPages = 1000
)

type tokenKey struct{}

// ContextWithToken attaches the caller's upstream bearer token to ctx.
// Requests made with that context use it instead of the configured default.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks to the DailyOS backend REST API. Repositories share one Client.
type Client struct {
	doer     HTTPDoer
	endpoint string
	token    string
	pageSize int
}

func NewClient(cfg *APICfg) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing upstream connections",
		F: func() error {
			transport.CloseIdleConnections()
			return nil
		},
	})
	return NewClientWithDoer(cfg, httpClient)
}

func NewClientWithDoer(cfg *APICfg, doer HTTPDoer) *Client {
	if cfg.Address == "" {
		log.Fatal("upstream address is empty")
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		doer:     doer,
		endpoint: cfg.Endpoint(),
		token:    cfg.Token,
		pageSize: pageSize,
	}
}

// Ping checks that the backend answers its health check.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/utils/health-check/", nil, nil, nil)
}

// get issues GET endpoint+path and decodes a 2xx body into out when out is not nil.
// A 404 is reported as notFound when it is set.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any, notFound error) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	token := tokenFromContext(ctx)
	if token == "" {
		token = c.token
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", errorvalues.ErrUpstreamFailure, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, path, notFound)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %w", errorvalues.ErrUpstreamBadPayload, path, err)
	}
	return nil
}

func statusError(resp *http.Response, path string, notFound error) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := string(body)
	var apiErr apiError
	if err := sonic.ConfigDefault.Unmarshal(body, &apiErr); err == nil && apiErr.Detail != nil {
		detail = fmt.Sprint(apiErr.Detail)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return notFound
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", errorvalues.ErrUnauthorized, detail)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", errorvalues.ErrForbidden, detail)
	default:
		return fmt.Errorf("%w: GET %s: status %d: %s", errorvalues.ErrUpstreamFailure, path, resp.StatusCode, detail)
	}
}

// listAll walks the backend's skip/limit pagination until count items are read
// or an empty page arrives. Pages shorter than limit do not end the walk, the
// backend may cap limit below the requested page size.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	if query == nil {
		query = url.Values{}
	}
	res := make([]T, 0)
	for i := 0; i < maxPages; i++ {
		query.Set("skip", strconv.Itoa(len(res)))
		query.Set("limit", strconv.Itoa(c.pageSize))
		var p page[T]
		if err := c.get(ctx, path, query, &p, nil); err != nil {
			return nil, err
		}
		res = append(res, p.Data...)
		if len(p.Data) == 0 || len(res) >= p.Count {
			return res, nil
		}
	}
	return nil, errors.New("pagination did not terminate for " + path)
}
