// Package client is the Go SDK for the printshop back-office API.
//
// It mirrors the wire format of the HTTP endpoints one to one, so a value
// round-trips unchanged through JSON. List fetches carry a monotonic
// sequence number: when several are in flight, a response that was
// overtaken by a newer one is reported as ErrStaleResponse instead of
// being handed to the caller, so a dashboard never paints stale rows over
// fresh ones.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
)

// ErrStaleResponse marks a list response that finished after a newer fetch
// of the same collection already completed. Callers should drop the result.
var ErrStaleResponse = errors.New("stale response superseded by a newer fetch")

// APIError is a non-2xx reply decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Order is a customer job as it appears on the wire.
type Order struct {
	ID              int     `json:"id"`
	SizeX           float64 `json:"size_x"`
	SizeY           float64 `json:"size_y"`
	SizeZ           float64 `json:"size_z"`
	Color           string  `json:"color"`
	Entry           string  `json:"entry"`
	Payment         string  `json:"payment"`
	PaymentStatus   string  `json:"payment_status"`
	Discount        float64 `json:"discount"`
	DateOfOrder     string  `json:"date_of_order"`
	Status          string  `json:"status"`
	PaymentReceived bool    `json:"payment_received"`
	SourceOfOrder   string  `json:"source_of_order"`
	Nickname        string  `json:"nickname"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	FilamentID      *int    `json:"filament_id"`
	AmountUsed      float64 `json:"amount_used"`
}

type Colour struct {
	ID         int    `json:"id"`
	ColourName string `json:"colour_name"`
}

type Filament struct {
	ID             int     `json:"id"`
	Size           float64 `json:"size"`
	AmountUsed     float64 `json:"amount_used"`
	DateOfAddition string  `json:"date_of_addition"`
	Material       string  `json:"material"`
	ColourName     string  `json:"colour_name"`
}

type FilamentRemaining struct {
	Label     string  `json:"label"`
	Remaining float64 `json:"remaining"`
}

type WeeklyOrders struct {
	Week   string `json:"week"`
	Orders int    `json:"orders"`
}

// ListOrdersOptions are the optional server-side filter and sort parameters
// of GET /data. Nil fields are omitted.
type ListOrdersOptions struct {
	Status          string
	PaymentReceived *bool
	SortBy          string
	Order           string
}

// Config configures a Client. BaseURL is required and may carry a path
// prefix, e.g. "http://localhost:8080" or "https://host/printshop".
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	baseURL *url.URL
	http    *http.Client

	// per-collection sequencing for stale list detection
	orderSeq    fetchSeq
	colourSeq   fetchSeq
	filamentSeq fetchSeq
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: BaseURL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: base, http: httpClient}, nil
}

// fetchSeq orders concurrent fetches of one collection. begin hands out the
// next ticket; commit succeeds only while no higher ticket has committed.
type fetchSeq struct {
	issued    atomic.Int64
	committed atomic.Int64
}

func (s *fetchSeq) begin() int64 {
	return s.issued.Add(1)
}

func (s *fetchSeq) commit(ticket int64) bool {
	for {
		cur := s.committed.Load()
		if ticket <= cur {
			return false
		}
		if s.committed.CompareAndSwap(cur, ticket) {
			return true
		}
	}
}

func (c *Client) ListOrders(ctx context.Context, opts *ListOrdersOptions) ([]Order, error) {
	ticket := c.orderSeq.begin()

	query := url.Values{}
	if opts != nil {
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
		if opts.PaymentReceived != nil {
			query.Set("payment_received", strconv.FormatBool(*opts.PaymentReceived))
		}
		if opts.SortBy != "" {
			query.Set("sort_by", opts.SortBy)
			if opts.Order != "" {
				query.Set("order", opts.Order)
			}
		}
	}

	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/v1/data", query, nil, &orders); err != nil {
		return nil, err
	}
	if !c.orderSeq.commit(ticket) {
		return nil, ErrStaleResponse
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, o Order) (int, error) {
	var created idEnvelope
	if err := c.do(ctx, http.MethodPost, "/v1/data", nil, o, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) UpdateOrder(ctx context.Context, o Order) (Order, error) {
	var updated Order
	err := c.do(ctx, http.MethodPut, "/v1/data/"+strconv.Itoa(o.ID), nil, o, &updated)
	return updated, err
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/v1/data/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) ListColours(ctx context.Context) ([]Colour, error) {
	ticket := c.colourSeq.begin()

	var colours []Colour
	if err := c.do(ctx, http.MethodGet, "/v1/colours", nil, nil, &colours); err != nil {
		return nil, err
	}
	if !c.colourSeq.commit(ticket) {
		return nil, ErrStaleResponse
	}
	return colours, nil
}

func (c *Client) CreateColour(ctx context.Context, name string) (int, error) {
	var created idEnvelope
	body := Colour{ColourName: name}
	if err := c.do(ctx, http.MethodPost, "/v1/colours", nil, body, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) RenameColour(ctx context.Context, id int, name string) (Colour, error) {
	var updated Colour
	err := c.do(ctx, http.MethodPut, "/v1/colours/"+strconv.Itoa(id), nil, Colour{ColourName: name}, &updated)
	return updated, err
}

func (c *Client) DeleteColour(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/v1/colours/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) ListFilaments(ctx context.Context) ([]Filament, error) {
	ticket := c.filamentSeq.begin()

	var filaments []Filament
	if err := c.do(ctx, http.MethodGet, "/v1/filaments", nil, nil, &filaments); err != nil {
		return nil, err
	}
	if !c.filamentSeq.commit(ticket) {
		return nil, ErrStaleResponse
	}
	return filaments, nil
}

func (c *Client) CreateFilament(ctx context.Context, f Filament) (int, error) {
	var created idEnvelope
	if err := c.do(ctx, http.MethodPost, "/v1/filaments", nil, f, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) UpdateFilament(ctx context.Context, f Filament) (Filament, error) {
	var updated Filament
	err := c.do(ctx, http.MethodPut, "/v1/filaments/"+strconv.Itoa(f.ID), nil, f, &updated)
	return updated, err
}

func (c *Client) DeleteFilament(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/v1/filaments/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) FilamentRemaining(ctx context.Context) ([]FilamentRemaining, error) {
	var out []FilamentRemaining
	err := c.do(ctx, http.MethodGet, "/v1/analytics/filament-remaining", nil, nil, &out)
	return out, err
}

func (c *Client) OrdersPerWeek(ctx context.Context) ([]WeeklyOrders, error) {
	var out []WeeklyOrders
	err := c.do(ctx, http.MethodGet, "/v1/analytics/orders-per-week", nil, nil, &out)
	return out, err
}

type idEnvelope struct {
	ID int `json:"id"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(c.baseURL.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = "UNKNOWN"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
