package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mobil-koeln/irail-cli/internal/models"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "irail-cli (https://github.com/mobil-koeln/irail-cli)"
	defaultTimezone  = "Europe/Brussels"
)

// Client is the API client for api.irail.be
type Client struct {
	httpClient *http.Client
	baseURL    string
	timezone   *time.Location
	defaults   map[string]string
	userAgent  string
	logger     *slog.Logger
	decoder    *Decoder

	// timeout is applied to a copy of httpClient once all options ran
	timeout *time.Duration
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout. A client passed with
// WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = &d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another API host
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithDefaultParams adds parameters merged into every request. Request
// parameters still win on key collision.
func WithDefaultParams(params map[string]string) ClientOption {
	return func(c *Client) {
		c.defaults = MergeDefaults(c.defaults, params)
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:   BaseURL,
		timezone:  tz,
		defaults:  MergeDefaults(DefaultParams, nil),
		userAgent: defaultUserAgent,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}

	c.decoder = NewDecoder(c.httpClient, c.userAgent, c.logger)

	return c, nil
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// URL returns the request URL for endpoint with params merged over the
// client defaults. Values are query-escaped before joining.
func (c *Client) URL(endpoint string, params map[string]string) string {
	merged := MergeDefaults(c.defaults, params)
	for k, v := range merged {
		merged[k] = url.QueryEscape(v)
	}
	return BuildURL(c.baseURL, endpoint, merged)
}

// FetchStations fetches the full station list in the given language
func (c *Client) FetchStations(ctx context.Context, lang models.Language) ([]models.Station, error) {
	doc, err := c.get(ctx, EndpointStations, stationParams(lang))
	if err != nil {
		return nil, err
	}

	var stations []models.Station
	if err := lookup(doc, EndpointStations, KeyStations, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// FetchStationsRaw fetches the station list and returns raw JSON
func (c *Client) FetchStationsRaw(ctx context.Context, lang models.Language) (json.RawMessage, error) {
	return c.decoder.Fetch(ctx, c.URL(EndpointStations, stationParams(lang)), nil)
}

// FetchConnections fetches connections matching q
func (c *Client) FetchConnections(ctx context.Context, q models.Query) ([]models.Connection, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.get(ctx, EndpointConnections, q.Params())
	if err != nil {
		return nil, err
	}

	var connections []models.Connection
	if err := lookup(doc, EndpointConnections, KeyConnections, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

// FetchConnectionsRaw fetches connections and returns raw JSON
func (c *Client) FetchConnectionsRaw(ctx context.Context, q models.Query) (json.RawMessage, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return c.decoder.Fetch(ctx, c.URL(EndpointConnections, q.Params()), nil)
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) (Document, error) {
	return c.decoder.Get(ctx, c.URL(endpoint, params), nil)
}

func stationParams(lang models.Language) map[string]string {
	if lang == "" {
		lang = models.DefaultLanguage
	}
	return map[string]string{"lang": string(lang)}
}

// lookup decodes doc[key] into out, naming the endpoint in errors
func lookup(doc Document, endpoint, key string, out any) error {
	err := doc.Lookup(key, out)
	if le, ok := err.(*LookupError); ok {
		le.Endpoint = endpoint
	}
	return err
}
