// Package amadeus is a minimal client for the Amadeus for Developers flight APIs.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultBaseURL = "https://test.api.amadeus.com"

	tokenPath        = "/v1/security/oauth2/token"
	offersPath       = "/v2/shopping/flight-offers"
	destinationsPath = "/v1/shopping/flight-destinations"

	defaultTokenTimeout = 10 * time.Second
	maxBodyBytes        = 8 << 20
)

var (
	ErrMissingCredentials = errors.New("amadeus: client id and client secret are required")
	ErrMalformedResponse  = errors.New("amadeus: malformed response")
)

// Config configures a Client.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string

	// TokenTimeout bounds the OAuth token exchange, which does not observe the
	// per-call context.
	TokenTimeout time.Duration

	// Transport is the base round tripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client talks to the Amadeus REST API. It is safe for concurrent use and is
// meant to be built once at startup.
type Client struct {
	baseURL string
	http    *http.Client
}

// Response is the common envelope of Amadeus shopping responses.
type Response struct {
	StatusCode   int             `json:"-"`
	Data         json.RawMessage `json:"data"`
	Meta         json.RawMessage `json:"meta,omitempty"`
	Dictionaries json.RawMessage `json:"dictionaries,omitempty"`
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("amadeus: invalid base url %q", cfg.BaseURL)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	transport = otelhttp.NewTransport(transport)

	tokenTimeout := cfg.TokenTimeout
	if tokenTimeout <= 0 {
		tokenTimeout = defaultTokenTimeout
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     base + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: transport,
		Timeout:   tokenTimeout,
	})

	return &Client{
		baseURL: base,
		http:    creds.Client(tokenCtx),
	}, nil
}

// SearchOffers calls the Flight Offers Search API.
func (c *Client) SearchOffers(ctx context.Context, params OfferSearchParams) (*Response, error) {
	return c.get(ctx, offersPath, params.Values())
}

// SearchDestinations calls the Flight Inspiration Search API.
func (c *Client) SearchDestinations(ctx context.Context, params DestinationSearchParams) (*Response, error) {
	return c.get(ctx, destinationsPath, params.Values())
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.amadeus+json, application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, newTokenError(retrieveErr)
		}
		return nil, fmt.Errorf("amadeus: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("amadeus: reading %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("%w: missing data", ErrMalformedResponse)
	}
	out.StatusCode = resp.StatusCode
	return &out, nil
}
