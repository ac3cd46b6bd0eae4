package airbnb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"airbnb-price-tracker/config"
	"airbnb-price-tracker/models"
	"airbnb-price-tracker/services"
	"airbnb-price-tracker/utils"
)

const (
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	calendarOperation = "PdpAvailabilityCalendar"
	calendarQueryHash = "8f08e03c7bd16fcad3c92a3592c19a8b559a0d0855a84028d1163d4733ed9ade"
	calendarMonths    = 12
)

// Client is the thin binding to the marketplace's private endpoints. It
// owns session headers, proxying and retry so the collector above it
// never sees anything but payloads and errors.
type Client struct {
	cfg    *config.Config
	logger *utils.Logger
	apiKey string
	http   *http.Client
}

// NewClient creates a Client bound to an already-acquired API key.
func NewClient(cfg *config.Config, logger *utils.Logger, apiKey string) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("proxy URL %q: %w", cfg.ProxyURL, err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &Client{
		cfg:    cfg,
		logger: logger,
		apiKey: apiKey,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}, nil
}

// FetchCalendar pulls the next twelve months of availability for one
// listing.
func (c *Client) FetchCalendar(ctx context.Context, roomID string) (models.CalendarMonths, error) {
	now := time.Now()

	variables, err := json.Marshal(map[string]any{
		"request": map[string]any{
			"count":     calendarMonths,
			"listingId": roomID,
			"month":     int(now.Month()),
			"year":      now.Year(),
		},
	})
	if err != nil {
		return nil, err
	}
	extensions, err := json.Marshal(map[string]any{
		"persistedQuery": map[string]any{
			"version":    1,
			"sha256Hash": calendarQueryHash,
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/v3/%s/%s", c.cfg.AirbnbURL, calendarOperation, calendarQueryHash)
	query := url.Values{
		"operationName": {calendarOperation},
		"locale":        {c.cfg.Language},
		"currency":      {c.cfg.Currency},
		"variables":     {string(variables)},
		"extensions":    {string(extensions)},
	}

	var envelope calendarEnvelope
	err = utils.RetryWithBackoff(ctx, c.cfg.MaxRetries, func() error {
		body, err := c.get(ctx, endpoint+"?"+query.Encode(), true)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &envelope)
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("calendar fetch for room %s: %w", roomID, err)
	}

	return envelope.Data.Merlin.PdpAvailabilityCalendar.CalendarMonths, nil
}

// FetchPricing loads the listing page for the probe's stay window and
// extracts title, room type and the price breakdown from the embedded
// page state.
func (c *Client) FetchPricing(ctx context.Context, req services.ProbeRequest) (*models.ListingDetail, error) {
	state, err := c.FetchPricingState(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseListingDetail(state)
}

// FetchPricingState returns the raw embedded page state for one probe.
// Exposed for the diagnostic tooling; the production path goes through
// FetchPricing.
func (c *Client) FetchPricingState(ctx context.Context, req services.ProbeRequest) (json.RawMessage, error) {
	query := url.Values{
		"check_in":  {req.CheckIn},
		"check_out": {req.CheckOut},
		"adults":    {fmt.Sprintf("%d", req.Adults)},
		"currency":  {req.Currency},
		"locale":    {req.Language},
	}
	pageURL := fmt.Sprintf("%s/rooms/%s?%s", c.cfg.AirbnbURL, req.RoomID, query.Encode())

	var state json.RawMessage
	err := utils.RetryWithBackoff(ctx, c.cfg.MaxRetries, func() error {
		body, err := c.get(ctx, pageURL, false)
		if err != nil {
			return err
		}
		state, err = extractDeferredState(body)
		return err
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("pricing fetch for room %s (%s → %s): %w", req.RoomID, req.CheckIn, req.CheckOut, err)
	}
	return state, nil
}

func (c *Client) get(ctx context.Context, rawURL string, api bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", c.cfg.Language)
	if api {
		req.Header.Set("X-Airbnb-Api-Key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
