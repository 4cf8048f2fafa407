package reva

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"courtdesk/internal/shared/config"
	"courtdesk/pkg/logger"
)

// Client is the upstream booking source. FetchBookings returns all bookings
// whose start falls inside [startDate 00:00:00, endDate 23:59:59], both
// dates in "YYYY-MM-DD" form.
type Client interface {
	FetchBookings(ctx context.Context, startDate, endDate string) ([]BookingRecord, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logger.Logger
}

// NewClient builds a Client against the configured Reva endpoint.
func NewClient(cfg config.RevaConfig, log *logger.Logger) Client {
	return &client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     log,
	}
}

// envelope is the upstream response wrapper; the booking list sits under "data".
type envelope struct {
	Data []BookingRecord `json:"data"`
}

func (c *client) FetchBookings(ctx context.Context, startDate, endDate string) ([]BookingRecord, error) {
	url := c.baseURL + "/bookings/index"
	started := time.Now()

	// The API authenticates via a form field, not a header, and expects the
	// range widened to whole days so the filter covers both boundary dates.
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := writeFields(form, map[string]string{
		"api_key": c.apiKey,
		"start":   startDate + " 00:00:00",
		"end":     endDate + " 23:59:59",
	}); err != nil {
		return nil, &FetchError{Op: "request", URL: url, Err: err}
	}
	if err := form.Close(); err != nil {
		return nil, &FetchError{Op: "request", URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: url, Err: err}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogUpstreamError(ctx, startDate, endDate, err)
		return nil, &FetchError{Op: "request", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the error message, then discard
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(snippet)))
		c.logger.LogUpstreamError(ctx, startDate, endDate, err)
		return nil, &FetchError{Op: "status", URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.LogUpstreamError(ctx, startDate, endDate, err)
		return nil, &FetchError{Op: "decode", URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	// A missing data array is treated the same as an empty range
	if env.Data == nil {
		env.Data = []BookingRecord{}
	}

	c.logger.LogUpstreamFetch(ctx, startDate, endDate, len(env.Data), time.Since(started))
	return env.Data, nil
}

func writeFields(form *multipart.Writer, fields map[string]string) error {
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	return nil
}
