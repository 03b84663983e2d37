package oura

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/ouramail/pkg/logger"
)

// dateFormat is the calendar date layout the API expects in query parameters.
const dateFormat = "2006-01-02"

// collection envelops every usercollection response.
type collection[T any] struct {
	Data []T `json:"data"`
}

// Client fetches daily health records from the Oura Ring API v2.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
	baseURL    string
	token      string
}

// New creates a new Client. The logger may be nil; a discarding logger is used then.
func New(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = logger.NewNope()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      cfg.AccessToken,
	}
}

// DailyData fetches all collections for one calendar date. Absence of records
// for the date leaves the matching section nil/empty; any fetch error aborts
// and returns immediately, since a partial report must not be sent.
func (c *Client) DailyData(ctx context.Context, day time.Time) (DailyData, error) {
	date := day.Format(dateFormat)
	data := DailyData{Day: date}

	sleeps, err := c.DailySleep(ctx, day)
	if err != nil {
		return DailyData{}, err
	}
	if len(sleeps) > 0 {
		data.Sleep = &sleeps[0]
		c.warnDateMismatch("daily_sleep", date, sleeps[0].Day)
	}

	data.Periods, err = c.SleepPeriods(ctx, day)
	if err != nil {
		return DailyData{}, err
	}
	for _, p := range data.Periods {
		c.warnDateMismatch("sleep", date, p.Day)
	}

	activities, err := c.DailyActivity(ctx, day)
	if err != nil {
		return DailyData{}, err
	}
	if len(activities) > 0 {
		data.Activity = &activities[0]
		c.warnDateMismatch("daily_activity", date, activities[0].Day)
	}

	readiness, err := c.DailyReadiness(ctx, day)
	if err != nil {
		return DailyData{}, err
	}
	if len(readiness) > 0 {
		data.Readiness = &readiness[0]
		c.warnDateMismatch("daily_readiness", date, readiness[0].Day)
	}

	stress, err := c.DailyStress(ctx, day)
	if err != nil {
		return DailyData{}, err
	}
	if len(stress) > 0 {
		data.Stress = &stress[0]
		c.warnDateMismatch("daily_stress", date, stress[0].Day)
	}

	data.Workouts, err = c.Workouts(ctx, day)
	if err != nil {
		return DailyData{}, err
	}
	for _, w := range data.Workouts {
		c.warnDateMismatch("workout", date, w.Day)
	}

	return data, nil
}

// DailySleep fetches daily sleep scores and contributors for one date.
func (c *Client) DailySleep(ctx context.Context, day time.Time) ([]SleepSummary, error) {
	return fetch[SleepSummary](ctx, c, "daily_sleep", day)
}

// SleepPeriods fetches detailed sleep sessions, including heart rate and HRV.
func (c *Client) SleepPeriods(ctx context.Context, day time.Time) ([]SleepPeriod, error) {
	return fetch[SleepPeriod](ctx, c, "sleep", day)
}

// DailyActivity fetches daily activity scores and metrics for one date.
func (c *Client) DailyActivity(ctx context.Context, day time.Time) ([]ActivitySummary, error) {
	return fetch[ActivitySummary](ctx, c, "daily_activity", day)
}

// DailyReadiness fetches daily readiness scores and recovery metrics for one date.
func (c *Client) DailyReadiness(ctx context.Context, day time.Time) ([]ReadinessSummary, error) {
	return fetch[ReadinessSummary](ctx, c, "daily_readiness", day)
}

// DailyStress fetches the stress and recovery time split for one date.
func (c *Client) DailyStress(ctx context.Context, day time.Time) ([]StressSummary, error) {
	return fetch[StressSummary](ctx, c, "daily_stress", day)
}

// Workouts fetches logged workout sessions for one date.
func (c *Client) Workouts(ctx context.Context, day time.Time) ([]Workout, error) {
	return fetch[Workout](ctx, c, "workout", day)
}

// fetch issues one authenticated GET against a usercollection endpoint scoped
// to [day, day] and decodes the response envelope.
func fetch[T any](ctx context.Context, c *Client, endpoint string, day time.Time) ([]T, error) {
	date := day.Format(dateFormat)
	query := url.Values{
		"start_date": {date},
		"end_date":   {date},
	}
	reqURL := fmt.Sprintf("%s/v2/usercollection/%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUnauthorized, endpoint, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned status %d", ErrTransport, endpoint, resp.StatusCode)
	}

	var envelope collection[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.log.Error("failed to decode response",
			"endpoint", endpoint,
			"error", err,
			"payload", excerpt(body),
		)
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, endpoint, err)
	}

	return envelope.Data, nil
}

// warnDateMismatch logs when the provider reports a record for a different date
// than requested (timezone skew). The record is kept as-is.
func (c *Client) warnDateMismatch(endpoint, requested, reported string) {
	if reported != "" && reported != requested {
		c.log.Warn("provider returned record for unexpected date",
			"endpoint", endpoint,
			"requested", requested,
			"reported", reported,
		)
	}
}

// excerpt truncates a payload for log output.
func excerpt(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
