// Package prayertime resolves daily prayer times from the AlAdhan API.
package prayertime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"minbar/internal/domain/entity"
	"minbar/internal/domain/service"
	"minbar/internal/errors"
)

const defaultBaseURL = "https://api.aladhan.com"

// aladhanProvider implements PrayerTimeProvider against the AlAdhan
// timingsByCity endpoint.
type aladhanProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewAladhanProvider constructs the provider. baseURL overrides the public
// API host; empty means the default.
func NewAladhanProvider(baseURL string) service.PrayerTimeProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &aladhanProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// timingsResponse mirrors the subset of the AlAdhan response we consume.
type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Meta    struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

// Timings returns prayer name -> local time for the given date.
func (p *aladhanProvider) Timings(ctx context.Context, date time.Time, city, country string, method int) (map[string]time.Time, error) {
	endpoint := fmt.Sprintf("%s/v1/timingsByCity/%s?%s",
		p.baseURL,
		date.Format("02-01-2006"),
		url.Values{
			"city":    []string{city},
			"country": []string{country},
			"method":  []string{strconv.Itoa(method)},
		}.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "timings request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("timings API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var parsed timingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode timings response")
	}
	if parsed.Code != http.StatusOK {
		return nil, errors.Errorf("timings API returned code %d", parsed.Code)
	}

	loc := time.Local
	if parsed.Data.Meta.Timezone != "" {
		if tz, tzErr := time.LoadLocation(parsed.Data.Meta.Timezone); tzErr == nil {
			loc = tz
		}
	}

	timings := make(map[string]time.Time, len(entity.PrayerNames))
	for _, prayer := range entity.PrayerNames {
		raw, ok := parsed.Data.Timings[prayer]
		if !ok {
			return nil, errors.Errorf("timings response missing %s", prayer)
		}

		at, err := parseClock(date, raw, loc)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid timing for %s", prayer)
		}
		timings[prayer] = at
	}

	return timings, nil
}

// parseClock combines a date with an "HH:MM" clock value. Some API responses
// suffix the clock with a timezone hint like "05:01 (BST)"; only the leading
// clock portion is read.
func parseClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	if idx := strings.IndexByte(clock, ' '); idx > 0 {
		clock = clock[:idx]
	}

	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}
