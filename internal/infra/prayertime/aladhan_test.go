package prayertime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAladhanProvider_Timings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/timingsByCity/15-08-2026", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("city"))
		assert.Equal(t, "UK", r.URL.Query().Get("country"))
		assert.Equal(t, "2", r.URL.Query().Get("method"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 200,
			"data": {
				"timings": {
					"Fajr": "04:12",
					"Sunrise": "05:48",
					"Dhuhr": "13:05",
					"Asr": "17:01",
					"Maghrib": "20:19 (BST)",
					"Isha": "21:44"
				},
				"meta": {"timezone": "UTC"}
			}
		}`))
	}))
	defer server.Close()

	provider := NewAladhanProvider(server.URL)

	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	timings, err := provider.Timings(context.Background(), date, "London", "UK", 2)
	require.NoError(t, err)
	require.Len(t, timings, 5)

	assert.Equal(t, time.Date(2026, 8, 15, 4, 12, 0, 0, time.UTC), timings["Fajr"])
	assert.Equal(t, time.Date(2026, 8, 15, 13, 5, 0, 0, time.UTC), timings["Dhuhr"])
	// Timezone suffixes after the clock are ignored.
	assert.Equal(t, time.Date(2026, 8, 15, 20, 19, 0, 0, time.UTC), timings["Maghrib"])
}

func TestAladhanProvider_MissingPrayer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 200, "data": {"timings": {"Fajr": "04:12"}, "meta": {"timezone": "UTC"}}}`))
	}))
	defer server.Close()

	provider := NewAladhanProvider(server.URL)

	_, err := provider.Timings(context.Background(), time.Now(), "London", "UK", 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestAladhanProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewAladhanProvider(server.URL)

	_, err := provider.Timings(context.Background(), time.Now(), "London", "UK", 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
