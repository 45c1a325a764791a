package nws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDecodesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "weather-app/1.0", r.Header.Get("User-Agent"))
		require.Equal(t, "application/geo+json", r.Header.Get("Accept"))
		w.Write([]byte(`{"features": [{"properties": {"event": "Flood Warning"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	var data AlertsResponse
	ok := client.Get(context.Background(), srv.URL+"/alerts/active/area/CA", &data)
	require.True(t, ok)
	require.Len(t, data.Features, 1)
	require.Equal(t, "Flood Warning", data.Features[0].Properties.Event)
}

func TestGetNonSuccessStatusIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	var data AlertsResponse
	require.False(t, client.Get(context.Background(), srv.URL+"/nope", &data))
}

func TestGetMalformedBodyIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	var data AlertsResponse
	require.False(t, client.Get(context.Background(), srv.URL+"/bad", &data))
}

func TestGetTransportErrorIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	var data AlertsResponse
	require.False(t, client.Get(context.Background(), srv.URL+"/gone", &data))
}

func TestURLHelpers(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.weather.gov"})

	require.Equal(t, "https://api.weather.gov/alerts/active/area/CA", client.ActiveAlertsURL("CA"))
	require.Equal(t, "https://api.weather.gov/points/37.77,-122.42", client.PointsURL(37.77, -122.42))
}
