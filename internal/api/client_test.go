package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func setLimitHeaders(w http.ResponseWriter) {
	w.Header().Set("x-ratelimit-limit", "600")
	w.Header().Set("x-ratelimit-remaining", "598")
	w.Header().Set("x-api-limit", "10000")
	w.Header().Set("x-api-remaining", "9500")
	w.Header().Set("x-api-reset", "00:00")
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New("")
	if err == nil {
		t.Error("expected error for empty token")
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-token")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-token",
		WithBaseURL("https://example.com"),
		WithTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.baseURL != "https://example.com" {
		t.Errorf("baseURL = %s, want https://example.com", client.baseURL)
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.httpClient.Timeout)
	}
}

func TestGetSimple_RequestShape(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/postcode" {
			t.Errorf("path = %s, want /api/v1/postcode", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.URL.Query().Get("postcode"); got != "1012 RJ" {
			t.Errorf("postcode param = %q, want %q", got, "1012 RJ")
		}
		if got := r.URL.Query().Get("number"); got != "0" {
			t.Errorf("number param = %q, want %q", got, "0")
		}

		setLimitHeaders(w)
		w.Write([]byte(`{"street":"Dam","city":"Amsterdam"}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	resp, limits, err := client.GetSimple(context.Background(), "1012 RJ", 0)
	if err != nil {
		t.Fatalf("GetSimple() error = %v", err)
	}
	if resp == nil || resp.Street != "Dam" || resp.City != "Amsterdam" {
		t.Errorf("GetSimple() = %+v, want street Dam, city Amsterdam", resp)
	}
	if limits == nil || limits.RatelimitRemaining != 598 {
		t.Errorf("limits = %+v, want RatelimitRemaining 598", limits)
	}
}

func TestGetSimple_NotFound(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setLimitHeaders(w)
		w.WriteHeader(http.StatusNotFound)
		// Body is intentionally not valid JSON; it must not be read on 404.
		w.Write([]byte("no such address"))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	resp, limits, err := client.GetSimple(context.Background(), "1012RJ", 147)
	if err != nil {
		t.Fatalf("GetSimple() error = %v, want nil for 404", err)
	}
	if resp != nil {
		t.Errorf("GetSimple() resp = %+v, want nil for 404", resp)
	}
	if limits == nil {
		t.Fatal("limits = nil, want limits on 404")
	}
}

func TestGetSimple_TooManyRequests(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	_, _, err := client.GetSimple(context.Background(), "1012RJ", 147)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("GetSimple() error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
}

func TestGetSimple_UnexpectedStatusCarriesBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	_, _, err := client.GetSimple(context.Background(), "1012RJ", 147)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("GetSimple() error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Body != "upstream down" {
		t.Errorf("Body = %q, want %q", apiErr.Body, "upstream down")
	}
}

func TestGetSimple_NetworkError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	_, _, err := client.GetSimple(context.Background(), "1012RJ", 147)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("GetSimple() error = %T, want *NetworkError", err)
	}
	if netErr.Unwrap() == nil {
		t.Error("NetworkError should wrap the underlying transport error")
	}
}

func TestGetSimple_MalformedBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setLimitHeaders(w)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	_, _, err := client.GetSimple(context.Background(), "1012RJ", 147)

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("GetSimple() error = %T, want *ResponseError", err)
	}
}

func TestGetFull_Success(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/postcode/full" {
			t.Errorf("path = %s, want /api/v1/postcode/full", r.URL.Path)
		}
		setLimitHeaders(w)
		w.Write([]byte(`{"postcode":"1012RJ","number":147,"street":"Nieuwezijds Voorburgwal","city":"Amsterdam","municipality":"Amsterdam","province":"Noord-Holland","geo":{"lat":52.373,"lon":4.891}}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	resp, _, err := client.GetFull(context.Background(), "1012RJ", 147)
	if err != nil {
		t.Fatalf("GetFull() error = %v", err)
	}
	if resp.Postcode != "1012RJ" {
		t.Errorf("Postcode = %q, want 1012RJ", resp.Postcode)
	}
	if resp.Number != 147 {
		t.Errorf("Number = %d, want 147", resp.Number)
	}
	if resp.Municipality != "Amsterdam" {
		t.Errorf("Municipality = %q, want Amsterdam", resp.Municipality)
	}
	if resp.Province != "Noord-Holland" {
		t.Errorf("Province = %q, want Noord-Holland", resp.Province)
	}
	if resp.Geo.Lat != 52.373 || resp.Geo.Lon != 4.891 {
		t.Errorf("Geo = %+v, want lat 52.373, lon 4.891", resp.Geo)
	}
}

func TestGetFull_MissingField(t *testing.T) {
	t.Parallel()
	// A type mismatch in the payload must surface as a ResponseError.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setLimitHeaders(w)
		w.Write([]byte(`{"postcode":"1012RJ","number":"not-a-number"}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))
	_, _, err := client.GetFull(context.Background(), "1012RJ", 147)

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("GetFull() error = %T, want *ResponseError", err)
	}
	if respErr.Unwrap() == nil {
		t.Error("ResponseError should wrap the decode error")
	}
}
