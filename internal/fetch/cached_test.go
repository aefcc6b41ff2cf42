package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCachedFetcherConfig(t *testing.T) {
	config := DefaultCachedFetcherConfig()
	require.NotNil(t, config)
	assert.NotZero(t, config.CacheTTL)
	assert.False(t, config.SkipCache)
	assert.NotNil(t, config.Options)
}

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, nil)
	require.NotNil(t, fetcher)
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}

func TestNewCachedFetcher_EmptyConfigGetsDefaults(t *testing.T) {
	fetcher := NewCachedFetcher(nil, &CachedFetcherConfig{})
	require.NotNil(t, fetcher)
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}

func TestCachedFetcher_NilDatabaseStillFetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<html><body><main><p>Backend Engineer role with Go and Postgres experience required for the platform team.</p></main></body></html>`))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil, nil)
	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Contains(t, result.Text, "Backend Engineer")
}

func TestCachedFetcher_NilDatabaseInvalidateIsNoop(t *testing.T) {
	fetcher := NewCachedFetcher(nil, nil)
	assert.NoError(t, fetcher.Invalidate(context.Background(), "https://example.com/job"))
}

func TestDerefString(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{"nil pointer", nil, ""},
		{"empty string", strPtr(""), ""},
		{"non-empty string", strPtr("hello"), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, derefString(tt.input))
		})
	}
}

func TestDerefInt(t *testing.T) {
	tests := []struct {
		name     string
		input    *int
		expected int
	}{
		{"nil pointer", nil, 0},
		{"zero value", intPtr(0), 0},
		{"positive value", intPtr(200), 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, derefInt(tt.input))
		})
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
