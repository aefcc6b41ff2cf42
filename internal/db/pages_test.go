package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostingPageIsFresh(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		page   PostingPage
		maxAge time.Duration
		want   bool
	}{
		{"recent fetch", PostingPage{FetchedAt: now}, time.Hour, true},
		{"stale fetch", PostingPage{FetchedAt: now.Add(-2 * time.Hour)}, time.Hour, false},
		{"expired overrides age", PostingPage{FetchedAt: now, ExpiresAt: &past}, time.Hour, false},
		{"future expiry", PostingPage{FetchedAt: now, ExpiresAt: &future}, time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.IsFresh(tt.maxAge))
		})
	}
}

func TestFetchStatusFromHTTP(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, FetchStatusSuccess},
		{201, FetchStatusSuccess},
		{404, FetchStatusNotFound},
		{410, FetchStatusNotFound},
		{403, FetchStatusBlocked},
		{429, FetchStatusBlocked},
		{408, FetchStatusTimeout},
		{504, FetchStatusTimeout},
		{500, FetchStatusError},
		{0, FetchStatusError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FetchStatusFromHTTP(tt.status), "status %d", tt.status)
	}
}

func TestIsPermanentHTTPStatus(t *testing.T) {
	assert.True(t, IsPermanentHTTPStatus(404))
	assert.True(t, IsPermanentHTTPStatus(410))
	assert.True(t, IsPermanentHTTPStatus(451))
	assert.False(t, IsPermanentHTTPStatus(500))
	assert.False(t, IsPermanentHTTPStatus(429))
	assert.False(t, IsPermanentHTTPStatus(200))
}

func TestHashContent(t *testing.T) {
	a := HashContent("<html>posting</html>")
	b := HashContent("<html>posting</html>")
	c := HashContent("<html>changed</html>")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
