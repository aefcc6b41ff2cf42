package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostingPage is a cached job posting web page. Pages are keyed by URL and
// carry fetch failure state so broken URLs back off instead of being hammered
// on every import attempt.
type PostingPage struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	RawHTML     *string   `json:"-"` // large, never serialized
	ParsedText  *string   `json:"parsed_text,omitempty"`
	ContentHash *string   `json:"content_hash,omitempty"`
	HTTPStatus  *int      `json:"http_status,omitempty"`

	FetchStatus        string     `json:"fetch_status"`
	ErrorMessage       *string    `json:"error_message,omitempty"`
	IsPermanentFailure bool       `json:"is_permanent_failure"`
	RetryCount         int        `json:"retry_count"`
	RetryAfter         *time.Time `json:"retry_after,omitempty"`

	FetchedAt time.Time  `json:"fetched_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Fetch status values for posting pages.
const (
	FetchStatusSuccess  = "success"
	FetchStatusError    = "error"     // generic error, may retry
	FetchStatusNotFound = "not_found" // 404/410, permanent
	FetchStatusTimeout  = "timeout"   // may retry
	FetchStatusBlocked  = "blocked"   // 403/429
)

// DefaultPageCacheTTL is how long a cached posting page stays fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// IsFresh reports whether the page was fetched within maxAge.
func (p *PostingPage) IsFresh(maxAge time.Duration) bool {
	if p.ExpiresAt != nil && time.Now().After(*p.ExpiresAt) {
		return false
	}
	return time.Since(p.FetchedAt) < maxAge
}

// IsPermanentHTTPStatus returns true for status codes that will never succeed
// on retry.
func IsPermanentHTTPStatus(status int) bool {
	switch status {
	case 404, 410, 451:
		return true
	default:
		return false
	}
}

// FetchStatusFromHTTP maps an HTTP status code to a fetch status value.
func FetchStatusFromHTTP(status int) string {
	switch {
	case status >= 200 && status < 300:
		return FetchStatusSuccess
	case status == 404 || status == 410:
		return FetchStatusNotFound
	case status == 403 || status == 429:
		return FetchStatusBlocked
	case status == 408 || status == 504:
		return FetchStatusTimeout
	default:
		return FetchStatusError
	}
}

// HashContent returns a hex SHA-256 digest used to detect unchanged pages.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// GetPostingPageByURL retrieves a cached page by URL. Returns nil when the
// URL has never been fetched.
func (db *DB) GetPostingPageByURL(ctx context.Context, pageURL string) (*PostingPage, error) {
	var p PostingPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, raw_html, parsed_text, content_hash, http_status,
		        fetch_status, error_message, is_permanent_failure, retry_count, retry_after,
		        fetched_at, expires_at, created_at, updated_at
		 FROM posting_pages WHERE url = $1`,
		pageURL,
	).Scan(&p.ID, &p.URL, &p.RawHTML, &p.ParsedText, &p.ContentHash, &p.HTTPStatus,
		&p.FetchStatus, &p.ErrorMessage, &p.IsPermanentFailure, &p.RetryCount, &p.RetryAfter,
		&p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting page: %w", err)
	}
	return &p, nil
}

// GetFreshPostingPage returns a cached page only when it is fresh and the
// last fetch succeeded. A stale or failed entry returns nil so the caller
// re-fetches.
func (db *DB) GetFreshPostingPage(ctx context.Context, pageURL string, maxAge time.Duration) (*PostingPage, error) {
	page, err := db.GetPostingPageByURL(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if page == nil || !page.IsFresh(maxAge) || page.FetchStatus != FetchStatusSuccess {
		return nil, nil
	}
	return page, nil
}

// ShouldSkipURL checks whether a URL is in permanent-failure state or still
// inside its retry backoff window.
func (db *DB) ShouldSkipURL(ctx context.Context, pageURL string) (bool, string, error) {
	page, err := db.GetPostingPageByURL(ctx, pageURL)
	if err != nil {
		return false, "", err
	}
	if page == nil {
		return false, "", nil
	}

	if page.IsPermanentFailure {
		reason := "permanent failure"
		if page.ErrorMessage != nil {
			reason = *page.ErrorMessage
		}
		return true, reason, nil
	}

	if page.RetryAfter != nil && time.Now().Before(*page.RetryAfter) {
		return true, "retry backoff", nil
	}

	return false, "", nil
}

// UpsertPostingPage stores a successfully fetched page, resetting any prior
// failure state for the URL.
func (db *DB) UpsertPostingPage(ctx context.Context, page *PostingPage) error {
	var contentHash *string
	if page.RawHTML != nil {
		h := HashContent(*page.RawHTML)
		contentHash = &h
	}

	expiresAt := page.ExpiresAt
	if expiresAt == nil {
		t := time.Now().Add(DefaultPageCacheTTL)
		expiresAt = &t
	}

	fetchStatus := page.FetchStatus
	if fetchStatus == "" {
		fetchStatus = FetchStatusSuccess
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO posting_pages (url, raw_html, parsed_text, content_hash, http_status,
		                            fetch_status, error_message, is_permanent_failure,
		                            retry_count, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, NOW(), $9)
		 ON CONFLICT (url) DO UPDATE SET
		     raw_html = $2,
		     parsed_text = $3,
		     content_hash = $4,
		     http_status = $5,
		     fetch_status = $6,
		     error_message = $7,
		     is_permanent_failure = $8,
		     retry_count = 0,
		     retry_after = NULL,
		     fetched_at = NOW(),
		     expires_at = $9,
		     updated_at = NOW()
		 RETURNING id, fetched_at, created_at, updated_at`,
		page.URL, page.RawHTML, page.ParsedText, contentHash, page.HTTPStatus,
		fetchStatus, page.ErrorMessage, page.IsPermanentFailure, expiresAt,
	).Scan(&page.ID, &page.FetchedAt, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert posting page: %w", err)
	}
	return nil
}

// RecordFailedFetch records a failed attempt with exponential backoff.
// Schedule: 1 min, 5 min, 25 min, then capped at 2 hours. Permanent failures
// get retry_after = NULL and are skipped forever.
func (db *DB) RecordFailedFetch(ctx context.Context, pageURL string, httpStatus int, errorMsg string) error {
	fetchStatus := FetchStatusFromHTTP(httpStatus)
	isPermanent := IsPermanentHTTPStatus(httpStatus)

	_, err := db.pool.Exec(ctx,
		`INSERT INTO posting_pages (url, http_status, fetch_status, error_message, is_permanent_failure, retry_count, retry_after, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, 1,
		         CASE WHEN $5 THEN NULL ELSE NOW() + INTERVAL '1 minute' END,
		         NOW())
		 ON CONFLICT (url) DO UPDATE SET
		     http_status = $2,
		     fetch_status = $3,
		     error_message = $4,
		     is_permanent_failure = $5 OR posting_pages.is_permanent_failure,
		     retry_count = posting_pages.retry_count + 1,
		     retry_after = CASE
		         WHEN $5 OR posting_pages.is_permanent_failure THEN NULL
		         ELSE NOW() + LEAST(
		             INTERVAL '1 minute' * POWER(5, LEAST(posting_pages.retry_count, 3)),
		             INTERVAL '2 hours'
		         )
		     END,
		     fetched_at = NOW(),
		     updated_at = NOW()`,
		pageURL, httpStatus, fetchStatus, errorMsg, isPermanent,
	)
	if err != nil {
		return fmt.Errorf("failed to record failed fetch: %w", err)
	}
	return nil
}

// InvalidatePostingPage forces a re-fetch of a URL on next access by expiring
// the cached entry.
func (db *DB) InvalidatePostingPage(ctx context.Context, pageURL string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE posting_pages SET expires_at = NOW() - INTERVAL '1 hour', updated_at = NOW()
		 WHERE url = $1`,
		pageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to invalidate posting page: %w", err)
	}
	return nil
}
