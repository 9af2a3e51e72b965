package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/internal/cache"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/log"
	"github.com/spf13/viper"
)

// StatusError is returned for a response with a non 2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

// Temporary reports whether repeating the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Request describes a single call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
	// Cache stores the response body under its url when set.
	Cache bool
}

func attempts() uint {
	n := viper.GetInt(key.NetworkRetries)
	if n < 1 {
		return 1
	}
	return uint(n)
}

// CacheTTL is how long cached responses stay fresh. Zero disables the cache.
func CacheTTL() time.Duration {
	return viper.GetDuration(key.NetworkCache)
}

// Do sends r and returns the response body. Transport errors, 429 and 5xx responses are retried
// with exponential backoff.
func Do(ctx context.Context, r Request) ([]byte, error) {
	if r.Method == "" {
		r.Method = http.MethodGet
	}

	var cacheKey string
	if ttl := CacheTTL(); r.Cache && r.Method == http.MethodGet && ttl > 0 {
		cacheKey = cache.Key(r.URL, r.Header.Get("Accept-Language"))
		if data, ok := cache.Get(cacheKey, ttl); ok {
			return data, nil
		}
	}

	var body []byte
	err := retry.Do(
		func() error {
			data, err := send(ctx, r)
			if err != nil {
				return err
			}
			body = data
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts()),
		retry.Delay(300*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.Temporary()
			}
			return ctx.Err() == nil
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Debugf("retrying %s %s (attempt %d): %s", r.Method, r.URL, n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if err := cache.Put(cacheKey, body); err != nil {
			log.Warnf("caching %s: %s", r.URL, err)
		}
	}

	return body, nil
}

func send(ctx context.Context, r Request) ([]byte, error) {
	var reader io.Reader
	if r.Body != nil {
		reader = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, reader)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	for name, values := range r.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", constant.UserAgent)
	}

	resp, err := Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: r.URL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetBody fetches url with the given header.
func GetBody(ctx context.Context, url string, header http.Header, cached bool) ([]byte, error) {
	return Do(ctx, Request{URL: url, Header: header, Cache: cached})
}

// GetJSON fetches url and decodes the response into v.
func GetJSON(ctx context.Context, url string, header http.Header, cached bool, v any) error {
	if header == nil {
		header = http.Header{}
	}
	if header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}

	body, err := GetBody(ctx, url, header, cached)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// PostJSON encodes payload, posts it to url and decodes the response into v.
func PostJSON(ctx context.Context, url string, header http.Header, payload, v any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")

	body, err := Do(ctx, Request{Method: http.MethodPost, URL: url, Header: header, Body: data})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
