// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-idiotic-api/models"
)

const upperhex = "0123456789ABCDEF"

// fetchBinary requests baseURL+path+query and returns the bytes of the "data"
// array in the response.
//
// Every "webp" in the assembled query becomes "png" because the API cannot
// serve webp. The replacement runs on the whole query string, so it also hits
// unrelated values that happen to contain "webp".
func (c *Client) fetchBinary(ctx context.Context, endpoint, path, query string) ([]byte, error) {
	query = requoteQuery(strings.ReplaceAll(query, "webp", "png"))

	body, err := c.get(ctx, endpoint, assembleURL(c.profile.baseURL, path, query))
	if err != nil {
		return nil, err
	}

	var payload models.BinaryPayload
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode image response: %w: %w", endpoint, ErrMalformedResponse, err)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("%s: %w: no data field", endpoint, ErrMalformedResponse)
	}

	data := make([]byte, len(payload.Data))
	for i, v := range payload.Data {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%s: %w: data[%d]=%d is not a byte", endpoint, ErrMalformedResponse, i, v)
		}
		data[i] = byte(v)
	}

	return data, nil
}

// fetchText requests baseURL+"/text/"+name with text and, if non-empty, style
// as encoded query parameters and returns the "text" field of the response.
func (c *Client) fetchText(ctx context.Context, endpoint, name, text, style string) (string, error) {
	query := "?text=" + url.QueryEscape(text)
	if style != "" {
		query += "&style=" + url.QueryEscape(style)
	}

	body, err := c.get(ctx, endpoint, assembleURL(c.profile.baseURL, textPathPrefix+name, query))
	if err != nil {
		return "", err
	}

	var payload models.TextPayload
	if err = json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%s: decode text response: %w: %w", endpoint, ErrMalformedResponse, err)
	}

	return payload.Text, nil
}

// get performs one authenticated GET. Any status other than 200 becomes a
// *RemoteRequestError.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	start := time.Now()
	resp, err := c.session.R().
		SetContext(ctx).
		SetHeader(c.profile.authHeader, c.token).
		SetHeader("Accept", "application/json").
		Get(rawURL)
	elapsed := time.Since(start)

	if err != nil {
		err = fmt.Errorf("%s request: %w", endpoint, err)
		c.observe(endpoint, 0, elapsed, err)
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		rerr := &RemoteRequestError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
		}
		c.observe(endpoint, resp.StatusCode(), elapsed, rerr)
		return nil, rerr
	}

	c.observe(endpoint, resp.StatusCode(), elapsed, nil)
	return resp.Body(), nil
}

func (c *Client) observe(endpoint string, status int, elapsed time.Duration, err error) {
	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", status).
		Dur("duration", elapsed).
		Err(err).
		Msg("api request")

	if c.observer != nil {
		c.observer(endpoint, status, elapsed, err)
	}
}

func assembleURL(baseURL, path, query string) string {
	return baseURL + path + query
}

// requoteQuery percent-encodes bytes that may not appear in a URL query
// (spaces, controls, non-ASCII and a few delimiters). Reserved characters and
// existing %XX escapes are left alone, so the query keeps its shape. A '%'
// that does not start an escape is sent as %25.
func requoteQuery(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for i := 0; i < len(q); i++ {
		ch := q[i]
		if ch == '%' && i+2 < len(q) && isHex(q[i+1]) && isHex(q[i+2]) {
			b.WriteByte(ch)
			continue
		}
		if isUnreserved(ch) || strings.IndexByte("!$&'()*+,;=:@/?", ch) >= 0 {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[ch>>4])
		b.WriteByte(upperhex[ch&15])
	}
	return b.String()
}

// quote percent-encodes everything except unreserved characters and '/'.
// It is applied to user tags and guild names only.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isUnreserved(ch) || ch == '/' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[ch>>4])
		b.WriteByte(upperhex[ch&15])
	}
	return b.String()
}

func isHex(ch byte) bool {
	return '0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func isUnreserved(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	case ch == '-', ch == '.', ch == '_', ch == '~':
		return true
	default:
		return false
	}
}
