package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/htmlindex"
	resty "gopkg.in/resty.v1"
)

// DefaultCharset is assumed when the response does not name one.
const DefaultCharset = "utf-8"

var utf8BOM = []byte("\xef\xbb\xbf")

// Document is a decoded JSON object keyed by its top-level names.
type Document map[string]json.RawMessage

// Lookup decodes the value stored under key into out. A missing key fails
// with a LookupError; keys are matched exactly first, then case-insensitively.
func (d Document) Lookup(key string, out any) error {
	raw, ok := d[key]
	if !ok {
		for k, v := range d {
			if strings.EqualFold(k, key) {
				raw, ok = v, true
				break
			}
		}
	}
	if !ok {
		return &LookupError{Key: key}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Err: fmt.Errorf("field %q: %w", key, err)}
	}
	return nil
}

// Decoder performs GET requests and turns the body into JSON.
type Decoder struct {
	rc     *resty.Client
	header map[string]string
	logger *slog.Logger
}

// NewDecoder wraps hc. Every request sends Accept: application/json and
// the given User-Agent unless overridden per call.
func NewDecoder(hc *http.Client, userAgent string, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rc := resty.NewWithClient(hc)
	rc.SetLogger(io.Discard)

	header := map[string]string{"Accept": "application/json"}
	if userAgent != "" {
		header["User-Agent"] = userAgent
	}
	return &Decoder{rc: rc, header: header, logger: logger}
}

// Get fetches reqURL and parses the body as a JSON object.
func (d *Decoder) Get(ctx context.Context, reqURL string, header map[string]string) (Document, error) {
	body, charset, err := d.fetch(ctx, reqURL, header)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &DecodeError{URL: reqURL, Charset: charset, Err: err}
	}
	return doc, nil
}

// Fetch returns the body of reqURL decoded to UTF-8 after checking it is
// valid JSON.
func (d *Decoder) Fetch(ctx context.Context, reqURL string, header map[string]string) (json.RawMessage, error) {
	body, charset, err := d.fetch(ctx, reqURL, header)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &DecodeError{URL: reqURL, Charset: charset, Err: errors.New("body is not valid JSON")}
	}
	return body, nil
}

func (d *Decoder) fetch(ctx context.Context, reqURL string, header map[string]string) ([]byte, string, error) {
	requestID := uuid.NewString()

	req := d.rc.R().
		SetContext(ctx).
		SetHeaders(MergeDefaults(d.header, header)).
		SetHeader("X-Request-ID", requestID)

	// resty reads the whole body and closes it before returning
	resp, err := req.Get(reqURL)
	if err != nil {
		d.logger.Debug("api request failed", "url", reqURL, "request_id", requestID, "error", err)
		return nil, "", &RequestError{URL: reqURL, Err: err, Timeout: isTimeout(ctx, err)}
	}

	if resp.StatusCode() != http.StatusOK {
		d.logger.Debug("api request rejected", "url", reqURL, "request_id", requestID, "status", resp.StatusCode())
		return nil, "", newStatusError(resp.StatusCode(), resp.Status(), extractEndpoint(reqURL), resp.Body())
	}

	charset := DetectCharset(resp.Header().Get("Content-Type"))
	body, err := DecodeCharset(resp.Body(), charset)
	if err != nil {
		return nil, charset, &DecodeError{URL: reqURL, Charset: charset, Err: err}
	}

	d.logger.Debug("api request",
		"url", reqURL,
		"request_id", requestID,
		"status", resp.StatusCode(),
		"charset", charset,
		"bytes", len(body),
		"elapsed", resp.Time(),
	)

	return body, charset, nil
}

// newStatusError builds the APIError of a non-200 reply, keeping the
// message of an iRail error body ({"error": 404, "message": "..."}).
func newStatusError(statusCode int, status, endpoint string, body []byte) *APIError {
	var errBody struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
		apiErr := NewAPIErrorWithMessage(statusCode, endpoint, errBody.Message)
		apiErr.Status = status
		return apiErr
	}
	return NewAPIError(statusCode, status, endpoint)
}

// DetectCharset returns the charset parameter of a Content-Type header
// value, or DefaultCharset when there is none.
func DetectCharset(contentType string) string {
	if contentType == "" {
		return DefaultCharset
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return DefaultCharset
	}
	cs := strings.Trim(strings.TrimSpace(params["charset"]), `"`)
	if cs == "" {
		return DefaultCharset
	}
	return strings.ToLower(cs)
}

// DecodeCharset converts body from charset to UTF-8 and strips a leading
// byte order mark.
func DecodeCharset(body []byte, charset string) ([]byte, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
	default:
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
		}
		decoded, err := enc.NewDecoder().Bytes(body)
		if err != nil {
			return nil, fmt.Errorf("charset %s: %w", charset, err)
		}
		body = decoded
	}
	return bytes.TrimPrefix(body, utf8BOM), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
