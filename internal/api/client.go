package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ErrSessionExpired is the one error client methods return. Every other
// failure (transport, non-2xx, non-JSON, business rejection) folds into the
// envelope so callers handle a single shape. Session expiry is the exception
// on purpose: the HTTP layer maps it to a login redirect.
var ErrSessionExpired = errors.New("api: session expired")

// TokenSource supplies the bearer token for outgoing calls and purges the
// stored credentials when the backend forces re-authentication.
type TokenSource interface {
	Token() string
	Purge()
}

type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    *slog.Logger
}

func New(base string, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{},
		tokens: tokens,
		log:    log,
	}
}

func (c *Client) Get(ctx context.Context, path string, q url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, q, nil, "")
}

func (c *Client) PostJSON(ctx context.Context, path string, q url.Values, body any) (*Envelope, error) {
	b, err := fastjson.Marshal(body)
	if err != nil {
		return Failure("encode request: " + err.Error()), nil
	}
	return c.do(ctx, http.MethodPost, path, q, bytes.NewReader(b), "application/json")
}

func (c *Client) PatchJSON(ctx context.Context, path string, q url.Values, body any) (*Envelope, error) {
	b, err := fastjson.Marshal(body)
	if err != nil {
		return Failure("encode request: " + err.Error()), nil
	}
	return c.do(ctx, http.MethodPatch, path, q, bytes.NewReader(b), "application/json")
}

func (c *Client) Delete(ctx context.Context, path string, q url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, q, nil, "")
}

// FilePart is one file in a multipart write.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// PostMultipart sends fields and files as a multipart form body. The platform
// API takes uploads this way; everything else goes as JSON.
func (c *Client) PostMultipart(ctx context.Context, path string, q url.Values, fields map[string]string, files []FilePart) (*Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return Failure("encode upload: " + err.Error()), nil
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return Failure("encode upload: " + err.Error()), nil
		}
	}
	if err := mw.Close(); err != nil {
		return Failure("encode upload: " + err.Error()), nil
	}
	return c.do(ctx, http.MethodPost, path, q, &buf, mw.FormDataContentType())
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (*Envelope, error) {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return Failure(err.Error()), nil
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api_transport_error", "method", method, "path", path, "err", err)
		return Failure(err.Error()), nil
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Failure(err.Error()), nil
	}

	if forcesReauth(res.StatusCode, raw) {
		c.log.Warn("api_session_expired", "method", method, "path", path, "status", res.StatusCode)
		c.tokens.Purge()
		return nil, ErrSessionExpired
	}

	env, ok := parseEnvelope(raw)
	if !ok {
		c.log.Warn("api_bad_envelope", "method", method, "path", path, "status", res.StatusCode)
		return Failure("unexpected response from API (" + res.Status + ")"), nil
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// non-2xx is a failure even when the body claims otherwise
		env.Success = false
		if env.Message == "" {
			env.Message = res.Status
		}
	}
	return env, nil
}

var authKeywords = []string{"expire", "unauthorized", "token", "jwt", "auth"}

// forcesReauth: 401 always, or a 500 whose body reads like an auth failure.
// The backend reports expired JWTs as 500s with a message, hence the sniff.
func forcesReauth(status int, body []byte) bool {
	if status == http.StatusUnauthorized {
		return true
	}
	if status != http.StatusInternalServerError {
		return false
	}
	text := strings.ToLower(string(body))
	for _, kw := range authKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
