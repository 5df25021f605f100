package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

type mockRoundTripper struct {
	fn func(*http.Request) (*http.Response, error)
}

func (m *mockRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	return m.fn(r)
}

type stubTokens struct {
	token  string
	purged int
}

func (s *stubTokens) Token() string { return s.token }
func (s *stubTokens) Purge() {
	s.purged++
	s.token = ""
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(tokens *stubTokens, fn func(*http.Request) (*http.Response, error)) *Client {
	c := New("https://api.test", tokens, discardLogger())
	c.http = &http.Client{Transport: &mockRoundTripper{fn: fn}}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestNon2xxAlwaysFails(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "4xx with envelope message",
			status:  http.StatusBadRequest,
			body:    `{"status":false,"message":"bad input"}`,
			wantMsg: "bad input",
		},
		{
			name:    "5xx body claims success",
			status:  http.StatusBadGateway,
			body:    `{"success":true,"message":""}`,
			wantMsg: http.StatusText(http.StatusBadGateway),
		},
		{
			name:    "non-JSON body",
			status:  http.StatusServiceUnavailable,
			body:    "<html>upstream exploded</html>",
			wantMsg: "unexpected response from API (" + http.StatusText(http.StatusServiceUnavailable) + ")",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&stubTokens{}, func(*http.Request) (*http.Response, error) {
				return jsonResponse(tt.status, tt.body), nil
			})

			env, err := c.Get(context.Background(), "/admin/product", nil)
			if err != nil {
				t.Fatalf("Get returned error %v, want failure envelope", err)
			}
			if env.Success {
				t.Errorf("Success = true, want false for status %d", tt.status)
			}
			if env.Message == "" {
				t.Error("Message is empty, want a displayable reason")
			}
			if env.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", env.Message, tt.wantMsg)
			}
		})
	}
}

func TestTransportErrorFoldsIntoEnvelope(t *testing.T) {
	c := newTestClient(&stubTokens{}, func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	env, err := c.Get(context.Background(), "/admin/user", nil)
	if err != nil {
		t.Fatalf("Get returned error %v, want failure envelope", err)
	}
	if env.Success {
		t.Error("Success = true, want false on transport error")
	}
	if env.Message == "" {
		t.Error("Message is empty, want the transport error text")
	}
}

func TestForcedReauth(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReauth bool
	}{
		{"plain 401", http.StatusUnauthorized, `{"status":false}`, true},
		{"500 jwt expired", http.StatusInternalServerError, `{"status":false,"message":"jwt expired"}`, true},
		{"500 unauthorized text", http.StatusInternalServerError, "Unauthorized request", true},
		{"500 unrelated", http.StatusInternalServerError, `{"status":false,"message":"database down"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &stubTokens{token: "tok"}
			c := newTestClient(tokens, func(*http.Request) (*http.Response, error) {
				return jsonResponse(tt.status, tt.body), nil
			})

			env, err := c.Get(context.Background(), "/admin/order", nil)
			if tt.wantReauth {
				if !errors.Is(err, ErrSessionExpired) {
					t.Fatalf("err = %v, want ErrSessionExpired", err)
				}
				if env != nil {
					t.Errorf("envelope = %+v, want nil on forced reauth", env)
				}
				if tokens.purged != 1 {
					t.Errorf("purge count = %d, want 1", tokens.purged)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v, want failure envelope", err)
			}
			if env.Success {
				t.Error("Success = true, want false")
			}
			if tokens.purged != 0 {
				t.Errorf("purge count = %d, want 0", tokens.purged)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	tokens := &stubTokens{token: "tok123"}
	c := newTestClient(tokens, func(r *http.Request) (*http.Response, error) {
		got = r.Header.Clone()
		return jsonResponse(http.StatusOK, `{"status":true}`), nil
	})

	if _, err := c.Get(context.Background(), "/admin/banner", nil); err != nil {
		t.Fatal(err)
	}
	if auth := got.Get("Authorization"); auth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", auth, "Bearer tok123")
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q, want application/json", got.Get("Accept"))
	}
	if got.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID is empty")
	}

	// logged out: no Authorization header at all
	tokens.token = ""
	if _, err := c.Get(context.Background(), "/admin/banner", nil); err != nil {
		t.Fatal(err)
	}
	if auth := got.Get("Authorization"); auth != "" {
		t.Errorf("Authorization = %q, want empty when logged out", auth)
	}
}

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantSuccess bool
		wantMessage string
	}{
		{"success flag", `{"success":true,"message":"done"}`, true, true, "done"},
		{"status flag", `{"status":false,"message":"nope"}`, true, false, "nope"},
		{"error key fallback", `{"status":false,"error":"broken"}`, true, false, "broken"},
		{"message wins over error", `{"status":false,"message":"m","error":"e"}`, true, false, "m"},
		{"neither flag", `{"data":[1,2,3]}`, false, false, ""},
		{"not json", `<html></html>`, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, ok := parseEnvelope([]byte(tt.body))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if env.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", env.Success, tt.wantSuccess)
			}
			if env.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", env.Message, tt.wantMessage)
			}
		})
	}
}

func TestDecodeKey(t *testing.T) {
	env, ok := parseEnvelope([]byte(`{"status":true,"user":[{"name":"a"},{"name":"b"}]}`))
	if !ok {
		t.Fatal("parseEnvelope failed")
	}

	var recs []map[string]any
	if err := env.DecodeData(&recs); err == nil {
		t.Error("DecodeData succeeded, want error when data member is absent")
	}
	if err := env.DecodeKey("user", &recs); err != nil {
		t.Fatalf("DecodeKey: %v", err)
	}
	if len(recs) != 2 || recs[1]["name"] != "b" {
		t.Errorf("records = %v, want two entries ending in b", recs)
	}

	if err := env.DecodeKey("missing", &recs); err == nil {
		t.Error("DecodeKey succeeded for absent key, want error")
	}
}
