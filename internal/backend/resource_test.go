package backend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
)

type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }
func (s *staticTokens) Purge()        { s.token = "" }

func newBackend(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return api.New(srv.URL, &staticTokens{token: "tok"}, log)
}

func TestServiceListPathAndWindow(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":true,"data":[]}`))
	})

	svc := NewService(c, Resource{Name: "seller", BasePath: "/admin/seller", ListAction: "getSellerList"})
	extra := url.Values{}
	extra.Set("type", "fake")
	if _, err := svc.List(context.Background(), 40, 20, extra); err != nil {
		t.Fatal(err)
	}

	if gotPath != "/admin/seller/getSellerList" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery.Get("start") != "40" || gotQuery.Get("limit") != "20" {
		t.Errorf("window = start %s limit %s, want 40/20", gotQuery.Get("start"), gotQuery.Get("limit"))
	}
	if gotQuery.Get("type") != "fake" {
		t.Errorf("type = %q, want fake", gotQuery.Get("type"))
	}
}

func TestServiceUpdateUsesIDParam(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery url.Values
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":true}`))
	})

	// default id param is Name + "Id"
	svc := NewService(c, Resource{Name: "product", BasePath: "/admin/product"})
	if _, err := svc.Update(context.Background(), "p-9", map[string]string{"name": "x"}); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/admin/product" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotQuery.Get("productId") != "p-9" {
		t.Errorf("productId = %q", gotQuery.Get("productId"))
	}

	// explicit override
	svc = NewService(c, Resource{Name: "giftCategory", BasePath: "/admin/giftCategory", IDParam: "categoryId"})
	if _, err := svc.Delete(context.Background(), "c-3"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotQuery.Get("categoryId") != "c-3" {
		t.Errorf("request = %s ?%s", gotMethod, gotQuery.Encode())
	}
}

func TestServiceToggle(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":true}`))
	})

	svc := NewService(c, Resource{Name: "banner", BasePath: "/admin/banner"})
	if _, err := svc.Toggle(context.Background(), "b-1", "isActive"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/admin/banner/isActive" || gotQuery.Get("bannerId") != "b-1" {
		t.Errorf("request = %s ?%s", gotPath, gotQuery.Encode())
	}
}

func TestRecordsFallsBackToAltKey(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"withdrawals":[{"_id":"w1"},{"_id":"w2"}]}`))
	})
	svc := NewService(c, Resource{Name: "withdrawal", BasePath: "/admin/withdrawRequest"})

	env, err := svc.List(context.Background(), 0, 20, nil)
	if err != nil {
		t.Fatal(err)
	}
	recs, err := Records(env, "withdrawals")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].ID() != "w1" {
		t.Errorf("records = %v", recs)
	}

	if _, err := Records(env, "nothing"); err == nil {
		t.Error("Records succeeded with no matching key, want error")
	}
}

func TestLoginDecodesTokenAndAdmin(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/login" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status":true,"data":{"token":"abc","admin":{"name":"Root"}}}`))
	})

	res, env, err := NewAuthService(c).Login(context.Background(), "a@b.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	if !env.Success {
		t.Fatalf("envelope failure: %s", env.Message)
	}
	if res.Token != "abc" {
		t.Errorf("token = %q, want abc", res.Token)
	}
	if string(res.Admin) != `{"name":"Root"}` {
		t.Errorf("admin blob = %s", res.Admin)
	}
}

func TestLoginWithoutTokenIsFailure(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{}}`))
	})

	_, env, err := NewAuthService(c).Login(context.Background(), "a@b.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	if env.Success {
		t.Error("Success = true for a token-less login response")
	}
	if env.Message == "" {
		t.Error("Message is empty")
	}
}
