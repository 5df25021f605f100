package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/config"
)

func openTemp(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(config.SessionDB{Driver: "sqlite", Path: path})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "admin-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTokenSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s := openTemp(t, path)
	if s.Token() != "" {
		t.Fatalf("fresh store token = %q, want empty", s.Token())
	}
	if err := s.SetToken("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAdmin([]byte(`{"name":"Root"}`)); err != nil {
		t.Fatal(err)
	}

	// a new store over the same file sees the credentials
	s2 := openTemp(t, path)
	if s2.Token() != "abc" {
		t.Errorf("reopened token = %q, want abc", s2.Token())
	}
	admin, ok := s2.Admin()
	if !ok || string(admin) != `{"name":"Root"}` {
		t.Errorf("reopened admin = %s (ok=%v)", admin, ok)
	}
}

func TestPurgeDropsCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s := openTemp(t, path)
	if err := s.SetToken("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAdmin([]byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	s.Purge()
	if s.Token() != "" {
		t.Errorf("token = %q after purge", s.Token())
	}
	if _, ok := s.Admin(); ok {
		t.Error("admin blob survived purge")
	}

	s2 := openTemp(t, path)
	if s2.Token() != "" {
		t.Errorf("reopened token = %q after purge", s2.Token())
	}
}

func TestTokenExpiry(t *testing.T) {
	s := openTemp(t, filepath.Join(t.TempDir(), "session.db"))

	// no token
	if _, ok := s.TokenExpiresAt(); ok {
		t.Error("TokenExpiresAt ok with no token stored")
	}

	// opaque token: no expiry claim to read, so never reported expired
	_ = s.SetToken("not-a-jwt")
	if s.TokenExpired() {
		t.Error("opaque token reported expired")
	}

	future := time.Now().Add(time.Hour)
	_ = s.SetToken(signedToken(t, future))
	exp, ok := s.TokenExpiresAt()
	if !ok {
		t.Fatal("TokenExpiresAt not ok for a JWT with exp")
	}
	if exp.Unix() != future.Unix() {
		t.Errorf("exp = %v, want %v", exp.Unix(), future.Unix())
	}
	if s.TokenExpired() {
		t.Error("future token reported expired")
	}

	_ = s.SetToken(signedToken(t, time.Now().Add(-time.Hour)))
	if !s.TokenExpired() {
		t.Error("past token not reported expired")
	}
}
