// Package session persists the console's credentials between runs: the
// bearer token and the cached admin profile blob. It is the equivalent of
// the browser's localStorage, backed by an embedded sqlite file by default.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/config"
)

const (
	keyToken = "token"
	keyAdmin = "admin"
)

// Entry is one stored key/value pair.
type Entry struct {
	Key       string         `gorm:"primaryKey;type:varchar(64)"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "session_entries" }

type Store struct {
	db *gorm.DB

	mu    sync.RWMutex
	token string // cached; the hot path must not hit the db per request
}

// Open connects the configured driver and loads the cached token.
func Open(cfg config.SessionDB) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	case "mysql":
		db, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("session: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("session: open %s: %w", cfg.Driver, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("session: migrate: %w", err)
	}

	s := &Store{db: db}
	if raw, ok := s.get(keyToken); ok {
		var tok string
		if jerr := fastUnmarshal(raw, &tok); jerr == nil {
			s.token = tok
		}
	}
	return s, nil
}

// Token returns the stored bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) SetToken(tok string) error {
	if err := s.set(keyToken, tok); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
	return nil
}

// Admin returns the cached admin profile blob as stored at login.
func (s *Store) Admin() ([]byte, bool) {
	raw, ok := s.get(keyAdmin)
	return raw, ok
}

func (s *Store) SetAdmin(blob []byte) error {
	return s.db.Save(&Entry{Key: keyAdmin, Value: datatypes.JSON(blob)}).Error
}

// Purge drops the token and the admin blob. Called on logout and whenever
// the backend forces re-authentication.
func (s *Store) Purge() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	s.db.Delete(&Entry{}, "key IN ?", []string{keyToken, keyAdmin})
}

// TokenExpiresAt reads the exp claim without verifying the signature (the
// backend owns the key; the console only wants to know whether a redirect
// to login is already inevitable). ok=false when the token is absent, not a
// JWT, or carries no expiry.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired reports a token that is present but already past its expiry.
func (s *Store) TokenExpired() bool {
	exp, ok := s.TokenExpiresAt()
	return ok && time.Now().After(exp)
}

func (s *Store) get(key string) ([]byte, bool) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		return nil, false
	}
	return []byte(e.Value), true
}

func (s *Store) set(key string, v any) error {
	raw, err := fastMarshal(v)
	if err != nil {
		return err
	}
	return s.db.Save(&Entry{Key: key, Value: datatypes.JSON(raw)}).Error
}
