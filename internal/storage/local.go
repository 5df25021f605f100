package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Stage(ctx context.Context, r io.Reader, in StageInput) (Staged, error) {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return Staged{}, err
	}

	key := uuid.NewString() + safeExt(in.Filename)
	dst := filepath.Join(l.BaseDir, key)

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Staged{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return Staged{}, err
	}

	url := strings.TrimRight(l.URLPrefix, "/") + "/" + key
	return Staged{Key: key, URL: url}, nil
}

func (l *Local) Remove(ctx context.Context, key string) error {
	_ = ctx
	key = filepath.Base(key)
	return os.Remove(filepath.Join(l.BaseDir, key))
}

// safeExt keeps known image extensions only; anything else is dropped so a
// staged file can never come back as same-origin markup.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
