// Package storage stages form uploads before their URLs go into a submit
// payload. The platform API mostly takes image URLs, not bytes, so file and
// file-multiple form fields land here first (local disk in development, S3
// in production).
package storage

import (
	"context"
	"io"
)

type StageInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type Staged struct {
	Key string
	URL string
}

type Stager interface {
	Stage(ctx context.Context, r io.Reader, in StageInput) (Staged, error)
	Remove(ctx context.Context, key string) error
}
