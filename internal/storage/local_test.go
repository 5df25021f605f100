package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads")

	staged, err := l.Stage(context.Background(), strings.NewReader("img-bytes"), StageInput{
		Filename:    "Photo.PNG",
		ContentType: "image/png",
		Size:        9,
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(staged.Key, ".png") {
		t.Errorf("key = %q, want lowercased .png suffix", staged.Key)
	}
	if staged.URL != "/uploads/"+staged.Key {
		t.Errorf("url = %q, want prefix + key", staged.URL)
	}

	b, err := os.ReadFile(filepath.Join(dir, staged.Key))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "img-bytes" {
		t.Errorf("content = %q", b)
	}

	if err := l.Remove(context.Background(), staged.Key); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, staged.Key)); !os.IsNotExist(err) {
		t.Error("file survived Remove")
	}
}

func TestSafeExtWhitelist(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.png", ".png"},
		{"a.JPG", ".jpg"},
		{"a.jpeg", ".jpeg"},
		{"a.webp", ".webp"},
		{"a.gif", ".gif"},
		{"a.html", ""},
		{"a.svg", ""},
		{"a.png.exe", ""},
		{"noext", ""},
	}
	for _, tt := range tests {
		if got := safeExt(tt.filename); got != tt.want {
			t.Errorf("safeExt(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
