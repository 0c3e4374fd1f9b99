package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalMediaLibrary downloads source images over HTTP and re-hosts them in
// the uploads directory the site serves statically.
type LocalMediaLibrary struct {
	// Client used for downloads; http.DefaultClient when nil.
	Client *http.Client
	// Dir is the on-disk uploads directory.
	Dir string
	// BaseURL is the public prefix under which Dir is served.
	BaseURL string
}

func (l *LocalMediaLibrary) Upload(ctx context.Context, rawURL, title string) (string, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: status %d", rawURL, resp.StatusCode)
	}

	name := uuid.NewString() + "-" + storedFileName(rawURL, title)
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(l.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, resp.Body); err != nil {
		return "", err
	}

	return path.Join(l.BaseURL, name), nil
}

// storedFileName derives a safe file name from the source URL, falling
// back to a slug of the product title when the URL has no usable base.
func storedFileName(rawURL, title string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			return sanitizeFileName(base)
		}
	}
	slug := sanitizeFileName(strings.ToLower(title))
	if slug == "" {
		slug = "image"
	}
	return slug + ".img"
}

func sanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-.")
}
