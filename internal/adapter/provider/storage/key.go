// Package storage stores generated assets and returns their public URLs.
//
// Objects are keyed "{audio|thumbnails}/{unixMillis}_{name}". The folder is
// chosen from the content type, so callers only pass a file name.
package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// objectKey builds the object key for name stored at t.
func objectKey(name, contentType string, t time.Time) string {
	folder := "thumbnails"
	if strings.HasPrefix(contentType, "audio/") {
		folder = "audio"
	}
	return fmt.Sprintf("%s/%d_%s", folder, t.UnixMilli(), sanitizeName(name))
}

// sanitizeName keeps the base name and replaces anything outside [A-Za-z0-9._-].
func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "object"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// keyFromURL strips base from rawURL. It fails for URLs this store did not produce.
func keyFromURL(base, rawURL string) (string, error) {
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", fmt.Errorf("url %q is not under %q", rawURL, prefix)
	}
	key := strings.TrimPrefix(rawURL, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("url %q has an invalid object key", rawURL)
	}
	return key, nil
}
