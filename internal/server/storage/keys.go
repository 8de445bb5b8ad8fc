package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeFileName replaces every rune outside [A-Za-z0-9._-] with an
// underscore so the object key stays URL- and shell-safe.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}

// ObjectKey builds the storage key for an uploaded file. The "{albumID}-"
// prefix is the sole mechanism by which bulk album deletion later discovers
// the album's binaries, so its exact shape is a contract, not cosmetics.
func ObjectKey(albumID string, unixMillis int64, fileBaseName string) string {
	return fmt.Sprintf("%s-%d-%s", albumID, unixMillis, SanitizeFileName(fileBaseName))
}

// AlbumPrefix returns the key prefix under which all of an album's objects
// live.
func AlbumPrefix(albumID string) string {
	return albumID + "-"
}

// PublicURL returns the long-lived read URL for an object key. With a custom
// endpoint (MinIO and friends) the path-style form is used; otherwise the
// standard virtual-hosted S3 form.
func (g *Gateway) PublicURL(key string) string {
	if g.baseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(g.baseEndpoint, "/"), g.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, key)
}

// KeyFromURL parses the object key back out of a public URL produced by
// PublicURL.
func (g *Gateway) KeyFromURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("invalid object url %q: %w", publicURL, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if g.baseEndpoint != "" {
		key = strings.TrimPrefix(key, g.bucket+"/")
	}
	if key == "" {
		return "", fmt.Errorf("invalid object url %q: empty key", publicURL)
	}
	return key, nil
}
