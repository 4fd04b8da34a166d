package fixture

import (
	"net/url"
	"path/filepath"
)

// LocalPath returns the file path behind a fixture image URL, which is either
// a file URL or an absolute path. Any other URL is remote.
func LocalPath(uri string) (string, bool) {
	if filepath.IsAbs(uri) {
		return uri, true
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}

	return u.Path, true
}
