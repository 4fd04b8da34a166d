package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		uri   string
		path  string
		local bool
	}{
		{"/home/me/cat.png", "/home/me/cat.png", true},
		{"file:///home/me/cat%20photo.png", "/home/me/cat photo.png", true},
		{"https://example.com/cat.png", "", false},
		{"cat.png", "", false},
		{"file://", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		path, ok := LocalPath(test.uri)
		assert.Equal(t, test.local, ok, test.uri)
		assert.Equal(t, test.path, path, test.uri)
	}
}
