package util

import (
	"errors"
	"strings"
)

// SanitizeFileName constrains a client-supplied file name to a single safe
// storage-key segment. Path separators are replaced and traversal patterns
// rejected; the original name is kept elsewhere for display.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
