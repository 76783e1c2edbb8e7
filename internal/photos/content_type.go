package photos

import (
	"path"
	"strings"
)

const fallbackContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// ContentTypeFor maps a file name's extension to a MIME type. Unknown or
// missing extensions fall back to the generic binary type. The extension
// match is case-insensitive and the function has no side effects.
func ContentTypeFor(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return fallbackContentType
}
