package storage

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the asset types the site serves
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
}

// CheckContent verifies that data matches the type its name claims and
// returns the detected MIME type. Anything http.DetectContentType reports as
// application/octet-stream is rejected.
func CheckContent(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	signatures, ok := magicBytes[ext]
	if !ok {
		return "", fmt.Errorf("asset extension not allowed: %q", ext)
	}

	matched := false
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			matched = true
			break
		}
	}
	if !matched {
		return "", fmt.Errorf("asset %s does not match its extension", name)
	}

	mime := http.DetectContentType(data)
	if mime == "application/octet-stream" {
		return "", fmt.Errorf("asset %s has an undetectable type", name)
	}
	return mime, nil
}
