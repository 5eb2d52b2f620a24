package services

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions is the extension allow-list for uploaded resumes.
// Extension is the only signal; a mislabeled file will still fail at the
// extraction stage.
var SupportedExtensions = []string{".pdf", ".docx", ".doc"}

// IsSupportedFormat reports whether the filename carries one of the accepted
// extensions. An empty or missing filename is rejected.
func IsSupportedFormat(filename string) bool {
	if filename == "" {
		return false
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range SupportedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
