package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"pdf", "resume.pdf", true},
		{"docx", "resume.docx", true},
		{"doc", "resume.doc", true},
		{"uppercase extension", "RESUME.PDF", true},
		{"mixed case", "Resume.DocX", true},
		{"dotted name", "john.doe.resume.pdf", true},
		{"text file", "resume.txt", false},
		{"image", "photo.png", false},
		{"no extension", "resume", false},
		{"empty filename", "", false},
		{"extension only", ".pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupportedFormat(tt.filename))
		})
	}
}
