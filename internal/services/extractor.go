package services

import (
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
)

// minTextLength is the minimum viable amount of cleaned text; anything shorter
// is treated as a failed extraction and never forwarded to the LLM.
const minTextLength = 50

type ExtractorService interface {
	ExtractFile(filePath, filename string) (string, *ParseError)
}

type extractorService struct {
	pdf  PDFExtractorService
	docx DOCXExtractorService
}

func NewExtractorService(pdf PDFExtractorService, docx DOCXExtractorService) ExtractorService {
	return &extractorService{
		pdf:  pdf,
		docx: docx,
	}
}

// ExtractFile routes to the format-specific extractor, runs the cleanup pass,
// and enforces the minimum content threshold.
func (e *extractorService) ExtractFile(filePath, filename string) (string, *ParseError) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = e.pdf.ExtractText(filePath)
	case ".docx", ".doc":
		text, err = e.docx.ExtractText(filePath)
	default:
		return "", newParseError(http.StatusUnsupportedMediaType,
			fmt.Sprintf("Unsupported file format: %s", ext))
	}
	if err != nil {
		return "", newParseError(http.StatusUnprocessableEntity,
			fmt.Sprintf("Error reading %s: %v", strings.ToUpper(strings.TrimPrefix(ext, ".")), err))
	}

	text = CleanExtractedText(text)
	if len(text) < minTextLength {
		return "", newParseError(http.StatusUnprocessableEntity,
			"Could not extract sufficient text from the resume. Please check if the file is valid.")
	}

	return text, nil
}

var (
	imageRefRe  = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	imageSizeRe = regexp.MustCompile(`\{[^{}]*(?:width|height)=[^{}]*\}`)
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	spaceRunRe  = regexp.MustCompile(`[ \t]{2,}`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanExtractedText strips markdown image references, image-sizing
// annotations, and heading markers left behind by converters, and collapses
// redundant blank lines and spaces.
func CleanExtractedText(text string) string {
	text = imageRefRe.ReplaceAllString(text, "")
	text = imageSizeRe.ReplaceAllString(text, "")
	text = headingRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
