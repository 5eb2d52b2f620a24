package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFExtractorService interface {
	ExtractText(filePath string) (string, error)
}

type pdfExtractorService struct{}

func NewPDFExtractorService() PDFExtractorService {
	return &pdfExtractorService{}
}

// ExtractText reads every page of the PDF sequentially and joins the page
// texts with newlines. Any reader failure surfaces the library error verbatim.
func (p *pdfExtractorService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}
