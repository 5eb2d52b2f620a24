package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"strings"
)

type DOCXExtractorService interface {
	ExtractText(filePath string) (string, error)
}

type docxExtractorService struct{}

func NewDOCXExtractorService() DOCXExtractorService {
	return &docxExtractorService{}
}

var textBoxRe = regexp.MustCompile(`(?s)<w:txbxContent>.*?</w:txbxContent>`)

// ExtractText pulls plain text out of a DOCX archive: header paragraphs,
// footer paragraphs, body paragraphs, table cells (cells joined with " | ",
// rows newline-joined), and finally any freestanding text-box content found in
// the raw document XML. The text-box pass is best-effort: its failures are
// logged and skipped, never aborting the primary extraction.
func (d *docxExtractorService) ExtractText(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	var headerNames, footerNames []string
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
		switch {
		case strings.HasPrefix(f.Name, "word/header") && strings.HasSuffix(f.Name, ".xml"):
			headerNames = append(headerNames, f.Name)
		case strings.HasPrefix(f.Name, "word/footer") && strings.HasSuffix(f.Name, ".xml"):
			footerNames = append(footerNames, f.Name)
		}
	}
	sort.Strings(headerNames)
	sort.Strings(footerNames)

	docFile, ok := files["word/document.xml"]
	if !ok {
		return "", fmt.Errorf("no document.xml found in DOCX")
	}
	docXML, err := readZipFile(docFile)
	if err != nil {
		return "", fmt.Errorf("failed to read document.xml: %w", err)
	}

	var parts []string
	appendPart := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	for _, name := range append(append([]string{}, headerNames...), footerNames...) {
		data, err := readZipFile(files[name])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		content, err := parseDocumentXML(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", name, err)
		}
		appendPart(strings.Join(content.paragraphs, "\n"))
	}

	body, err := parseDocumentXML(docXML)
	if err != nil {
		return "", fmt.Errorf("failed to parse document.xml: %w", err)
	}
	appendPart(strings.Join(body.paragraphs, "\n"))
	appendPart(strings.Join(body.tables, "\n"))

	for _, fragment := range textBoxRe.FindAll(docXML, -1) {
		text, err := textBoxText(fragment)
		if err != nil {
			log.Printf("⚠️ Skipping unreadable text box: %v", err)
			continue
		}
		appendPart(text)
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

type documentContent struct {
	paragraphs []string
	tables     []string
}

// parseDocumentXML walks one WordprocessingML part, collecting paragraph text
// and table text separately. Text-box content is skipped here; it is handled
// by the dedicated best-effort pass.
func parseDocumentXML(data []byte) (*documentContent, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		out       documentContent
		para      strings.Builder
		cell      strings.Builder
		row       []string
		tableRows []string
		tblDepth  int
		txbxDepth int
		inText    bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "txbxContent":
				txbxDepth++
			case "t":
				inText = true
			case "tab", "br", "cr":
				if txbxDepth == 0 {
					if tblDepth > 0 {
						cell.WriteString(" ")
					} else {
						para.WriteString(" ")
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "txbxContent":
				txbxDepth--
			case "tbl":
				tblDepth--
				if tblDepth == 0 && len(tableRows) > 0 {
					out.tables = append(out.tables, strings.Join(tableRows, "\n"))
					tableRows = nil
				}
			case "p":
				if txbxDepth > 0 {
					break
				}
				if tblDepth > 0 {
					// paragraph break inside a cell
					cell.WriteString(" ")
					break
				}
				if s := strings.TrimSpace(para.String()); s != "" {
					out.paragraphs = append(out.paragraphs, s)
				}
				para.Reset()
			case "tc":
				row = append(row, strings.TrimSpace(cell.String()))
				cell.Reset()
			case "tr":
				if tblDepth > 0 && txbxDepth == 0 {
					tableRows = append(tableRows, strings.Join(row, " | "))
					row = nil
				}
			}
		case xml.CharData:
			if !inText || txbxDepth > 0 {
				continue
			}
			if tblDepth > 0 {
				cell.Write(t)
			} else {
				para.Write(t)
			}
		}
	}

	return &out, nil
}

// textBoxText extracts plain text from one w:txbxContent fragment.
func textBoxText(fragment []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(fragment))

	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
