package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// writeDocx assembles a minimal DOCX archive on disk from part name → XML
// content pairs and returns its path.
func writeDocx(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

func docPart(body string) string {
	return `<?xml version="1.0"?><w:document xmlns:w="` + wordNS + `"><w:body>` + body + `</w:body></w:document>`
}

func TestDOCXExtractText_Paragraphs(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml": docPart(
			`<w:p><w:r><w:t>John Doe</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>`),
	})

	text, err := NewDOCXExtractorService().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer", text)
}

func TestDOCXExtractText_HeadersAndFootersFirst(t *testing.T) {
	hdr := `<?xml version="1.0"?><w:hdr xmlns:w="` + wordNS + `"><w:p><w:r><w:t>Header line</w:t></w:r></w:p></w:hdr>`
	ftr := `<?xml version="1.0"?><w:ftr xmlns:w="` + wordNS + `"><w:p><w:r><w:t>Footer line</w:t></w:r></w:p></w:ftr>`

	path := writeDocx(t, map[string]string{
		"word/header1.xml":  hdr,
		"word/footer1.xml":  ftr,
		"word/document.xml": docPart(`<w:p><w:r><w:t>Body line</w:t></w:r></w:p>`),
	})

	text, err := NewDOCXExtractorService().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Header line\nFooter line\nBody line", text)
}

func TestDOCXExtractText_TableCells(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml": docPart(
			`<w:p><w:r><w:t>Skills</w:t></w:r></w:p>` +
				`<w:tbl>` +
				`<w:tr><w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Python</w:t></w:r></w:p></w:tc></w:tr>` +
				`<w:tr><w:tc><w:p><w:r><w:t>Docker</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Kubernetes</w:t></w:r></w:p></w:tc></w:tr>` +
				`</w:tbl>`),
	})

	text, err := NewDOCXExtractorService().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Skills\nGo | Python\nDocker | Kubernetes", text)
}

func TestDOCXExtractText_TextBoxAppendedLast(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml": docPart(
			`<w:p><w:r><w:txbxContent><w:p><w:r><w:t>Boxed note</w:t></w:r></w:p></w:txbxContent></w:r></w:p>` +
				`<w:p><w:r><w:t>Main text</w:t></w:r></w:p>`),
	})

	text, err := NewDOCXExtractorService().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Main text\nBoxed note", text)
}

func TestDOCXExtractText_MultiParagraphCell(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml": docPart(
			`<w:tbl><w:tr><w:tc>` +
				`<w:p><w:r><w:t>first</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>second</w:t></w:r></w:p>` +
				`</w:tc></w:tr></w:tbl>`),
	})

	text, err := NewDOCXExtractorService().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "first second", text)
}

func TestDOCXExtractText_MissingDocumentXML(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/styles.xml": `<w:styles xmlns:w="` + wordNS + `"/>`,
	})

	_, err := NewDOCXExtractorService().ExtractText(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document.xml")
}

func TestDOCXExtractText_CorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0644))

	_, err := NewDOCXExtractorService().ExtractText(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open DOCX")
}
