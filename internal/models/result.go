package models

// FileResult is one successfully parsed file in a batch.
type FileResult struct {
	Filename string        `json:"filename"`
	Resume   *ParsedResume `json:"resume"`
}

// FileError records a per-file failure together with the HTTP status a
// single-file request would have produced for it.
type FileError struct {
	Filename   string `json:"filename"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// BatchResponse is the aggregate outcome of one /parse-resume request.
// Successful+Failed always equals TotalFiles; Results and Errors keep the
// submission order of the files they came from.
type BatchResponse struct {
	Message    string       `json:"message,omitempty"`
	TotalFiles int          `json:"total_files"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Results    []FileResult `json:"results"`
	Errors     []FileError  `json:"errors,omitempty"`
}

type MetadataResponse struct {
	Message          string            `json:"message"`
	Version          string            `json:"version"`
	Endpoints        map[string]string `json:"endpoints"`
	SupportedFormats []string          `json:"supported_formats"`
	Model            string            `json:"model"`
}
