package services

// ParseError is a per-file failure carrying the HTTP status classification a
// single-file request would have produced for it.
type ParseError struct {
	StatusCode int
	Message    string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(status int, message string) *ParseError {
	return &ParseError{StatusCode: status, Message: message}
}
