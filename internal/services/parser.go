package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/yogeshthakur11/resume-parser-project/internal/models"
)

// ParserService drives uploaded files through validate → stage → extract →
// LLM-parse, accumulating per-file outcomes across a batch.
type ParserService interface {
	ParseBatch(ctx context.Context, files []*multipart.FileHeader) *models.BatchResponse
}

type parserService struct {
	storage   StorageService
	extractor ExtractorService
	llm       LLMService
}

func NewParserService(
	storage StorageService,
	extractor ExtractorService,
	llm LLMService,
) ParserService {
	return &parserService{
		storage:   storage,
		extractor: extractor,
		llm:       llm,
	}
}

// ParseBatch processes files strictly sequentially in submission order. One
// file's failure never aborts the batch; each failure is recorded with the
// status a single-file request would have produced.
func (p *parserService) ParseBatch(ctx context.Context, files []*multipart.FileHeader) *models.BatchResponse {
	resp := &models.BatchResponse{
		TotalFiles: len(files),
		Results:    []models.FileResult{},
		Errors:     []models.FileError{},
	}

	for _, file := range files {
		resume, perr := p.parseFile(ctx, file)
		if perr != nil {
			log.Printf("❌ %s: %s", file.Filename, perr.Message)
			resp.Failed++
			resp.Errors = append(resp.Errors, models.FileError{
				Filename:   file.Filename,
				Error:      perr.Message,
				StatusCode: perr.StatusCode,
			})
			continue
		}

		log.Printf("✅ Parsed %s", file.Filename)
		resp.Successful++
		resp.Results = append(resp.Results, models.FileResult{
			Filename: file.Filename,
			Resume:   resume,
		})
	}

	return resp
}

func (p *parserService) parseFile(ctx context.Context, file *multipart.FileHeader) (resume *models.ParsedResume, perr *ParseError) {
	if !IsSupportedFormat(file.Filename) {
		return nil, newParseError(http.StatusUnsupportedMediaType,
			fmt.Sprintf("Unsupported file format for '%s'. Allowed formats: PDF, DOCX, DOC", file.Filename))
	}

	filePath, err := p.storage.SaveUpload(file)
	if err != nil {
		return nil, newParseError(http.StatusInternalServerError,
			fmt.Sprintf("Failed to save uploaded file: %v", err))
	}
	// Temp storage is released on every exit path, including panics further
	// down the pipeline.
	defer func() {
		if err := p.storage.DeleteFile(filePath); err != nil {
			log.Printf("⚠️ Failed to remove temp file %s: %v", filePath, err)
		}
		if r := recover(); r != nil {
			resume = nil
			perr = newParseError(http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	text, perr := p.extractor.ExtractFile(filePath, file.Filename)
	if perr != nil {
		return nil, perr
	}

	parsed, err := p.llm.ParseResume(ctx, text)
	if err != nil {
		return nil, newParseError(http.StatusInternalServerError,
			fmt.Sprintf("Error in LLM processing: %v", err))
	}

	if !parsed.IsResume {
		reason := "The document does not appear to be a resume."
		if parsed.NotResumeReason != nil && *parsed.NotResumeReason != "" {
			reason = *parsed.NotResumeReason
		}
		return nil, newParseError(http.StatusUnprocessableEntity,
			fmt.Sprintf("Document rejected: %s", reason))
	}

	return parsed, nil
}
