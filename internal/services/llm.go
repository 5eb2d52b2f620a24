package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/yogeshthakur11/resume-parser-project/internal/config"
	"github.com/yogeshthakur11/resume-parser-project/internal/models"
)

// Fixed decoding parameters for the completion request. Determinism of the
// extraction is delegated entirely to these.
const (
	llmTemperature = 0.1
	llmTopP        = 0.9
	llmMaxTokens   = 2000
)

type LLMService interface {
	ParseResume(ctx context.Context, resumeText string) (*models.ParsedResume, error)
}

type llmService struct {
	client        *openai.Client
	model         string
	timeout       time.Duration
	promptBuilder *PromptBuilder
}

// NewLLMService builds the chat-completion client for the configured
// OpenAI-compatible endpoint. The service is injected into the parser rather
// than held as a package-level singleton so tests can substitute a fake.
func NewLLMService(cfg config.GroqConfig) (LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing API key")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	return &llmService{
		client:        &client,
		model:         cfg.Model,
		timeout:       cfg.Timeout,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

// ParseResume sends one completion request for the resume text and decodes
// the structured reply. There are no retries: transport failures and
// undecodable replies are both hard failures.
func (s *llmService) ParseResume(ctx context.Context, resumeText string) (*models.ParsedResume, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := s.promptBuilder.BuildResumePrompt(resumeText)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(llmTemperature),
		TopP:        openai.Float(llmTopP),
		MaxTokens:   openai.Int(llmMaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}

	return DecodeResumeReply(resp.Choices[0].Message.Content)
}

// DecodeResumeReply strips any markdown code fences from the raw model reply,
// validates the remaining text against the resume schema, and decodes it. The
// offending text is included in the error on failure.
func DecodeResumeReply(raw string) (*models.ParsedResume, error) {
	cleaned := StripCodeFences(raw)

	var probe any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response as JSON: %w\nResponse: %s", err, cleaned)
	}
	if err := ValidateJSONAgainstSchema(BuildResumeJSONSchema(), []byte(cleaned)); err != nil {
		return nil, fmt.Errorf("LLM response does not match resume schema: %w\nResponse: %s", err, cleaned)
	}

	var resume models.ParsedResume
	if err := json.Unmarshal([]byte(cleaned), &resume); err != nil {
		return nil, fmt.Errorf("failed to decode LLM response: %w\nResponse: %s", err, cleaned)
	}

	resume.FillDefaults()
	return &resume, nil
}

// StripCodeFences removes a leading and trailing markdown code fence (labeled
// or unlabeled) wrapping the reply, if present.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}

	return strings.TrimSpace(s)
}
