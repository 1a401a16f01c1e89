package ocr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

type openRouterExtractor struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenRouterExtractor creates an extractor sending the document to a vision model
// through OpenRouter's OpenAI compatible chat completions API
func NewOpenRouterExtractor(settings *config.OCRSettings, logger logger.Logger) ocr.Extractor {
	clientConfig := openai.DefaultConfig(settings.APIKey)
	clientConfig.BaseURL = strings.TrimRight(settings.BaseURL, "/") + "/v1"
	clientConfig.HTTPClient = &http.Client{Timeout: settings.Timeout}
	return &openRouterExtractor{
		client: openai.NewClientWithConfig(clientConfig),
		model:  settings.Model,
		logger: logger,
	}
}

func (e *openRouterExtractor) Name() string {
	return config.OCRProviderOpenRouter
}

func (e *openRouterExtractor) Model() string {
	return e.model
}

// Extract attaches the document as a data URL; OpenRouter routes PDFs to models that read them
func (e *openRouterExtractor) Extract(ctx context.Context, document *ocr.Document) (*ocr.Extraction, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: textPrompt},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
					URL:    dataURL(document),
					Detail: openai.ImageURLDetailHigh,
				}},
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("openrouter error: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("openrouter returned no text")
	}

	text := resp.Choices[0].Message.Content
	e.logger.Info("OpenRouter extracted ", len(text), " characters from ", document.FileName)
	return &ocr.Extraction{Provider: e.Name(), Text: text, Fields: map[string]string{}}, nil
}
