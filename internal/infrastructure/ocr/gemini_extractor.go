package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiExtractor struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	name    string
	timeout time.Duration
	logger  logger.Logger
}

// NewGeminiExtractor creates an extractor backed by a Gemini multimodal model
func NewGeminiExtractor(ctx context.Context, settings *config.OCRSettings, logger logger.Logger) (ocr.Extractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(settings.APIKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(settings.Model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)

	logger.Info("Gemini OCR extractor initialized with model ", settings.Model)
	return &geminiExtractor{
		client:  client,
		model:   model,
		name:    settings.Model,
		timeout: settings.Timeout,
		logger:  logger,
	}, nil
}

func (e *geminiExtractor) Name() string {
	return config.OCRProviderGemini
}

func (e *geminiExtractor) Model() string {
	return e.name
}

func (e *geminiExtractor) Extract(ctx context.Context, document *ocr.Document) (*ocr.Extraction, error) {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.model.GenerateContent(ctx,
		genai.Text(extractionPrompt),
		genai.Blob{MIMEType: document.MIMEType, Data: document.Data},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini recognition error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no result")
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}
	if reply.Len() == 0 {
		return nil, fmt.Errorf("gemini returned no text")
	}

	e.logger.Info("Gemini extracted ", reply.Len(), " characters from ", document.FileName)
	return parseStructuredReply(e.Name(), reply.String()), nil
}

// withTimeout bounds ctx by timeout; a zero timeout leaves ctx as is
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
