package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
)

type mistralDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type mistralRequest struct {
	Model    string          `json:"model"`
	Document mistralDocument `json:"document"`
}

type mistralResponse struct {
	Pages []struct {
		Index    int    `json:"index"`
		Markdown string `json:"markdown"`
	} `json:"pages"`
}

type mistralExtractor struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     logger.Logger
}

// NewMistralExtractor creates an extractor calling the Mistral OCR endpoint
func NewMistralExtractor(settings *config.OCRSettings, logger logger.Logger) ocr.Extractor {
	return &mistralExtractor{
		httpClient: &http.Client{Timeout: settings.Timeout},
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		apiKey:     settings.APIKey,
		model:      settings.Model,
		logger:     logger,
	}
}

func (e *mistralExtractor) Name() string {
	return config.OCRProviderMistral
}

func (e *mistralExtractor) Model() string {
	return e.model
}

func (e *mistralExtractor) Extract(ctx context.Context, document *ocr.Document) (*ocr.Extraction, error) {
	payload := mistralRequest{Model: e.model}
	if isPDF(document) {
		payload.Document = mistralDocument{Type: "document_url", DocumentURL: dataURL(document)}
	} else {
		payload.Document = mistralDocument{Type: "image_url", ImageURL: dataURL(document)}
	}

	var resp mistralResponse
	if err := postJSON(ctx, e.httpClient, e.baseURL+"/v1/ocr", e.apiKey, payload, &resp); err != nil {
		return nil, fmt.Errorf("mistral ocr error: %w", err)
	}

	pages := make([]string, 0, len(resp.Pages))
	for _, page := range resp.Pages {
		pages = append(pages, page.Markdown)
	}
	text := strings.Join(pages, "\n\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("mistral ocr returned no text")
	}

	e.logger.Info("Mistral extracted ", len(resp.Pages), " pages from ", document.FileName)
	return &ocr.Extraction{Provider: e.Name(), Text: text, Fields: map[string]string{}}, nil
}

// postJSON sends payload with bearer authentication and decodes a 2xx JSON reply into out
func postJSON(ctx context.Context, client *http.Client, url, apiKey string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, truncate(string(data), 300))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
