//go:build unit
// +build unit

package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOCRSettings(provider, baseURL string) *config.OCRSettings {
	return &config.OCRSettings{
		Provider: provider,
		APIKey:   "test-key",
		Model:    "test-model",
		BaseURL:  baseURL,
		Timeout:  5 * time.Second,
	}
}

func TestParseStructuredReply(t *testing.T) {
	reply := "```json\n{\"text\": \"Reserva Airbnb\", \"fields\": {\"guest_name\": \"Joana Silva\", \"guests\": 2, \"platform\": \"\", \"check_in\": null}}\n```"

	extraction := parseStructuredReply("gemini", reply)

	assert.Equal(t, "gemini", extraction.Provider)
	assert.Equal(t, "Reserva Airbnb", extraction.Text)
	assert.Equal(t, "Joana Silva", extraction.Fields[ocr.FieldGuestName])
	assert.Equal(t, "2", extraction.Fields[ocr.FieldGuests])
	assert.NotContains(t, extraction.Fields, ocr.FieldPlatform)
	assert.NotContains(t, extraction.Fields, ocr.FieldCheckIn)
}

func TestParseStructuredReply_PlainText(t *testing.T) {
	extraction := parseStructuredReply("gemini", "Hóspede: Joana Silva")

	assert.Equal(t, "Hóspede: Joana Silva", extraction.Text)
	assert.Empty(t, extraction.Fields)
}

func TestMistralExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ocr", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req mistralRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "document_url", req.Document.Type)
		assert.True(t, strings.HasPrefix(req.Document.DocumentURL, "data:application/pdf;base64,"))

		_, _ = w.Write([]byte(`{"pages":[{"index":0,"markdown":"Guest: Joana"},{"index":1,"markdown":"Total: 300 EUR"}]}`))
	}))
	defer server.Close()

	extractor := NewMistralExtractor(testOCRSettings(config.OCRProviderMistral, server.URL), testutil.SetupTestLogger(t))
	extraction, err := extractor.Extract(context.Background(), &ocr.Document{FileName: "r.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "Guest: Joana\n\nTotal: 300 EUR", extraction.Text)
	assert.Equal(t, config.OCRProviderMistral, extraction.Provider)
}

func TestMistralExtractor_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer server.Close()

	extractor := NewMistralExtractor(testOCRSettings(config.OCRProviderMistral, server.URL), testutil.SetupTestLogger(t))
	_, err := extractor.Extract(context.Background(), &ocr.Document{FileName: "r.png", MIMEType: "image/png", Data: []byte{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestOpenRouterExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content []struct {
					Type     string `json:"type"`
					ImageURL struct {
						URL string `json:"url"`
					} `json:"image_url"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		require.Len(t, req.Messages[0].Content, 2)
		assert.Equal(t, "image_url", req.Messages[0].Content[1].Type)
		assert.True(t, strings.HasPrefix(req.Messages[0].Content[1].ImageURL.URL, "data:image/jpeg;base64,"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"Check-in: 2026-03-01"}}]}`))
	}))
	defer server.Close()

	extractor := NewOpenRouterExtractor(testOCRSettings(config.OCRProviderOpenRouter, server.URL), testutil.SetupTestLogger(t))
	extraction, err := extractor.Extract(context.Background(), &ocr.Document{FileName: "r.jpg", MIMEType: "image/jpeg", Data: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "Check-in: 2026-03-01", extraction.Text)
}

func TestOpenRouterExtractor_EmptyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	extractor := NewOpenRouterExtractor(testOCRSettings(config.OCRProviderOpenRouter, server.URL), testutil.SetupTestLogger(t))
	_, err := extractor.Extract(context.Background(), &ocr.Document{FileName: "r.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")})
	require.Error(t, err)
}

func TestOpenRouterExtractor_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","code":429}}`))
	}))
	defer server.Close()

	extractor := NewOpenRouterExtractor(testOCRSettings(config.OCRProviderOpenRouter, server.URL), testutil.SetupTestLogger(t))
	_, err := extractor.Extract(context.Background(), &ocr.Document{FileName: "r.png", MIMEType: "image/png", Data: []byte{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestNewExtractor_None(t *testing.T) {
	extractor, err := NewExtractor(context.Background(), &config.OCRSettings{Provider: config.OCRProviderNone}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, extractor)
}

func TestWithTimeout(t *testing.T) {
	bounded, cancel := withTimeout(context.Background(), 30*time.Second)
	defer cancel()
	deadline, ok := bounded.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(30*time.Second), deadline, time.Second)

	unbounded, cancel := withTimeout(context.Background(), 0)
	defer cancel()
	_, ok = unbounded.Deadline()
	assert.False(t, ok)
}

func TestGeminiExtractor_ExtractStopsAtTimeout(t *testing.T) {
	extractor, err := NewGeminiExtractor(context.Background(), &config.OCRSettings{
		Provider: config.OCRProviderGemini,
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Timeout:  time.Nanosecond,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	started := time.Now()
	_, err = extractor.Extract(context.Background(), &ocr.Document{FileName: "r.png", MIMEType: "image/png", Data: []byte{1}})
	require.Error(t, err)
	assert.Less(t, time.Since(started), 5*time.Second)
}
