package ocr

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
)

const extractionPrompt = `You read booking confirmations, reservation e-mails and invoices of short-term rentals in Portugal.
Return only JSON, without commentary, with this shape:
{"text": "<full document text>", "fields": {"property_name": "", "guest_name": "", "guest_email": "", "guest_phone": "", "check_in": "YYYY-MM-DD", "check_out": "YYYY-MM-DD", "guests": "", "total_amount": "0.00", "platform": ""}}
Leave a field empty when the document does not state it.`

const textPrompt = "Transcribe all text of this document. Keep labels and values on the same line."

type structuredReply struct {
	Text   string                 `json:"text"`
	Fields map[string]interface{} `json:"fields"`
}

// parseStructuredReply decodes a model reply in the extractionPrompt format.
// Replies that are not JSON are kept as plain text.
func parseStructuredReply(provider, reply string) *ocr.Extraction {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	extraction := &ocr.Extraction{Provider: provider, Fields: map[string]string{}}

	var parsed structuredReply
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		extraction.Text = reply
		return extraction
	}

	extraction.Text = parsed.Text
	for key, value := range parsed.Fields {
		if value == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(value))
		if s != "" {
			extraction.Fields[key] = s
		}
	}
	return extraction
}

func dataURL(document *ocr.Document) string {
	return "data:" + document.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(document.Data)
}

func isPDF(document *ocr.Document) bool {
	return document.MIMEType == "application/pdf"
}
