// Package ocr implements document extractors for the remote OCR providers
// (Gemini, Mistral OCR and OpenRouter). Extractors only fetch text and, when
// the provider supports it, structured fields; parsing into a reservation
// draft happens in the domain package.
package ocr
