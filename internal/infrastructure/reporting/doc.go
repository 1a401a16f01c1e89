// Package reporting renders owner reports (PDF, XLSX, CSV) and quotation PDFs.
package reporting
