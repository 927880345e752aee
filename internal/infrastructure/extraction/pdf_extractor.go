package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

type pdfExtractor struct {
	logger logger.Logger
}

// NewPdfExtractor creates a DocumentExtractor for PDF uploads.
func NewPdfExtractor(logger logger.Logger) (policies.DocumentExtractor, error) {
	return &pdfExtractor{logger: logger}, nil
}

func (e *pdfExtractor) Extract(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, fmt.Errorf("empty document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := reader.NumPage()
	var sb strings.Builder

	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with unsupported encodings are skipped rather than
			// failing the whole document.
			e.logger.Warn("Failed to extract text from page ", i, ": ", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), pageCount, nil
}
