//go:build unit
// +build unit

package extraction

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

func renderTestPdf(t *testing.T, lines []string) []byte {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "", 12)
	for _, line := range lines {
		doc.Cell(0, 10, line)
		doc.Ln(10)
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestExtract_ReadsText(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	extractor, err := NewPdfExtractor(log)
	require.NoError(t, err)

	data := renderTestPdf(t, []string{"Health Insurance Policy", "Sum Insured Rs. 500000"})

	text, pageCount, err := extractor.Extract(data)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount)
	assert.Contains(t, text, "Health Insurance Policy")
	assert.Contains(t, text, "500000")
}

func TestExtract_EmptyDocument(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	extractor, err := NewPdfExtractor(log)
	require.NoError(t, err)

	_, _, err = extractor.Extract(nil)
	assert.Error(t, err)
}

func TestExtract_NotAPdf(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	extractor, err := NewPdfExtractor(log)
	require.NoError(t, err)

	_, _, err = extractor.Extract([]byte("plain text, not a PDF"))
	assert.Error(t, err)
}
