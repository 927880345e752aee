package testutil

import (
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/httputil"
)

// CreateTestFileAndForm creates a test file and form
func CreateTestFileAndForm(t *testing.T, fileName string, fileContent []byte) (*multipart.Form, error) {
	err := CreateTestFile(fileName, fileContent)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := os.Remove(fileName); err != nil {
			t.Logf("failed to remove temporary file %s: %v", fileName, err)
		}
	})

	form, err := httputil.CreateForm(fileContent, fileName)
	require.NoError(t, err)

	return form, nil
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}
