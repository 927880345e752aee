// Package httputil provides helpers for building multipart forms
// programmatically, mirroring what a browser upload produces.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// CreateForm builds a multipart form containing a single file part named
// "file" with the given content and filename.
func CreateForm(content []byte, fileName string) (*multipart.Form, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write form file content: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart form: %w", err)
	}

	// ReadForm does not populate FileHeader.Size for buffered parts
	if fileHeaders, ok := form.File["file"]; ok && len(fileHeaders) > 0 {
		fileHeaders[0].Size = int64(len(content))
	}

	return form, nil
}
