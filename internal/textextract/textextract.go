// Package textextract pulls plain text out of uploaded report files so it
// can be fed to the chunk extractor.
package textextract

import (
	"fmt"

	"vivaran/internal/domain"
)

// Extract returns the plain text content of the given file.
func Extract(fileType domain.FileType, content []byte) (string, error) {
	switch fileType {
	case domain.FileTypePDF:
		return extractPDF(content)
	case domain.FileTypeXLSX, domain.FileTypeXLS:
		return extractExcel(content)
	default:
		return "", fmt.Errorf("extracting text: %w: %s", domain.ErrUnsupportedFileType, fileType)
	}
}
