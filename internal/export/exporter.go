package export

import (
	"fmt"
	"strings"

	"log-analytics-backend/internal/dto"
)

// Exporter renders an analysis response for download. Every exporter must
// be lossless with respect to the response object.
type Exporter interface {
	Export(resp *dto.AnalysisResponse) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ForFormat returns the exporter for a format tag.
func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return NewCSV(), nil
	case "json":
		return NewJSON(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
