package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vivaran/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Run ID",
	"Source File",
	"File Type",
	"Status",
	"Model Used",
	"Total Chunks",
	"Failed Chunks",
	"Key Errors",
	"S3 Bucket",
	"S3 Key Prefix",
	"Created At",
}

// Writer wraps csv.Writer for exporting extraction runs as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRuns converts a batch of extraction runs to CSV rows and writes them.
func (w *Writer) WriteRuns(runs []domain.ExtractionRun) error {
	for i := range runs {
		row := runToRow(&runs[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// runToRow converts a single extraction run to a string slice. The failed
// chunk IDs are joined with ";"; key errors are reported as a count since
// the full detail lives in the run record itself.
func runToRow(run *domain.ExtractionRun) []string {
	row := make([]string, len(columns))

	row[0] = run.ID.String()
	row[1] = run.SourceFile
	row[2] = string(run.FileType)
	row[3] = string(run.Status)
	row[4] = run.ModelUsed
	row[5] = strconv.Itoa(run.TotalChunks)
	row[6] = joinFailedChunks(run.FailedChunks)
	row[7] = strconv.Itoa(countKeyErrors(run.KeyErrors))
	row[8] = run.S3Bucket
	row[9] = run.S3KeyPrefix
	row[10] = run.CreatedAt.Format(time.RFC3339)

	return row
}

func joinFailedChunks(raw json.RawMessage) string {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return ""
	}
	return strings.Join(ids, ";")
}

func countKeyErrors(raw json.RawMessage) int {
	var failures []domain.KeyFailure
	if err := json.Unmarshal(raw, &failures); err != nil {
		return 0
	}
	return len(failures)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
