package domain

// FileType represents the allowed source file types for extraction.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLS  FileType = "xls"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"xlsx": FileTypeXLSX,
	"xls":  FileTypeXLS,
}

// ContentTypes maps FileType to the MIME content type used for stored
// artifacts and responses.
var ContentTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeXLS:  "application/vnd.ms-excel",
}

// RunStatus represents the outcome of an extraction run.
type RunStatus string

const (
	// RunStatusCompleted means every chunk extracted and merged cleanly.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusPartial means at least one chunk failed but the merged
	// document still carries the chunks that succeeded.
	RunStatusPartial RunStatus = "partial"
	// RunStatusFailed means no chunk produced usable data.
	RunStatusFailed RunStatus = "failed"
)
