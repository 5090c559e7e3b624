package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionRun records one end-to-end extraction of a BRSR report: the
// source file, per-chunk outcome, and the final merged nested document.
type ExtractionRun struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	SourceFile   string          `db:"source_file" json:"source_file"`
	FileType     FileType        `db:"file_type" json:"file_type"`
	Status       RunStatus       `db:"status" json:"status"`
	ModelUsed    string          `db:"model_used" json:"model_used"`
	TotalChunks  int             `db:"total_chunks" json:"total_chunks"`
	FailedChunks json.RawMessage `db:"failed_chunks" json:"failed_chunks"` // JSON array of chunk ids
	KeyErrors    json.RawMessage `db:"key_errors" json:"key_errors"`       // JSON array of KeyFailure
	MergedData   json.RawMessage `db:"merged_data" json:"merged_data"`
	S3Bucket     string          `db:"s3_bucket" json:"s3_bucket"`
	S3KeyPrefix  string          `db:"s3_key_prefix" json:"s3_key_prefix"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// KeyFailure is one flat key that could not be placed into the nested
// document, as stored in ExtractionRun.KeyErrors.
type KeyFailure struct {
	ChunkID string `json:"chunk_id"`
	Key     string `json:"key"`
	Error   string `json:"error"`
}
