package port

import (
	"context"
	"encoding/json"
)

// ChunkInput carries the data needed to extract one chunk of a report.
type ChunkInput struct {
	Text    string
	ChunkID string
	Prompt  string
}

// ChunkOutput contains the flat mapping an extractor produced for a chunk:
// a JSON object of underscore-delimited keys and opaque values.
type ChunkOutput struct {
	Flat      json.RawMessage
	ModelUsed string
}

// ChunkExtractor abstracts LLM-based extraction of one report chunk.
type ChunkExtractor interface {
	ExtractChunk(ctx context.Context, input ChunkInput) (*ChunkOutput, error)
}
