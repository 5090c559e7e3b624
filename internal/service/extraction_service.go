package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"vivaran/internal/config"
	"vivaran/internal/domain"
	"vivaran/internal/extractor"
	"vivaran/internal/port"
	"vivaran/internal/report"
	"vivaran/internal/textextract"
	"vivaran/internal/transform"
)

// minTextLength is the smallest extracted-text size considered usable.
const minTextLength = 100

// ExtractInput is the DTO for extraction requests.
type ExtractInput struct {
	FileName string
	Content  []byte
}

// ExtractionService defines the report extraction contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionRun, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRun, error)
	List(ctx context.Context, offset, limit int) ([]domain.ExtractionRun, int, error)
	GetChunkArtifact(ctx context.Context, id uuid.UUID, chunkID string) ([]byte, error)
}

type extractionService struct {
	runRepo port.ExtractionRunRepository
	storage port.ObjectStorage
	chunks  port.ChunkExtractor
	builder *transform.Builder
	s3cfg   *config.S3Config
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	runRepo port.ExtractionRunRepository,
	storage port.ObjectStorage,
	chunks port.ChunkExtractor,
	s3cfg *config.S3Config,
	transformCfg *config.TransformConfig,
) ExtractionService {
	builder := transform.NewBuilder(transform.NewResolver(transform.DefaultCasingMap()))
	builder.AllowOverwrite = transformCfg.AllowOverwrite
	return &extractionService{
		runRepo: runRepo,
		storage: storage,
		chunks:  chunks,
		builder: builder,
		s3cfg:   s3cfg,
	}
}

func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionRun, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(input.Content)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	text, err := textextract.Extract(fileType, input.Content)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", input.FileName, err)
	}
	if len(text) < minTextLength {
		return nil, domain.ErrInsufficientText
	}

	runID := uuid.New()
	keyPrefix := fmt.Sprintf("runs/%s", runID)
	log.Printf("extractionService.Extract: run %s started for %s (%d chars of text)",
		runID, input.FileName, len(text))

	// The source object is required so a run can be re-examined later;
	// chunk artifacts below are best-effort.
	sourceKey := fmt.Sprintf("%s/source.%s", keyPrefix, ext)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         sourceKey,
		ContentType: domain.ContentTypes[fileType],
		Body:        bytes.NewReader(input.Content),
	}); err != nil {
		log.Printf("extractionService.Extract: run %s source upload failed: %v", runID, err)
		return nil, fmt.Errorf("storing source file %s: %w", input.FileName, domain.ErrUploadFailed)
	}

	chunks := extractor.Chunks()
	merged := report.Document{}
	// Initialized non-nil so empty lists serialize as [] rather than null.
	failedChunks := []string{}
	keyFailures := []domain.KeyFailure{}
	var (
		modelUsed string
		succeeded int
	)

	for _, chunk := range chunks {
		out, err := s.chunks.ExtractChunk(ctx, port.ChunkInput{
			Text:    text,
			ChunkID: chunk.ID,
			Prompt:  chunk.Prompt,
		})
		if err != nil {
			log.Printf("extractionService.Extract: run %s chunk %s failed: %v", runID, chunk.ID, err)
			failedChunks = append(failedChunks, chunk.ID)
			continue
		}
		modelUsed = out.ModelUsed

		var flat map[string]report.Value
		if err := json.Unmarshal(out.Flat, &flat); err != nil {
			log.Printf("extractionService.Extract: run %s chunk %s returned undecodable JSON: %v", runID, chunk.ID, err)
			failedChunks = append(failedChunks, chunk.ID)
			continue
		}

		s.uploadArtifact(ctx, keyPrefix, "chunk_"+chunk.ID+".json", out.Flat)

		doc, keyErrs := s.builder.Build(flat)
		for _, ke := range keyErrs {
			keyFailures = append(keyFailures, domain.KeyFailure{
				ChunkID: chunk.ID,
				Key:     ke.Key,
				Error:   ke.Err.Error(),
			})
		}

		merged = report.Merge(merged, doc)
		succeeded++
	}

	status := domain.RunStatusCompleted
	switch {
	case succeeded == 0:
		status = domain.RunStatusFailed
	case len(failedChunks) > 0 || len(keyFailures) > 0:
		status = domain.RunStatusPartial
	}

	mergedJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("marshaling merged document: %w", err)
	}
	s.uploadArtifact(ctx, keyPrefix, "final_merged.json", mergedJSON)

	failedJSON, err := json.Marshal(failedChunks)
	if err != nil {
		return nil, fmt.Errorf("marshaling failed chunks: %w", err)
	}
	keyErrsJSON, err := json.Marshal(keyFailures)
	if err != nil {
		return nil, fmt.Errorf("marshaling key errors: %w", err)
	}

	run := &domain.ExtractionRun{
		ID:           runID,
		SourceFile:   input.FileName,
		FileType:     fileType,
		Status:       status,
		ModelUsed:    modelUsed,
		TotalChunks:  len(chunks),
		FailedChunks: failedJSON,
		KeyErrors:    keyErrsJSON,
		MergedData:   mergedJSON,
		S3Bucket:     s.s3cfg.Bucket,
		S3KeyPrefix:  keyPrefix,
	}

	if err := s.runRepo.Create(ctx, run); err != nil {
		log.Printf("extractionService.Extract: run %s persistence failed: %v", runID, err)
		return nil, fmt.Errorf("persisting extraction run: %w", err)
	}

	log.Printf("extractionService.Extract: run %s %s (%d/%d chunks, %d key errors)",
		runID, status, succeeded, len(chunks), len(keyFailures))
	return run, nil
}

// uploadArtifact stores a run artifact. Artifact uploads are best-effort:
// a storage failure must not lose the extraction result already in hand.
func (s *extractionService) uploadArtifact(ctx context.Context, prefix, name string, body []byte) {
	key := prefix + "/" + name
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		ContentType: "application/json",
		Body:        bytes.NewReader(body),
	})
	if err != nil {
		log.Printf("extractionService.uploadArtifact: upload of %s failed: %v", key, err)
	}
}

func (s *extractionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRun, error) {
	return s.runRepo.GetByID(ctx, id)
}

func (s *extractionService) List(ctx context.Context, offset, limit int) ([]domain.ExtractionRun, int, error) {
	return s.runRepo.List(ctx, offset, limit)
}

func (s *extractionService) GetChunkArtifact(ctx context.Context, id uuid.UUID, chunkID string) ([]byte, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s/chunk_%s.json", run.S3KeyPrefix, chunkID)
	return s.storage.Download(ctx, run.S3Bucket, key)
}
