package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vivaran/internal/config"
	"vivaran/internal/domain"
	"vivaran/internal/port"
	"vivaran/internal/service"
	"vivaran/mocks"
)

// makeXLSX builds a one-cell workbook whose extracted text is long enough
// to pass the minimum-text check.
func makeXLSX(t *testing.T, cellText string) []byte {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", cellText))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func reportText() string {
	return "Business Responsibility and Sustainability Report for FY 2023-24. " +
		strings.Repeat("Corporate disclosures follow. ", 5)
}

func newTestService(
	runRepo *mocks.MockExtractionRunRepo,
	storage *mocks.MockObjectStorage,
	chunks *mocks.MockChunkExtractor,
) service.ExtractionService {
	s3cfg := &config.S3Config{Bucket: "vivaran-artifacts", MaxFileSizeMB: 50}
	return service.NewExtractionService(runRepo, storage, chunks, s3cfg, &config.TransformConfig{})
}

func chunkOutput(flat string) *port.ChunkOutput {
	return &port.ChunkOutput{Flat: json.RawMessage(flat), ModelUsed: "gemini-2.0-flash"}
}

func TestExtractionService_Extract_Completed(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(chunkOutput(`{"sectiona_cin":"L23201DL1959GOI003948"}`), nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.HasSuffix(in.Key, "/source.xlsx") &&
			in.ContentType == domain.ContentTypes[domain.FileTypeXLSX]
	})).Return(&port.UploadOutput{Location: "s3://vivaran-artifacts"}, nil).Once()
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{Location: "s3://vivaran-artifacts"}, nil)
	runRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExtractionRun")).
		Return(nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, domain.RunStatusCompleted, run.Status)
	assert.Equal(t, domain.FileTypeXLSX, run.FileType)
	assert.Equal(t, "gemini-2.0-flash", run.ModelUsed)
	assert.Equal(t, 5, run.TotalChunks)
	assert.Equal(t, "vivaran-artifacts", run.S3Bucket)
	assert.Equal(t, fmt.Sprintf("runs/%s", run.ID), run.S3KeyPrefix)
	assert.JSONEq(t, `[]`, string(run.FailedChunks))
	assert.JSONEq(t, `[]`, string(run.KeyErrors))
	assert.JSONEq(t, `{"sectionA":{"cin":"L23201DL1959GOI003948"}}`, string(run.MergedData))

	// The source file, one artifact per chunk, and the merged document.
	chunks.AssertNumberOfCalls(t, "ExtractChunk", 5)
	storage.AssertNumberOfCalls(t, "Upload", 7)
	storage.AssertExpectations(t)
	runRepo.AssertExpectations(t)
}

func TestExtractionService_Extract_PartialOnChunkFailure(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.MatchedBy(func(in port.ChunkInput) bool {
		return in.ChunkID == "sectionB_complete"
	})).Return(nil, errors.New("gemini API error (status 429)"))
	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(chunkOutput(`{"sectiona_cin":"X"}`), nil)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{}, nil)
	runRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusPartial, run.Status)

	var failed []string
	require.NoError(t, json.Unmarshal(run.FailedChunks, &failed))
	assert.Equal(t, []string{"sectionB_complete"}, failed)

	// The merged document still carries the chunks that succeeded.
	assert.JSONEq(t, `{"sectionA":{"cin":"X"}}`, string(run.MergedData))
}

func TestExtractionService_Extract_FailedWhenNoChunkSucceeds(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(nil, errors.New("gemini API error (status 500)"))
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{}, nil)
	runRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
	assert.JSONEq(t, `{}`, string(run.MergedData))

	var failed []string
	require.NoError(t, json.Unmarshal(run.FailedChunks, &failed))
	assert.Len(t, failed, 5)
}

func TestExtractionService_Extract_PartialOnKeyErrors(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(chunkOutput(`{"sectiona_cin":"X","bogus_field":"Y"}`), nil)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{}, nil)
	runRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusPartial, run.Status)

	var failures []domain.KeyFailure
	require.NoError(t, json.Unmarshal(run.KeyErrors, &failures))
	require.Len(t, failures, 5)
	assert.Equal(t, "bogus_field", failures[0].Key)
	assert.Contains(t, failures[0].Error, "bogus")

	// The valid key still lands in the merged document.
	assert.JSONEq(t, `{"sectionA":{"cin":"X"}}`, string(run.MergedData))
}

func TestExtractionService_Extract_UndecodableChunkJSON(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.MatchedBy(func(in port.ChunkInput) bool {
		return in.ChunkID == "sectionA_complete"
	})).Return(chunkOutput(`["not","an","object"]`), nil)
	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(chunkOutput(`{"sectionb_policymatrix_p1_haspolicy":true}`), nil)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{}, nil)
	runRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusPartial, run.Status)

	var failed []string
	require.NoError(t, json.Unmarshal(run.FailedChunks, &failed))
	assert.Equal(t, []string{"sectionA_complete"}, failed)
}

func TestExtractionService_Extract_UnsupportedFileType(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.txt",
		Content:  []byte("plain text"),
	})

	assert.Nil(t, run)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	chunks.AssertNotCalled(t, "ExtractChunk", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_FileTooLarge(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	s3cfg := &config.S3Config{Bucket: "vivaran-artifacts", MaxFileSizeMB: 1}
	svc := service.NewExtractionService(runRepo, storage, chunks, s3cfg, &config.TransformConfig{})

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  make([]byte, 2*1024*1024),
	})

	assert.Nil(t, run)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestExtractionService_Extract_InsufficientText(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, "too short"),
	})

	assert.Nil(t, run)
	assert.ErrorIs(t, err, domain.ErrInsufficientText)
	chunks.AssertNotCalled(t, "ExtractChunk", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_ArtifactUploadFailureIsNonFatal(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(chunkOutput(`{"sectiona_cin":"X"}`), nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.Contains(in.Key, "/source.")
	})).Return(&port.UploadOutput{}, nil).Once()
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))
	runRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusCompleted, run.Status)
}

func TestExtractionService_Extract_SourceUploadFailure(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	storage.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.New("access denied"))

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	assert.Nil(t, run)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	chunks.AssertNotCalled(t, "ExtractChunk", mock.Anything, mock.Anything)
	runRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExtractionService_Extract_PersistenceFailure(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	chunks.On("ExtractChunk", mock.Anything, mock.Anything).
		Return(chunkOutput(`{"sectiona_cin":"X"}`), nil)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(&port.UploadOutput{}, nil)
	runRepo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.Extract(context.Background(), service.ExtractInput{
		FileName: "report.xlsx",
		Content:  makeXLSX(t, reportText()),
	})

	assert.Nil(t, run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persisting extraction run")
}

func TestExtractionService_GetByID(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	id := uuid.New()
	runRepo.On("GetByID", mock.Anything, id).
		Return(&domain.ExtractionRun{ID: id, Status: domain.RunStatusCompleted}, nil)

	svc := newTestService(runRepo, storage, chunks)

	run, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
}

func TestExtractionService_GetChunkArtifact(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	id := uuid.New()
	prefix := fmt.Sprintf("runs/%s", id)
	runRepo.On("GetByID", mock.Anything, id).
		Return(&domain.ExtractionRun{ID: id, S3Bucket: "vivaran-artifacts", S3KeyPrefix: prefix}, nil)
	storage.On("Download", mock.Anything, "vivaran-artifacts", prefix+"/chunk_sectionA_complete.json").
		Return([]byte(`{"sectiona_cin":"X"}`), nil)

	svc := newTestService(runRepo, storage, chunks)

	body, err := svc.GetChunkArtifact(context.Background(), id, "sectionA_complete")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sectiona_cin":"X"}`, string(body))
	storage.AssertExpectations(t)
}

func TestExtractionService_GetChunkArtifact_RunNotFound(t *testing.T) {
	runRepo := new(mocks.MockExtractionRunRepo)
	storage := new(mocks.MockObjectStorage)
	chunks := new(mocks.MockChunkExtractor)

	id := uuid.New()
	runRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	svc := newTestService(runRepo, storage, chunks)

	body, err := svc.GetChunkArtifact(context.Background(), id, "sectionA_complete")
	assert.Nil(t, body)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	storage.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
}
