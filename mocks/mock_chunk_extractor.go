package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vivaran/internal/port"
)

// MockChunkExtractor is a mock implementation of port.ChunkExtractor.
type MockChunkExtractor struct {
	mock.Mock
}

func (m *MockChunkExtractor) ExtractChunk(ctx context.Context, input port.ChunkInput) (*port.ChunkOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ChunkOutput), args.Error(1)
}
