package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-serving-service/internal/core/domain"
)

// MockArtifactRepository is a mock of ArtifactRepository.
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) Fetch(ctx context.Context) (*domain.ModelArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelArtifact), args.Error(1)
}
