package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mugclub/internal/domain/repository"
	mockRepo "mugclub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// testLogger returns a logger that swallows everything, so service log calls
// never fail on a nil logger.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx wires a MockTransactionManager to simply run the callback
// against the given factory, as if a transaction were open.
func passthroughTx(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}
