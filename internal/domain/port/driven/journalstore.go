package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
)

// ErrJournalNotFound indicates no journal exists at the requested path.
var ErrJournalNotFound = errors.New("journal not found")

// JournalStore defines the driven port for reading publishing contexts.
// GetByPath returns ErrJournalNotFound if no journal has the given path.
type JournalStore interface {
	GetByPath(ctx context.Context, path string) (*model.Journal, error)
	ListAll(ctx context.Context) ([]model.Journal, error)
}
