package i

import (
	"github.com/google/uuid"

	"github.com/mazemesh/mazemesh/domain"
)

// MazeRepo defines the interface for maze record persistence.
type MazeRepo interface {
	// Save inserts or updates a maze record in the repository.
	Save(record *domain.MazeRecord) error

	// ByID retrieves a maze record by its unique ID. Returns
	// domain.ErrMazeNotFound when no record exists.
	ByID(id uuid.UUID) (*domain.MazeRecord, error)
}
