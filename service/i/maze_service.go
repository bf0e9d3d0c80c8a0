package i

import (
	"context"

	"github.com/google/uuid"

	"github.com/mazemesh/mazemesh/domain"
)

// MazeGenerator defines the maze operations exposed to the API layer.
type MazeGenerator interface {
	// Create generates a maze of the given dimensions and persists its
	// record. A nil seed means the service picks one; the chosen seed
	// is part of the returned record either way.
	Create(ctx context.Context, width, height int, seed *int64) (*domain.MazeRecord, error)

	// ByID retrieves a previously generated maze record.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// MeshOBJ renders the maze identified by id as Wavefront OBJ text,
	// optionally with the solution path highlighted.
	MeshOBJ(ctx context.Context, id uuid.UUID, includeSolution bool) ([]byte, error)
}
