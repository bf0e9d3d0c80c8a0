// Package mazeapi provides structures and handlers for generating and
// retrieving mazes over HTTP.
package mazeapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/mazemesh/mazemesh/domain"
	"github.com/mazemesh/mazemesh/maze"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`
}

// MazeResponse represents a generated maze record.
type MazeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Seed      int64           `json:"seed"`
	Rows      []string        `json:"rows"`
	Solution  []maze.Position `json:"solution"`
	CreatedAt time.Time       `json:"created_at"`
}

func newMazeResponse(record *domain.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID,
		Width:     record.Width,
		Height:    record.Height,
		Seed:      record.Seed,
		Rows:      record.Rows,
		Solution:  record.Solution,
		CreatedAt: record.CreatedAt,
	}
}
