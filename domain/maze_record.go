// Package domain holds the persisted models shared by the service and
// storage layers.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mazemesh/mazemesh/maze"
)

// ErrMazeNotFound is returned when no record exists for a requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord is the stored form of a generated maze. The seed is
// always recorded so the exact wall field can be regenerated on demand
// (for mesh rendering) instead of persisting voxel data.
type MazeRecord struct {
	ID        uuid.UUID       `bson:"_id" json:"id"`
	Width     int             `bson:"width" json:"width"`
	Height    int             `bson:"height" json:"height"`
	Seed      int64           `bson:"seed" json:"seed"`
	Rows      []string        `bson:"rows" json:"rows"`
	Solution  []maze.Position `bson:"solution" json:"solution"`
	CreatedAt time.Time       `bson:"createdAt" json:"created_at"`
}
