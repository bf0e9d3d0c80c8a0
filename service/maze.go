// Package service orchestrates maze generation, persistence and mesh
// rendering.
package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mazemesh/mazemesh/domain"
	"github.com/mazemesh/mazemesh/maze"
	"github.com/mazemesh/mazemesh/mesh"
	"github.com/mazemesh/mazemesh/service/i"
)

// MazeService generates mazes, persists their records and renders
// their meshes. Records store only dimensions and seed; the wall field
// is regenerated on demand, which is cheap and reproducible.
type MazeService struct {
	repo      i.MazeRepo
	cache     i.MeshCache
	generator *mesh.Generator
	opts      *maze.Options
}

// NewMazeService creates a MazeService with the given persistence and
// cache backends. opts configures projection appearances and may be
// nil for the defaults.
func NewMazeService(repo i.MazeRepo, cache i.MeshCache, cubeSize float64, opts *maze.Options) (*MazeService, error) {
	generator, err := mesh.NewGenerator(cubeSize)
	if err != nil {
		return nil, err
	}

	return &MazeService{
		repo:      repo,
		cache:     cache,
		generator: generator,
		opts:      opts,
	}, nil
}

// Create generates a new maze and persists its record. A nil seed
// means the service picks one from the clock; the seed used ends up in
// the record so the maze can be regenerated exactly.
func (s *MazeService) Create(_ context.Context, width, height int, seed *int64) (*domain.MazeRecord, error) {
	m, err := maze.New(width, height, s.opts)
	if err != nil {
		return nil, err
	}

	chosenSeed := time.Now().UnixNano()
	if seed != nil {
		chosenSeed = *seed
	}

	if err := m.GenerateSeeded(chosenSeed); err != nil {
		return nil, err
	}

	record := &domain.MazeRecord{
		ID:        uuid.New(),
		Width:     width,
		Height:    height,
		Seed:      chosenSeed,
		Rows:      renderRows(m),
		Solution:  m.SolutionPath(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(record); err != nil {
		return nil, err
	}

	return record, nil
}

// ByID retrieves a previously generated maze record.
func (s *MazeService) ByID(_ context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	return s.repo.ByID(id)
}

// MeshOBJ renders the maze identified by id as Wavefront OBJ text.
// Results are cached by (id, includeSolution); concurrent requests for
// the same key render only once.
func (s *MazeService) MeshOBJ(ctx context.Context, id uuid.UUID, includeSolution bool) ([]byte, error) {
	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("obj:%s:solution_%t", record.ID, includeSolution)
	return s.cache.Fetch(ctx, key, func() ([]byte, error) {
		return s.renderOBJ(record, includeSolution)
	})
}

// renderOBJ regenerates the maze from its record and extracts the mesh.
func (s *MazeService) renderOBJ(record *domain.MazeRecord, includeSolution bool) ([]byte, error) {
	m, err := maze.New(record.Width, record.Height, s.opts)
	if err != nil {
		return nil, err
	}
	if err := m.GenerateSeeded(record.Seed); err != nil {
		return nil, err
	}

	extracted := s.generator.Generate(m.ToCubeGrid(includeSolution))

	var buf bytes.Buffer
	if err := extracted.WriteOBJ(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderRows splits the diagnostic rendering into one string per grid
// row for storage.
func renderRows(m *maze.Maze) []string {
	return strings.Split(strings.TrimRight(m.Render(false), "\n"), "\n")
}
