package cubegrid

import (
	"errors"
	"fmt"
)

const defaultMaterial = "default"

var (
	ErrColorRange = errors.New("color values must be between 0 and 1")
	ErrAlphaRange = errors.New("alpha must be between 0 and 1")
)

// Appearance describes how an occupied voxel should look once the grid
// is turned into a mesh: an RGB color with channels in [0, 1], an alpha
// value in [0, 1] and a material tag. The engine never interprets these
// values, it only carries them through to the mesh layer.
type Appearance struct {
	Color    [3]float64
	Alpha    float64
	Material string
}

// NewAppearance validates the channel ranges and returns an Appearance.
// An empty material falls back to "default".
func NewAppearance(r, g, b, alpha float64, material string) (*Appearance, error) {
	for _, c := range [3]float64{r, g, b} {
		if c < 0 || c > 1 {
			return nil, ErrColorRange
		}
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrAlphaRange
	}
	if material == "" {
		material = defaultMaterial
	}

	return &Appearance{
		Color:    [3]float64{r, g, b},
		Alpha:    alpha,
		Material: material,
	}, nil
}

// Equal reports whether two appearances have the same color, alpha and
// material.
func (a *Appearance) Equal(other *Appearance) bool {
	if other == nil {
		return false
	}
	return a.Color == other.Color && a.Alpha == other.Alpha && a.Material == other.Material
}

// String provides a textual representation of the appearance.
func (a *Appearance) String() string {
	return fmt.Sprintf("Appearance(color=%v, alpha=%v, material=%q)", a.Color, a.Alpha, a.Material)
}
