// Package models defines the captured input and derived feature records that
// flow through the clickprint pipeline.
package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSession wraps every precondition failure reported by Session.Validate.
var ErrInvalidSession = errors.New("invalid session")

// Point is one cursor sample. T is in milliseconds.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	T float64 `json:"t" yaml:"t"`
}

// ClickData is a pointer-down event bound to a cell of the N×N image grid.
type ClickData struct {
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	T         float64 `json:"t" yaml:"t"`
	GridIndex int     `json:"gridIndex" yaml:"gridIndex"`
}

// ImageDimensions is the pixel size of the password image.
type ImageDimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Session is one enrollment or verification attempt.
// It is treated as immutable once captured; nothing in the pipeline writes to it.
type Session struct {
	Clicks          []ClickData     `json:"clicks" yaml:"clicks"`
	Trajectory      []Point         `json:"trajectory" yaml:"trajectory"`
	GridSize        int             `json:"gridSize" yaml:"gridSize"`
	ImageDimensions ImageDimensions `json:"imageDimensions" yaml:"imageDimensions"`
}

// Validate checks the capture-layer preconditions: every coordinate, timestamp
// and image dimension is finite, trajectory and click timestamps are
// non-decreasing, the grid and image are non-empty and every grid index
// addresses a cell of the declared grid.
// Feature extraction does not call Validate; it stays total on any input.
func (s *Session) Validate() error {
	if s.GridSize <= 0 {
		return fmt.Errorf("%w: grid size must be > 0, got %d", ErrInvalidSession, s.GridSize)
	}
	if !finite(s.ImageDimensions.Width, s.ImageDimensions.Height) ||
		s.ImageDimensions.Width <= 0 || s.ImageDimensions.Height <= 0 {
		return fmt.Errorf("%w: image dimensions must be positive, got %gx%g",
			ErrInvalidSession, s.ImageDimensions.Width, s.ImageDimensions.Height)
	}

	for i, p := range s.Trajectory {
		if !finite(p.X, p.Y, p.T) {
			return fmt.Errorf("%w: trajectory sample %d is not finite (%g, %g, %g)", ErrInvalidSession, i, p.X, p.Y, p.T)
		}
	}
	for i := 1; i < len(s.Trajectory); i++ {
		if s.Trajectory[i].T < s.Trajectory[i-1].T {
			return fmt.Errorf("%w: trajectory timestamp decreases at sample %d (%g < %g)",
				ErrInvalidSession, i, s.Trajectory[i].T, s.Trajectory[i-1].T)
		}
	}

	cells := s.GridSize * s.GridSize
	for i, c := range s.Clicks {
		if !finite(c.X, c.Y, c.T) {
			return fmt.Errorf("%w: click %d is not finite (%g, %g, %g)", ErrInvalidSession, i, c.X, c.Y, c.T)
		}
		if c.GridIndex < 0 || c.GridIndex >= cells {
			return fmt.Errorf("%w: click %d grid index %d outside [0, %d)",
				ErrInvalidSession, i, c.GridIndex, cells)
		}
		if i > 0 && c.T < s.Clicks[i-1].T {
			return fmt.Errorf("%w: click timestamp decreases at click %d", ErrInvalidSession, i)
		}
	}

	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Duration returns the span between the first and last trajectory sample in
// milliseconds, or 0 when fewer than two samples were captured.
func (s *Session) Duration() float64 {
	if len(s.Trajectory) < 2 {
		return 0
	}
	return s.Trajectory[len(s.Trajectory)-1].T - s.Trajectory[0].T
}
