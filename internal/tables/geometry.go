package tables

import "math"

// Center returns the table's center point. Positions are stored as
// centers, so this is the position itself; kept as a method so callers
// never depend on that storage detail.
func (t *Table) Center() Position {
	return t.Position
}

// Distance returns the Euclidean distance between two canvas points
func Distance(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CenterDistance returns the distance between two tables' centers
func CenterDistance(a, b *Table) float64 {
	return Distance(a.Center(), b.Center())
}

// NormalizeRotation wraps an angle in degrees into [0, 360)
func NormalizeRotation(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// WithinBounds reports whether a point lies inside a canvas of the
// given dimensions
func WithinBounds(p Position, width, height float64) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= width && p.Y <= height
}
