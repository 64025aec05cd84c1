package geometry

import (
	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// World is an unordered collection of primitives tested exhaustively per ray
type World struct {
	Primitives []Primitive
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{Primitives: make([]Primitive, 0)}
}

// Add appends a primitive to the world
func (w *World) Add(p Primitive) {
	w.Primitives = append(w.Primitives, p)
}

// Hit returns the globally nearest intersection across all primitives within
// (tMin, tMax). The upper bound narrows to each hit's t, and only a strictly
// closer hit replaces the current best, so primitives reporting exactly equal
// t resolve in favor of the earlier-added one.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for i := range w.Primitives {
		if rec, ok := w.Primitives[i].Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = rec.T
			closestHit = rec
		}
	}

	return closestHit, closestHit != nil
}
