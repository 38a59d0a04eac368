package entity

import (
	"fmt"

	"github.com/vovakirdan/duel-arcade/internal/core"
)

// Shape is an immutable template: a kind tag plus the mesh drawn for it.
// Sprites reference shapes; they never own them.
type Shape struct {
	Kind Kind
	Mesh core.MeshHandle
}

// ShapeRegistry owns one Shape per Kind for the lifetime of a scene load.
type ShapeRegistry struct {
	shapes [kindCount]Shape
	loaded [kindCount]bool
}

// LoadShapes creates a mesh for every kind through the loader.
// On failure the meshes created so far are released.
func LoadShapes(loader core.MeshLoader) (*ShapeRegistry, error) {
	r := &ShapeRegistry{}
	for _, k := range Kinds {
		mesh, err := loader.CreateMesh(k.String())
		if err != nil {
			r.Unload(loader)
			return nil, fmt.Errorf("entity: cannot create mesh for %s: %w", k, err)
		}
		r.shapes[k] = Shape{Kind: k, Mesh: mesh}
		r.loaded[k] = true
	}
	return r, nil
}

// Lookup returns the shape for k, or an error if k is invalid or not loaded.
func (r *ShapeRegistry) Lookup(k Kind) (*Shape, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if r == nil || !r.loaded[k] {
		return nil, fmt.Errorf("entity: shape %s not loaded", k)
	}
	return &r.shapes[k], nil
}

// Unload frees every loaded mesh and empties the registry.
func (r *ShapeRegistry) Unload(loader core.MeshLoader) {
	if r == nil {
		return
	}
	for k := range r.shapes {
		if r.loaded[k] {
			loader.FreeMesh(r.shapes[k].Mesh)
		}
		r.shapes[k] = Shape{}
		r.loaded[k] = false
	}
}
