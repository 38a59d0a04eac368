// Package core holds the types shared between the simulation and its
// platforms: input frames, the per-tick frame snapshot, the render and
// mesh contracts and the terminal screen buffer. It has no dependency on
// any terminal library.
package core

import "github.com/vovakirdan/duel-arcade/internal/math2d"

// MeshHandle is an opaque token for a mesh owned by the renderer backend.
// Zero is never a valid handle.
type MeshHandle uint32

// MeshLoader creates and releases meshes on behalf of the simulation.
// Names identify the template ("ship", "bot", "lives", ...); the backend
// decides what a mesh actually looks like.
type MeshLoader interface {
	CreateMesh(name string) (MeshHandle, error)
	FreeMesh(h MeshHandle)
}

// Renderer receives the read-only draw pass.
type Renderer interface {
	// DrawMesh draws mesh transformed by m (unit square in model space).
	DrawMesh(m math2d.Matrix, mesh MeshHandle)

	// DrawIcon draws an untransformed HUD icon centered at pos.
	DrawIcon(pos math2d.Vector, mesh MeshHandle)
}
