package topo

import "errors"

// Sentinel errors for topology derivation.
var (
	// ErrMalformedAdjacency indicates the edge→faces map produced an edge
	// with no owning face, which means the input groups were malformed.
	ErrMalformedAdjacency = errors.New("topo: malformed edge adjacency map")

	// ErrNonManifoldEdge indicates an edge shared by more than two faces.
	ErrNonManifoldEdge = errors.New("topo: non-manifold edge")

	// ErrLengthMismatch indicates paired per-face inputs of differing length.
	ErrLengthMismatch = errors.New("topo: paired inputs differ in length")
)
