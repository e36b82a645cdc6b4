// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// errors.go - sentinel errors shared by all factories.

package builder

import "errors"

// ErrTooFewVertices indicates a factory parameter below the family's
// minimum order (e.g. Cycle needs n ≥ 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")
