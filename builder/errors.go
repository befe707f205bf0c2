// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum,
// or a definition too small for the requested lines.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not place the requested
// lines, e.g. more tie lines than free bus pairs, or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
