// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// errors.go - sentinel errors returned by constructors.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOrderTooSmall indicates the graph has fewer vertices than the constructor needs.
var ErrOrderTooSmall = errors.New("builder: graph order too small")

// ErrInvalidProbability indicates p outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
