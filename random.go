// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"math/rand"

	"github.com/zeebo/xxh3"
	"lukechampine.com/frand"
)

// NewRandSource returns a fast generator seeded from the OS entropy source.
// It must not be shared between goroutines.
func NewRandSource() RandSource {
	return frand.New()
}

// NewSeededRandSource returns a deterministic generator; equal seeds give
// equal draws.
func NewSeededRandSource(seed string) RandSource {
	return rand.New(rand.NewSource(int64(xxh3.HashString(seed))))
}
