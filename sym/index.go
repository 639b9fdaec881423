// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements symmetric tensors of rank 2 and 4 with elements of any fad.Number
//  The M = d(d+1)/2 independent components of a symmetric second order tensor are
//  numbered by "slots" as follows:
//
//     d = 2 :  (0,0) (0,1) (1,1)
//     d = 3 :  (0,0) (0,1) (0,2) (1,1) (1,2) (2,2)
//
//  Off-diagonal slots represent both (i,j) and (j,i).
package sym

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDim is returned when the space dimension is not 2 or 3
var ErrUnsupportedDim = errors.New("unsupported dimension")

// slot => (i,j) with i ≤ j
var slotIJ = [4][][2]int{
	2: {{0, 0}, {0, 1}, {1, 1}},
	3: {{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}},
}

// (i,j) with i ≤ j => slot
var ijSlot = [4][][]int{
	2: {
		{0, 1},
		{-1, 2},
	},
	3: {
		{0, 1, 2},
		{-1, 3, 4},
		{-1, -1, 5},
	},
}

// CheckDim returns ErrUnsupportedDim if d is neither 2 nor 3
func CheckDim(d int) error {
	if d != 2 && d != 3 {
		return fmt.Errorf("%w: d = %d is invalid; only 2 or 3 are allowed", ErrUnsupportedDim, d)
	}
	return nil
}

// Ncomp returns the number of independent components d(d+1)/2
func Ncomp(d int) int {
	return d * (d + 1) / 2
}

// SlotToIJ returns the indices (i,j), i ≤ j, corresponding to slot k
//  Note: d and k must be valid; otherwise it panics
func SlotToIJ(d, k int) (i, j int) {
	p := slotIJ[d][k]
	return p[0], p[1]
}

// IJToSlot returns the slot corresponding to (i,j). i and j are swapped if i > j
func IJToSlot(d, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return ijSlot[d][i][j]
}

// IsDiag tells whether slot k refers to a diagonal component
func IsDiag(d, k int) bool {
	i, j := SlotToIJ(d, k)
	return i == j
}

// weight returns 1 for diagonal slots and 2 for off-diagonal ones; i.e. the number of
// components of the full tensor represented by slot k
func weight(d, k int) float64 {
	if IsDiag(d, k) {
		return 1
	}
	return 2
}
