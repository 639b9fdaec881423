// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"errors"

	"github.com/cpmech/gofad/sym"
)

// Sentinel errors. Context is added with fmt.Errorf("...: %w", Err...); use errors.Is to match
var (

	// ErrUnsupportedDim is returned when the space dimension is neither 2 nor 3, or when the
	// dimension of a tensor does not match the dimension of the summary
	ErrUnsupportedDim = sym.ErrUnsupportedDim

	// ErrInconsistentSeeding is returned when the number of slots given at seeding time is not
	// consistent with the slots required by the variables; e.g. variables registered twice,
	// registered after seeding, or seeded with different totals
	ErrInconsistentSeeding = errors.New("inconsistent seeding")

	// ErrSlotOutOfRange is returned when an extraction references a slot beyond the number of
	// slots carried by the result
	ErrSlotOutOfRange = errors.New("slot out of range")

	// ErrOrderMismatch is returned when second derivatives are requested from first order
	// numbers or when the order of a variable differs from the order of the summary
	ErrOrderMismatch = errors.New("order mismatch")
)
