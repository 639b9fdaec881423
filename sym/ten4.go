// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"strings"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Ten4 holds a fourth order tensor with both minor symmetries
//  C_ijkl = C_jikl = C_ijlk
//  The components are stored in the slot basis; i.e. c[I][J] = C_ijkl with I ⇔ (i,j)
//  and J ⇔ (k,l). Minor symmetries thus hold by construction
type Ten4 struct {
	d int         // space dimension
	c [][]float64 // [ncomp][ncomp] components
}

// NewTen4 allocates a zero tensor
func NewTen4(d int) *Ten4 {
	if err := CheckDim(d); err != nil {
		chk.Panic("%v", err)
	}
	m := Ncomp(d)
	return &Ten4{d, utl.Alloc(m, m)}
}

// Dim returns the space dimension
func (o *Ten4) Dim() int { return o.d }

// At returns C_ijkl
func (o *Ten4) At(i, j, k, l int) float64 {
	return o.c[IJToSlot(o.d, i, j)][IJToSlot(o.d, k, l)]
}

// Set sets C_ijkl; and hence C_jikl, C_ijlk and C_jilk
func (o *Ten4) Set(i, j, k, l int, v float64) {
	o.c[IJToSlot(o.d, i, j)][IJToSlot(o.d, k, l)] = v
}

// Slot returns the component at slots (I,J)
func (o *Ten4) Slot(I, J int) float64 { return o.c[I][J] }

// SetSlot sets the component at slots (I,J)
func (o *Ten4) SetSlot(I, J int, v float64) { o.c[I][J] = v }

// Full returns all d⁴ components as C[i][j][k][l]
func (o *Ten4) Full() (C [][][][]float64) {
	C = make([][][][]float64, o.d)
	for i := 0; i < o.d; i++ {
		C[i] = make([][][]float64, o.d)
		for j := 0; j < o.d; j++ {
			C[i][j] = utl.Alloc(o.d, o.d)
			for k := 0; k < o.d; k++ {
				for l := 0; l < o.d; l++ {
					C[i][j][k][l] = o.At(i, j, k, l)
				}
			}
		}
	}
	return
}

// String prints all d⁴ components in (i,j,k,l) lexicographic order
func (o *Ten4) String() string {
	var b strings.Builder
	for i := 0; i < o.d; i++ {
		for j := 0; j < o.d; j++ {
			for k := 0; k < o.d; k++ {
				for l := 0; l < o.d; l++ {
					if i+j+k+l > 0 {
						b.WriteString(" ")
					}
					b.WriteString(io.Sf("%g", o.At(i, j, k, l)))
				}
			}
		}
	}
	return b.String()
}

// algebra ///////////////////////////////////////////////////////////////////////////////////////

// Identity returns the symmetric identity I_ijkl = (δik δjl + δil δjk) / 2
//  Note: I : a = a for any symmetric a
func Identity(d int) *Ten4 {
	o := NewTen4(d)
	for I := range o.c {
		if IsDiag(d, I) {
			o.c[I][I] = 1
		} else {
			o.c[I][I] = 0.5
		}
	}
	return o
}

// Outer returns a ⊗ b; i.e. C_ijkl = a_ij b_kl
func Outer(a, b *Ten2[fad.Real]) *Ten4 {
	chk.IntAssert(b.d, a.d)
	o := NewTen4(a.d)
	for I := range a.c {
		for J := range b.c {
			o.c[I][J] = float64(a.c[I] * b.c[J])
		}
	}
	return o
}

// DevTensor returns Pdev = I_sym - I ⊗ I / d
//  Note: Pdev : a = dev(a)
func DevTensor(d int) *Ten4 {
	o := Identity(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			I, J := IJToSlot(d, i, i), IJToSlot(d, j, j)
			o.c[I][J] -= 1.0 / float64(d)
		}
	}
	return o
}

// Add4 returns α a + β b
func Add4(α float64, a *Ten4, β float64, b *Ten4) *Ten4 {
	chk.IntAssert(b.d, a.d)
	o := NewTen4(a.d)
	for I := range o.c {
		for J := range o.c[I] {
			o.c[I][J] = α*a.c[I][J] + β*b.c[I][J]
		}
	}
	return o
}

// Scale4 returns α a
func Scale4(α float64, a *Ten4) *Ten4 {
	o := NewTen4(a.d)
	for I := range o.c {
		for J := range o.c[I] {
			o.c[I][J] = α * a.c[I][J]
		}
	}
	return o
}

// MaxDiff returns max |a_ijkl - b_ijkl|
func MaxDiff(a, b *Ten4) float64 {
	chk.IntAssert(b.d, a.d)
	return floats.Distance(a.flat(), b.flat(), math.Inf(1))
}

// flat returns all slot components row by row
func (o *Ten4) flat() (v []float64) {
	for _, row := range o.c {
		v = append(v, row...)
	}
	return
}
