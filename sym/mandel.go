// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gosl/tsr"
	"github.com/cpmech/gosl/utl"
)

// Mandel components are ordered as 00, 11, 22, 01, 12, 20 with √2 factors on the
// off-diagonal ones. Two-dimensional tensors map to 4 components (plane-strain);
// i.e. the 22 component is zero
var mandelIJ = [][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {2, 0}}

// Nmandel returns the number of Mandel components: 4 if d == 2 or 6 if d == 3
func Nmandel(d int) int {
	return 2 * d
}

// mandelFactor returns 1 for diagonal components or √2 otherwise
func mandelFactor(a int) float64 {
	if a < 3 {
		return 1
	}
	return tsr.SQ2
}

// Mandel returns the Mandel representation of the real values of o
func (o *Ten2[T]) Mandel() (m []float64) {
	full := utl.Alloc(3, 3)
	for i := 0; i < o.d; i++ {
		for j := 0; j < o.d; j++ {
			full[i][j] = o.At(i, j).Val()
		}
	}
	m = make([]float64, Nmandel(o.d))
	tsr.Ten2Man(m, full)
	return
}

// FromMandel returns the real tensor corresponding to Mandel components m
func FromMandel(d int, m []float64) *Ten2[fad.Real] {
	o := NewTen2[fad.Real](d)
	for k := range o.c {
		i, j := SlotToIJ(d, k)
		o.c[k] = fad.Real(tsr.M2T(m, i, j))
	}
	return o
}

// Mandel returns the Mandel matrix of C: D[a][b] = f_a f_b C_ijkl where f is 1 or √2
//  Note: D : ε in Mandel basis gives the Mandel components of C : ε
func (o *Ten4) Mandel() (D [][]float64) {
	n := Nmandel(o.d)
	D = utl.Alloc(n, n)
	for a := 0; a < n; a++ {
		i, j := mandelIJ[a][0], mandelIJ[a][1]
		if i >= o.d || j >= o.d {
			continue
		}
		for b := 0; b < n; b++ {
			k, l := mandelIJ[b][0], mandelIJ[b][1]
			if k >= o.d || l >= o.d {
				continue
			}
			D[a][b] = mandelFactor(a) * mandelFactor(b) * o.At(i, j, k, l)
		}
	}
	return
}

// Ten4FromMandel returns the tensor corresponding to the Mandel matrix D
//  Note: for d == 2 the 22 row and column of D are ignored
func Ten4FromMandel(d int, D [][]float64) *Ten4 {
	o := NewTen4(d)
	for a := 0; a < Nmandel(d); a++ {
		i, j := mandelIJ[a][0], mandelIJ[a][1]
		if i >= d || j >= d {
			continue
		}
		for b := 0; b < Nmandel(d); b++ {
			k, l := mandelIJ[b][0], mandelIJ[b][1]
			if k >= d || l >= d {
				continue
			}
			o.Set(i, j, k, l, D[a][b]/(mandelFactor(a)*mandelFactor(b)))
		}
	}
	return o
}
