// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"strings"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gosl/chk"
)

// Ten2 holds a symmetric second order tensor
type Ten2[T fad.Number[T]] struct {
	d int // space dimension
	c []T // components in slot order [ncomp]
}

// NewTen2 allocates a zero tensor
func NewTen2[T fad.Number[T]](d int) *Ten2[T] {
	if err := CheckDim(d); err != nil {
		chk.Panic("%v", err)
	}
	return &Ten2[T]{d, make([]T, Ncomp(d))}
}

// FromSlots returns a real tensor with the given components in slot order
func FromSlots(d int, v []float64) *Ten2[fad.Real] {
	o := NewTen2[fad.Real](d)
	if len(v) != len(o.c) {
		chk.Panic("sym: number of components must be %d for d = %d. %d is invalid", len(o.c), d, len(v))
	}
	for k := range v {
		o.c[k] = fad.Real(v[k])
	}
	return o
}

// FromMatrix returns the real tensor sym(a) = (a + aᵀ)/2 of a full [d][d] matrix
func FromMatrix(a [][]float64) *Ten2[fad.Real] {
	o := NewTen2[fad.Real](len(a))
	for k := range o.c {
		i, j := SlotToIJ(o.d, k)
		o.c[k] = fad.Real((a[i][j] + a[j][i]) / 2.0)
	}
	return o
}

// Dim returns the space dimension
func (o *Ten2[T]) Dim() int { return o.d }

// Ncomp returns the number of independent components
func (o *Ten2[T]) Ncomp() int { return len(o.c) }

// At returns component (i,j)
func (o *Ten2[T]) At(i, j int) T {
	return o.c[IJToSlot(o.d, i, j)]
}

// Set sets component (i,j); which is the same as (j,i)
func (o *Ten2[T]) Set(i, j int, v T) {
	o.c[IJToSlot(o.d, i, j)] = v
}

// Comp returns the component at slot k
func (o *Ten2[T]) Comp(k int) T { return o.c[k] }

// SetComp sets the component at slot k
func (o *Ten2[T]) SetComp(k int, v T) { o.c[k] = v }

// Copy returns a (shallow on the elements) copy
func (o *Ten2[T]) Copy() *Ten2[T] {
	res := &Ten2[T]{o.d, make([]T, len(o.c))}
	copy(res.c, o.c)
	return res
}

// Vals returns the real values of all components in slot order
func (o *Ten2[T]) Vals() (v []float64) {
	v = make([]float64, len(o.c))
	for k, x := range o.c {
		v[k] = x.Val()
	}
	return
}

// Matrix returns the real values as a full [d][d] matrix
func (o *Ten2[T]) Matrix() (a [][]float64) {
	a = make([][]float64, o.d)
	for i := 0; i < o.d; i++ {
		a[i] = make([]float64, o.d)
		for j := 0; j < o.d; j++ {
			a[i][j] = o.At(i, j).Val()
		}
	}
	return
}

// String prints all d×d components row by row
func (o *Ten2[T]) String() string {
	var b strings.Builder
	for i := 0; i < o.d; i++ {
		for j := 0; j < o.d; j++ {
			if i > 0 || j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(o.At(i, j).String())
		}
	}
	return b.String()
}

// algebra ///////////////////////////////////////////////////////////////////////////////////////

// Unit returns the unit tensor I (unit_symmetric_tensor)
func Unit[T fad.Number[T]](d int) *Ten2[T] {
	o := NewTen2[T](d)
	for i := 0; i < d; i++ {
		o.Set(i, i, fad.Const[T](1))
	}
	return o
}

// Trace returns tr(a)
func Trace[T fad.Number[T]](a *Ten2[T]) (res T) {
	for i := 0; i < a.d; i++ {
		res = res.Add(a.At(i, i))
	}
	return
}

// Deviator returns dev(a) = a - tr(a)/d I
func Deviator[T fad.Number[T]](a *Ten2[T]) *Ten2[T] {
	res := a.Copy()
	p := Trace(a).Scale(1.0 / float64(a.d))
	for i := 0; i < a.d; i++ {
		res.Set(i, i, a.At(i, i).Sub(p))
	}
	return res
}

// Add returns a + b
func Add[T fad.Number[T]](a, b *Ten2[T]) *Ten2[T] {
	chk.IntAssert(b.d, a.d)
	res := NewTen2[T](a.d)
	for k := range a.c {
		res.c[k] = a.c[k].Add(b.c[k])
	}
	return res
}

// Sub returns a - b
func Sub[T fad.Number[T]](a, b *Ten2[T]) *Ten2[T] {
	chk.IntAssert(b.d, a.d)
	res := NewTen2[T](a.d)
	for k := range a.c {
		res.c[k] = a.c[k].Sub(b.c[k])
	}
	return res
}

// Scale returns α a
func Scale[T fad.Number[T]](α float64, a *Ten2[T]) *Ten2[T] {
	res := NewTen2[T](a.d)
	for k := range a.c {
		res.c[k] = a.c[k].Scale(α)
	}
	return res
}

// ScaleBy returns s a
func ScaleBy[T fad.Number[T]](s T, a *Ten2[T]) *Ten2[T] {
	res := NewTen2[T](a.d)
	for k := range a.c {
		res.c[k] = s.Mul(a.c[k])
	}
	return res
}

// Square returns a·a; i.e. (a·a)_ik = a_ij a_jk
func Square[T fad.Number[T]](a *Ten2[T]) *Ten2[T] {
	res := NewTen2[T](a.d)
	for k := range res.c {
		i, l := SlotToIJ(a.d, k)
		var s T
		for j := 0; j < a.d; j++ {
			s = s.Add(a.At(i, j).Mul(a.At(j, l)))
		}
		res.c[k] = s
	}
	return res
}

// DoubleDot returns a : b = a_ij b_ij (sum over all d×d components)
func DoubleDot[T fad.Number[T]](a, b *Ten2[T]) (res T) {
	chk.IntAssert(b.d, a.d)
	for k := range a.c {
		res = res.Add(a.c[k].Mul(b.c[k]).Scale(weight(a.d, k)))
	}
	return
}

// NormSquared returns |a|² = a : a
func NormSquared[T fad.Number[T]](a *Ten2[T]) T {
	return DoubleDot(a, a)
}

// NormSafe returns sqrt(|a|² + 1e-20)
//  Note: the small shift keeps the derivative of the norm finite at a = 0
func NormSafe[T fad.Number[T]](a *Ten2[T]) T {
	return NormSquared(a).Shift(1e-20).Sqrt()
}

// Values returns the real values of a; i.e. drops all derivatives
func Values[T fad.Number[T]](a *Ten2[T]) *Ten2[fad.Real] {
	res := NewTen2[fad.Real](a.d)
	for k := range a.c {
		res.c[k] = fad.Real(a.c[k].Val())
	}
	return res
}

// Lift converts a real tensor into a tensor of constants of type T
func Lift[T fad.Number[T]](a *Ten2[fad.Real]) *Ten2[T] {
	res := NewTen2[T](a.d)
	for k := range a.c {
		res.c[k] = fad.Const[T](float64(a.c[k]))
	}
	return res
}

// Contract returns C : a; i.e. (C:a)_ij = C_ijkl a_kl
func Contract[T fad.Number[T]](C *Ten4, a *Ten2[T]) *Ten2[T] {
	chk.IntAssert(a.d, C.d)
	res := NewTen2[T](a.d)
	for I := range res.c {
		var s T
		for J := range a.c {
			s = s.Add(a.c[J].Scale(weight(a.d, J) * C.c[I][J]))
		}
		res.c[I] = s
	}
	return res
}
