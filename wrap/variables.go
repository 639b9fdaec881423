// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"fmt"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
)

// Kind tells whether a variable is a tensor or a scalar
type Kind int

const (
	KindTensor Kind = iota // symmetric second order tensor; d(d+1)/2 slots
	KindScalar             // scalar; one slot
)

// String returns "tensor" or "scalar"
func (o Kind) String() string {
	if o == KindTensor {
		return "tensor"
	}
	return "scalar"
}

// Var defines independent variables that can be registered in a Summary
type Var interface {
	Kind() Kind   // tensor or scalar
	Dim() int     // space dimension; zero for scalars
	Width() int   // number of slots
	Start() int   // first slot
	Ndof() int    // total number of slots given at seeding time; zero if not seeded
	Order() int   // order of the dual numbers: 1 or 2
	Seeded() bool // variable has been seeded

	// SetDofs seeds the variable at slots [start, start+Width()) of n slots
	SetDofs(start, n int) error

	// internal
	owner() *Summary
	setOwner(reg *Summary, start int)
	checkValue(value interface{}) error
	initValue(value interface{}) error
}

// checkSeeding checks slots [start, start+width) against n and against a previous seeding
func checkSeeding(v Var, start, n int) error {
	if start < 0 || start+v.Width() > n {
		return fmt.Errorf("%w: %v with %d slots cannot start at %d with N = %d", ErrInconsistentSeeding, v.Kind(), v.Width(), start, n)
	}
	if v.Seeded() && v.Ndof() != n {
		return fmt.Errorf("%w: %v was seeded with N = %d and cannot be reseeded with N = %d", ErrInconsistentSeeding, v.Kind(), v.Ndof(), n)
	}
	return nil
}

// Tensor ////////////////////////////////////////////////////////////////////////////////////////

// Tensor is a symmetric second order tensor whose independent components are slots
type Tensor[T fad.Number[T]] struct {
	*sym.Ten2[T]
	start int
	n     int
	reg   *Summary
}

// NewTensor allocates a zero tensor variable
func NewTensor[T fad.Number[T]](d int) (o *Tensor[T], err error) {
	if err = sym.CheckDim(d); err != nil {
		return
	}
	o = &Tensor[T]{Ten2: sym.NewTen2[T](d)}
	return
}

// Init sets the values of all components as constants
//  Note: the tensor is no longer seeded afterwards
func (o *Tensor[T]) Init(values *sym.Ten2[fad.Real]) error {
	if values.Dim() != o.Dim() {
		return fmt.Errorf("%w: values have d = %d but tensor has d = %d", ErrUnsupportedDim, values.Dim(), o.Dim())
	}
	for k := 0; k < o.Ncomp(); k++ {
		o.SetComp(k, fad.Const[T](float64(values.Comp(k))))
	}
	o.n = 0
	return nil
}

// Kind returns KindTensor
func (o *Tensor[T]) Kind() Kind { return KindTensor }

// Width returns d(d+1)/2
func (o *Tensor[T]) Width() int { return o.Ncomp() }

// Start returns the first slot
func (o *Tensor[T]) Start() int { return o.start }

// Ndof returns the number of slots given at seeding time
func (o *Tensor[T]) Ndof() int { return o.n }

// Order returns the order of T
func (o *Tensor[T]) Order() int {
	var z T
	return z.Order()
}

// Seeded tells whether the tensor has been seeded
func (o *Tensor[T]) Seeded() bool { return o.n > 0 }

// SetDofs seeds all components; i.e. the component at local slot ℓ becomes a variable
// with unit derivative at slot start+ℓ (at all nesting levels)
func (o *Tensor[T]) SetDofs(start, n int) error {
	if err := checkSeeding(o, start, n); err != nil {
		return err
	}
	for ℓ := 0; ℓ < o.Ncomp(); ℓ++ {
		o.SetComp(ℓ, fad.Var[T](o.Comp(ℓ).Val(), start+ℓ, n))
	}
	o.start, o.n = start, n
	return nil
}

func (o *Tensor[T]) owner() *Summary { return o.reg }

func (o *Tensor[T]) setOwner(reg *Summary, start int) { o.reg, o.start = reg, start }

func (o *Tensor[T]) checkValue(value interface{}) error {
	d := 0
	switch v := value.(type) {
	case *sym.Ten2[fad.Real]:
		d = v.Dim()
	case [][]float64:
		d = len(v)
		for _, row := range v {
			if len(row) != d {
				return fmt.Errorf("%w: matrix with %d rows must have %d columns. %d is invalid", ErrUnsupportedDim, d, d, len(row))
			}
		}
	default:
		return fmt.Errorf("%w: cannot initialise tensor with %T", ErrInconsistentSeeding, value)
	}
	if d != o.Dim() {
		return fmt.Errorf("%w: values have d = %d but tensor has d = %d", ErrUnsupportedDim, d, o.Dim())
	}
	return nil
}

func (o *Tensor[T]) initValue(value interface{}) error {
	if err := o.checkValue(value); err != nil {
		return err
	}
	if v, ok := value.([][]float64); ok {
		return o.Init(sym.FromMatrix(v))
	}
	return o.Init(value.(*sym.Ten2[fad.Real]))
}

// Scalar ////////////////////////////////////////////////////////////////////////////////////////

// Scalar is a scalar variable occupying one slot
type Scalar[T fad.Number[T]] struct {
	X     T // the variable
	start int
	n     int
	reg   *Summary
}

// NewScalar allocates a zero scalar variable
func NewScalar[T fad.Number[T]]() *Scalar[T] {
	return new(Scalar[T])
}

// Init sets the value as a constant
//  Note: the scalar is no longer seeded afterwards
func (o *Scalar[T]) Init(v float64) *Scalar[T] {
	o.X = fad.Const[T](v)
	o.n = 0
	return o
}

// Val returns the value
func (o *Scalar[T]) Val() float64 { return o.X.Val() }

// Kind returns KindScalar
func (o *Scalar[T]) Kind() Kind { return KindScalar }

// Dim returns zero
func (o *Scalar[T]) Dim() int { return 0 }

// Width returns one
func (o *Scalar[T]) Width() int { return 1 }

// Start returns the slot of the scalar
func (o *Scalar[T]) Start() int { return o.start }

// Ndof returns the number of slots given at seeding time
func (o *Scalar[T]) Ndof() int { return o.n }

// Order returns the order of T
func (o *Scalar[T]) Order() int {
	var z T
	return z.Order()
}

// Seeded tells whether the scalar has been seeded
func (o *Scalar[T]) Seeded() bool { return o.n > 0 }

// SetDofs seeds the scalar at slot start of n slots
func (o *Scalar[T]) SetDofs(start, n int) error {
	if err := checkSeeding(o, start, n); err != nil {
		return err
	}
	o.X = fad.Var[T](o.X.Val(), start, n)
	o.start, o.n = start, n
	return nil
}

func (o *Scalar[T]) owner() *Summary { return o.reg }

func (o *Scalar[T]) setOwner(reg *Summary, start int) { o.reg, o.start = reg, start }

func (o *Scalar[T]) checkValue(value interface{}) error {
	switch value.(type) {
	case float64, int:
		return nil
	}
	return fmt.Errorf("%w: cannot initialise scalar with %T", ErrInconsistentSeeding, value)
}

func (o *Scalar[T]) initValue(value interface{}) error {
	switch v := value.(type) {
	case float64:
		o.Init(v)
		return nil
	case int:
		o.Init(float64(v))
		return nil
	}
	return o.checkValue(value)
}
