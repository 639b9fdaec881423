// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"fmt"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/io"
)

// Number is the read-only view of a computed result; fad.Real, fad.D1 and fad.D2 satisfy it
type Number interface {
	Val() float64
	Deriv(k int) float64
	Deriv2(k, l int) float64
	Ndof() int
	Order() int
}

// Derivative holds an extracted derivative whose rank depends on the kinds of the variables
type Derivative struct {
	Rank int                 // 0, 2 or 4
	S    float64             // rank 0
	T2   *sym.Ten2[fad.Real] // rank 2
	T4   *sym.Ten4           // rank 4
}

// String returns the components of the derivative
func (o *Derivative) String() string {
	switch o.Rank {
	case 2:
		return o.T2.String()
	case 4:
		return o.T4.String()
	}
	return io.Sf("%g", o.S)
}

// typed extraction ////////////////////////////////////////////////////////////////////////////

// TangentTT returns ∂R/∂X where R is a tensor and X a tensor variable
//  C_ijkl = ∂R_ij/∂X_kl with ½ on off-diagonal (k,l)
func TangentTT[T fad.Number[T], U fad.Number[U]](R *sym.Ten2[T], X *Tensor[U]) (*sym.Ten4, error) {
	return tangentTT(R, X)
}

// TangentTS returns ∂R/∂φ where R is a tensor and φ a scalar variable
func TangentTS[T fad.Number[T], U fad.Number[U]](R *sym.Ten2[T], φ *Scalar[U]) (*sym.Ten2[fad.Real], error) {
	return tangentTS(R, φ)
}

// TangentST returns ∂r/∂X where r is a scalar and X a tensor variable
//  G_kl = ∂r/∂X_kl with ½ on off-diagonal (k,l)
func TangentST[U fad.Number[U]](r Number, X *Tensor[U]) (*sym.Ten2[fad.Real], error) {
	return tangentST(r, X)
}

// TangentSS returns ∂r/∂φ where r is a scalar and φ a scalar variable
func TangentSS[U fad.Number[U]](r Number, φ *Scalar[U]) (float64, error) {
	return tangentSS(r, φ)
}

// CurvatureTT returns ∂²ψ/∂X∂X
//  C_ijkl = ∂²ψ/∂X_ij∂X_kl with factors 1, ½ or ¼ depending on how many of (i,j) and (k,l)
//  are off-diagonal
func CurvatureTT[U fad.Number[U]](ψ Number, X *Tensor[U]) (*sym.Ten4, error) {
	return curvatureTT(ψ, X, X)
}

// CurvatureTS returns ∂²ψ/∂X∂φ with ½ on off-diagonal components
func CurvatureTS[U fad.Number[U], V fad.Number[V]](ψ Number, X *Tensor[U], φ *Scalar[V]) (*sym.Ten2[fad.Real], error) {
	return curvatureTS(ψ, X, φ)
}

// CurvatureST returns ∂²ψ/∂φ∂X with ½ on off-diagonal components
//  Note: equal to CurvatureTS for twice continuously differentiable ψ
func CurvatureST[U fad.Number[U], V fad.Number[V]](ψ Number, φ *Scalar[U], X *Tensor[V]) (*sym.Ten2[fad.Real], error) {
	return curvatureST(ψ, φ, X)
}

// CurvatureSS returns ∂²ψ/∂a∂b for scalar variables a and b
func CurvatureSS[U fad.Number[U], V fad.Number[V]](ψ Number, a *Scalar[U], b *Scalar[V]) (float64, error) {
	return curvatureSS(ψ, a, b)
}

// dispatch ////////////////////////////////////////////////////////////////////////////////////

// Tangent returns the first derivative of a scalar result r with respect to x
//  rank 2 if x is a tensor or rank 0 if x is a scalar
func Tangent(r Number, x Var) (res *Derivative, err error) {
	res = new(Derivative)
	if x.Kind() == KindTensor {
		res.Rank = 2
		res.T2, err = tangentST(r, x)
	} else {
		res.S, err = tangentSS(r, x)
	}
	if err != nil {
		return nil, err
	}
	return
}

// TensorTangent returns the first derivative of a tensor result R with respect to x
//  rank 4 if x is a tensor or rank 2 if x is a scalar
func TensorTangent[T fad.Number[T]](R *sym.Ten2[T], x Var) (res *Derivative, err error) {
	res = new(Derivative)
	if x.Kind() == KindTensor {
		res.Rank = 4
		res.T4, err = tangentTT(R, x)
	} else {
		res.Rank = 2
		res.T2, err = tangentTS(R, x)
	}
	if err != nil {
		return nil, err
	}
	return
}

// Curvature returns the second derivative ∂²ψ/∂a∂b
//  (tensor,tensor) ⇒ rank 4; (tensor,scalar) or (scalar,tensor) ⇒ rank 2; (scalar,scalar) ⇒ rank 0
//  Note: for two different tensors a and b, C_ijkl = ∂²ψ/∂a_ij∂b_kl
func Curvature(ψ Number, a, b Var) (res *Derivative, err error) {
	res = new(Derivative)
	switch {
	case a.Kind() == KindTensor && b.Kind() == KindTensor:
		res.Rank = 4
		res.T4, err = curvatureTT(ψ, a, b)
	case a.Kind() == KindTensor:
		res.Rank = 2
		res.T2, err = curvatureTS(ψ, a, b)
	case b.Kind() == KindTensor:
		res.Rank = 2
		res.T2, err = curvatureST(ψ, a, b)
	default:
		res.S, err = curvatureSS(ψ, a, b)
	}
	if err != nil {
		return nil, err
	}
	return
}

// Tangent returns the first derivative of a scalar result r with respect to a registered x
func (o *Summary) Tangent(r Number, x Var) (*Derivative, error) {
	if err := o.owns(x); err != nil {
		return nil, err
	}
	return Tangent(r, x)
}

// Curvature returns the second derivative ∂²ψ/∂a∂b with respect to registered variables
func (o *Summary) Curvature(ψ Number, a, b Var) (*Derivative, error) {
	if err := o.owns(a, b); err != nil {
		return nil, err
	}
	if o.Cfg.Order < 2 {
		return nil, fmt.Errorf("%w: curvatures require order 2 but summary has order %d", ErrOrderMismatch, o.Cfg.Order)
	}
	return Curvature(ψ, a, b)
}

// owns checks that all variables are registered in o
func (o *Summary) owns(vars ...Var) error {
	for _, v := range vars {
		if v.owner() != o {
			return fmt.Errorf("%w: %v variable is not registered in this summary", ErrInconsistentSeeding, v.Kind())
		}
	}
	return nil
}

// implementation //////////////////////////////////////////////////////////////////////////////

// half returns 1 for diagonal slots or ½ for off-diagonal ones
func half(d, ℓ int) float64 {
	if sym.IsDiag(d, ℓ) {
		return 1
	}
	return 0.5
}

// checkRange checks that the variables are seeded and fit into the n slots of a result
//  Note: n == 0 means a constant result; all derivatives are zero
func checkRange(n int, vars ...Var) error {
	for _, v := range vars {
		if !v.Seeded() {
			return fmt.Errorf("%w: %v variable has not been seeded", ErrInconsistentSeeding, v.Kind())
		}
		if n > 0 && v.Start()+v.Width() > n {
			return fmt.Errorf("%w: %v variable uses slots [%d,%d) but result has N = %d", ErrSlotOutOfRange, v.Kind(), v.Start(), v.Start()+v.Width(), n)
		}
	}
	return nil
}

// checkOrder checks that second derivatives are available
func checkOrder(ψ Number, vars ...Var) error {
	if ψ.Order() < 2 {
		return fmt.Errorf("%w: second derivatives require order 2 numbers; result has order %d", ErrOrderMismatch, ψ.Order())
	}
	for _, v := range vars {
		if v.Order() < 2 {
			return fmt.Errorf("%w: second derivatives require order 2 variables; %v has order %d", ErrOrderMismatch, v.Kind(), v.Order())
		}
	}
	return nil
}

// ndofTen2 returns the largest number of slots among the components of R
func ndofTen2[T fad.Number[T]](R *sym.Ten2[T]) (n int) {
	for I := 0; I < R.Ncomp(); I++ {
		if m := R.Comp(I).Ndof(); m > n {
			n = m
		}
	}
	return
}

func tangentTT[T fad.Number[T]](R *sym.Ten2[T], X Var) (C *sym.Ten4, err error) {
	if R.Dim() != X.Dim() {
		return nil, fmt.Errorf("%w: result has d = %d but variable has d = %d", ErrUnsupportedDim, R.Dim(), X.Dim())
	}
	if err = checkRange(ndofTen2(R), X); err != nil {
		return
	}
	d, s := X.Dim(), X.Start()
	C = sym.NewTen4(d)
	for I := 0; I < R.Ncomp(); I++ {
		for ℓ := 0; ℓ < X.Width(); ℓ++ {
			C.SetSlot(I, ℓ, half(d, ℓ)*R.Comp(I).Deriv(s+ℓ))
		}
	}
	markEvaluated(X)
	return
}

func tangentTS[T fad.Number[T]](R *sym.Ten2[T], φ Var) (G *sym.Ten2[fad.Real], err error) {
	if err = checkRange(ndofTen2(R), φ); err != nil {
		return
	}
	G = sym.NewTen2[fad.Real](R.Dim())
	for I := 0; I < R.Ncomp(); I++ {
		G.SetComp(I, fad.Real(R.Comp(I).Deriv(φ.Start())))
	}
	markEvaluated(φ)
	return
}

func tangentST(r Number, X Var) (G *sym.Ten2[fad.Real], err error) {
	if err = checkRange(r.Ndof(), X); err != nil {
		return
	}
	d, s := X.Dim(), X.Start()
	G = sym.NewTen2[fad.Real](d)
	for ℓ := 0; ℓ < X.Width(); ℓ++ {
		G.SetComp(ℓ, fad.Real(half(d, ℓ)*r.Deriv(s+ℓ)))
	}
	markEvaluated(X)
	return
}

func tangentSS(r Number, φ Var) (g float64, err error) {
	if err = checkRange(r.Ndof(), φ); err != nil {
		return
	}
	markEvaluated(φ)
	return r.Deriv(φ.Start()), nil
}

// curvatureTT computes C_ijkl = ∂²ψ/∂a_ij∂b_kl with (i,j) ⇔ ℓa and (k,l) ⇔ ℓb
func curvatureTT(ψ Number, a, b Var) (C *sym.Ten4, err error) {
	if a.Dim() != b.Dim() {
		return nil, fmt.Errorf("%w: tensors have d = %d and d = %d", ErrUnsupportedDim, a.Dim(), b.Dim())
	}
	if err = checkOrder(ψ, a, b); err != nil {
		return
	}
	if err = checkRange(ψ.Ndof(), a, b); err != nil {
		return
	}
	d, sa, sb := a.Dim(), a.Start(), b.Start()
	C = sym.NewTen4(d)
	for ℓa := 0; ℓa < a.Width(); ℓa++ {
		for ℓb := 0; ℓb < b.Width(); ℓb++ {
			C.SetSlot(ℓa, ℓb, half(d, ℓa)*half(d, ℓb)*ψ.Deriv2(sb+ℓb, sa+ℓa))
		}
	}
	markEvaluated(a, b)
	return
}

func curvatureTS(ψ Number, X, φ Var) (M *sym.Ten2[fad.Real], err error) {
	if err = checkOrder(ψ, X, φ); err != nil {
		return
	}
	if err = checkRange(ψ.Ndof(), X, φ); err != nil {
		return
	}
	d, s := X.Dim(), X.Start()
	M = sym.NewTen2[fad.Real](d)
	for ℓ := 0; ℓ < X.Width(); ℓ++ {
		M.SetComp(ℓ, fad.Real(half(d, ℓ)*ψ.Deriv2(s+ℓ, φ.Start())))
	}
	markEvaluated(X, φ)
	return
}

func curvatureST(ψ Number, φ, X Var) (M *sym.Ten2[fad.Real], err error) {
	if err = checkOrder(ψ, φ, X); err != nil {
		return
	}
	if err = checkRange(ψ.Ndof(), φ, X); err != nil {
		return
	}
	d, s := X.Dim(), X.Start()
	M = sym.NewTen2[fad.Real](d)
	for ℓ := 0; ℓ < X.Width(); ℓ++ {
		M.SetComp(ℓ, fad.Real(half(d, ℓ)*ψ.Deriv2(φ.Start(), s+ℓ)))
	}
	markEvaluated(φ, X)
	return
}

func curvatureSS(ψ Number, a, b Var) (g float64, err error) {
	if err = checkOrder(ψ, a, b); err != nil {
		return
	}
	if err = checkRange(ψ.Ndof(), a, b); err != nil {
		return
	}
	markEvaluated(a, b)
	return ψ.Deriv2(a.Start(), b.Start()), nil
}
