// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data describing an evaluation point read from a JSON or YAML file
package inp

import (
	"encoding/json"
	"sort"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Point holds the data of one evaluation point
type Point struct {
	Desc  string             `json:"desc" yaml:"desc"`   // description
	Dim   int                `json:"dim" yaml:"dim"`     // space dimension: 2 or 3
	Order int                `json:"order" yaml:"order"` // 1: stress model; 2: energy model
	Model string             `json:"model" yaml:"model"` // name of solid model; e.g. "lin-elast-ad"
	Prms  map[string]float64 `json:"prms" yaml:"prms"`   // model parameters
	Eps   [][]float64        `json:"eps" yaml:"eps"`     // strain tensor [dim][dim]; symmetrised
	Phi   *float64           `json:"phi" yaml:"phi"`     // scalar state variable; nil means the model's default
}

// ReadPoint reads a point from a .json, .yaml or .yml file
func ReadPoint(fn string) (o *Point, err error) {

	// read file
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read point file %q:\n%v", fn, err)
	}

	// decode
	o = new(Point)
	switch io.FnExt(fn) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("extension of point file %q must be .json, .yaml or .yml", fn)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal point file %q:\n%v", fn, err)
	}

	// check
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// Check checks the data
func (o *Point) Check() (err error) {
	if err = sym.CheckDim(o.Dim); err != nil {
		return chk.Err("point: %v", err)
	}
	if o.Order != 1 && o.Order != 2 {
		return chk.Err("point: order must be 1 or 2. %d is invalid", o.Order)
	}
	if o.Model == "" {
		return chk.Err("point: model name must be given")
	}
	if len(o.Eps) != o.Dim {
		return chk.Err("point: strain must have %d rows. %d is invalid", o.Dim, len(o.Eps))
	}
	for i, row := range o.Eps {
		if len(row) != o.Dim {
			return chk.Err("point: row %d of strain must have %d columns. %d is invalid", i, o.Dim, len(row))
		}
	}
	return
}

// Params returns the model parameters sorted by name
func (o *Point) Params() (prms dbf.Params) {
	keys := make([]string, 0, len(o.Prms))
	for k := range o.Prms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prms = append(prms, &dbf.P{N: k, V: o.Prms[k]})
	}
	return
}

// Strain returns the symmetric strain tensor
func (o *Point) Strain() *sym.Ten2[fad.Real] {
	return sym.FromMatrix(o.Eps)
}
