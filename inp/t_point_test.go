// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01. json")

	pt, err := ReadPoint("../data/linelast.json")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "dim", pt.Dim, 2)
	chk.Int(tst, "order", pt.Order, 1)
	chk.String(tst, pt.Model, "lin-elast-ad")
	if pt.Phi != nil {
		tst.Errorf("φ should not be given\n")
	}

	prms := pt.Params()
	chk.Int(tst, "nprms", len(prms), 2)
	chk.String(tst, prms[0].N, "G")
	chk.String(tst, prms[1].N, "K")
	chk.Float64(tst, "G", 1e-17, prms[0].V, 2)
	chk.Float64(tst, "K", 1e-17, prms[1].V, 5)

	ε := pt.Strain()
	io.Pforan("ε = %v\n", ε)
	chk.Array(tst, "ε", 1e-17, ε.Vals(), []float64{0.01, 0.003, -0.02})
}

func Test_point02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point02. yaml")

	pt, err := ReadPoint("../data/quadenergy.yaml")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "dim", pt.Dim, 3)
	chk.Int(tst, "order", pt.Order, 2)
	chk.String(tst, pt.Model, "quad-energy")
	if pt.Phi == nil {
		tst.Errorf("φ should be given\n")
		return
	}
	chk.Float64(tst, "φ", 1e-17, *pt.Phi, 0.3)
	chk.Int(tst, "nprms", len(pt.Params()), 3)
	chk.Array(tst, "ε", 1e-17, pt.Strain().Vals(), []float64{0.01, 0.003, -0.002, -0.02, 0.001, 0.005})
}

func Test_point03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point03. symmetrisation and errors")

	dir := tst.TempDir()
	write := func(fn, data string) string {
		path := filepath.Join(dir, fn)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			tst.Fatalf("%v\n", err)
		}
		return path
	}

	// non-symmetric input is averaged
	pt, err := ReadPoint(write("a.yml", "dim: 2\norder: 1\nmodel: phi-scaled\neps: [[1, 2], [4, 3]]\n"))
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Array(tst, "ε", 1e-17, pt.Strain().Vals(), []float64{1, 3, 3})

	// errors
	bad := map[string]string{
		"dim.json":    `{"dim":4, "order":1, "model":"m", "eps":[[0]]}`,
		"order.json":  `{"dim":2, "order":3, "model":"m", "eps":[[0,0],[0,0]]}`,
		"model.json":  `{"dim":2, "order":1, "eps":[[0,0],[0,0]]}`,
		"rows.json":   `{"dim":3, "order":1, "model":"m", "eps":[[0,0,0],[0,0,0]]}`,
		"cols.yaml":   "dim: 2\norder: 1\nmodel: m\neps: [[0, 0], [0]]\n",
		"syntax.json": `{"dim":2,`,
		"ext.txt":     `{}`,
	}
	for fn, data := range bad {
		_, err = ReadPoint(write(fn, data))
		if err == nil {
			tst.Errorf("%s should fail\n", fn)
		}
		io.Pforan("%s: %v\n", fn, err)
	}
	_, err = ReadPoint(filepath.Join(dir, "missing.json"))
	if err == nil {
		tst.Errorf("missing file should fail\n")
	}
}
