// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kr

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CoreyGO implements Corey curves for gas-oil systems; s = Sg
//  The connate water saturation Swirr is immobile. krg is defined over
//  [Sgc, 1 - Swirr - Sorg] and krog over [0, 1 - Swirr - Sorg]
type CoreyGO struct {

	// parameters
	sgc   float64 // critical gas saturation
	swirr float64 // irreducible water saturation
	sorg  float64 // residual oil saturation to gas
	krg0  float64 // krg at Sg = 1 - Swirr - Sorg
	kro0  float64 // krog at Sg = 0
	ng    float64 // gas exponent
	nog   float64 // oil exponent

	// derived
	sgmax float64 // 1 - Swirr - Sorg
}

// add model to factory
func init() {
	allocators["corey-go"] = func() Model { return new(CoreyGO) }
}

// Init initialises model
func (o *CoreyGO) Init(prms dbf.Params) (err error) {
	o.sgc, o.swirr, o.sorg = 0, 0, 0
	o.krg0, o.kro0, o.ng, o.nog = 1, 1, 2, 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "sgc":
			o.sgc = p.V
		case "swirr":
			o.swirr = p.V
		case "sorg":
			o.sorg = p.V
		case "krg0":
			o.krg0 = p.V
		case "kro0":
			o.kro0 = p.V
		case "ng":
			o.ng = p.V
		case "nog":
			o.nog = p.V
		default:
			return chk.Err("corey-go: parameter named %q is incorrect\n", p.N)
		}
	}
	err = checkEndpoints("corey-go", []float64{o.sgc, o.swirr, o.sorg}, []float64{o.krg0, o.kro0}, []float64{o.ng, o.nog})
	if err != nil {
		return
	}
	o.sgmax = 1 - o.swirr - o.sorg
	return
}

// GetPrms gets (an example) of parameters
func (o CoreyGO) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "sgc", V: 0.05},
		&dbf.P{N: "swirr", V: 0.2},
		&dbf.P{N: "sorg", V: 0.15},
		&dbf.P{N: "krg0", V: 0.9},
		&dbf.P{N: "kro0", V: 0.8},
		&dbf.P{N: "ng", V: 3.0},
		&dbf.P{N: "nog", V: 2.5},
	}
}

// Phase returns the name of the displacing phase
func (o CoreyGO) Phase() string { return "gas" }

// Smin returns Sgc
func (o CoreyGO) Smin() float64 { return o.sgc }

// Smax returns 1 - Swirr - Sorg
func (o CoreyGO) Smax() float64 { return o.sgmax }

// Kr returns krg
func (o CoreyGO) Kr(sg float64) float64 {
	return KrgCorey(sg, o.sgc, o.swirr, o.sorg, o.krg0, o.ng)
}

// Kro returns krog
func (o CoreyGO) Kro(sg float64) float64 {
	return KrogCorey(sg, o.swirr, o.sorg, o.kro0, o.nog)
}

// DkrDs returns ∂krg/∂sg
func (o CoreyGO) DkrDs(sg float64) float64 {
	den := o.sgmax - o.sgc
	s, ok := normalised((sg - o.sgc) / den)
	if !ok {
		return math.NaN()
	}
	return o.krg0 * o.ng * math.Pow(s, o.ng-1) / den
}

// DkroDs returns ∂krog/∂sg
func (o CoreyGO) DkroDs(sg float64) float64 {
	x, ok := normalised(sg / o.sgmax)
	if !ok {
		return math.NaN()
	}
	return -o.kro0 * o.nog * math.Pow(1-x, o.nog-1) / o.sgmax
}
