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

// CoreyWO implements Corey curves for water-oil systems; s = Sw
type CoreyWO struct {

	// parameters
	swirr float64 // irreducible water saturation
	sorw  float64 // residual oil saturation to water
	krw0  float64 // krw at Sw = 1 - Sorw
	kro0  float64 // krow at Sw = Swirr
	nw    float64 // water exponent
	now   float64 // oil exponent
}

// add model to factory
func init() {
	allocators["corey-wo"] = func() Model { return new(CoreyWO) }
}

// Init initialises model
func (o *CoreyWO) Init(prms dbf.Params) (err error) {
	o.swirr, o.sorw = 0, 0
	o.krw0, o.kro0, o.nw, o.now = 1, 1, 2, 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swirr":
			o.swirr = p.V
		case "sorw":
			o.sorw = p.V
		case "krw0":
			o.krw0 = p.V
		case "kro0":
			o.kro0 = p.V
		case "nw":
			o.nw = p.V
		case "now":
			o.now = p.V
		default:
			return chk.Err("corey-wo: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkEndpoints("corey-wo", []float64{o.swirr, o.sorw}, []float64{o.krw0, o.kro0}, []float64{o.nw, o.now})
}

// GetPrms gets (an example) of parameters
func (o CoreyWO) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "swirr", V: 0.2},
		&dbf.P{N: "sorw", V: 0.1},
		&dbf.P{N: "krw0", V: 0.3},
		&dbf.P{N: "kro0", V: 0.85},
		&dbf.P{N: "nw", V: 2.5},
		&dbf.P{N: "now", V: 2.0},
	}
}

// Phase returns the name of the displacing phase
func (o CoreyWO) Phase() string { return "water" }

// Smin returns Swirr
func (o CoreyWO) Smin() float64 { return o.swirr }

// Smax returns 1 - Sorw
func (o CoreyWO) Smax() float64 { return 1 - o.sorw }

// Kr returns krw
func (o CoreyWO) Kr(sw float64) float64 {
	return KrwCorey(sw, o.swirr, o.sorw, o.krw0, o.nw)
}

// Kro returns krow
func (o CoreyWO) Kro(sw float64) float64 {
	return KrowCorey(sw, o.swirr, o.sorw, o.kro0, o.now)
}

// DkrDs returns ∂krw/∂sw
func (o CoreyWO) DkrDs(sw float64) float64 {
	den := 1 - o.swirr - o.sorw
	s, ok := normalised((sw - o.swirr) / den)
	if !ok {
		return math.NaN()
	}
	return o.krw0 * o.nw * math.Pow(s, o.nw-1) / den
}

// DkroDs returns ∂krow/∂sw
func (o CoreyWO) DkroDs(sw float64) float64 {
	den := 1 - o.swirr - o.sorw
	s, ok := normalised((sw - o.swirr) / den)
	if !ok {
		return math.NaN()
	}
	return -o.kro0 * o.now * math.Pow(1-s, o.now-1) / den
}
