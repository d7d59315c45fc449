// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pc

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/relperm/mdl/sat"
)

// VanGen implements van Genuchten's model
//  Se = (1 + (α·pc/scale)^n)^(-m)
type VanGen struct {

	// parameters
	ift  float64 // interfacial tension at reservoir conditions
	cos  float64 // cosine of contact angle at reservoir conditions
	swi  float64 // irreducible wetting saturation
	α    float64 // inverse of a characteristic lab pressure
	m, n float64 // exponents

	// derived
	scale float64 // lab to reservoir factor
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.ift, o.cos, o.swi, o.α, o.m, o.n = LabIft, LabCos, 0, 1, 0.5, 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ift":
			o.ift = p.V
		case "cos":
			o.cos = p.V
		case "swi":
			o.swi = p.V
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if err = checkPrms(o.ift, o.cos, o.swi, 1); err != nil {
		return
	}
	if !(o.α > 0 && o.m > 0 && o.n > 0) {
		return fmt.Errorf("%w: van Genuchten parameters α = %g, m = %g and n = %g must be positive", ErrDomain, o.α, o.m, o.n)
	}
	o.scale = Scale(o.ift, o.cos)
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "swi", V: 0.1},
		&dbf.P{N: "alp", V: 0.08},
		&dbf.P{N: "m", V: 0.75},
		&dbf.P{N: "n", V: 4},
	}
}

// Swi returns the irreducible wetting saturation
func (o VanGen) Swi() float64 { return o.swi }

// Entry returns zero since the model has no entry pressure
func (o VanGen) Entry() float64 { return 0 }

// Pc computes the capillary pressure. It fails with ErrDomain if sw is outside [0, 1]
func (o VanGen) Pc(sw float64) (float64, error) {
	if !(sw >= 0 && sw <= 1) {
		return math.NaN(), fmt.Errorf("%w: sw = %g is outside [0, 1]", ErrDomain, sw)
	}
	se := sat.Eff(sw, o.swi, 0)
	if se <= 0 {
		return math.Inf(1), nil
	}
	if se >= 1 {
		return 0, nil
	}
	return o.scale * math.Pow(math.Pow(se, -1/o.m)-1, 1/o.n) / o.α, nil
}

// Sw computes the saturation
func (o VanGen) Sw(pc float64) (float64, error) {
	if math.IsNaN(pc) {
		return math.NaN(), fmt.Errorf("%w: pc is NaN", ErrDomain)
	}
	if pc <= 0 {
		return 1, nil
	}
	c := math.Pow(o.α*pc/o.scale, o.n)
	return sat.Denormalized(math.Pow(1+c, -o.m), o.swi, 0), nil
}

// Cc computes Cc(pc) := dsw/dpc
func (o VanGen) Cc(pc float64) float64 {
	if pc <= 0 {
		return 0
	}
	c := math.Pow(o.α*pc/o.scale, o.n)
	return -(1 - o.swi) * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / pc
}
