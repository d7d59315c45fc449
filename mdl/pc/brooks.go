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

// PcBrooksCorey computes the Brooks-Corey capillary pressure
//
//   Pc = Pce · scale · Se^(-1/n)    with    Se = (Sw - Swi) / (1 - Swi)
//
// It fails with ErrDomain if sw is outside [0, 1] or if parameters are
// invalid. Pc is +Inf for Sw ≤ Swi
func PcBrooksCorey(sw, iftRes, cosRes, swi, pce, nbc float64) (float64, error) {
	if !(sw >= 0 && sw <= 1) {
		return math.NaN(), fmt.Errorf("%w: sw = %g is outside [0, 1]", ErrDomain, sw)
	}
	if err := checkBrooksCorey(iftRes, cosRes, swi, pce, nbc); err != nil {
		return math.NaN(), err
	}
	se := sat.Eff(sw, swi, 0)
	if se <= 0 {
		return math.Inf(1), nil
	}
	return pce * Scale(iftRes, cosRes) * math.Pow(se, -1/nbc), nil
}

// SwBrooksCorey inverts PcBrooksCorey
//
//   Se = (Pc / (Pce · scale))^(-n)
//
// Pressures at or below the entry pressure give Sw = 1
func SwBrooksCorey(pc, iftRes, cosRes, swi, pce, nbc float64) (float64, error) {
	if err := checkBrooksCorey(iftRes, cosRes, swi, pce, nbc); err != nil {
		return math.NaN(), err
	}
	if !(pc >= 0) {
		return math.NaN(), fmt.Errorf("%w: pc = %g must be non-negative", ErrDomain, pc)
	}
	pcE := pce * Scale(iftRes, cosRes)
	if pc <= pcE {
		return 1, nil
	}
	se := math.Pow(pc/pcE, -nbc)
	return sat.Denormalized(se, swi, 0), nil
}

// checkBrooksCorey checks Brooks-Corey parameters
func checkBrooksCorey(iftRes, cosRes, swi, pce, nbc float64) error {
	if err := checkPrms(iftRes, cosRes, swi, pce); err != nil {
		return err
	}
	if !(nbc > 0) {
		return fmt.Errorf("%w: Brooks-Corey exponent = %g must be positive", ErrDomain, nbc)
	}
	return nil
}

// BrooksCorey implements the Brooks-Corey model
type BrooksCorey struct {

	// parameters
	ift float64 // interfacial tension at reservoir conditions
	cos float64 // cosine of contact angle at reservoir conditions
	swi float64 // irreducible wetting saturation
	pce float64 // entry pressure at lab conditions
	n   float64 // pore-size distribution index
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.ift, o.cos, o.swi, o.pce, o.n = LabIft, LabCos, 0, 1, 2
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ift":
			o.ift = p.V
		case "cos":
			o.cos = p.V
		case "swi":
			o.swi = p.V
		case "pce":
			o.pce = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkBrooksCorey(o.ift, o.cos, o.swi, o.pce, o.n)
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "ift", V: 1.2},
		&dbf.P{N: "cos", V: 0.9},
		&dbf.P{N: "swi", V: 0.2},
		&dbf.P{N: "pce", V: 3.0},
		&dbf.P{N: "n", V: 2.0},
	}
}

// Swi returns the irreducible wetting saturation
func (o BrooksCorey) Swi() float64 { return o.swi }

// Entry returns the entry pressure at reservoir conditions
func (o BrooksCorey) Entry() float64 { return o.pce * Scale(o.ift, o.cos) }

// Pc computes the capillary pressure
func (o BrooksCorey) Pc(sw float64) (float64, error) {
	return PcBrooksCorey(sw, o.ift, o.cos, o.swi, o.pce, o.n)
}

// Sw computes the saturation
func (o BrooksCorey) Sw(pc float64) (float64, error) {
	return SwBrooksCorey(pc, o.ift, o.cos, o.swi, o.pce, o.n)
}
