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
)

// PcThomeer computes the Thomeer capillary pressure from the hyperbola
//
//   Bv = exp(-G / log10(Pc / (Pce · scale)))    with    Bv = (1 - Sw) / (1 - Swi)
//
// where Bv is the fraction of the pore volume above Swi filled by the
// non-wetting phase. G multiplies the natural logarithm of Bv, i.e.
// log10(Pc / (Pce · scale)) = -G / ln(Bv); curves fitted with the base-10
// form log10(Bv) = -G' / log10(Pc / (Pce · scale)) convert by G = G' · ln(10).
// Pc decreases strictly from +Inf at Sw = Swi to the entry pressure at Sw = 1.
// Close to Swi the pressure overflows to +Inf and SwThomeer(+Inf) returns Swi.
// It returns NaN if sw is outside [0, 1] or if parameters are invalid
func PcThomeer(sw, iftRes, cosRes, swi, pce, g float64) float64 {
	if !(sw >= 0 && sw <= 1) || checkThomeer(iftRes, cosRes, swi, pce, g) != nil {
		return math.NaN()
	}
	pcE := pce * Scale(iftRes, cosRes)
	if sw <= swi {
		return math.Inf(1)
	}
	bv := (1 - sw) / (1 - swi)
	if bv <= 0 {
		return pcE
	}
	return pcE * math.Pow(10, -g/math.Log(bv))
}

// SwThomeer inverts PcThomeer by bisection over [Swi, 1]
//  See RootTol and RootMaxIt. It fails with ErrNoRoot if pc is smaller than
//  the entry pressure and with ErrNoConvergence if the iteration cap is hit
func SwThomeer(pc, iftRes, cosRes, swi, pce, g float64) (float64, error) {
	if err := checkThomeer(iftRes, cosRes, swi, pce, g); err != nil {
		return math.NaN(), err
	}
	if math.IsNaN(pc) {
		return math.NaN(), fmt.Errorf("%w: pc is NaN", ErrDomain)
	}
	pcE := pce * Scale(iftRes, cosRes)
	if pc < pcE {
		return math.NaN(), fmt.Errorf("%w: pc = %g is below the entry pressure %g", ErrNoRoot, pc, pcE)
	}
	if math.IsInf(pc, 1) {
		return swi, nil
	}
	return bisect(func(sw float64) float64 {
		return PcThomeer(sw, iftRes, cosRes, swi, pce, g)
	}, pc, swi, 1)
}

// checkThomeer checks Thomeer parameters
func checkThomeer(iftRes, cosRes, swi, pce, g float64) error {
	if err := checkPrms(iftRes, cosRes, swi, pce); err != nil {
		return err
	}
	if !(g > 0) {
		return fmt.Errorf("%w: Thomeer geometric factor = %g must be positive", ErrDomain, g)
	}
	return nil
}

// Thomeer implements Thomeer's model
type Thomeer struct {

	// parameters
	ift float64 // interfacial tension at reservoir conditions
	cos float64 // cosine of contact angle at reservoir conditions
	swi float64 // irreducible wetting saturation
	pce float64 // entry (displacement) pressure at lab conditions
	g   float64 // pore geometrical factor
}

// add model to factory
func init() {
	allocators["thomeer"] = func() Model { return new(Thomeer) }
}

// Init initialises model
func (o *Thomeer) Init(prms dbf.Params) (err error) {
	o.ift, o.cos, o.swi, o.pce, o.g = LabIft, LabCos, 0, 1, 1
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
		case "g":
			o.g = p.V
		default:
			return chk.Err("thomeer: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkThomeer(o.ift, o.cos, o.swi, o.pce, o.g)
}

// GetPrms gets (an example) of parameters
func (o Thomeer) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "ift", V: 1.1},
		&dbf.P{N: "cos", V: 0.95},
		&dbf.P{N: "swi", V: 0.12},
		&dbf.P{N: "pce", V: 2.3},
		&dbf.P{N: "g", V: 1.7},
	}
}

// Swi returns the irreducible wetting saturation
func (o Thomeer) Swi() float64 { return o.swi }

// Entry returns the entry pressure at reservoir conditions
func (o Thomeer) Entry() float64 { return o.pce * Scale(o.ift, o.cos) }

// Pc computes the capillary pressure. It fails with ErrDomain if sw is outside [0, 1]
func (o Thomeer) Pc(sw float64) (float64, error) {
	if !(sw >= 0 && sw <= 1) {
		return math.NaN(), fmt.Errorf("%w: sw = %g is outside [0, 1]", ErrDomain, sw)
	}
	return PcThomeer(sw, o.ift, o.cos, o.swi, o.pce, o.g), nil
}

// Sw computes the saturation
func (o Thomeer) Sw(pc float64) (float64, error) {
	return SwThomeer(pc, o.ift, o.cos, o.swi, o.pce, o.g)
}
