// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pc implements capillary pressure models and their inverses
//  Model parameters are given at laboratory (mercury-air) conditions and
//  converted to reservoir conditions with the ratio
//    (ift_res · cosθ_res) / (ift_lab · cosθ_lab)
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers 3, Colorado State University
//   [2] Thomeer JHM (1960) Introduction of a pore geometrical factor defined by
//       the capillary pressure curve. Journal of Petroleum Technology, 12(3), 73-77
package pc

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// lab conditions: mercury-air
const (
	LabIft = 480.0             // interfacial tension [dyn/cm]
	LabCos = 0.766044443118978 // |cos(140°)|
)

// errors
var (
	ErrDomain        = errors.New("pc: argument out of domain")
	ErrNoRoot        = errors.New("pc: no root in saturation bracket")
	ErrNoConvergence = errors.New("pc: root finder did not converge")
)

// Model defines capillary pressure models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Swi() float64                    // Swi returns the irreducible wetting saturation
	Entry() float64                  // Entry returns the entry pressure at reservoir conditions
	Pc(sw float64) (float64, error)  // Pc computes the capillary pressure at reservoir conditions
	Sw(pc float64) (float64, error)  // Sw computes the saturation corresponding to pc
}

// New capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'pc' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Scale returns the factor converting lab capillary pressures to reservoir conditions
func Scale(iftRes, cosRes float64) float64 {
	return (iftRes * cosRes) / (LabIft * LabCos)
}

// Table samples a model at npts saturations evenly spaced in (Swi, 1]
//  Swi itself is skipped since Pc is unbounded there
func Table(o Model, npts int) (Sw, Pc []float64, err error) {
	Sw = utl.LinSpace(o.Swi(), 1, npts+1)[1:]
	Pc = make([]float64, npts)
	for i, sw := range Sw {
		Pc[i], err = o.Pc(sw)
		if err != nil {
			return
		}
	}
	return
}

// checkPrms checks parameters common to all models
func checkPrms(iftRes, cosRes, swi, pce float64) error {
	if !(swi >= 0 && swi < 1) {
		return fmt.Errorf("%w: swi = %g must be in [0, 1)", ErrDomain, swi)
	}
	if !(pce > 0) {
		return fmt.Errorf("%w: entry pressure = %g must be positive", ErrDomain, pce)
	}
	if !(Scale(iftRes, cosRes) > 0) {
		return fmt.Errorf("%w: ift·cosθ = %g must be positive", ErrDomain, iftRes*cosRes)
	}
	return nil
}
