// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kr implements Corey-type relative permeability models for
// water-oil and gas-oil systems
//  Out-of-range saturations give NaN instead of an error, so that batch
//  evaluations return partial results.
package kr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model defines two-phase relative permeability models
//  s is the saturation of the displacing phase: Sw for water-oil and Sg for
//  gas-oil systems. Kr is the relative permeability of that phase and Kro the
//  one of oil
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Phase() string                   // Phase returns the name of the displacing phase
	Smin() float64                   // Smin returns the minimum valid saturation
	Smax() float64                   // Smax returns the maximum valid saturation
	Kr(s float64) float64            // Kr returns the relative permeability of the displacing phase
	Kro(s float64) float64           // Kro returns the relative permeability of oil
	DkrDs(s float64) float64         // DkrDs returns ∂kr/∂s
	DkroDs(s float64) float64        // DkroDs returns ∂kro/∂s
}

// New relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'kr' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Table samples a model at npts saturations evenly spaced in [Smin, Smax]
func Table(o Model, npts int) (S, Kr, Kro []float64) {
	S = utl.LinSpace(o.Smin(), o.Smax(), npts)
	Kr = make([]float64, npts)
	Kro = make([]float64, npts)
	for i, s := range S {
		Kr[i] = o.Kr(s)
		Kro[i] = o.Kro(s)
	}
	return
}

// checkEndpoints checks residual saturations, endpoint relative permeabilities and exponents
func checkEndpoints(model string, res []float64, ends []float64, exps []float64) error {
	sum := 0.0
	for _, r := range res {
		if r < 0 || r >= 1 {
			return chk.Err("%s: residual saturations must be in [0, 1). %v is invalid\n", model, res)
		}
		sum += r
	}
	if sum >= 1 {
		return chk.Err("%s: the sum of residual saturations must be smaller than 1. %v is invalid\n", model, res)
	}
	for _, k := range ends {
		if k < 0 {
			return chk.Err("%s: endpoint relative permeabilities must be non-negative. %v is invalid\n", model, ends)
		}
	}
	for _, n := range exps {
		if n <= 0 {
			return chk.Err("%s: exponents must be positive. %v is invalid\n", model, exps)
		}
	}
	return nil
}
