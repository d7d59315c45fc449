// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sat implements saturation normalisation between residual bounds
//  The effective (normalised) wetting saturation is
//    Se = (Sw - Swr) / (1 - Swr - Snwr)
//  where Swr is the residual wetting saturation and Snwr the residual
//  non-wetting saturation. No domain check is performed: Sw outside
//  [Swr, 1-Snwr] maps to Se outside [0, 1].
package sat

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Eff computes the effective wetting saturation Se = (sw-swr)/(1-swr-snwr)
func Eff(sw, swr, snwr float64) float64 {
	return (sw - swr) / (1 - swr - snwr)
}

// Denormalized converts a normalised saturation back to Sw. It is the inverse of Eff
func Denormalized(swn, swirr, sorw float64) float64 {
	return swn*(1-swirr-sorw) + swirr
}

// EffTo computes Eff for every entry of sw and stores the result in dst.
// If dst is nil a new slice is allocated. It panics if the lengths differ.
// The results are bitwise identical to Eff.
func EffTo(dst, sw []float64, swr, snwr float64) []float64 {
	dst = prepare(dst, sw)
	den := 1 - swr - snwr
	copy(dst, sw)
	floats.AddConst(-swr, dst)
	for i := range dst {
		dst[i] /= den
	}
	return dst
}

// DenormalizedTo computes Denormalized for every entry of swn and stores the result in dst
func DenormalizedTo(dst, swn []float64, swirr, sorw float64) []float64 {
	dst = prepare(dst, swn)
	floats.ScaleTo(dst, 1-swirr-sorw, swn)
	floats.AddConst(swirr, dst)
	return dst
}

// prepare allocates dst when nil and checks its length against src
func prepare(dst, src []float64) []float64 {
	if dst == nil {
		return make([]float64, len(src))
	}
	if len(dst) != len(src) {
		chk.Panic("sat: length mismatch: len(dst)=%d, len(src)=%d", len(dst), len(src))
	}
	return dst
}
