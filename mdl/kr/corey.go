// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SatTol is the tolerance on normalised saturations used to decide whether a
// saturation lies on a bound or outside the valid interval
const SatTol = 1e-12

// Krw computes the unbounded Corey wetting curve krw = krw0 · Se^nw
func Krw(se, krw0, nw float64) float64 {
	return krw0 * math.Pow(se, nw)
}

// KrwTo computes Krw for all effective saturations in se and stores the results in dst
func KrwTo(dst, se []float64, krw0, nw float64) []float64 {
	dst = prepare(dst, se)
	for i, s := range se {
		dst[i] = krw0 * math.Pow(s, nw)
	}
	return dst
}

// KrwCorey computes the water relative permeability
//
//   krw = krwSorw · ((Sw - Swirr) / (1 - Swirr - Sorw))^nw
//
// for Swirr ≤ Sw ≤ 1 - Sorw. It returns NaN outside this interval
func KrwCorey(sw, swirr, sorw, krwSorw, nw float64) float64 {
	den := 1 - swirr - sorw
	if !(den > 0) {
		return math.NaN()
	}
	s, ok := normalised((sw-swirr)/den)
	if !ok {
		return math.NaN()
	}
	return krwSorw * math.Pow(s, nw)
}

// KrowCorey computes the oil relative permeability in a water-oil system
//
//   krow = kroSwirr · ((1 - Sorw - Sw) / (1 - Swirr - Sorw))^now
//
// for Swirr ≤ Sw ≤ 1 - Sorw. It returns NaN outside this interval
func KrowCorey(sw, swirr, sorw, kroSwirr, now float64) float64 {
	den := 1 - swirr - sorw
	if !(den > 0) {
		return math.NaN()
	}
	s, ok := normalised((sw-swirr)/den)
	if !ok {
		return math.NaN()
	}
	return kroSwirr * math.Pow(1-s, now)
}

// KrgCorey computes the gas relative permeability in a gas-oil system
//
//   krg = krgMax · ((Sg - Sgc) / (1 - Sgc - Swirr - Sorg))^ng
//
// for Sgc ≤ Sg ≤ 1 - Swirr - Sorg; krg is exactly zero at Sg = Sgc. It returns
// NaN outside this interval
func KrgCorey(sg, sgc, swirr, sorg, krgMax, ng float64) float64 {
	den := 1 - swirr - sorg - sgc
	if !(den > 0) || sgc < 0 {
		return math.NaN()
	}
	s, ok := normalised((sg - sgc) / den)
	if !ok {
		return math.NaN()
	}
	return krgMax * math.Pow(s, ng)
}

// KrogCorey computes the oil relative permeability in a gas-oil system
//
//   krog = kroSgi · ((1 - Swirr - Sorg - Sg) / (1 - Swirr - Sorg))^nog
//
// for 0 ≤ Sg ≤ 1 - Swirr - Sorg. It returns NaN outside this interval
func KrogCorey(sg, swirr, sorg, kroSgi, nog float64) float64 {
	sgmax := 1 - swirr - sorg
	if !(sgmax > 0) {
		return math.NaN()
	}
	x, ok := normalised(sg / sgmax)
	if !ok {
		return math.NaN()
	}
	return kroSgi * math.Pow(1-x, nog)
}

// KrwCoreyTo computes KrwCorey for all values in sw and stores the results in dst
func KrwCoreyTo(dst, sw []float64, swirr, sorw, krwSorw, nw float64) []float64 {
	dst = prepare(dst, sw)
	den := 1 - swirr - sorw
	for i, v := range sw {
		s, ok := normalised((v - swirr) / den)
		if !ok || !(den > 0) {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = krwSorw * math.Pow(s, nw)
	}
	return dst
}

// KrowCoreyTo computes KrowCorey for all values in sw and stores the results in dst
func KrowCoreyTo(dst, sw []float64, swirr, sorw, kroSwirr, now float64) []float64 {
	dst = prepare(dst, sw)
	den := 1 - swirr - sorw
	for i, v := range sw {
		s, ok := normalised((v - swirr) / den)
		if !ok || !(den > 0) {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = kroSwirr * math.Pow(1-s, now)
	}
	return dst
}

// KrgCoreyTo computes KrgCorey for all values in sg and stores the results in dst
func KrgCoreyTo(dst, sg []float64, sgc, swirr, sorg, krgMax, ng float64) []float64 {
	dst = prepare(dst, sg)
	den := 1 - swirr - sorg - sgc
	valid := den > 0 && sgc >= 0
	for i, v := range sg {
		s, ok := normalised((v - sgc) / den)
		if !ok || !valid {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = krgMax * math.Pow(s, ng)
	}
	return dst
}

// KrogCoreyTo computes KrogCorey for all values in sg and stores the results in dst
func KrogCoreyTo(dst, sg []float64, swirr, sorg, kroSgi, nog float64) []float64 {
	dst = prepare(dst, sg)
	sgmax := 1 - swirr - sorg
	for i, v := range sg {
		x, ok := normalised(v / sgmax)
		if !ok || !(sgmax > 0) {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = kroSgi * math.Pow(1-x, nog)
	}
	return dst
}

// normalised clamps s to [0, 1] when it lies within SatTol of the interval.
// ok is false when s is NaN or falls outside
func normalised(s float64) (x float64, ok bool) {
	if !(s >= -SatTol && s <= 1+SatTol) {
		return math.NaN(), false
	}
	return math.Min(math.Max(s, 0), 1), true
}

// prepare allocates dst when nil and checks its length against src
func prepare(dst, src []float64) []float64 {
	if dst == nil {
		return make([]float64, len(src))
	}
	if len(dst) != len(src) {
		chk.Panic("kr: length mismatch: len(dst)=%d, len(src)=%d", len(dst), len(src))
	}
	return dst
}
