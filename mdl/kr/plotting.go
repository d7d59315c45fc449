// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kr

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots kr and kro curves and, optionally, their derivatives
func Plot(o Model, dirout, fnkey string, np int, withText, deriv bool) {
	S := utl.LinSpace(o.Smin(), o.Smax(), np)
	Y := make([]float64, np)
	W := make([]float64, np)
	var Z, V []float64
	if deriv {
		Z = make([]float64, np)
		V = make([]float64, np)
	}
	for i, s := range S {
		Y[i], W[i] = o.Kr(s), o.Kro(s)
		if deriv {
			Z[i], V[i] = o.DkrDs(s), o.DkroDs(s)
		}
	}
	key := "w"
	if o.Phase() == "gas" {
		key = "g"
	}
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(S, Y, &plt.A{C: "b", Ls: "-", L: "$k_{r" + key + "}$", NoClip: true})
	plt.Plot(S, W, &plt.A{C: "r", Ls: "-", L: "$k_{ro}$", NoClip: true})
	if withText {
		l := np - 1
		plt.Text(S[0], Y[0], io.Sf("(%g, %g)", S[0], Y[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
		plt.Text(S[l], Y[l], io.Sf("(%g, %g)", S[l], Y[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	}
	plt.Gll("$S_"+key+"$", "$k_r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(S, Z, &plt.A{C: "b", Ls: "-", NoClip: true})
		plt.Plot(S, V, &plt.A{C: "r", Ls: "-", NoClip: true})
		plt.Gll("$S_"+key+"$", "$\\mathrm{d}k_r/\\mathrm{d}S_"+key+"$", nil)
	}
	plt.Save(dirout, fnkey)
}
