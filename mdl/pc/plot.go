// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pc

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Plot plots Pc(Sw) and, if withInverse, the saturations recovered by Sw(Pc)
//  label -- curve label; e.g. "thomeer"
func Plot(o Model, npts int, withInverse bool, label string) (err error) {
	Sw, Pc, err := Table(o, npts)
	if err != nil {
		return
	}
	plt.Plot(Sw, Pc, &plt.A{C: "b", Ls: "-", L: label, NoClip: true})
	if withInverse {
		Sb := make([]float64, npts)
		for i, pc := range Pc {
			Sb[i], err = o.Sw(pc)
			if err != nil {
				return
			}
		}
		plt.Plot(Sb, Pc, &plt.A{C: "r", M: "o", Ls: "none", Void: true, L: label + " (inverse)", NoClip: true})
	}
	plt.Text(o.Swi(), o.Entry(), io.Sf("$p_{ce}=%g$", o.Entry()), &plt.A{Ha: "left", C: "red", Fsz: 8})
	return
}

// PlotEnd ends plot and saves figure
func PlotEnd(dirout, fnkey string) {
	plt.AxisXrange(0, 1)
	plt.Gll("$S_w$", "$p_c$", nil)
	plt.Save(dirout, fnkey)
}
