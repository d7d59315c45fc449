// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pc

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01")

	ift, cos, swi, pce, n := 1.2, 0.9, 0.2, 3.0, 2.0

	for _, sw := range []float64{-0.01, 1.01, math.NaN()} {
		_, err := PcBrooksCorey(sw, ift, cos, swi, pce, n)
		if !errors.Is(err, ErrDomain) {
			tst.Errorf("pc(%g) should fail with ErrDomain. err = %v\n", sw, err)
		}
		io.Pforan("%v\n", err)
	}

	sw := 0.7
	pc, err := PcBrooksCorey(sw, ift, cos, swi, pce, n)
	if err != nil {
		tst.Errorf("PcBrooksCorey failed: %v\n", err)
		return
	}
	chk.Float64(tst, "pc(0.7)", 1e-15, pc, pce*Scale(ift, cos)/math.Sqrt(0.625))
	back, err := SwBrooksCorey(pc, ift, cos, swi, pce, n)
	if err != nil {
		tst.Errorf("SwBrooksCorey failed: %v\n", err)
		return
	}
	io.Pforan("sw = %v, pc = %v, back = %v\n", sw, pc, back)
	chk.Float64(tst, "round trip", 1e-9, back, sw)
}

func Test_bc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc02")

	ift, cos, swi, pce, n := 30.0, 1.0, 0.15, 5.0, 1.5
	pcE := pce * Scale(ift, cos)

	// bounds
	pc, _ := PcBrooksCorey(1, ift, cos, swi, pce, n)
	chk.Float64(tst, "pc(1)", 1e-14, pc, pcE)
	pc, _ = PcBrooksCorey(swi, ift, cos, swi, pce, n)
	if !math.IsInf(pc, 1) {
		tst.Errorf("pc(swi) should be +Inf. %g is incorrect\n", pc)
	}
	pc, _ = PcBrooksCorey(0.05, ift, cos, swi, pce, n)
	if !math.IsInf(pc, 1) {
		tst.Errorf("pc(0.05) should be +Inf. %g is incorrect\n", pc)
	}

	// inverse below entry pressure and at infinity
	sw, _ := SwBrooksCorey(0.5*pcE, ift, cos, swi, pce, n)
	chk.Float64(tst, "sw(pc < pce)", 1e-17, sw, 1)
	sw, _ = SwBrooksCorey(math.Inf(1), ift, cos, swi, pce, n)
	chk.Float64(tst, "sw(inf)", 1e-17, sw, swi)
	if _, err := SwBrooksCorey(-1, ift, cos, swi, pce, n); !errors.Is(err, ErrDomain) {
		tst.Errorf("sw(-1) should fail with ErrDomain. err = %v\n", err)
	}

	// round trip over the whole interval
	for _, sw := range utl.LinSpace(swi+0.01, 1, 18) {
		pc, err := PcBrooksCorey(sw, ift, cos, swi, pce, n)
		if err != nil {
			tst.Errorf("PcBrooksCorey failed: %v\n", err)
			return
		}
		back, err := SwBrooksCorey(pc, ift, cos, swi, pce, n)
		if err != nil {
			tst.Errorf("SwBrooksCorey failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("round trip @ %.3f", sw), 1e-6*sw, back, sw)
	}

	// invalid parameters
	for i, prms := range [][]float64{{ift, cos, 1.0, pce, n}, {ift, cos, swi, 0, n}, {ift, cos, swi, pce, 0}, {ift, -1, swi, pce, n}} {
		if _, err := PcBrooksCorey(0.5, prms[0], prms[1], prms[2], prms[3], prms[4]); !errors.Is(err, ErrDomain) {
			tst.Errorf("parameters #%d should fail with ErrDomain. err = %v\n", i, err)
		}
	}
}

func Test_thomeer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thomeer01")

	ift, cos, swi, pce, g := 1.1, 0.95, 0.12, 2.3, 1.7
	sw := 0.53

	pc := PcThomeer(sw, ift, cos, swi, pce, g)
	back, err := SwThomeer(pc, ift, cos, swi, pce, g)
	if err != nil {
		tst.Errorf("SwThomeer failed: %v\n", err)
		return
	}
	io.Pforan("sw = %v, pc = %v, back = %v\n", sw, pc, back)
	if math.Abs(back-sw) > 2e-2+1e-3*math.Abs(sw) {
		tst.Errorf("round trip failed: %g != %g\n", back, sw)
	}
	chk.Float64(tst, "round trip", 1e-8, back, sw)
}

func Test_thomeer02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thomeer02")

	ift, cos, swi, pce, g := 25.0, 0.8, 0.1, 8.0, 0.4
	pcE := pce * Scale(ift, cos)

	// bounds
	chk.Float64(tst, "pc(1)", 1e-14, PcThomeer(1, ift, cos, swi, pce, g), pcE)
	if v := PcThomeer(swi, ift, cos, swi, pce, g); !math.IsInf(v, 1) {
		tst.Errorf("pc(swi) should be +Inf. %g is incorrect\n", v)
	}
	for _, sw := range []float64{-0.01, 1.01} {
		if v := PcThomeer(sw, ift, cos, swi, pce, g); !math.IsNaN(v) {
			tst.Errorf("pc(%g) should be NaN. %g is incorrect\n", sw, v)
		}
	}

	// strictly decreasing
	Sw := utl.LinSpace(swi+0.01, 1, 21)
	for i := 1; i < len(Sw); i++ {
		if PcThomeer(Sw[i], ift, cos, swi, pce, g) >= PcThomeer(Sw[i-1], ift, cos, swi, pce, g) {
			tst.Errorf("pc must decrease between %g and %g\n", Sw[i-1], Sw[i])
			return
		}
	}

	// inverse against the closed form Sw = 1 - (1-Swi)·exp(-G/log10(Pc/Pce))
	for _, sw := range Sw {
		pc := PcThomeer(sw, ift, cos, swi, pce, g)
		back, err := SwThomeer(pc, ift, cos, swi, pce, g)
		if err != nil {
			tst.Errorf("SwThomeer failed: %v\n", err)
			return
		}
		ana := 1 - (1-swi)*math.Exp(-g/math.Log10(pc/pcE))
		if sw == 1 {
			ana = 1
		}
		chk.Float64(tst, io.Sf("sw(pc(%.3f))", sw), 1e-8, back, ana)
		chk.Float64(tst, io.Sf("round trip @ %.3f", sw), 1e-8, back, sw)
	}

	// special pressures
	sw, err := SwThomeer(pcE, ift, cos, swi, pce, g)
	if err != nil {
		tst.Errorf("SwThomeer failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sw(pce)", 1e-17, sw, 1)
	sw, _ = SwThomeer(math.Inf(1), ift, cos, swi, pce, g)
	chk.Float64(tst, "sw(inf)", 1e-17, sw, swi)

	// no root below the entry pressure
	_, err = SwThomeer(0.5*pcE, ift, cos, swi, pce, g)
	if !errors.Is(err, ErrNoRoot) {
		tst.Errorf("sw(pc < pce) should fail with ErrNoRoot. err = %v\n", err)
	}
	io.Pforan("%v\n", err)
	_, err = SwThomeer(math.NaN(), ift, cos, swi, pce, g)
	if !errors.Is(err, ErrDomain) {
		tst.Errorf("sw(NaN) should fail with ErrDomain. err = %v\n", err)
	}
	_, err = SwThomeer(2*pcE, ift, cos, swi, pce, 0)
	if !errors.Is(err, ErrDomain) {
		tst.Errorf("g = 0 should fail with ErrDomain. err = %v\n", err)
	}
}

func Test_thomeer03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thomeer03")

	ift, cos, swi, pce := 25.0, 0.8, 0.12, 2.3
	pcE := pce * Scale(ift, cos)

	// natural-log convention: Bv = 1/e gives Pc = Pce·10^G
	for _, g := range []float64{0.4, 1.7, 5} {
		sw := 1 - (1-swi)/math.E
		chk.Float64(tst, io.Sf("pc(Bv=1/e) g=%g", g), 1e-12, PcThomeer(sw, ift, cos, swi, pce, g)/(pcE*math.Pow(10, g)), 1)
	}

	// close to swi the pressure may overflow; the inverse then returns swi
	for _, g := range []float64{1.7, 5} {
		for _, sw := range []float64{swi + 1e-3, swi + 1e-2, swi + 5e-2} {
			pc := PcThomeer(sw, ift, cos, swi, pce, g)
			back, err := SwThomeer(pc, ift, cos, swi, pce, g)
			if err != nil {
				tst.Errorf("g=%g: SwThomeer(pc(%g)) failed: %v\n", g, sw, err)
				return
			}
			io.Pforan("g=%g sw=%g pc=%g back=%g\n", g, sw, pc, back)
			chk.Float64(tst, io.Sf("g=%g: round trip @ %g", g, sw), 2e-2+1e-3*sw, back, sw)
			if math.IsInf(pc, 1) {
				chk.Float64(tst, io.Sf("g=%g: sw(+Inf)", g), 1e-17, back, swi)
			} else {
				chk.Float64(tst, io.Sf("g=%g: finite round trip @ %g", g, sw), 1e-8, back, sw)
			}
		}
	}
	if pc := PcThomeer(swi+1e-3, ift, cos, swi, pce, 5); !math.IsInf(pc, 1) {
		tst.Errorf("pc(swi+1e-3) with g=5 should overflow to +Inf. %g is incorrect\n", pc)
	}
}

func Test_bisect01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect01")

	// increasing function
	x, err := bisect(func(x float64) float64 { return x * x * x }, 8, 0, 5)
	if err != nil {
		tst.Errorf("bisect failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cbrt(8)", 1e-8, x, 2)

	// root at the ends
	x, _ = bisect(func(x float64) float64 { return x }, 0, 0, 1)
	chk.Float64(tst, "end a", 1e-17, x, 0)
	x, _ = bisect(func(x float64) float64 { return x }, 1, 0, 1)
	chk.Float64(tst, "end b", 1e-17, x, 1)

	// no bracket
	_, err = bisect(func(x float64) float64 { return x }, 2, 0, 1)
	if !errors.Is(err, ErrNoRoot) {
		tst.Errorf("bisect should fail with ErrNoRoot. err = %v\n", err)
	}

	// NaN inside the bracket
	_, err = bisect(func(x float64) float64 {
		if x > 0.4 && x < 0.6 {
			return math.NaN()
		}
		return x
	}, 0.3, 0, 1)
	if !errors.Is(err, ErrNoConvergence) {
		tst.Errorf("bisect should fail with ErrNoConvergence. err = %v\n", err)
	}
}
