// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/relperm/inp"
	"github.com/cpmech/relperm/mdl/kr"
	"github.com/cpmech/relperm/mdl/pc"
)

// plotRock saves one figure per model of the rock type
func plotRock(rock *inp.Rock, dirout string, npts int) error {
	if rock.RelPerm != nil {
		plt.Reset(true, nil)
		kr.Plot(rock.RelPerm, dirout, "kr_"+rock.Name, npts, true, false)
		logrus.Infof("saved kr figure of %q in %s", rock.Name, dirout)
	}
	if rock.CapPres != nil {
		plt.Reset(true, nil)
		if err := pc.Plot(rock.CapPres, npts, true, rock.Name); err != nil {
			return err
		}
		pc.PlotEnd(dirout, "pc_"+rock.Name)
		logrus.Infof("saved pc figure of %q in %s", rock.Name, dirout)
	}
	return nil
}
