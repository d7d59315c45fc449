// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the relperm command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpmech/relperm/inp"
	"github.com/cpmech/relperm/mdl/kr"
	"github.com/cpmech/relperm/mdl/pc"
)

// options holds the flags shared by all subcommands
type options struct {
	rocksFile string  // YAML file with rock types
	rockName  string  // name of rock type
	logLevel  string  // log verbosity level
	npts      int     // number of points in tables and plots
	pcTarget  float64 // capillary pressure to be inverted
	dirout    string  // output directory for figures
}

// NewRootCmd returns the relperm command with all subcommands attached
func NewRootCmd() *cobra.Command {
	var o options

	rootCmd := &cobra.Command{
		Use:           "relperm",
		Short:         "Relative permeability and capillary pressure tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(o.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", o.logLevel)
			}
			logrus.SetLevel(level)
			if o.npts < 2 {
				return fmt.Errorf("npts must be at least 2, got %d", o.npts)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&o.rocksFile, "rocks", "rocks.yaml", "YAML file with rock types")
	rootCmd.PersistentFlags().StringVar(&o.rockName, "rock", "", "Name of rock type")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&o.npts, "npts", 11, "Number of points")

	krCmd := &cobra.Command{
		Use:   "kr",
		Short: "Print the relative permeability table of a rock type",
		RunE: func(cmd *cobra.Command, args []string) error {
			rock, err := o.load()
			if err != nil {
				return err
			}
			if rock.RelPerm == nil {
				return fmt.Errorf("rock type %q has no relative permeability model", rock.Name)
			}
			S, Kr, Kro := kr.Table(rock.RelPerm, o.npts)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# rock=%s phase=%s\n", rock.Name, rock.RelPerm.Phase())
			fmt.Fprintf(w, "%12s %14s %14s\n", "s", "kr", "kro")
			for i := range S {
				fmt.Fprintf(w, "%12.6f %14.8e %14.8e\n", S[i], Kr[i], Kro[i])
			}
			return nil
		},
	}

	pcCmd := &cobra.Command{
		Use:   "pc",
		Short: "Print the capillary pressure table of a rock type",
		RunE: func(cmd *cobra.Command, args []string) error {
			rock, err := o.capPres()
			if err != nil {
				return err
			}
			Sw, Pc, err := pc.Table(rock.CapPres, o.npts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# rock=%s swi=%g entry=%g\n", rock.Name, rock.CapPres.Swi(), rock.CapPres.Entry())
			fmt.Fprintf(w, "%12s %14s\n", "sw", "pc")
			for i := range Sw {
				fmt.Fprintf(w, "%12.6f %14.8e\n", Sw[i], Pc[i])
			}
			return nil
		},
	}

	swCmd := &cobra.Command{
		Use:   "sw",
		Short: "Compute the water saturation corresponding to a capillary pressure",
		RunE: func(cmd *cobra.Command, args []string) error {
			rock, err := o.capPres()
			if err != nil {
				return err
			}
			sw, err := rock.CapPres.Sw(o.pcTarget)
			if err != nil {
				return err
			}
			logrus.Debugf("rock %q: sw(%g) = %g", rock.Name, o.pcTarget, sw)
			fmt.Fprintf(cmd.OutOrStdout(), "%.8f\n", sw)
			return nil
		},
	}
	swCmd.Flags().Float64Var(&o.pcTarget, "pc", 0, "Capillary pressure at reservoir conditions")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the curves of a rock type",
		RunE: func(cmd *cobra.Command, args []string) error {
			rock, err := o.load()
			if err != nil {
				return err
			}
			return plotRock(rock, o.dirout, o.npts)
		},
	}
	plotCmd.Flags().StringVar(&o.dirout, "dir", "/tmp/relperm", "Output directory")

	rootCmd.AddCommand(krCmd, pcCmd, swCmd, plotCmd)
	return rootCmd
}

// load reads the rock database and returns the selected rock type
func (o *options) load() (*inp.Rock, error) {
	if o.rockName == "" {
		return nil, fmt.Errorf("rock type name not provided")
	}
	rdb, err := inp.ReadRocksFile(o.rocksFile)
	if err != nil {
		return nil, err
	}
	logrus.Infof("read %d rock types from %s", len(rdb.Rocks), o.rocksFile)
	return rdb.Get(o.rockName)
}

// capPres loads the selected rock type and checks that it has a capillary pressure model
func (o *options) capPres() (*inp.Rock, error) {
	rock, err := o.load()
	if err != nil {
		return nil, err
	}
	if rock.CapPres == nil {
		return nil, fmt.Errorf("rock type %q has no capillary pressure model", rock.Name)
	}
	return rock, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
