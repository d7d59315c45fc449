// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads rock-type definitions and allocates their models
package inp

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/relperm/mdl/kr"
	"github.com/cpmech/relperm/mdl/pc"
	"gopkg.in/yaml.v3"
)

// ModelData holds the name of a model and its parameters
type ModelData struct {
	Model string             `yaml:"model"` // name of model; e.g. "corey-wo", "thomeer"
	Prms  map[string]float64 `yaml:"prms"`  // parameters
}

// Params converts the parameters map into a list sorted by name
func (o *ModelData) Params() (prms dbf.Params) {
	names := make([]string, 0, len(o.Prms))
	for name := range o.Prms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prms = append(prms, &dbf.P{N: name, V: o.Prms[name]})
	}
	return
}

// Rock holds the data of one rock type
type Rock struct {

	// input
	Name  string     `yaml:"name"`  // name of rock type
	Extra string     `yaml:"extra"` // extra information about this rock type
	Kr    *ModelData `yaml:"kr"`    // relative permeability model
	Pc    *ModelData `yaml:"pc"`    // capillary pressure model

	// derived
	RelPerm kr.Model `yaml:"-"` // relative permeability model; may be nil
	CapPres pc.Model `yaml:"-"` // capillary pressure model; may be nil
}

// RockDb implements a database of rock types
type RockDb struct {
	Rocks []*Rock          `yaml:"rocks"` // all rock types
	names map[string]*Rock // maps name to rock type
}

// ReadRocks reads all rock types from a YAML document
func ReadRocks(r io.Reader) (rdb *RockDb, err error) {

	// decode
	rdb = new(RockDb)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(rdb)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, chk.Err("cannot decode rock types:\n%v", err)
	}

	// alloc/init
	rdb.names = make(map[string]*Rock)
	for i, rock := range rdb.Rocks {
		if rock.Name == "" {
			return nil, chk.Err("rock type #%d has no name", i)
		}
		if _, ok := rdb.names[rock.Name]; ok {
			return nil, chk.Err("rock type %q is defined more than once", rock.Name)
		}
		rdb.names[rock.Name] = rock
		if rock.Kr != nil {
			rock.RelPerm, err = kr.New(rock.Kr.Model)
			if err != nil {
				return nil, chk.Err("rock type %q:\n%v", rock.Name, err)
			}
			err = rock.RelPerm.Init(rock.Kr.Params())
			if err != nil {
				return nil, chk.Err("rock type %q:\n%v", rock.Name, err)
			}
		}
		if rock.Pc != nil {
			rock.CapPres, err = pc.New(rock.Pc.Model)
			if err != nil {
				return nil, chk.Err("rock type %q:\n%v", rock.Name, err)
			}
			err = rock.CapPres.Init(rock.Pc.Params())
			if err != nil {
				return nil, chk.Err("rock type %q:\n%v", rock.Name, err)
			}
		}
	}
	return rdb, nil
}

// ReadRocksFile reads all rock types from a YAML file
func ReadRocksFile(fn string) (rdb *RockDb, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return ReadRocks(bytes.NewReader(b))
}

// Get returns the rock type with the given name
func (o *RockDb) Get(name string) (rock *Rock, err error) {
	rock, ok := o.names[name]
	if !ok {
		return nil, chk.Err("cannot find rock type named %q", name)
	}
	return
}
