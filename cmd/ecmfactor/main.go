//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Command ecmfactor factors a single integer given on the command line
// using the ecmcore ECM driver, printing the discovered prime factors.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bfix/ecm/bigint"
	"github.com/bfix/ecm/ecmcore"
	"github.com/bfix/ecm/xlog"
)

func main() {
	var (
		b1, b2     uint64
		maxCurves  int
		seed       int64
		strict     bool
		adaptiveB2 bool
		verbose    bool
	)
	flag.Uint64Var(&b1, "b1", 0, "stage 1 bound (0 = pick from N's size)")
	flag.Uint64Var(&b2, "b2", 0, "stage 2 bound (0 = package default)")
	flag.IntVar(&maxCurves, "curves", ecmcore.DefaultMaxCurves, "curves to try per residual")
	flag.Int64Var(&seed, "seed", ecmcore.DefaultSeed, "PRNG seed")
	flag.BoolVar(&strict, "strict", false, "fail instead of reporting an undecomposed residual")
	flag.BoolVar(&adaptiveB2, "adaptive-b2", false, "derive B2 from B1 instead of using a fixed B2")
	flag.BoolVar(&verbose, "v", false, "log curve attempts to stderr")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: ecmfactor [flags] <N>")
		os.Exit(2)
	}

	if verbose {
		xlog.SetLevel(xlog.DBG)
	}
	defer xlog.Sync() //nolint:errcheck // best-effort flush on exit

	n := bigint.NewIntFromString(strings.TrimSpace(args[0]))
	params := ecmcore.Params{
		B1:         b1,
		B2:         b2,
		MaxCurves:  maxCurves,
		Seed:       seed,
		Strict:     strict,
		AdaptiveB2: adaptiveB2,
	}
	if verbose {
		params.Progress = xlog.AsProgress()
	}

	factors, err := ecmcore.EcmWithParams(n, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecmfactor: %v\n", err)
		os.Exit(1)
	}

	parts := make([]string, 0, len(factors.Primes()))
	for _, p := range factors.Primes() {
		e := factors.Exp(p)
		if e == 1 {
			parts = append(parts, p.String())
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", p.String(), e))
		}
	}
	fmt.Printf("%s = %s\n", n.String(), strings.Join(parts, " * "))
}
