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

package ecmcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/ecm/bigint"
	"github.com/bfix/ecm/prng"
)

func TestEcmParallelFindsFactor(t *testing.T) {
	// 7853316850129 = 2802377^2, small enough that a handful of curves
	// across a few workers should hit it quickly.
	n := bigint.NewIntFromString("7853316850129")
	rng := prng.New(1234)
	factor, err := EcmParallel(n, 2000, 100000, 200, 4, rng, nil)
	require.NoError(t, err)
	require.True(t, factor.Cmp(bigint.ONE) > 0 && factor.Cmp(n) < 0, "EcmParallel returned trivial factor %s", factor.String())
	require.True(t, n.Mod(factor).IsZero(), "%s does not divide %s", factor.String(), n.String())
}

func TestEcmParallelRejectsOddBounds(t *testing.T) {
	n := bigint.NewIntFromString("35")
	rng := prng.New(1)
	_, err := EcmParallel(n, 101, 1000, 10, 2, rng, nil)
	require.ErrorIs(t, err, ErrBoundsNotEven)
}

func TestEcmParallelPrimeInput(t *testing.T) {
	n := bigint.NewIntFromString("104729")
	rng := prng.New(1)
	_, err := EcmParallel(n, 2000, 100000, 10, 2, rng, nil)
	require.ErrorIs(t, err, ErrNumberIsPrime)
}
