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

package curve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/ecm/bigint"
)

// base101 builds the curve a=10 mod 101 (a24 = 12 * 4^-1 mod 101 = 3)
// and its starting point P = (10:17), the worked example from the
// point-module micro-tests.
func base101(t *testing.T) (p *Point, n *bigint.Int) {
	t.Helper()
	n = bigint.NewInt(101)
	a24 := bigint.NewInt(3)
	p = NewPoint(bigint.NewInt(10), bigint.NewInt(17), a24, n)
	return
}

func assertPoint(t *testing.T, label string, got *Point, x, z int64) {
	t.Helper()
	require.EqualValuesf(t, x, got.X.Int64(), "%s.X", label)
	require.EqualValuesf(t, z, got.Z.Int64(), "%s.Z", label)
}

// assertSamePoint checks projective equality, x1*z2 == x2*z1 mod N: two
// ladder paths to the same multiple generally yield different (X:Z)
// representatives of the same point.
func assertSamePoint(t *testing.T, label string, got, want *Point) {
	t.Helper()
	n := got.Modulus
	lhs := got.X.Mul(want.Z).Mod(n)
	rhs := want.X.Mul(got.Z).Mod(n)
	require.Truef(t, lhs.Equals(rhs), "%s: (%s:%s) is not (%s:%s)", label, got.X, got.Z, want.X, want.Z)
}

func TestDoubleChain(t *testing.T) {
	p, _ := base101(t)

	p2 := p.Double()
	assertPoint(t, "2P", p2, 68, 56)

	p4 := p2.Double()
	assertPoint(t, "4P", p4, 22, 64)

	p8 := p4.Double()
	assertPoint(t, "8P", p8, 71, 95)

	p16 := p8.Double()
	assertPoint(t, "16P", p16, 5, 16)

	p32 := p16.Double()
	assertPoint(t, "32P", p32, 33, 96)
}

func TestAdd3P(t *testing.T) {
	p, _ := base101(t)
	p2 := p.Double()
	// 3P = 2P + P, with diff = 2P - P = P.
	p3 := p2.Add(p, p)
	assertPoint(t, "3P", p3, 1, 61)
}

func TestAdd5P(t *testing.T) {
	p, _ := base101(t)
	p2 := p.Double()
	p3 := p2.Add(p, p)
	p4 := p2.Double()
	// 5P = 4P + P, with diff = 4P - P = 3P.
	p5 := p4.Add(p, p3)
	assertSamePoint(t, "5P", p5, NewPoint(bigint.NewInt(49), bigint.NewInt(90), p.A24, p.Modulus))
}

func TestMontLadderMatchesRepeatedDouble(t *testing.T) {
	p, _ := base101(t)
	p2 := p.Double()
	p4 := p2.Double()
	p8 := p4.Double()

	ladder8 := p.MontLadder(bigint.NewInt(8))
	assertPoint(t, "mont_ladder(8)", ladder8, p8.X.Int64(), p8.Z.Int64())
}

func TestMontLadder5And9(t *testing.T) {
	p, _ := base101(t)
	p2 := p.Double()
	p3 := p2.Add(p, p)
	p4 := p2.Double()
	p5 := p4.Add(p, p3)

	ladder5 := p.MontLadder(bigint.NewInt(5))
	assertSamePoint(t, "mont_ladder(5)", ladder5, p5)

	// 9P = 8P + P, diff = 8P - P = 7P; build 7P = 4P + 3P, diff = 4P-3P = P.
	p8 := p4.Double()
	p7 := p4.Add(p3, p)
	p9 := p8.Add(p, p7)
	ladder9 := p.MontLadder(bigint.NewInt(9))
	assertSamePoint(t, "mont_ladder(9)", ladder9, p9)
}

func TestMontLadderOne(t *testing.T) {
	p, _ := base101(t)
	got := p.MontLadder(bigint.NewInt(1))
	assertPoint(t, "mont_ladder(1)", got, p.X.Int64(), p.Z.Int64())
}
