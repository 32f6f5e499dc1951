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
	"github.com/bfix/ecm/bigint"
	"github.com/bfix/ecm/curve"
	"github.com/bfix/ecm/prng"
)

// four is the literal 4, used often enough in the Suyama setup to name.
var four = bigint.FOUR

// setupCurve draws a random sigma and derives a Suyama-parameterized
// Montgomery curve plus its starting point. If an intermediate inversion
// fails, that failure is itself a factorization: the gcd of the
// uninvertible value against n is returned directly as a hit, with q0=nil
// and err=nil signaling "no curve, but a factor".
//
// Classical ECM requires sigma >= 6 (sigma in {0..5} gives degenerate
// curves); the strict reading of the open question in §9 is applied here
// by resampling rather than accepting any sigma < n-1.
func setupCurve(n *bigint.Int, rng *prng.Source) (q0 *curve.Point, factor *bigint.Int, err error) {
	upper := n.Sub(bigint.ONE)
	var sigma *bigint.Int
	for {
		sigma = rng.UniformBelow(upper)
		if sigma.Cmp(bigint.SIX) >= 0 {
			break
		}
	}

	u := sigma.Sqr().Sub(bigint.FIVE).Mod(n)
	v := four.Mul(sigma).Mod(n)

	denom := four.Mul(u.Pow(3)).Mul(v).Mod(n)
	inv, ok := denom.ModInverse(n)
	if !ok {
		return nil, n.GCD(denom), nil
	}

	vmu := v.Sub(u).Mod(n)
	c := vmu.Pow(3).Mul(four.Mul(u).Add(v)).Mul(inv).Sub(bigint.TWO).Mod(n)

	fourInv, ok := four.ModInverse(n)
	if !ok {
		// n is even; the driver is expected to have removed the factor
		// of 2 via trial division before reaching ECM at all.
		return nil, n.GCD(four), nil
	}
	a24 := c.Add(bigint.TWO).Mul(fourInv).Mod(n)

	x0 := u.Pow(3).Mod(n)
	z0 := v.Pow(3).Mod(n)
	return curve.NewPoint(x0, z0, a24, n), nil, nil
}
