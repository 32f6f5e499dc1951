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

//********************************************************************
//*    PGMID.        MONTGOMERY CURVE POINT ARITHMETIC.              *
//*    REMARKS.      XZ-only projective arithmetic over Z/NZ, a      *
//*                  pseudo-field since N is composite by design:    *
//*                  a non-invertible Z is a factorization, not a    *
//*                  bug. Generalized from gospel's affine-y         *
//*                  EllipticCurve/ProjPoint into pure XZ coordinates.*
//********************************************************************

// Package curve implements Montgomery-form elliptic curve point
// arithmetic in projective XZ-only coordinates over the residue ring
// Z/NZ, where N need not be prime.
package curve

import (
	"github.com/bfix/ecm/bigint"
)

// Point is a Montgomery-curve point in projective XZ coordinates. The
// affine X-coordinate is x*z^-1 mod N when z is invertible; the Y
// coordinate is never represented or needed by the ladder.
type Point struct {
	X, Z    *bigint.Int
	A24     *bigint.Int // (a+2)/4 mod N, shared by every point on the curve
	Modulus *bigint.Int
}

// NewPoint builds a point from its raw projective coordinates, reduced
// mod N. a24 and modulus are carried by value from the curve setup.
func NewPoint(x, z, a24, n *bigint.Int) *Point {
	return &Point{
		X:       x.Mod(n),
		Z:       z.Mod(n),
		A24:     a24,
		Modulus: n,
	}
}

func (p *Point) curve(x, z *bigint.Int) *Point {
	return &Point{X: x, Z: z, A24: p.A24, Modulus: p.Modulus}
}

// Add computes P+Q given diff = P-Q on the same curve (differential
// addition). The caller must guarantee P != Q (use Double for that) and
// that diff really is P-Q along the ladder.
func (p *Point) Add(q, diff *Point) *Point {
	n := p.Modulus
	u := p.X.Sub(p.Z).Mod(n).Mul(q.X.Add(q.Z).Mod(n)).Mod(n)
	v := p.X.Add(p.Z).Mod(n).Mul(q.X.Sub(q.Z).Mod(n)).Mod(n)
	upv := u.Add(v).Mod(n)
	umv := u.Sub(v).Mod(n)
	x := diff.Z.Mul(upv.Sqr()).Mod(n)
	z := diff.X.Mul(umv.Sqr()).Mod(n)
	return p.curve(x, z)
}

// Double computes 2P.
func (p *Point) Double() *Point {
	n := p.Modulus
	u := p.X.Add(p.Z).Mod(n).Sqr().Mod(n)
	v := p.X.Sub(p.Z).Mod(n).Sqr().Mod(n)
	d := u.Sub(v).Mod(n)
	x := u.Mul(v).Mod(n)
	z := d.Mul(v.Add(p.A24.Mul(d)).Mod(n)).Mod(n)
	return p.curve(x, z)
}

// MontLadder computes k*P for a positive integer k (k >= 1) using the
// standard binary Montgomery ladder, maintaining the invariant R-Q = P
// throughout. k=1 returns P unchanged (the loop body never executes).
func (p *Point) MontLadder(k *bigint.Int) *Point {
	bits := k.BitLen()
	q := p
	r := p.Double()
	for i := bits - 2; i >= 0; i-- {
		if k.Bit(i) == 1 {
			q, r = q.Add(r, p), r.Double()
		} else {
			q, r = q.Double(), r.Add(q, p)
		}
	}
	return q
}
