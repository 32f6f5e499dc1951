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
//*    PGMID.        LENSTRA ECM SINGLE-CURVE SEARCH.                *
//*    REMARKS.      Generalizes gospel's Lenstra_ECM.GetFactor,     *
//*                  which tests primes in (B1,B2] one at a time via *
//*                  repeated giant-step multiplication, into a real *
//*                  two-stage search: Stage 1 folds the whole       *
//*                  smooth exponent into one ladder call, Stage 2   *
//*                  batches the large-prime continuation with a     *
//*                  baby-step/giant-step table instead of retrying  *
//*                  the ladder once per candidate prime.            *
//********************************************************************

package ecmcore

import (
	"github.com/bfix/ecm/bigint"
	"github.com/bfix/ecm/curve"
	"github.com/bfix/ecm/prng"
	"github.com/bfix/ecm/primes"
)

// stage1Exponent computes k = prod over primes p<=B1 of p^floor(log_p(B1)),
// the Stage 1 smooth exponent, grounded on lenstra_ecm.go's inline
// accumulation of "e" but performed once per call instead of once per
// curve (B1 is fixed for the whole search).
func stage1Exponent(b1 uint64) *bigint.Int {
	k := bigint.ONE
	ps := primes.New()
	defer ps.Close()
	for {
		p := ps.Next()
		if p > b1 {
			break
		}
		e := 0
		pe := uint64(1)
		for pe*p <= b1 {
			pe *= p
			e++
		}
		k = k.Mul(bigint.NewInt(int64(p)).Pow(e))
	}
	return k
}

func isqrtU64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(1)
	for r*r <= n {
		r <<= 1
	}
	for r*r > n {
		r--
	}
	return r
}

// stage2Tables builds s[1..d] (s[i] = (2i)*Q) and beta[i] = s[i].x*s[i].z
// mod N, the precomputed continuation table of §4.2/§4.3.
func stage2Tables(q *curve.Point, d int) (s []*curve.Point, beta []*bigint.Int) {
	s = make([]*curve.Point, d+1)
	beta = make([]*bigint.Int, d+1)
	s[1] = q.Double()
	if d >= 2 {
		s[2] = s[1].Double()
	}
	for i := 3; i <= d; i++ {
		s[i] = s[i-1].Add(s[1], s[i-2])
	}
	for i := 1; i <= d; i++ {
		beta[i] = s[i].X.Mul(s[i].Z).Mod(q.Modulus)
	}
	return
}

// stage1And2Params bundles the quantities that depend only on B1/B2, so
// that a batch of independent curve attempts (sequential or via
// EcmParallel's workers) compute them once and share them read-only.
type stage1And2Params struct {
	n      *bigint.Int
	k      *bigint.Int
	d      int
	b1, b2 uint64
	b      uint64
	step   uint64
}

func newStage1And2Params(n *bigint.Int, b1, b2 uint64) *stage1And2Params {
	d := int(isqrtU64(b2))
	if d < 2 {
		d = 2
	}
	return &stage1And2Params{
		n:    n,
		k:    stage1Exponent(b1),
		d:    d,
		b1:   b1,
		b2:   b2,
		b:    b1 - 1,
		step: uint64(2 * d),
	}
}

// attemptCurve runs one Suyama curve through Stage 1 and Stage 2 against
// n. A nil, nil return means the curve missed and the caller should try
// another; a non-nil error is fatal (propagated from setupCurve).
func attemptCurve(p *stage1And2Params, rng *prng.Source, progress ProgressFunc, curveIdx int) (*bigint.Int, error) {
	n, b1, b2, d, step := p.n, p.b1, p.b2, p.d, p.step
	progress(ProgressEvent{Phase: "curve", Residual: n, CurveIndex: curveIdx, B1: b1, B2: b2})

	q0, directFactor, err := setupCurve(n, rng)
	if err != nil {
		return nil, err
	}
	if directFactor != nil {
		if directFactor.Cmp(bigint.ONE) > 0 && directFactor.Cmp(n) < 0 {
			return directFactor, nil
		}
		return nil, nil
	}

	// Stage 1.
	progress(ProgressEvent{Phase: "stage1", Residual: n, CurveIndex: curveIdx, B1: b1, B2: b2})
	q := q0.MontLadder(p.k)
	g := n.GCD(q.Z)
	if g.Cmp(bigint.ONE) > 0 && g.Cmp(n) < 0 {
		return g, nil
	}
	if g.Equals(n) {
		return nil, nil
	}

	// Stage 2.
	progress(ProgressEvent{Phase: "stage2", Residual: n, CurveIndex: curveIdx, B1: b1, B2: b2})
	s, beta := stage2Tables(q, d)

	ps := primes.New()
	ps.SkipBelow(p.b)
	defer ps.Close()

	t := q.MontLadder(subOrOne(p.b, step))
	r := q.MontLadder(bigint.NewInt(int64(p.b)))

	acc := bigint.ONE
	for rr := p.b; rr < b2; rr += step {
		alpha := r.X.Mul(r.Z).Mod(n)
		window := ps.TakeWhile(func(pp uint64) bool { return pp <= rr+step })
		for _, pp := range window {
			if pp <= rr {
				continue
			}
			delta := int((pp - rr) / 2)
			f := r.X.Sub(s[d].X).Mul(r.Z.Add(s[d].Z)).Sub(alpha).Add(beta[delta]).Mod(n)
			acc = acc.Mul(f).Mod(n)
		}
		newR := r.Add(s[d], t)
		t = r
		r = newR
	}

	g = n.GCD(acc)
	if g.Cmp(bigint.ONE) > 0 && g.Cmp(n) < 0 {
		return g, nil
	}
	return nil, nil
}

// OneFactor runs up to maxCurves independent Suyama curves against n,
// returning the first non-trivial factor found. It returns
// ErrNumberIsPrime if n itself passes a strong primality test, and
// ErrECMFailed ("MissedAllCurves") if every curve missed. B1 and B2 must
// both be even, or ErrBoundsNotEven is returned.
func OneFactor(n *bigint.Int, b1, b2 uint64, maxCurves int, rng *prng.Source, progress ProgressFunc) (*bigint.Int, error) {
	if progress == nil {
		progress = noopProgress
	}
	if b1%2 != 0 || b2%2 != 0 {
		return nil, wrapf(ErrBoundsNotEven, "B1=%d B2=%d", b1, b2)
	}
	if n.ProbablyPrime(25) {
		return nil, wrapf(ErrNumberIsPrime, "N=%s", n.String())
	}

	params := newStage1And2Params(n, b1, b2)
	for curveIdx := 0; curveIdx < maxCurves; curveIdx++ {
		factor, err := attemptCurve(params, rng, progress, curveIdx)
		if err != nil {
			return nil, err
		}
		if factor != nil {
			return factor, nil
		}
	}
	return nil, wrapf(ErrECMFailed, "N=%s B1=%d B2=%d maxCurves=%d", n.String(), b1, b2, maxCurves)
}

// subOrOne avoids an underflow when b1 is small enough that b < step;
// mont_ladder requires a positive scalar (k>=1, per §4.1's edge cases).
func subOrOne(b, step uint64) *bigint.Int {
	if b <= step {
		return bigint.ONE
	}
	return bigint.NewInt(int64(b - step))
}
