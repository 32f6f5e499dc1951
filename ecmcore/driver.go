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
//*    PGMID.        ECM FACTORIZATION DRIVER.                       *
//*    REMARKS.      Generalizes gospel's Factorizer.Decompose/      *
//*                  smallPrimes (trial division then one algorithm  *
//*                  per residual) into the spec's trial-division-   *
//*                  then-ECM loop with adaptive B1 selection.        *
//********************************************************************

package ecmcore

import (
	"errors"
	"math"

	"github.com/bfix/ecm/bigint"
	"github.com/bfix/ecm/prng"
	"github.com/bfix/ecm/primes"
)

// smallPrimeBound is how many leading primes the driver trial-divides by
// before handing the residual to ECM (§4.3).
const smallPrimeBound = 100000

// b1Table is the spec's step function from decimal length to B1 (§4.3).
// It differs from gospel's own lenstra_ecm_params at the 46-50 digit row
// (44,000,000 here vs. the teacher's 43,000,000) and carries no B2 column
// -- B2 is a fixed default here rather than derived from B1 (see
// DESIGN.md for the teacher's adaptive-B2 formula, kept as EcmWithAdaptiveB2).
var b1Table = []struct {
	maxDigits int
	b1        uint64
}{
	{15, 2000},
	{20, 11000},
	{25, 50000},
	{30, 250000},
	{35, 1000000},
	{40, 3000000},
	{45, 11000000},
	{50, 44000000},
	{55, 110000000},
	{60, 260000000},
	{65, 850000000},
}

const b1Max = 2900000000

// AdaptiveB2Bound derives B2 from B1 as B1*(ln(B1)+3), the teacher's
// lenstra_ecm.go formula (there used to size the single giant-step scan
// range), kept available for callers that want a B2 tied to B1 instead
// of the spec's fixed default.
func AdaptiveB2Bound(b1 uint64) uint64 {
	return uint64(float64(b1) * (math.Log(float64(b1)) + 3))
}

// EcmWithAdaptiveB2 factors n like Ecm, but derives B2 from each
// residual's adaptively-chosen B1 via AdaptiveB2Bound instead of using
// the spec's fixed B2=100,000.
func EcmWithAdaptiveB2(n *bigint.Int) (*Factors, error) {
	return EcmWithParams(n, Params{
		MaxCurves:  DefaultMaxCurves,
		Seed:       DefaultSeed,
		AdaptiveB2: true,
	})
}

// selectB1 picks B1 from the decimal length of the residual, per the
// table in §4.3.
func selectB1(n *bigint.Int) uint64 {
	digits := n.NumDigits()
	for _, row := range b1Table {
		if digits <= row.maxDigits {
			return row.b1
		}
	}
	return b1Max
}

// trialDivide divides out every prime among the first smallPrimeBound
// primes that divides n, recording each with its multiplicity.
// Grounded on factorizer.go's smallPrimes, raised from the teacher's
// MAX_SMALL=25000 to the spec's 100,000.
func trialDivide(n *bigint.Int, factors *Factors, progress ProgressFunc) *bigint.Int {
	residual := n
	ps := primes.New()
	defer ps.Close()
	for i := 0; i < smallPrimeBound; i++ {
		p := bigint.NewInt(int64(ps.Next()))
		if residual.Cmp(bigint.ONE) == 0 {
			break
		}
		for {
			q, r := residual.QuoRem(p)
			if !r.IsZero() {
				break
			}
			residual = q
			factors.Add(p)
			progress(ProgressEvent{Phase: "trial-division", Residual: residual, Factor: p})
		}
	}
	return residual
}

// Ecm factors n using the default parameters (§4.3): adaptive B1,
// B2=100,000, max_curves=200, seed=1234.
func Ecm(n *bigint.Int) (*Factors, error) {
	return EcmWithParams(n, Params{
		MaxCurves: DefaultMaxCurves,
		B2:        DefaultB2,
		Seed:      DefaultSeed,
	})
}

// EcmWithParams factors n. If p.B1 is zero, B1 is chosen adaptively from
// the decimal length of each residual as trial division and ECM peel
// off factors; a non-zero p.B1 is used as-is for every residual. Zero
// values for B2/MaxCurves/Seed fall back to the package defaults.
func EcmWithParams(n *bigint.Int, p Params) (*Factors, error) {
	if p.B2 == 0 {
		p.B2 = DefaultB2
	}
	if p.MaxCurves == 0 {
		p.MaxCurves = DefaultMaxCurves
	}
	if p.Seed == 0 {
		p.Seed = DefaultSeed
	}
	progress := p.progress()

	factors := NewFactors()
	if n.Cmp(bigint.ONE) <= 0 {
		return factors, nil
	}

	residual := trialDivide(n, factors, progress)
	rng := prng.New(p.Seed)

	return factors, factorLoop(residual, p, rng, progress, factors)
}

// factorLoop repeatedly runs OneFactor against residual, extracting and
// canonicalizing each factor found, until the residual is fully resolved
// into primes. It is used both for the top-level residual (after trial
// division) and recursively for any composite factor ECM turns up,
// sharing the same rng stream and Params throughout -- the "clean
// rewrite" §9 asks for: a factor is fully resolved on the spot instead
// of being re-queued behind a stale outer residual.
func factorLoop(residual *bigint.Int, p Params, rng *prng.Source, progress ProgressFunc, factors *Factors) error {
	for residual.Cmp(bigint.ONE) > 0 {
		b1 := p.B1
		if b1 == 0 {
			b1 = selectB1(residual)
		}
		var b2 uint64
		if p.AdaptiveB2 {
			b2 = AdaptiveB2Bound(b1)
		} else {
			b2 = p.B2
		}
		if b2 < b1 {
			b2 = b1
		}
		// B1/B2 must both be even (§4.2 precondition); round up rather
		// than reject, since the adaptive formulas above can land on
		// odd values that the original table values never do.
		if b1%2 != 0 {
			b1++
		}
		if b2%2 != 0 {
			b2++
		}

		factor, err := OneFactor(residual, b1, b2, p.MaxCurves, rng, progress)
		switch {
		case errors.Is(err, ErrNumberIsPrime):
			factors.Add(residual)
			progress(ProgressEvent{Phase: "factor", Residual: bigint.ONE, Factor: residual})
			residual = bigint.ONE

		case errors.Is(err, ErrECMFailed):
			if p.Strict {
				return wrapf(ErrBoundsTooSmall, "stuck residual=%s", residual.String())
			}
			// Lenient policy (§7/§9): accept the residual as an atomic
			// factor and stop, matching gospel's Decompose, which
			// appends the undecomposed remainder rather than erroring.
			factors.Add(residual)
			residual = bigint.ONE

		case err != nil:
			return err

		default:
			var nextErr error
			residual, nextErr = reduceByFactor(residual, factor, p, rng, progress, factors)
			if nextErr != nil {
				return nextErr
			}
		}
	}
	return nil
}

// reduceByFactor divides every occurrence of factor out of residual,
// then -- if factor isn't itself prime -- recurses into factor via
// factorLoop so its own prime decomposition is folded in at the correct
// multiplicity before control returns to the caller.
func reduceByFactor(residual, factor *bigint.Int, p Params, rng *prng.Source, progress ProgressFunc, factors *Factors) (*bigint.Int, error) {
	count := 0
	for {
		q, r := residual.QuoRem(factor)
		if !r.IsZero() {
			break
		}
		residual = q
		count++
	}
	if count == 0 {
		// Defensive: OneFactor guarantees factor divides n, but guard
		// against a misbehaving caller-supplied residual anyway.
		return residual, nil
	}
	if factor.ProbablyPrime(25) {
		factors.AddN(factor, count)
		progress(ProgressEvent{Phase: "factor", Residual: residual, Factor: factor})
		return residual, nil
	}

	// factor is composite: fully resolve it via its own factorLoop run,
	// then fold each of its primes in `count` times.
	subFactors := NewFactors()
	if err := factorLoop(factor, p, rng, progress, subFactors); err != nil {
		return residual, err
	}
	for _, sp := range subFactors.Primes() {
		factors.AddN(sp, subFactors.Exp(sp)*count)
	}
	return residual, nil
}
