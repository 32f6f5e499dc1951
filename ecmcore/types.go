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

// Package ecmcore implements Lenstra's elliptic curve factorization
// method: Suyama-parameterized Montgomery curves, a two-stage (B1/B2)
// continuation per curve, and the outer trial-division-then-ECM driver.
package ecmcore

import (
	"errors"

	"github.com/bfix/ecm/bigint"
	"github.com/bfix/ecm/xerrors"
)

// Base error sentinels, the "kinds" of §6/§7. Use errors.Is against
// these, not the wrapped *xerrors.Error values the core actually returns.
var (
	// ErrBoundsNotEven is returned when B1 or B2 is odd.
	ErrBoundsNotEven = errors.New("ecm: B1 and B2 must be even")
	// ErrBoundsTooSmall is returned by the driver in strict mode when
	// ECM exhausts its curve budget on a residual without finding a
	// factor (see Params.Strict).
	ErrBoundsTooSmall = errors.New("ecm: bounds too small for residual")
	// ErrECMFailed ("MissedAllCurves") signals that max_curves curves
	// were tried without a hit; not necessarily fatal to the driver.
	ErrECMFailed = errors.New("ecm: all curves missed")
	// ErrNumberIsPrime signals that N passed the primality check the
	// single-curve search runs before trying any curve; the driver
	// treats this as "record N as a prime factor", not an error.
	ErrNumberIsPrime = errors.New("ecm: number is prime")
)

// ProgressEvent is one record describing a driver or curve-search
// milestone, delivered to an optional Params.Progress sink. It is the
// host collaborator named in §1/§6: the core never blocks on it and
// never requires one to be set.
type ProgressEvent struct {
	Phase      string // "trial-division", "curve", "stage1", "stage2", "factor"
	Residual   *bigint.Int
	CurveIndex int
	B1, B2     uint64
	Factor     *bigint.Int // set only for Phase == "factor" and "trial-division"
}

// ProgressFunc receives ProgressEvents. It must not block for long: the
// core calls it synchronously at each milestone, inside curve attempts
// too (from several worker goroutines at once under EcmParallel).
type ProgressFunc func(ProgressEvent)

func noopProgress(ProgressEvent) {}

// Params configures a factorization run.
type Params struct {
	B1         uint64 // Stage 1 smoothness bound (0: chosen from N's size); odd values are rounded up
	B2         uint64 // Stage 2 smoothness bound (0: DefaultB2); raised to B1 if smaller, odd values rounded up
	MaxCurves  int    // curves to try per residual before giving up
	Seed       int64  // PRNG seed; same seed + same N => same result
	Strict     bool   // true: ECMFailed surfaces as ErrBoundsTooSmall
	AdaptiveB2 bool   // true: derive B2 from B1 (see AdaptiveB2Bound) instead of using a fixed B2
	Progress   ProgressFunc
}

func (p Params) progress() ProgressFunc {
	if p.Progress == nil {
		return noopProgress
	}
	return p.Progress
}

// DefaultMaxCurves and DefaultB2 are the driver's defaults per §4.3.
const (
	DefaultMaxCurves = 200
	DefaultB2        = 100000
	DefaultSeed      = 1234
)

func wrapf(base error, format string, args ...interface{}) error {
	return xerrors.New(base, format, args...)
}
