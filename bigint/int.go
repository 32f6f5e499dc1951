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

// Package bigint wraps math/big.Int with the operations the ECM core
// needs: modular arithmetic that degrades gracefully when the modulus
// isn't prime, since ECM's whole point is that a "failed" inversion is
// a successful factorization.
package bigint

import (
	"math/big"
)

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
	// THREE as number "3"
	THREE = NewInt(3)
	// FOUR as number "4"
	FOUR = NewInt(4)
	// FIVE as number "5"
	FIVE = NewInt(5)
	// SIX as number "6"
	SIX = NewInt(6)
)

// Int is an integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a decimal string representation into an Int.
func NewIntFromString(s string) *Int {
	v := new(big.Int)
	if _, ok := v.SetString(s, 10); !ok {
		panic("bigint: invalid decimal string " + s)
	}
	return &Int{v: v}
}

// NewIntFromBytes converts a big-endian binary array into an unsigned Int.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// Bytes returns a big-endian byte array representation of the integer.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// String converts an Int to its decimal string representation.
func (i *Int) String() string {
	return i.v.String()
}

// NumDigits returns the number of decimal digits in the Int (its decimal
// length, used by the driver to pick B1 from the size of the residual).
func (i *Int) NumDigits() int {
	return len(i.v.Text(10))
}

// ProbablyPrime checks primality with n Miller-Rabin/Baillie-PSW rounds.
// The chance of a false positive is less than 4^(-n).
func (i *Int) ProbablyPrime(n int) bool {
	return i.v.ProbablyPrime(n)
}

// Add two Ints.
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub subtracts two Ints.
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul multiplies two Ints.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Sqr squares an Int. Separate from Mul since a dedicated squaring is
// the one the spec calls out by name (§6) and the teacher's Pow(2) goes
// through the general exponentiation path instead.
func (i *Int) Sqr() *Int {
	return &Int{v: new(big.Int).Mul(i.v, i.v)}
}

// Div returns the Euclidean quotient of i/j (no remainder kept).
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// DivExact divides i by j, which the caller guarantees divides i evenly.
func (i *Int) DivExact(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// QuoRem returns the quotient of i/j truncated toward zero and the
// remainder, which takes the sign of i.
func (i *Int) QuoRem(j *Int) (q, r *Int) {
	qq, rr := new(big.Int), new(big.Int)
	qq.QuoRem(i.v, j.v, rr)
	return &Int{v: qq}, &Int{v: rr}
}

// Mod returns the modulus of i by j, normalized to [0, j).
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// BitLen returns the number of bits required to represent the Int.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Bit returns the value of the bit at position n (0 = least significant).
func (i *Int) Bit(n int) uint {
	return i.v.Bit(n)
}

// ModInverse returns the multiplicative inverse of i modulo j. When i and
// j are not coprime there is no inverse; ok is false and the caller should
// fall back to GCD(i, j), which is then a non-trivial divisor of j unless
// i is a multiple of j. This fallible signature is the generalization
// §6/§9 require over a plain field inverse: in ECM's ring Z/NZ a "failed"
// inverse is a successful factorization, not an error.
func (i *Int) ModInverse(j *Int) (inv *Int, ok bool) {
	r := new(big.Int).ModInverse(i.v, j.v)
	if r == nil {
		return nil, false
	}
	return &Int{v: r}, true
}

// Cmp compares two Ints: -1, 0 or 1 as i <, ==, > j.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals reports whether two Ints have the same value.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// IsZero reports whether the Int is zero.
func (i *Int) IsZero() bool {
	return i.v.Sign() == 0
}

// GCD returns the greatest common divisor of two Ints.
func (i *Int) GCD(j *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, i.v, j.v)}
}

// ModPow returns the modular exponentiation i^n mod m.
func (i *Int) ModPow(n, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, n.v, m.v)}
}

// Pow raises i to the (small, non-negative) exponent n with no modular
// reduction.
func (i *Int) Pow(n int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(int64(n)), nil)}
}

// Int64 returns the int64 value of an Int, truncating if it overflows.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// Uint64 returns the uint64 value of an Int.
func (i *Int) Uint64() uint64 {
	return i.v.Uint64()
}

// Big exposes the underlying math/big.Int for interop with code that
// needs the standard library representation directly (e.g. prng.Source).
func (i *Int) Big() *big.Int {
	return i.v
}

// FromBig wraps an existing math/big.Int without copying.
func FromBig(v *big.Int) *Int {
	return &Int{v: v}
}
