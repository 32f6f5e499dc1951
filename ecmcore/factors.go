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

import "github.com/bfix/ecm/bigint"

// Factors is a mapping from prime factor to multiplicity, preserving the
// order factors were first discovered the way the teacher's
// Factorizer.Decompose appends to its result slice rather than sorting.
type Factors struct {
	order []*bigint.Int
	exp   map[string]int
	val   map[string]*bigint.Int
}

// NewFactors returns an empty factor multiset.
func NewFactors() *Factors {
	return &Factors{
		exp: make(map[string]int),
		val: make(map[string]*bigint.Int),
	}
}

// Add records one more occurrence of prime p.
func (f *Factors) Add(p *bigint.Int) {
	key := p.String()
	if _, ok := f.exp[key]; !ok {
		f.order = append(f.order, p)
		f.val[key] = p
	}
	f.exp[key]++
}

// AddN records n more occurrences of prime p.
func (f *Factors) AddN(p *bigint.Int, n int) {
	for i := 0; i < n; i++ {
		f.Add(p)
	}
}

// Exp returns the multiplicity recorded for p (0 if absent).
func (f *Factors) Exp(p *bigint.Int) int {
	return f.exp[p.String()]
}

// Primes returns the distinct prime factors in discovery order.
func (f *Factors) Primes() []*bigint.Int {
	return f.order
}

// Map returns a plain map snapshot of prime (as decimal string) -> multiplicity,
// for callers that don't care about discovery order.
func (f *Factors) Map() map[string]int {
	out := make(map[string]int, len(f.exp))
	for k, v := range f.exp {
		out[k] = v
	}
	return out
}

// Product multiplies every prime^multiplicity back together; used by
// property tests to check ∏ p^e == N.
func (f *Factors) Product() *bigint.Int {
	p := bigint.ONE
	for _, prime := range f.order {
		p = p.Mul(prime.Pow(f.exp[prime.String()]))
	}
	return p
}
