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

// Package primes provides an ascending, infinite stream of prime numbers
// built on gospel/data's generic Generator boilerplate, with the
// skip-while/take-while helpers the ECM core needs: skip below a
// threshold to resume Stage 2's prime cursor, take while a predicate
// holds to consume a window of primes between two bounds.
package primes

import (
	"github.com/bfix/ecm/data"
)

// segment is the width of each sieve-of-Eratosthenes block the generator
// extends the stream by. Small enough to keep memory flat, large enough
// that re-sieving overhead stays negligible against 10^5-10^8 bounds.
const segment = 1 << 16

// genFunc produces ascending primes onto the generator channel using a
// segmented sieve of Eratosthenes: a growing list of base primes (up to
// sqrt of the segment's upper bound) strikes out composites in each new
// block.
func genFunc(out data.GeneratorChannel[uint64]) {
	var basePrimes []uint64
	sieveSmall := func(limit uint64) []uint64 {
		isComposite := make([]bool, limit+1)
		var ps []uint64
		for p := uint64(2); p <= limit; p++ {
			if isComposite[p] {
				continue
			}
			ps = append(ps, p)
			for m := p * p; m <= limit; m += p {
				isComposite[m] = true
			}
		}
		return ps
	}

	lo := uint64(0)
	for {
		hi := lo + segment
		if basePrimes == nil || basePrimes[len(basePrimes)-1]*basePrimes[len(basePrimes)-1] < hi {
			basePrimes = sieveSmall(isqrt(hi) + 1)
		}
		isComposite := make([]bool, segment)
		for _, p := range basePrimes {
			start := lo
			if start < p*p {
				start = p * p
			} else {
				rem := start % p
				if rem != 0 {
					start += p - rem
				} else if start == 0 {
					start = p * p
				}
			}
			for m := start; m < hi; m += p {
				if m >= lo {
					isComposite[m-lo] = true
				}
			}
		}
		start := lo
		if start < 2 {
			start = 2
		}
		for n := start; n < hi; n++ {
			if !isComposite[n-lo] {
				if !out.Yield(n) {
					return
				}
			}
		}
		lo = hi
	}
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(1) << (uint(bitLen64(n)+1) / 2)
	for {
		nr := (r + n/r) / 2
		if nr >= r {
			return r
		}
		r = nr
	}
}

func bitLen64(n uint64) int {
	b := 0
	for n > 0 {
		b++
		n >>= 1
	}
	return b
}

// Stream is an ascending, infinite sequence of prime numbers with
// amortized O(1) successor cost.
type Stream struct {
	gen  *data.Generator[uint64]
	ch   <-chan uint64
	peek *uint64
}

// New starts a fresh prime stream at 2.
func New() *Stream {
	g := data.NewGenerator(genFunc)
	return &Stream{gen: g, ch: g.Run()}
}

// Next returns the next prime in ascending order.
func (s *Stream) Next() uint64 {
	if s.peek != nil {
		p := *s.peek
		s.peek = nil
		return p
	}
	return <-s.ch
}

// Peek returns the next prime without consuming it.
func (s *Stream) Peek() uint64 {
	if s.peek == nil {
		p := <-s.ch
		s.peek = &p
	}
	return *s.peek
}

// SkipBelow advances the stream past every prime strictly below
// threshold, leaving the first prime >= threshold as the next value.
func (s *Stream) SkipBelow(threshold uint64) {
	for s.Peek() < threshold {
		s.Next()
	}
}

// TakeWhile consumes and returns every remaining prime for which pred
// holds, stopping (without consuming) at the first prime that fails it.
func (s *Stream) TakeWhile(pred func(p uint64) bool) []uint64 {
	var out []uint64
	for pred(s.Peek()) {
		out = append(out, s.Next())
	}
	return out
}

// Close releases the generator goroutine backing the stream.
func (s *Stream) Close() {
	s.gen.Stop()
}
