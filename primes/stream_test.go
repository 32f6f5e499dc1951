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

package primes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func isPrimeSlow(n uint64) bool {
	if n < 2 {
		return false
	}
	for p := uint64(2); p*p <= n; p++ {
		if n%p == 0 {
			return false
		}
	}
	return true
}

func TestFirstPrimes(t *testing.T) {
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	s := New()
	defer s.Close()
	for i, w := range want {
		require.Equal(t, w, s.Next(), "prime #%d", i)
	}
}

func TestCrossesSegmentBoundary(t *testing.T) {
	s := New()
	defer s.Close()
	var prev uint64
	count := 0
	// segment is 1<<16; walk far enough to cross at least one boundary
	// and check every value produced is actually prime and ascending.
	for s.Peek() < segment+1000 {
		p := s.Next()
		require.Truef(t, isPrimeSlow(p), "%d is not prime", p)
		require.Greaterf(t, p, prev, "stream not strictly ascending")
		prev = p
		count++
		require.LessOrEqualf(t, count, 10000, "did not reach segment boundary in a reasonable number of primes")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New()
	defer s.Close()
	a := s.Peek()
	b := s.Peek()
	c := s.Next()
	require.Equal(t, a, b)
	require.Equal(t, b, c)
	require.NotEqual(t, c, s.Next(), "Next() after Peek() should advance past the peeked value")
}

func TestSkipBelow(t *testing.T) {
	s := New()
	defer s.Close()
	s.SkipBelow(100)
	require.EqualValues(t, 101, s.Next())
}

func TestTakeWhile(t *testing.T) {
	s := New()
	defer s.Close()
	got := s.TakeWhile(func(p uint64) bool { return p < 30 })
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	require.Equal(t, want, got)
	require.EqualValues(t, 31, s.Next(), "after TakeWhile(<30)")
}
