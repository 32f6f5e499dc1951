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

package xerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBase = errors.New("base failure")

func TestUnwrapIsCompatible(t *testing.T) {
	wrapped := New(errBase, "N=%d", 42)
	require.ErrorIs(t, wrapped, errBase)
}

func TestErrorIncludesContext(t *testing.T) {
	wrapped := New(errBase, "N=%d", 42)
	require.Equal(t, "base failure [N=42]", wrapped.Error())
}
