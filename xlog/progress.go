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

package xlog

import (
	"go.uber.org/zap"

	"github.com/bfix/ecm/ecmcore"
)

// AsProgress adapts the package logger into an ecmcore.ProgressFunc, so a
// caller can wire curve-search progress straight into xlog at DBG level
// instead of writing its own sink. Fields follow the same
// zap.Field-per-value shape neo-go's server/consensus logging uses
// rather than a single interpolated message string.
func AsProgress() ecmcore.ProgressFunc {
	return func(ev ecmcore.ProgressEvent) {
		switch {
		case ev.Factor != nil:
			logger.Debug("factor found",
				zap.String("factor", ev.Factor.String()),
				zap.String("residual", ev.Residual.String()))
		case ev.Phase == "curve":
			logger.Debug("curve attempt",
				zap.Int("curve", ev.CurveIndex),
				zap.String("residual", ev.Residual.String()),
				zap.Uint64("b1", ev.B1),
				zap.Uint64("b2", ev.B2))
		default:
			logger.Debug(ev.Phase,
				zap.Int("curve", ev.CurveIndex),
				zap.String("residual", ev.Residual.String()))
		}
	}
}
