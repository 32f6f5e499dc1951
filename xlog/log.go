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

// Package xlog is the ECM core's optional diagnostic sink: a package-level
// *zap.Logger in the same shape neo-go wires through its CLI/server/core
// packages (a shared structured logger, level-adjustable at runtime),
// scoped down to what a curve search needs to report -- curve attempts,
// stage transitions, factor extractions -- as the spec's optional
// progress collaborator (§1/§6).
package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level aliases so callers don't need their own zapcore import just to
// call SetLevel.
const (
	ERROR = zapcore.ErrorLevel
	WARN  = zapcore.WarnLevel
	INFO  = zapcore.InfoLevel
	DBG   = zapcore.DebugLevel
)

var (
	atom   = zap.NewAtomicLevelAt(INFO)
	logger = newLogger()
)

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atom
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	l, err := cfg.Build()
	if err != nil {
		// zap's own development config never fails to build; a panic
		// here would mean a broken encoder registration.
		panic(err)
	}
	return l
}

// SetLevel adjusts the minimum level written from here on, atomically --
// safe to call while curve attempts are logging concurrently (EcmParallel).
func SetLevel(level zapcore.Level) {
	atom.SetLevel(level)
}

// L returns the package logger, for callers that want structured fields
// directly instead of going through AsProgress.
func L() *zap.Logger {
	return logger
}

// Sync flushes any buffered log entries; call before process exit.
func Sync() error {
	return logger.Sync()
}
