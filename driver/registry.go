// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"log/slog"
	"sync"
)

var (
	regMu   sync.RWMutex
	regGPU  GPU
	regName string
)

// Register installs a GPU driver as the process default. Only one driver is
// active at a time; a subsequent Register replaces the previous one. Driver
// packages call Register from init, so users select a driver with a blank
// import.
func Register(g GPU) {
	if g == nil {
		panic("driver: Register called with nil GPU")
	}
	regMu.Lock()
	regGPU = g
	regName = g.Name()
	regMu.Unlock()
}

// Default returns the registered GPU driver, or nil if none is registered.
func Default() GPU {
	regMu.RLock()
	g := regGPU
	regMu.RUnlock()
	return g
}

// loggerSetter is implemented by drivers that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// PropagateLogger passes a logger to the registered driver if it implements
// SetLogger. present.SetLogger calls this so drivers share the package
// logger configuration.
func PropagateLogger(l *slog.Logger) {
	g := Default()
	if ls, ok := g.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
