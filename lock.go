// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

import "sync"

// LockPolicy is the Go realization of the spec's Lock<M>: a mutual-exclusion
// façade with one operation, Run, which executes fn with exclusive access to
// the protected channelState. Run must never be called re-entrantly and must
// never be held across a suspension point — every call site in this package
// runs a bounded try-operation (enqueue/dequeue of one element plus at most
// one wake) and returns.
//
// Go has no typestate-generic "pick the locking strategy at zero runtime
// cost, per instantiation" the way Rust's M: RawMutex type parameter does;
// LockPolicy is a runtime interface value instead, selected once at
// construction via Builder. See SPEC_FULL.md §9 for the rationale.
type LockPolicy interface {
	// Run executes fn with exclusive access to the channel's state.
	Run(fn func())
	// Shareable reports whether a Channel using this policy may be safely
	// handed to multiple goroutines concurrently, including from contexts
	// standing in for interrupt handlers. It gates conversion to the
	// Shareable dynamic views.
	Shareable() bool
}

// NoInterference is a LockPolicy for strictly single-context use: the
// caller guarantees all accesses to the channel happen from one goroutine
// (or one cooperative executor's single thread of poll calls) at a time.
// Run is a direct, uninstrumented call — there is nothing to synchronize.
//
// Using NoInterference from more than one goroutine is undefined behavior,
// exactly like violating the Rust NoopRawMutex contract: it is a caller
// programming error, not a condition this type detects.
type NoInterference struct{}

// Run calls fn directly.
func (NoInterference) Run(fn func()) { fn() }

// Shareable always reports false: a NoInterference channel must not be
// shared across goroutines.
func (NoInterference) Shareable() bool { return false }

// InterruptSafe is a LockPolicy for use when a producer may be an
// interrupt-style caller (a goroutine standing in for an ISR, or any
// goroutine that must not be kept waiting): Run holds a sync.Mutex for the
// duration of the closure.
//
// This is the hosted-Go substitution the spec's design notes anticipate:
// where bare-metal Embassy disables interrupts, a hosted Go program uses a
// short, bounded critical section instead. Critical sections here are as
// short as the embedded original's: one enqueue/dequeue plus at most one
// wake.
type InterruptSafe struct {
	mu sync.Mutex
}

// Run holds the mutex for the duration of fn.
func (p *InterruptSafe) Run(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}

// Shareable always reports true: an InterruptSafe channel may be shared
// freely across goroutines.
func (*InterruptSafe) Shareable() bool { return true }
