// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

// Builder configures channel creation with a fluent API, the same pattern
// the rest of the retrieved queue family uses: pick a capacity, pick a
// policy, then Build.
//
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	capacity int
	lock     LockPolicy
	buf      any // set by WithBuffer; holds a pre-sized []T for the eventual T
}

// NewBuilder starts a Builder for a channel of the given capacity. Capacity
// rounds up to the next power of 2 so the ring buffer can index with a mask
// instead of a modulo; NewBuilder(1000) yields a channel of capacity 1024.
//
// Panics if capacity < 1.
//
// The default policy is InterruptSafe; call NoInterference() to opt into
// the uninstrumented single-context policy instead.
func NewBuilder(capacity int) *Builder {
	if capacity < 1 {
		panic("taskchan: capacity must be >= 1")
	}
	return &Builder{capacity: roundToPow2(capacity), lock: &InterruptSafe{}}
}

// NoInterference selects the NoInterference LockPolicy: no synchronization,
// valid only when every Sender and Receiver derived from the built channel
// is used from a single goroutine.
func (b *Builder) NoInterference() *Builder {
	b.lock = NoInterference{}
	return b
}

// InterruptSafe selects the InterruptSafe LockPolicy (the default): a
// sync.Mutex-guarded critical section, safe to share across goroutines
// including ones standing in for interrupt handlers.
func (b *Builder) InterruptSafe() *Builder {
	b.lock = &InterruptSafe{}
	return b
}

// WithBuffer supplies a pre-allocated backing slice for the channel's ring
// buffer instead of letting Build allocate one. len(buf) must already be a
// power of 2 and becomes the channel's capacity, overriding whatever
// capacity NewBuilder was given.
//
// This is a package-level function, not a Builder method, because Go
// forbids a generic method from introducing its own type parameter on a
// non-generic receiver type.
func WithBuffer[T any](b *Builder, buf []T) *Builder {
	if !isPow2(len(buf)) {
		panic("taskchan: WithBuffer requires len(buf) to be a power of 2")
	}
	b.buf = buf
	return b
}

// Build constructs the channel. If WithBuffer[T] was called with a matching
// T, its backing slice is used directly and no further allocation happens
// for the ring buffer; otherwise Build allocates a fresh slice of the
// builder's capacity.
//
// Panics if WithBuffer was called with a slice of a type other than T.
func Build[T any](b *Builder) *Channel[T] {
	if b.buf != nil {
		buf, ok := b.buf.([]T)
		if !ok {
			panic("taskchan: WithBuffer element type does not match Build[T]")
		}
		return newChannel[T](b.lock, newRingBufferFromSlice(buf))
	}
	return newChannel[T](b.lock, newRingBuffer[T](b.capacity))
}
