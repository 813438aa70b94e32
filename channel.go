// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

import "code.hybscloud.com/atomix"

// Channel is the public handle for a bounded, asynchronous MPMC message
// channel: a channelState guarded by a LockPolicy.
//
// A Channel is constructed once (by Build, see options.go) and must not be
// moved or copied after use — every method takes a pointer receiver and
// views/continuations hold a *Channel[T], never a value.
type Channel[T any] struct {
	lock  LockPolicy
	state *channelState[T]

	// approxLen is a best-effort element count updated with plain atomic
	// adds taken after c.lock.Run has already returned, so ApproxLen never
	// contends with the producer/consumer critical section. It may be
	// transiently stale relative to state.len(); Len() always returns the
	// exact, lock-guarded count.
	approxLen atomix.Int64
}

func newChannel[T any](lock LockPolicy, queue *ringBuffer[T]) *Channel[T] {
	return &Channel[T]{
		lock:  lock,
		state: newChannelState(queue),
	}
}

// TrySend attempts to immediately send msg. Returns nil on success, or a
// *FullError[T] carrying msg back if the channel is at capacity.
func (c *Channel[T]) TrySend(msg T) error {
	return c.trySendWithWaker(msg, nil)
}

func (c *Channel[T]) trySendWithWaker(msg T, w Waker) error {
	var err error
	c.lock.Run(func() {
		err = c.state.trySend(msg, w)
	})
	if err == nil {
		c.approxLen.AddAcqRel(1)
	}
	return err
}

// TryReceive attempts to immediately receive the next message. Returns
// ErrEmpty if the channel holds no message.
func (c *Channel[T]) TryReceive() (T, error) {
	return c.tryReceiveWithWaker(nil)
}

func (c *Channel[T]) tryReceiveWithWaker(w Waker) (T, error) {
	var v T
	var err error
	c.lock.Run(func() {
		v, err = c.state.tryReceive(w)
	})
	if err == nil {
		c.approxLen.AddAcqRel(-1)
	}
	return v, err
}

// TryPeek returns a copy of the next message without removing it from the
// channel. Returns ErrEmpty if the channel holds no message.
func (c *Channel[T]) TryPeek() (T, error) {
	return c.tryPeekWithWaker(nil)
}

func (c *Channel[T]) tryPeekWithWaker(w Waker) (T, error) {
	var v T
	var err error
	c.lock.Run(func() {
		v, err = c.state.tryPeek(w)
	})
	return v, err
}

func (c *Channel[T]) pollReceive(w Waker) (T, PollResult) {
	var v T
	var res PollResult
	c.lock.Run(func() {
		v, res = c.state.pollReceive(w)
	})
	if res == Ready {
		c.approxLen.AddAcqRel(-1)
	}
	return v, res
}

func (c *Channel[T]) pollReadyToReceive(w Waker) PollResult {
	var res PollResult
	c.lock.Run(func() {
		res = c.state.pollReadyToReceive(w)
	})
	return res
}

func (c *Channel[T]) pollReadyToSend(w Waker) PollResult {
	var res PollResult
	c.lock.Run(func() {
		res = c.state.pollReadyToSend(w)
	})
	return res
}

// SendContinuation returns a continuation that, when polled (directly, or by
// a cooperative executor), sends msg once capacity is available. The blocking
// Send in blocking.go drives the same kind of continuation.
func (c *Channel[T]) SendContinuation(msg T) *SendContinuation[T] {
	return newSendContinuation(c, msg)
}

// ReceiveContinuation returns a continuation that, when polled, receives the
// next message once one is available.
func (c *Channel[T]) ReceiveContinuation() *ReceiveContinuation[T] {
	return newReceiveContinuation(c)
}

// ReadyToReceiveContinuation returns a continuation that completes once the
// channel is non-empty, without consuming anything.
func (c *Channel[T]) ReadyToReceiveContinuation() *ReadyToReceiveContinuation[T] {
	return newReadyToReceiveContinuation(c)
}

// Sender returns a send-only view of the channel.
func (c *Channel[T]) Sender() Sender[T] {
	return Sender[T]{channel: c}
}

// Receiver returns a receive-only view of the channel.
func (c *Channel[T]) Receiver() Receiver[T] {
	return Receiver[T]{channel: c}
}

// DynamicSender returns a size-erased send-only view of the channel.
func (c *Channel[T]) DynamicSender() DynamicSender[T] {
	return DynamicSender[T]{channel: c}
}

// DynamicReceiver returns a size-erased receive-only view of the channel.
func (c *Channel[T]) DynamicReceiver() DynamicReceiver[T] {
	return DynamicReceiver[T]{channel: c}
}

// Capacity returns the maximum number of elements the channel can hold.
func (c *Channel[T]) Capacity() int {
	return c.state.capacity()
}

// FreeCapacity returns Capacity() - Len().
func (c *Channel[T]) FreeCapacity() int {
	var n int
	c.lock.Run(func() {
		n = c.state.capacity() - c.state.len()
	})
	return n
}

// Len returns the exact, lock-guarded number of elements currently queued.
func (c *Channel[T]) Len() int {
	var n int
	c.lock.Run(func() {
		n = c.state.len()
	})
	return n
}

// IsEmpty reports whether the channel holds no elements.
func (c *Channel[T]) IsEmpty() bool {
	var v bool
	c.lock.Run(func() {
		v = c.state.isEmpty()
	})
	return v
}

// IsFull reports whether the channel is at capacity.
func (c *Channel[T]) IsFull() bool {
	var v bool
	c.lock.Run(func() {
		v = c.state.isFull()
	})
	return v
}

// Clear empties the channel, waking a parked producer continuation if the
// channel was full.
func (c *Channel[T]) Clear() {
	var n int64
	c.lock.Run(func() {
		n = int64(c.state.len())
		c.state.clear()
	})
	c.approxLen.AddAcqRel(-n)
}

// ApproxLen returns a best-effort element count without taking the
// channel's lock, for monitoring code that would rather read a possibly
// stale value than contend with producers and consumers. Use Len for the
// exact, lock-guarded count.
func (c *Channel[T]) ApproxLen() int64 {
	return c.approxLen.LoadAcquire()
}
