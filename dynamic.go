// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

// dynamicChannel is the capability surface a size-erased view dispatches
// through. A *Channel[T] is the only implementation in this package, but the
// interface exists so DynamicSender/DynamicReceiver can hold heterogeneous
// channels (different capacities, different LockPolicy types) behind one
// concrete Go type, the same way the original erases over both N and M.
//
// Go's capacity is already a runtime int rather than a const generic, and a
// Channel[T] already holds its LockPolicy as an interface value, so neither
// needs erasing here — but the interface is kept as the full six-operation
// surface (matching the
// original's DynamicChannel trait one-for-one) so dynamic.go never needs to
// reach back into Channel's internals.
type dynamicChannel[T any] interface {
	trySendWithWaker(msg T, w Waker) error
	tryReceiveWithWaker(w Waker) (T, error)
	tryPeekWithWaker(w Waker) (T, error)
	pollReadyToSend(w Waker) PollResult
	pollReadyToReceive(w Waker) PollResult
	pollReceive(w Waker) (T, PollResult)
}

// DynamicSender is a send-only view that erases the concrete LockPolicy type
// behind an interface, so code that doesn't care how a channel is locked can
// hold DynamicSender[T] values from channels built with different
// LockPolicy implementations.
type DynamicSender[T any] struct {
	channel dynamicChannel[T]
}

// TrySend attempts to immediately send msg.
func (s DynamicSender[T]) TrySend(msg T) error {
	return s.channel.trySendWithWaker(msg, nil)
}

// Send returns a continuation that sends msg once capacity is available.
func (s DynamicSender[T]) Send(msg T) *dynamicSendContinuation[T] {
	return &dynamicSendContinuation[T]{channel: s.channel, msg: msg}
}

// PollReadyToSend registers w and reports whether the channel currently has
// capacity for a send.
func (s DynamicSender[T]) PollReadyToSend(w Waker) PollResult {
	return s.channel.pollReadyToSend(w)
}

// ShareableDynamicSender is a DynamicSender additionally guaranteed to be
// safe to use from more than one goroutine concurrently. It can only be
// constructed from a channel whose LockPolicy reports Shareable() == true —
// see [Channel.ShareableDynamicSender].
type ShareableDynamicSender[T any] struct {
	DynamicSender[T]
}

// DynamicReceiver is a receive-only view that erases the concrete LockPolicy
// type behind an interface.
type DynamicReceiver[T any] struct {
	channel dynamicChannel[T]
}

// TryReceive attempts to immediately receive the next message.
func (r DynamicReceiver[T]) TryReceive() (T, error) {
	return r.channel.tryReceiveWithWaker(nil)
}

// TryPeek returns a copy of the next message without removing it.
func (r DynamicReceiver[T]) TryPeek() (T, error) {
	return r.channel.tryPeekWithWaker(nil)
}

// Receive returns a continuation that receives the next message once one is
// available.
func (r DynamicReceiver[T]) Receive() *dynamicReceiveContinuation[T] {
	return &dynamicReceiveContinuation[T]{channel: r.channel}
}

// PollReadyToReceive registers w and reports whether the channel currently
// holds a message.
func (r DynamicReceiver[T]) PollReadyToReceive(w Waker) PollResult {
	return r.channel.pollReadyToReceive(w)
}

// ShareableDynamicReceiver is a DynamicReceiver additionally guaranteed to
// be safe to use from more than one goroutine concurrently. It can only be
// constructed from a channel whose LockPolicy reports Shareable() == true —
// see [Channel.ShareableDynamicReceiver].
type ShareableDynamicReceiver[T any] struct {
	DynamicReceiver[T]
}

// ShareableDynamicSender erases the channel's LockPolicy type and asserts,
// by returning ok == false otherwise, that the policy is safe to share
// across goroutines. The reverse conversion (treating a non-shareable
// channel as shareable) is never offered — there is no escape hatch.
func (c *Channel[T]) ShareableDynamicSender() (ShareableDynamicSender[T], bool) {
	if !c.lock.Shareable() {
		return ShareableDynamicSender[T]{}, false
	}
	return ShareableDynamicSender[T]{DynamicSender[T]{channel: c}}, true
}

// ShareableDynamicReceiver is the receive-side counterpart of
// [Channel.ShareableDynamicSender].
func (c *Channel[T]) ShareableDynamicReceiver() (ShareableDynamicReceiver[T], bool) {
	if !c.lock.Shareable() {
		return ShareableDynamicReceiver[T]{}, false
	}
	return ShareableDynamicReceiver[T]{DynamicReceiver[T]{channel: c}}, true
}

// dynamicSendContinuation is the DynamicSender analogue of SendContinuation,
// driven through the dynamicChannel interface instead of a concrete
// *Channel[T].
type dynamicSendContinuation[T any] struct {
	channel dynamicChannel[T]
	msg     T
	done    bool
}

// Poll attempts to send the continuation's message. See
// [SendContinuation.Poll] for the completion contract.
func (c *dynamicSendContinuation[T]) Poll(w Waker) PollResult {
	if c.done {
		panic("taskchan: dynamic SendContinuation polled after completion")
	}
	if err := c.channel.trySendWithWaker(c.msg, w); err == nil {
		c.done = true
		return Ready
	}
	return Pending
}

// dynamicReceiveContinuation is the DynamicReceiver analogue of
// ReceiveContinuation.
type dynamicReceiveContinuation[T any] struct {
	channel dynamicChannel[T]
	done    bool
}

// Poll attempts to receive the next message. See [ReceiveContinuation.Poll]
// for the completion contract.
func (c *dynamicReceiveContinuation[T]) Poll(w Waker) (T, PollResult) {
	if c.done {
		panic("taskchan: dynamic ReceiveContinuation polled after completion")
	}
	v, res := c.channel.pollReceive(w)
	if res == Ready {
		c.done = true
	}
	return v, res
}
