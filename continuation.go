// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

// SendContinuation is a poll-based state machine that sends one message once
// the channel has capacity. It is the Go stand-in for the spec's
// Future-returning send: instead of an async fn, the caller drives it by
// calling Poll from whatever loop (a cooperative executor, a hand-rolled
// select, or the blocking Send wrapper) is waiting on it.
//
// A SendContinuation is single-use: once Poll returns Ready, calling Poll
// again panics, matching the once-only contract of a Rust Future polled past
// completion.
type SendContinuation[T any] struct {
	channel *Channel[T]
	msg     T
	done    bool
}

func newSendContinuation[T any](c *Channel[T], msg T) *SendContinuation[T] {
	return &SendContinuation[T]{channel: c, msg: msg}
}

// Poll attempts to send the continuation's message. If the channel is full,
// w is registered as the parked producer's waker and Poll returns Pending;
// the caller must poll again only after w is invoked. If the send succeeds,
// Poll returns Ready and must not be called again.
func (c *SendContinuation[T]) Poll(w Waker) PollResult {
	if c.done {
		panic("taskchan: SendContinuation polled after completion")
	}
	err := c.channel.trySendWithWaker(c.msg, w)
	if err == nil {
		c.done = true
		return Ready
	}
	return Pending
}

// Cancel abandons the continuation without sending. Safe to call at any
// point; calling Poll afterwards panics, same as after a successful send.
func (c *SendContinuation[T]) Cancel() {
	c.done = true
}

// ReceiveContinuation is a poll-based state machine that receives one
// message once the channel is non-empty.
type ReceiveContinuation[T any] struct {
	channel *Channel[T]
	done    bool
}

func newReceiveContinuation[T any](c *Channel[T]) *ReceiveContinuation[T] {
	return &ReceiveContinuation[T]{channel: c}
}

// Poll attempts to receive the next message. If the channel is empty, w is
// registered as the consumer's waker and Poll returns the zero value of T
// with Pending. If a message is available, Poll returns it with Ready and
// must not be called again.
func (c *ReceiveContinuation[T]) Poll(w Waker) (T, PollResult) {
	if c.done {
		panic("taskchan: ReceiveContinuation polled after completion")
	}
	v, res := c.channel.pollReceive(w)
	if res == Ready {
		c.done = true
	}
	return v, res
}

// Cancel abandons the continuation without receiving.
func (c *ReceiveContinuation[T]) Cancel() {
	c.done = true
}

// ReadyToReceiveContinuation is a poll-based state machine that completes
// once the channel becomes non-empty, without consuming anything. It backs
// patterns that want to wait for data before deciding how to read it (for
// example, via TryPeek or TryReceive from a non-suspending context).
type ReadyToReceiveContinuation[T any] struct {
	channel *Channel[T]
	done    bool
}

func newReadyToReceiveContinuation[T any](c *Channel[T]) *ReadyToReceiveContinuation[T] {
	return &ReadyToReceiveContinuation[T]{channel: c}
}

// Poll registers w as the consumer's waker and returns Ready iff the channel
// is currently non-empty. Unlike SendContinuation and ReceiveContinuation,
// Poll may be called again after a Ready result — observing readiness does
// not consume anything, so the continuation is reusable.
func (c *ReadyToReceiveContinuation[T]) Poll(w Waker) PollResult {
	return c.channel.pollReadyToReceive(w)
}

// Cancel abandons the continuation. Provided for symmetry with
// SendContinuation and ReceiveContinuation; a ReadyToReceiveContinuation
// holds no resources to release.
func (c *ReadyToReceiveContinuation[T]) Cancel() {
	c.done = true
}
