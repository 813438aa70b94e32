// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

import (
	"context"

	"code.hybscloud.com/spin"
)

// spinAttempts bounds the fast path Send/Receive try before falling back to
// parking. It is small: the common case this helps is a producer and
// consumer briefly racing past each other, not sustained contention.
const spinAttempts = 32

// Send blocks until msg is sent or ctx is done, whichever comes first. It is
// the blocking convenience wrapper around SendContinuation, for callers
// that are not themselves a cooperative executor.
//
// Panics if ctx is nil.
func (c *Channel[T]) Send(ctx context.Context, msg T) error {
	if ctx == nil {
		panic("taskchan: Send called with nil context")
	}
	var sw spin.Wait
	for i := 0; i < spinAttempts; i++ {
		if err := c.TrySend(msg); err == nil {
			return nil
		}
		sw.Once()
	}
	cont := newSendContinuation(c, msg)
	return pollUntilReady(ctx, func(w Waker) PollResult {
		return cont.Poll(w)
	})
}

// Receive blocks until a message is received or ctx is done, whichever comes
// first. It is the blocking convenience wrapper around ReceiveContinuation.
//
// Panics if ctx is nil.
func (c *Channel[T]) Receive(ctx context.Context) (T, error) {
	if ctx == nil {
		panic("taskchan: Receive called with nil context")
	}
	var sw spin.Wait
	for i := 0; i < spinAttempts; i++ {
		if v, err := c.TryReceive(); err == nil {
			return v, nil
		}
		sw.Once()
	}
	cont := newReceiveContinuation(c)
	var result T
	err := pollUntilReady(ctx, func(w Waker) PollResult {
		v, res := cont.Poll(w)
		if res == Ready {
			result = v
		}
		return res
	})
	return result, err
}

// pollUntilReady drives a single-shot poll function to completion, bridging
// its Waker-based wake-up to ctx.Done() the way promisealtone's Await bridges
// a promise's resolution to a channel-based blocking wait.
func pollUntilReady(ctx context.Context, poll func(Waker) PollResult) error {
	woken := make(chan struct{}, 1)
	wake := func() {
		select {
		case woken <- struct{}{}:
		default:
		}
	}
	for {
		if poll(wake) == Ready {
			return nil
		}
		select {
		case <-woken:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
