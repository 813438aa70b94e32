// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

// Sender is a thin, duplicable send-only reference to a Channel. It holds no
// state of its own — copying a Sender is always valid and cheap.
type Sender[T any] struct {
	channel *Channel[T]
}

// Send returns a continuation that sends msg once capacity is available.
//
// See [Channel.SendContinuation].
func (s Sender[T]) Send(msg T) *SendContinuation[T] {
	return s.channel.SendContinuation(msg)
}

// TrySend attempts to immediately send msg.
//
// See [Channel.TrySend].
func (s Sender[T]) TrySend(msg T) error {
	return s.channel.TrySend(msg)
}

// PollReadyToSend lets a hand-written poll function wait until the channel
// is ready to accept a send.
//
// See [Channel.pollReadyToSend], exposed here as the public poll primitive.
func (s Sender[T]) PollReadyToSend(w Waker) (PollResult, error) {
	return s.channel.pollReadyToSend(w), nil
}

// Capacity returns the maximum number of elements the channel can hold.
func (s Sender[T]) Capacity() int { return s.channel.Capacity() }

// FreeCapacity returns the number of additional elements the channel can
// currently accept.
func (s Sender[T]) FreeCapacity() int { return s.channel.FreeCapacity() }

// Len returns the number of elements currently queued.
func (s Sender[T]) Len() int { return s.channel.Len() }

// IsEmpty reports whether the channel holds no elements.
func (s Sender[T]) IsEmpty() bool { return s.channel.IsEmpty() }

// IsFull reports whether the channel is at capacity.
func (s Sender[T]) IsFull() bool { return s.channel.IsFull() }

// Clear empties the channel.
func (s Sender[T]) Clear() { s.channel.Clear() }

// Receiver is a thin, duplicable receive-only reference to a Channel.
type Receiver[T any] struct {
	channel *Channel[T]
}

// Receive returns a continuation that receives the next message once one is
// available.
//
// See [Channel.ReceiveContinuation].
func (r Receiver[T]) Receive() *ReceiveContinuation[T] {
	return r.channel.ReceiveContinuation()
}

// ReadyToReceive returns a continuation that completes once the channel is
// non-empty, without consuming anything.
func (r Receiver[T]) ReadyToReceive() *ReadyToReceiveContinuation[T] {
	return r.channel.ReadyToReceiveContinuation()
}

// TryReceive attempts to immediately receive the next message.
func (r Receiver[T]) TryReceive() (T, error) {
	return r.channel.TryReceive()
}

// TryPeek returns a copy of the next message without removing it.
func (r Receiver[T]) TryPeek() (T, error) {
	return r.channel.TryPeek()
}

// Capacity returns the maximum number of elements the channel can hold.
func (r Receiver[T]) Capacity() int { return r.channel.Capacity() }

// FreeCapacity returns the number of additional elements the channel can
// currently accept.
func (r Receiver[T]) FreeCapacity() int { return r.channel.FreeCapacity() }

// Len returns the number of elements currently queued.
func (r Receiver[T]) Len() int { return r.channel.Len() }

// IsEmpty reports whether the channel holds no elements.
func (r Receiver[T]) IsEmpty() bool { return r.channel.IsEmpty() }

// IsFull reports whether the channel is at capacity.
func (r Receiver[T]) IsFull() bool { return r.channel.IsFull() }

// Clear empties the channel.
func (r Receiver[T]) Clear() { r.channel.Clear() }
