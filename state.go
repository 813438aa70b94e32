// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

// PollResult mirrors the two-state outcome of a poll-* operation: the
// operation either completed (ready) or needs the caller to suspend and wait
// to be woken (pending).
type PollResult int

const (
	Pending PollResult = iota
	Ready
)

// channelState composes one ringBuffer with two WakerSlots: one for the
// single consumer continuation waiting on non-empty, one for the most
// recently parked producer continuation waiting on non-full.
//
// Every method here assumes the caller already holds the channel's lock —
// channelState performs no synchronization of its own, exactly like
// ringBuffer. The lock still migrates between cores as producer and
// consumer goroutines take turns running it, so consumerSlot and
// producerSlot are kept on separate cache lines with pad to cut down on
// that cache-line bouncing.
type channelState[T any] struct {
	queue        *ringBuffer[T]
	consumerSlot WakerSlot
	_            pad
	producerSlot WakerSlot
}

func newChannelState[T any](queue *ringBuffer[T]) *channelState[T] {
	return &channelState[T]{queue: queue}
}

// trySend attempts to enqueue msg. On success, the consumer is woken. On
// failure (queue full), if w is non-nil it is registered as the parked
// producer's waker and a *FullError[T] is returned carrying msg back.
func (s *channelState[T]) trySend(msg T, w Waker) error {
	if s.queue.pushBack(msg) {
		s.consumerSlot.Wake()
		return nil
	}
	if w != nil {
		s.producerSlot.Register(w)
	}
	return &FullError[T]{Message: msg}
}

// tryReceive attempts to dequeue the head of the queue.
//
// If the queue was full on entry, the producer slot is woken regardless of
// whether the pop below succeeds — a consumer entering the critical section
// while the buffer is full is itself evidence that a pop is imminent, and any
// parked producer should be ready to re-evaluate. This is harmless (producers
// re-poll idempotently) and prevents missed wakes when the consumer aborts
// the pop path.
func (s *channelState[T]) tryReceive(w Waker) (T, error) {
	if s.queue.isFull() {
		s.producerSlot.Wake()
	}
	if v, ok := s.queue.popFront(); ok {
		return v, nil
	}
	if w != nil {
		s.consumerSlot.Register(w)
	}
	var zero T
	return zero, ErrEmpty
}

// tryPeek is the same as tryReceive but returns a copy of the front element
// without removing it. It wakes the producer slot on entry when full for the
// same liveness reason tryReceive does: a peek is evidence of a live
// consumer and should unblock a parked producer regardless of whether this
// specific call finds anything to peek.
func (s *channelState[T]) tryPeek(w Waker) (T, error) {
	if s.queue.isFull() {
		s.producerSlot.Wake()
	}
	if v, ok := s.queue.front(); ok {
		return v, nil
	}
	if w != nil {
		s.consumerSlot.Register(w)
	}
	var zero T
	return zero, ErrEmpty
}

// pollReceive is tryReceive, but always registers w on Empty (unconditional
// registration, not gated on w being non-nil — callers of poll-* are always
// continuations that need to be woken).
func (s *channelState[T]) pollReceive(w Waker) (T, PollResult) {
	if s.queue.isFull() {
		s.producerSlot.Wake()
	}
	if v, ok := s.queue.popFront(); ok {
		return v, Ready
	}
	s.consumerSlot.Register(w)
	var zero T
	return zero, Pending
}

// pollReadyToReceive registers w unconditionally, then reports ready iff the
// queue is non-empty.
func (s *channelState[T]) pollReadyToReceive(w Waker) PollResult {
	s.consumerSlot.Register(w)
	if !s.queue.isEmpty() {
		return Ready
	}
	return Pending
}

// pollReadyToSend registers w unconditionally, then reports ready iff the
// queue is not full.
func (s *channelState[T]) pollReadyToSend(w Waker) PollResult {
	s.producerSlot.Register(w)
	if !s.queue.isFull() {
		return Ready
	}
	return Pending
}

// clear empties the queue, waking a parked producer if capacity just became
// available.
func (s *channelState[T]) clear() {
	if s.queue.isFull() {
		s.producerSlot.Wake()
	}
	s.queue.clear()
}

func (s *channelState[T]) len() int      { return s.queue.len() }
func (s *channelState[T]) isEmpty() bool { return s.queue.isEmpty() }
func (s *channelState[T]) isFull() bool  { return s.queue.isFull() }
func (s *channelState[T]) capacity() int { return s.queue.capacity() }
