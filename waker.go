// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

// Waker is the handle a suspended continuation registers so the channel can
// ask the executor to re-poll it. Calling a Waker schedules exactly one
// future re-poll of whatever continuation registered it; it never blocks and
// never touches the channel's lock itself.
//
// A nil Waker is valid and means "no one to wake" — TrySend/TryReceive treat
// a nil Waker the same as not registering at all.
type Waker func()

// WakerSlot is a single-entry cell holding at most one registered Waker.
//
// Cooperative continuations re-register on every poll, so one slot per role
// (one for the consumer, one for the most recently parked producer) is
// sufficient: a missed wake costs the currently-registered waiter at most one
// extra spurious re-poll, never a permanent stall.
type WakerSlot struct {
	waker Waker
}

// Register replaces the stored waker with w, discarding any previously
// registered waker without signalling it — the new registration is by
// definition the same logical waiter re-polling after a Pending result.
func (s *WakerSlot) Register(w Waker) {
	s.waker = w
}

// Wake takes the stored waker, if any, clears the slot, and invokes it. It is
// a no-op if the slot is empty.
func (s *WakerSlot) Wake() {
	w := s.waker
	if w == nil {
		return
	}
	s.waker = nil
	w()
}

// Clear drops any stored waker without signalling it.
func (s *WakerSlot) Clear() {
	s.waker = nil
}
