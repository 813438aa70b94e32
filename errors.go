// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrEmpty indicates TryReceive or TryPeek could not proceed because the
// channel holds no message.
//
// ErrEmpty is a control-flow signal, not a failure: the caller should retry
// (or, from a cooperative continuation, register for a wake-up and suspend)
// rather than propagate it as an error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with the
// rest of the retrieved queue/stream packages.
var ErrEmpty = iox.ErrWouldBlock

// FullError is returned by TrySend when the channel is at capacity. It
// carries the rejected message so callers can recover it generically by
// type-asserting to *FullError[T].
type FullError[T any] struct {
	// Message is the value that could not be enqueued.
	Message T
}

// Error implements the error interface.
func (e *FullError[T]) Error() string {
	return fmt.Sprintf("taskchan: channel full, message not sent: %v", e.Message)
}

// Unwrap links FullError to [iox.ErrWouldBlock] so errors.Is(err,
// iox.ErrWouldBlock) and IsWouldBlock(err) both recognize it, matching the
// classification ErrEmpty already gets.
func (e *FullError[T]) Unwrap() error {
	return iox.ErrWouldBlock
}

// IsWouldBlock reports whether err indicates the operation would block —
// either ErrEmpty or a *FullError[T] for any T. Delegates to
// [iox.IsWouldBlock] for wrapped-error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control-flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil, ErrEmpty, or a *FullError[T]. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
