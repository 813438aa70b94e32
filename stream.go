// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

import (
	"context"
	"iter"
)

// All returns an iter.Seq[T] that yields every message received from the
// channel until ctx is done or the loop body stops early. This is the
// idiomatic Go analogue of a Stream impl over Receiver: each step blocks
// (via Receive) rather than polling in a tight loop.
//
// Range-over-func stops pulling as soon as the yield function returns
// false, and All's underlying Receive call is not canceled mid-flight by
// that — only ctx.Done() or the loop's natural exit ends iteration.
func (r Receiver[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := r.channel.Receive(ctx)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
