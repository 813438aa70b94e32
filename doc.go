// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package taskchan provides a bounded, asynchronous multi-producer
// multi-consumer message channel for cooperatively scheduled programs:
// goroutines that poll rather than block, including ones standing in for
// interrupt handlers.
//
// Unlike a native Go channel, taskchan exposes both a try-* non-suspending
// API and a poll-based continuation API, so a single-threaded executor can
// drive sends and receives without ever blocking a goroutine it doesn't own.
// A blocking convenience layer (Send/Receive) is built on top of the
// continuations for callers that are plain goroutines rather than
// executors.
//
// # Quick Start
//
//	ch := taskchan.Build[Event](taskchan.NewBuilder(16))
//
//	// Non-suspending.
//	if err := ch.TrySend(ev); taskchan.IsWouldBlock(err) {
//	    // channel full, try again later
//	}
//	ev, err := ch.TryReceive()
//
//	// Blocking, for ordinary goroutines.
//	err := ch.Send(ctx, ev)
//	ev, err := ch.Receive(ctx)
//
// # Basic Usage
//
// A Channel is built once and then split into views. Sender and Receiver
// are cheap, duplicable handles meant to be handed to separate producer and
// consumer goroutines:
//
//	ch := taskchan.Build[Job](taskchan.NewBuilder(64))
//	tx := ch.Sender()
//	rx := ch.Receiver()
//
//	go func() {
//	    for job := range someSource {
//	        if err := tx.TrySend(job); taskchan.IsWouldBlock(err) {
//	            // back off and retry
//	        }
//	    }
//	}()
//
//	for {
//	    job, err := rx.TryReceive()
//	    if err != nil {
//	        continue
//	    }
//	    job.Run()
//	}
//
// # Cooperative Polling
//
// A cooperative executor drives a continuation by calling Poll with a Waker
// that reschedules it, exactly once per Pending result:
//
//	cont := ch.Receiver().Receive()
//	func poll(w taskchan.Waker) {
//	    v, res := cont.Poll(w)
//	    if res == taskchan.Ready {
//	        handle(v)
//	    }
//	    // else: w will be called again when the channel has data
//	}
//
// ReadyToReceiveContinuation is the one continuation that may be polled
// repeatedly after a Ready result, since observing readiness consumes
// nothing:
//
//	ready := ch.Receiver().ReadyToReceive()
//	for {
//	    if ready.Poll(myWaker) == taskchan.Ready {
//	        v, _ := rx.TryReceive()
//	        handle(v)
//	    }
//	}
//
// # Dynamic Dispatch
//
// Sender[T] and Receiver[T] already erase a channel's capacity and its
// LockPolicy, since both are runtime values of a Channel[T] rather than
// type parameters. DynamicSender[T] and DynamicReceiver[T] go one step
// further and reach the channel only through an interface of its try/poll
// operations rather than a *Channel[T], so code that fans in from several
// channels can hold them behind one type:
//
//	senders := []taskchan.DynamicSender[Event]{
//	    chA.DynamicSender(),
//	    chB.DynamicSender(),
//	}
//
// ShareableDynamicSender and ShareableDynamicReceiver additionally require
// the source channel's LockPolicy to allow cross-goroutine sharing; the
// reverse is never offered, so a NoInterference channel cannot accidentally
// be passed off as shareable:
//
//	shareable, ok := ch.ShareableDynamicSender()
//	if !ok {
//	    // ch was built with NoInterference; not safe to share
//	}
//
// # Error Handling
//
// TryReceive and TryPeek return [ErrEmpty] when the channel holds nothing;
// TrySend returns a *[FullError] carrying the rejected message back when
// the channel is at capacity. Both are control-flow signals, not failures —
// [IsWouldBlock], [IsSemantic], and [IsNonFailure] delegate to
// [code.hybscloud.com/iox] for the same classification the rest of the
// retrieved queue family uses:
//
//	err := ch.TrySend(msg)
//	if full, ok := err.(*taskchan.FullError[Event]); ok {
//	    msg = full.Message // recover the value and retry later
//	}
//
// # Capacity and Length
//
// Capacity rounds up to the next power of 2 so the ring buffer can index
// with a mask instead of a modulo:
//
//	taskchan.NewBuilder(3)    // actual capacity: 4
//	taskchan.NewBuilder(1000) // actual capacity: 1024
//
// Len is exact: the channel's critical sections are short enough (one
// push/pop plus at most one wake) that reading the length under the same
// lock costs nothing extra. ApproxLen is a separate, genuinely lock-free
// counter, updated with plain atomic adds taken after the critical section
// has already released the lock, for monitoring code that would rather
// read a possibly stale value than contend with producers and consumers
// at all.
//
// # Concurrency Model
//
// A Channel is guarded by a LockPolicy chosen once at construction:
//
//	NoInterference - no synchronization; callers guarantee single-context
//	                 access (one goroutine, or one executor's poll loop).
//	InterruptSafe  - a short sync.Mutex-guarded critical section, safe to
//	                 share across goroutines including ones standing in
//	                 for interrupt handlers.
//
// Because the design is lock-based rather than lock-free, there is no
// acquire/release-ordering subtlety for the race detector to misreport —
// every shared field except the atomic ApproxLen counter is touched only
// inside LockPolicy.Run, so `go test
// -race` is a meaningful correctness check here, unlike for the FAA-based
// queues elsewhere in this family.
//
// # Non-goals
//
// taskchan intentionally does not provide: multi-message transactions,
// priority or weighted fairness among waiters, broadcast/fan-out delivery
// of a single message to multiple receivers, channel closure, persistence,
// or any cross-process transport. It is a single-address-space primitive.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic error
// classification, [code.hybscloud.com/atomix] for the lock-free
// approximate length counter, and [code.hybscloud.com/spin] for the
// fast-path spin before the blocking Send/Receive wrappers park.
package taskchan
