// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command taskchanctl is a small demonstration of a taskchan.Channel under
// producer/consumer load. It is not part of the library's API surface —
// it exists to show the producer/consumer contract end to end, the way a
// standalone USB or Wi-Fi example would in an embedded SDK.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/coopexec/taskchan"
)

func main() {
	var (
		capacity  = flag.Int("capacity", 16, "channel capacity (rounds up to a power of 2)")
		producers = flag.Int("producers", 2, "number of producer goroutines")
		count     = flag.Int("count", 1000, "messages sent per producer")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ch := taskchan.Build[int](taskchan.NewBuilder(*capacity).InterruptSafe())
	total := *producers * *count

	done := make(chan struct{})
	go consume(ctx, ch, total, logger, done)
	runProducers(ctx, ch, *producers, *count, logger)

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn("interrupted before all messages were consumed")
	}
}

func runProducers(ctx context.Context, ch *taskchan.Channel[int], producers, count int, logger *slog.Logger) {
	results := make(chan error, producers)
	for p := 0; p < producers; p++ {
		go func(id int) {
			tx := ch.Sender()
			for i := 0; i < count; i++ {
				if err := tx.Send(id*count + i).Poll(noopWaker); err != taskchan.Ready {
					// Pending: fall back to the blocking wrapper, which
					// parks properly instead of busy-polling.
					if err := ch.Send(ctx, id*count+i); err != nil {
						logger.Error("send failed", "producer", id, "err", err)
						results <- err
						return
					}
				}
			}
			results <- nil
		}(p)
	}
	for p := 0; p < producers; p++ {
		if err := <-results; err != nil {
			return
		}
	}
	logger.Info("all producers finished", "producers", producers, "per_producer", count)
}

func consume(ctx context.Context, ch *taskchan.Channel[int], total int, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)
	rx := ch.Receiver()
	start := time.Now()
	for n := 0; n < total; n++ {
		if _, err := ch.Receive(ctx); err != nil {
			logger.Warn("receive stopped early", "received", n, "want", total, "err", err)
			return
		}
		if n%100 == 0 {
			logger.Debug("drain progress", "received", n, "free_capacity", rx.FreeCapacity())
		}
	}
	logger.Info("consumer drained all messages", "count", total, "elapsed", time.Since(start))
}

// noopWaker is passed to a one-shot Poll so runProducers can demonstrate
// the non-blocking continuation surface before falling back to the
// blocking wrapper; a real cooperative executor would register its own
// reschedule callback here instead of discarding the wake-up.
func noopWaker() {}
