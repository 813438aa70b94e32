// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan_test

import (
	"fmt"

	"github.com/coopexec/taskchan"
)

// ExampleBuild demonstrates the non-suspending TrySend/TryReceive API.
func ExampleBuild() {
	ch := taskchan.Build[int](taskchan.NewBuilder(4))

	for i := 1; i <= 3; i++ {
		if err := ch.TrySend(i); err != nil {
			fmt.Println("send failed:", err)
		}
	}

	for {
		v, err := ch.TryReceive()
		if err != nil {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
}

// ExampleChannel_TrySend demonstrates the backpressure signal a full
// channel gives back: a *FullError carrying the rejected message.
func ExampleChannel_TrySend() {
	ch := taskchan.Build[string](taskchan.NewBuilder(1))

	if err := ch.TrySend("first"); err != nil {
		fmt.Println("unexpected error:", err)
	}

	err := ch.TrySend("second")
	full, ok := err.(*taskchan.FullError[string])
	if ok {
		fmt.Println("rejected:", full.Message)
	}

	// Output:
	// rejected: second
}
