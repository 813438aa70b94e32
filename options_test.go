// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan_test

import (
	"testing"

	"github.com/coopexec/taskchan"
)

func TestNewBuilderPanicsOnCapacityLessThanOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewBuilder(0): want panic")
		}
	}()
	taskchan.NewBuilder(0)
}

func TestNewBuilderDefaultsToInterruptSafe(t *testing.T) {
	ch := taskchan.Build[int](taskchan.NewBuilder(4))
	s, ok := ch.ShareableDynamicSender()
	if !ok {
		t.Fatalf("default-built channel: want InterruptSafe (shareable), got non-shareable")
	}
	_ = s
}

func TestWithBufferUsesCallerBackingSlice(t *testing.T) {
	buf := make([]int, 8)
	ch := taskchan.Build[int](taskchan.WithBuffer(taskchan.NewBuilder(3), buf))
	if got, want := ch.Capacity(), 8; got != want {
		t.Fatalf("Capacity: got %d, want %d (WithBuffer should override NewBuilder's capacity)", got, want)
	}
}

func TestWithBufferPanicsOnNonPow2Length(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("WithBuffer with len 3: want panic")
		}
	}()
	taskchan.WithBuffer(taskchan.NewBuilder(4), make([]int, 3))
}

func TestBuildPanicsOnMismatchedBufferType(t *testing.T) {
	b := taskchan.NewBuilder(4)
	taskchan.WithBuffer(b, make([]int, 4))
	defer func() {
		if recover() == nil {
			t.Fatalf("Build[string] after WithBuffer[int]: want panic")
		}
	}()
	taskchan.Build[string](b)
}
