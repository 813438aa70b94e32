// Copyright 2026 The taskchan Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskchan

import "testing"

func TestRingBufferFIFOOrder(t *testing.T) {
	r := newRingBuffer[int](4)
	for i := 0; i < 4; i++ {
		if !r.pushBack(i) {
			t.Fatalf("pushBack(%d): want true", i)
		}
	}
	if r.pushBack(99) {
		t.Fatalf("pushBack on full: want false")
	}
	for i := 0; i < 4; i++ {
		v, ok := r.popFront()
		if !ok || v != i {
			t.Fatalf("popFront(%d): got (%d, %v), want (%d, true)", i, v, ok, i)
		}
	}
	if _, ok := r.popFront(); ok {
		t.Fatalf("popFront on empty: want false")
	}
}

func TestRingBufferWrapsAroundMask(t *testing.T) {
	r := newRingBuffer[int](4)
	for i := 0; i < 3; i++ {
		r.pushBack(i)
	}
	for i := 0; i < 2; i++ {
		r.popFront()
	}
	for i := 3; i < 6; i++ {
		if !r.pushBack(i) {
			t.Fatalf("pushBack(%d): want true", i)
		}
	}
	want := []int{2, 3, 4, 5}
	for _, w := range want {
		v, ok := r.popFront()
		if !ok || v != w {
			t.Fatalf("popFront: got (%d, %v), want (%d, true)", v, ok, w)
		}
	}
}

func TestRingBufferFromSlicePanicsOnNonPow2(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("newRingBufferFromSlice(len=3): want panic")
		}
	}()
	newRingBufferFromSlice(make([]int, 3))
}

func TestRingBufferFront(t *testing.T) {
	r := newRingBuffer[string](2)
	r.pushBack("a")
	v, ok := r.front()
	if !ok || v != "a" {
		t.Fatalf("front: got (%q, %v), want (\"a\", true)", v, ok)
	}
	if r.len() != 1 {
		t.Fatalf("front must not remove: len() = %d, want 1", r.len())
	}
}

func TestRingBufferClear(t *testing.T) {
	r := newRingBuffer[int](4)
	r.pushBack(1)
	r.pushBack(2)
	r.clear()
	if !r.isEmpty() {
		t.Fatalf("isEmpty after clear: want true")
	}
	if !r.pushBack(3) {
		t.Fatalf("pushBack after clear: want true")
	}
	v, _ := r.popFront()
	if v != 3 {
		t.Fatalf("popFront after clear: got %d, want 3", v)
	}
}

func TestRoundToPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024, 1024: 1024}
	for in, want := range cases {
		if got := roundToPow2(in); got != want {
			t.Fatalf("roundToPow2(%d): got %d, want %d", in, got, want)
		}
	}
}

func TestIsPow2(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1024} {
		if !isPow2(n) {
			t.Fatalf("isPow2(%d): want true", n)
		}
	}
	for _, n := range []int{0, 3, 5, 6, 1000} {
		if isPow2(n) {
			t.Fatalf("isPow2(%d): want false", n)
		}
	}
}
