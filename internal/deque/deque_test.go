package deque

import "testing"

func TestDeque_ZeroValueReady(t *testing.T) {
	var d Deque[int]

	if d.Len() != 0 {
		t.Fatalf("expected empty deque, got len %d", d.Len())
	}
	if _, ok := d.PopFront(); ok {
		t.Error("PopFront on empty deque should return false")
	}
	if _, ok := d.PopBack(); ok {
		t.Error("PopBack on empty deque should return false")
	}

	d.PushBack(1)
	if v, ok := d.PopFront(); !ok || v != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", v, ok)
	}
}

func TestDeque_PushFrontPopBack(t *testing.T) {
	var d Deque[int]

	// Newest at front, oldest at back
	for i := 1; i <= 5; i++ {
		d.PushFront(i)
	}

	for want := 1; want <= 5; want++ {
		v, ok := d.PopBack()
		if !ok {
			t.Fatalf("PopBack failed at %d", want)
		}
		if v != want {
			t.Errorf("expected %d, got %d", want, v)
		}
	}

	if d.Len() != 0 {
		t.Errorf("expected empty deque, got len %d", d.Len())
	}
}

func TestDeque_MixedEnds(t *testing.T) {
	var d Deque[string]

	d.PushBack("b")
	d.PushFront("a")
	d.PushBack("c")

	if v, _ := d.Front(); v != "a" {
		t.Errorf("expected front a, got %s", v)
	}
	if v, _ := d.Back(); v != "c" {
		t.Errorf("expected back c, got %s", v)
	}

	got := d.Snapshot()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("snapshot length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("snapshot[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDeque_GrowPreservesOrder(t *testing.T) {
	var d Deque[int]

	// Force wrap-around before growing: move head off zero
	d.PushBack(0)
	d.PopFront()

	n := 100
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}

	if d.Len() != n {
		t.Fatalf("expected len %d, got %d", n, d.Len())
	}

	snap := d.Snapshot()
	for i := 0; i < n; i++ {
		if snap[i] != i {
			t.Fatalf("snapshot[%d] = %d, want %d", i, snap[i], i)
		}
	}

	for i := 0; i < n; i++ {
		v, ok := d.PopFront()
		if !ok || v != i {
			t.Fatalf("PopFront = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
}

func TestDeque_SnapshotDoesNotConsume(t *testing.T) {
	var d Deque[int]
	d.PushBack(1)
	d.PushBack(2)

	_ = d.Snapshot()
	if d.Len() != 2 {
		t.Errorf("snapshot must not consume elements, len = %d", d.Len())
	}
}
