package cache

import "testing"

func TestLRUEvictsOldest(t *testing.T) {
	var evicted []int
	c := New[int, string](2, func(k int, _ string) { evicted = append(evicted, k) })

	c.Put(1, "a")
	c.Put(2, "b")
	if _, ok := c.Get(1); !ok { // 2 is now oldest
		t.Fatal("Get(1) missed")
	}
	c.Put(3, "c")

	if _, ok := c.Get(2); ok {
		t.Error("2 should have been evicted")
	}
	if len(evicted) != 1 || evicted[0] != 2 {
		t.Errorf("evicted = %v, want [2]", evicted)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if k, _ := c.Oldest(); k != 1 {
		t.Errorf("Oldest = %d, want 1", k)
	}
}

func TestLRUPutReplaces(t *testing.T) {
	c := New[string, int](4, nil)
	c.Put("x", 1)
	c.Put("x", 2)
	if v, _ := c.Get("x"); v != 2 {
		t.Errorf("Get(x) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestLRUClear(t *testing.T) {
	n := 0
	c := New[int, int](0, func(int, int) { n++ })
	c.Put(1, 1) // limit clamps to 1
	c.Put(2, 2)
	if n != 1 {
		t.Fatalf("evictions = %d, want 1", n)
	}
	c.Clear()
	if n != 2 || c.Len() != 0 {
		t.Errorf("after Clear: evictions = %d, Len = %d", n, c.Len())
	}
	if _, ok := c.Oldest(); ok {
		t.Error("Oldest on empty cache")
	}
}
