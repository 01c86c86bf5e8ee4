package cache

import "testing"

func TestGetAndSet(t *testing.T) {
	c := New[string, int](3)

	if c.Len() != 0 {
		t.Fatalf("Bad length when empty")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Expected 1 for 'a' but got %d (present: %v)", v, ok)
	}

	if _, ok := c.Get("z"); ok {
		t.Fatalf("Found 'z' when it was never set")
	}
}

func TestSetDoesNotOverwrite(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("a", 100)

	v, _ := c.Get("a")
	if v != 1 {
		t.Fatalf("Expected first value 1 to survive, got %d", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Re-setting a key changed the length to %d", c.Len())
	}
}

func TestEvictsOldest(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Set("d", 4)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("Oldest entry 'a' should have been evicted")
	}
	for _, k := range []string{"b", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("Entry %q missing after eviction of oldest", k)
		}
	}

	c.Set("e", 5)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("Entry 'b' should have been evicted next")
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("Length %d after Clear", c.Len())
	}

	c.Set("c", 3)
	c.Set("d", 4)
	c.Set("e", 5)
	if _, ok := c.Get("c"); ok {
		t.Fatalf("Eviction order not reset by Clear")
	}
}
