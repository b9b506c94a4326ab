package cache

import (
	"testing"
	"time"
)

func TestGetMissesOnStaleModTime(t *testing.T) {
	c, err := NewInclude(4)
	if err != nil {
		t.Fatalf("NewInclude: %v", err)
	}

	t0 := time.Unix(1000, 0)
	c.Put("a.js", t0, "var a=1;")

	if got, ok := c.Get("a.js", t0); !ok || got != "var a=1;" {
		t.Fatalf("Get(fresh) = %q,%v want var a=1;,true", got, ok)
	}

	t1 := time.Unix(2000, 0)
	if _, ok := c.Get("a.js", t1); ok {
		t.Fatalf("Get(stale) should miss")
	}
}

func TestLenReflectsEntries(t *testing.T) {
	c, _ := NewInclude(4)
	c.Put("a.js", time.Unix(1, 0), "a")
	c.Put("b.js", time.Unix(1, 0), "b")
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}
