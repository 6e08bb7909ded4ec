package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := NewCache()
	c.Set("foo", 123, 0, nil)
	v, ok := c.Get("foo")
	if !ok || v.(int) != 123 {
		t.Errorf("Get(foo) = %v, %v; want 123, true", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := NewCache()
	c.Set("bar", "x", 1, nil)
	c.m.Store("bar", cacheItem{Value: "x", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("bar"); ok {
		t.Error("expired entry still readable")
	}
}

func TestCompositeKeys(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"products", "men", 12}, "page", 0, nil)
	if _, ok := c.GetN("products", "men", 12); !ok {
		t.Error("composite key lookup failed")
	}
	if _, ok := c.GetN("products", "men", 24); ok {
		t.Error("composite key collision")
	}
}

func TestDeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("a", 1, 0, []string{"catalog"})
	c.Set("b", 2, 0, []string{"catalog", "campaign"})
	c.Set("c", 3, 0, nil)
	c.DeleteByTag("catalog")
	if _, ok := c.Get("a"); ok {
		t.Error("tagged entry a survived DeleteByTag")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("tagged entry b survived DeleteByTag")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("untagged entry deleted")
	}
}
