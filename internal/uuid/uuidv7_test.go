package uuid

import (
	"testing"
	"time"
)

func TestNewIsTimeOrdered(t *testing.T) {
	a := New()
	time.Sleep(2 * time.Millisecond)
	b := New()

	if !IsValid(a) || !IsValid(b) {
		t.Fatalf("expected valid UUIDs, got %q and %q", a, b)
	}
	if a >= b {
		t.Errorf("expected %q to sort before %q", a, b)
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	ts, ok := Timestamp(New())
	if !ok {
		t.Fatal("expected a UUIDv7 timestamp")
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("timestamp %s out of range", ts)
	}

	if _, ok := Timestamp("not-a-uuid"); ok {
		t.Error("expected invalid input to be rejected")
	}
	if _, ok := Timestamp("6ba7b810-9dad-41d1-80b4-00c04fd430c8"); ok {
		t.Error("expected non-v7 UUID to be rejected")
	}
}
