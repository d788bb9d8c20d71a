package logger

import "testing"

func TestGetInitializesOnce(t *testing.T) {
	Init("test", "")

	first := Get()
	if first == nil {
		t.Fatal("expected a logger")
	}

	// A second Init with a different environment is ignored.
	Init("production", "debug")
	if Get() != first {
		t.Error("expected the same logger instance after a second Init")
	}

	Sync()
}
