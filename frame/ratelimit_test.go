package frame

import (
	"bytes"
	"testing"
)

// TestRateLimitedEngineBurst mirrors the teacher's TestRateLimit
// (middleware/middleware_test.go): rate=1/s, burst=2 admits the first
// two reads immediately and rejects the third, since the bucket starts
// full but refills far slower than the test runs.
func TestRateLimitedEngineBurst(t *testing.T) {
	e, buf := newLoopback()
	for i := 0; i < 3; i++ {
		if err := e.WriteFrame([]byte{byte(i)}); err != nil {
			t.Fatalf("WriteFrame %d: %v", i, err)
		}
	}
	limited := NewRateLimited(NewEngine(&pipe{in: bytes.NewBuffer(buf.Bytes()), out: &bytes.Buffer{}}), 1, 2)

	for i := 0; i < 2; i++ {
		got, err := limited.ReadFrame()
		if err != nil {
			t.Fatalf("read %d should pass, got error: %v", i, err)
		}
		if len(got) != 1 || got[0] != byte(i) {
			t.Fatalf("read %d: got % x", i, got)
		}
	}

	if _, err := limited.ReadFrame(); err == nil {
		t.Fatal("expected ErrRateLimited on the third read")
	} else if _, ok := err.(ErrRateLimited); !ok {
		t.Fatalf("unexpected error %#v", err)
	}
}
