package middleware

import "testing"

func TestTokenBucketExhausts(t *testing.T) {
	limiter := NewTokenBucket(3)

	for i := 0; i < 3; i++ {
		if !limiter.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.allow("10.0.0.1") {
		t.Error("bucket should be empty")
	}
}

func TestTokenBucketPerKey(t *testing.T) {
	limiter := NewTokenBucket(1)

	if !limiter.allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if !limiter.allow("10.0.0.2") {
		t.Error("second key has its own bucket")
	}
	if limiter.allow("10.0.0.1") {
		t.Error("first key is exhausted")
	}
}

func TestTokenBucketDefaultsRate(t *testing.T) {
	limiter := NewTokenBucket(0)
	if limiter.capacity != 60 {
		t.Errorf("capacity = %d, want 60", limiter.capacity)
	}
}
