package handlers

import "testing"

func TestRateLimiter(t *testing.T) {
	t.Run("PerIP", func(t *testing.T) {
		rl := NewRateLimiter(1)
		if !rl.Allow("10.0.0.1") {
			t.Fatal("first request should pass")
		}
		if rl.Allow("10.0.0.1") {
			t.Error("second request from same IP should be limited")
		}
		if !rl.Allow("10.0.0.2") {
			t.Error("other IPs have their own budget")
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		rl := NewRateLimiter(0)
		for i := 0; i < 100; i++ {
			if !rl.Allow("10.0.0.1") {
				t.Fatalf("request %d limited while disabled", i)
			}
		}
	})
}
