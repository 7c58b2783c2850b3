package domain

import (
	"testing"
	"time"
)

func TestLiquidityBreaker_OpensAfterMaxFailures(t *testing.T) {
	b := NewLiquidityBreaker(3, 10*time.Minute)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	if !b.Allow("GALA/GUSDT", now) {
		t.Fatal("new pair should be allowed")
	}

	b.RecordFailure("GALA/GUSDT", now)
	b.RecordFailure("GALA/GUSDT", now)
	if !b.Allow("GALA/GUSDT", now) {
		t.Fatal("pair should still be allowed below the failure threshold")
	}

	b.RecordFailure("GALA/GUSDT", now)
	if b.Allow("GALA/GUSDT", now) {
		t.Fatal("pair should be skipped after 3 consecutive failures")
	}
}

func TestLiquidityBreaker_ProvisionalRetryAfterInterval(t *testing.T) {
	b := NewLiquidityBreaker(3, 10*time.Minute)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		b.RecordFailure("GALA/GUSDT", now)
	}

	if b.Allow("GALA/GUSDT", now.Add(9*time.Minute)) {
		t.Fatal("pair should stay skipped inside the retry interval")
	}
	if !b.Allow("GALA/GUSDT", now.Add(10*time.Minute)) {
		t.Fatal("pair should get a provisional attempt after the retry interval")
	}

	// A failed provisional attempt pushes the next retry out again.
	b.RecordFailure("GALA/GUSDT", now.Add(10*time.Minute))
	if b.Allow("GALA/GUSDT", now.Add(15*time.Minute)) {
		t.Fatal("failed provisional attempt should reopen the breaker")
	}
}

func TestLiquidityBreaker_SuccessResets(t *testing.T) {
	b := NewLiquidityBreaker(3, 10*time.Minute)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		b.RecordFailure("GALA/GUSDT", now)
	}
	b.RecordSuccess("GALA/GUSDT")

	if !b.Allow("GALA/GUSDT", now) {
		t.Fatal("success should close the breaker")
	}
	if got := b.Failures("GALA/GUSDT"); got != 0 {
		t.Fatalf("failure count after success = %d, want 0", got)
	}
}

func TestLiquidityBreaker_PairsAreIndependent(t *testing.T) {
	b := NewLiquidityBreaker(3, 10*time.Minute)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		b.RecordFailure("GALA/GUSDT", now)
	}

	if b.Allow("GALA/GUSDT", now) {
		t.Fatal("failing pair should be skipped")
	}
	if !b.Allow("GALA/GUSDC", now) {
		t.Fatal("other pairs should be unaffected")
	}
}
