package utils

import (
	"context"
	"testing"
	"time"
)

func TestFixedPacerSpacesProbes(t *testing.T) {
	p := NewFixedPacer(50*time.Millisecond, time.Millisecond)
	ctx := context.Background()

	// First wait draws the ready token; the second must absorb the gap.
	if err := p.AfterProbe(ctx); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	if err := p.AfterProbe(ctx); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("second probe waited only %v", elapsed)
	}
}

func TestFixedPacerHonorsCancellation(t *testing.T) {
	p := NewFixedPacer(time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	if err := p.AfterProbe(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := p.AfterProbe(ctx); err == nil {
		t.Error("expected error after cancellation")
	}
}

func TestTrackerDeduplicates(t *testing.T) {
	tr := NewTracker()
	if !tr.Add("100") {
		t.Error("first add should be new")
	}
	if tr.Add("100") {
		t.Error("second add should be duplicate")
	}
	if !tr.Add("200") {
		t.Error("different id should be new")
	}
	if tr.Count() != 2 {
		t.Errorf("Count = %d, want 2", tr.Count())
	}
}
