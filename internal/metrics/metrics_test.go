package metrics

import "testing"

func TestObserveCarriesVisitedCount(t *testing.T) {
	ok, counters := Observe(func() (bool, uint64) { return true, 42 })
	if !ok {
		t.Fatal("expected ok")
	}
	if counters.VisitedNodes != 42 {
		t.Errorf("VisitedNodes = %d, want 42", counters.VisitedNodes)
	}
	if counters.ElapsedMS < 0 {
		t.Errorf("ElapsedMS = %d, want >= 0", counters.ElapsedMS)
	}
}

func TestObservePropagatesFailure(t *testing.T) {
	ok, _ := Observe(func() (bool, uint64) { return false, 0 })
	if ok {
		t.Fatal("expected failure to propagate")
	}
}
