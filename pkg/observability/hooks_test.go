package observability

import (
	"testing"
	"time"
)

type countingPlannerHooks struct {
	NoopPlannerHooks
	searches int
	places   int
}

func (h *countingPlannerHooks) OnStrideSearchStart(int)   { h.searches++ }
func (h *countingPlannerHooks) OnPlace(int, int, float64) { h.places++ }

type countingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *countingCacheHooks) OnCacheHit(string) { h.hits++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	Planner().OnStrideSearchStart(0)
	Planner().OnStrideSearchComplete(0, 4, time.Millisecond)
	Planner().OnFallback(1, 2)
	Planner().OnPlace(0, 0, 105)
	Cache().OnCacheHit("layout")
	Cache().OnCacheMiss("layout")
	Cache().OnCacheSet("layout", 128)
}

func TestSetAndResetHooks(t *testing.T) {
	t.Cleanup(Reset)

	ph := &countingPlannerHooks{}
	ch := &countingCacheHooks{}
	SetPlannerHooks(ph)
	SetCacheHooks(ch)

	Planner().OnStrideSearchStart(0)
	Planner().OnPlace(0, 0, 105)
	Cache().OnCacheHit("layout")

	if ph.searches != 1 || ph.places != 1 {
		t.Errorf("planner hooks not invoked: searches=%d places=%d", ph.searches, ph.places)
	}
	if ch.hits != 1 {
		t.Errorf("cache hooks not invoked: hits=%d", ch.hits)
	}

	Reset()
	Planner().OnStrideSearchStart(1)
	if ph.searches != 1 {
		t.Error("hooks still registered after Reset")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	ph := &countingPlannerHooks{}
	SetPlannerHooks(ph)
	SetPlannerHooks(nil)

	Planner().OnStrideSearchStart(0)
	if ph.searches != 1 {
		t.Error("nil registration replaced the active hooks")
	}
}
