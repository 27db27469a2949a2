package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecorder_Summary(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i)*time.Millisecond, true)
	}
	r.Record(500*time.Millisecond, false)

	s := r.Summary()
	if s.Count != 101 {
		t.Errorf("Count = %d, want 101", s.Count)
	}
	if s.Failures != 1 {
		t.Errorf("Failures = %d, want 1", s.Failures)
	}
	if s.Min > 2*time.Millisecond {
		t.Errorf("Min = %v, want about 1ms", s.Min)
	}
	// HDR histograms are approximate at 3 significant figures; allow slack.
	if s.P50 < 40*time.Millisecond || s.P50 > 60*time.Millisecond {
		t.Errorf("P50 = %v, want about 50ms", s.P50)
	}
	if s.Max < 490*time.Millisecond {
		t.Errorf("Max = %v, want about 500ms", s.Max)
	}
	if s.P99 > s.Max {
		t.Errorf("P99 %v exceeds Max %v", s.P99, s.Max)
	}
}

func TestRecorder_OutOfRangeSamplesAreClamped(t *testing.T) {
	r := NewRecorder()
	// One sample below the 1µs floor, one above the 1min ceiling.
	r.Record(0, true)
	r.Record(5*time.Minute, true)
	r.Record(10*time.Millisecond, true)

	s := r.Summary()
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3; out-of-range samples must not be dropped", s.Count)
	}
	if s.Max > time.Minute+time.Second {
		t.Errorf("Max = %v, want clamped to about 1m", s.Max)
	}
	if s.Min < time.Microsecond/2 {
		t.Errorf("Min = %v, want clamped to about 1µs", s.Min)
	}
}

func TestRecorder_ConcurrentRecord(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.Record(time.Millisecond, i%2 == 0)
			}
		}()
	}
	wg.Wait()

	s := r.Summary()
	if s.Count != 800 {
		t.Errorf("Count = %d, want 800", s.Count)
	}
	if s.Failures != 400 {
		t.Errorf("Failures = %d, want 400", s.Failures)
	}
}
