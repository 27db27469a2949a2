// Package metrics records request latencies for the CLI's repeat mode
// using an HDR histogram, so percentile summaries stay accurate without
// retaining every sample.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder accumulates latencies and a success/failure count.
// Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	hist     *hdrhistogram.Histogram
	failures int64
}

// NewRecorder creates a recorder tracking latencies from 1 microsecond to
// 1 minute at 3 significant figures.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(int64(time.Microsecond), int64(time.Minute), 3),
	}
}

// Record adds one sample. Failed requests count toward Failures but still
// contribute their latency. Latencies outside the trackable range clamp to
// its bounds rather than being dropped, so every request stays in the
// count.
func (r *Recorder) Record(latency time.Duration, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := int64(latency)
	if v < r.hist.LowestTrackableValue() {
		v = r.hist.LowestTrackableValue()
	}
	if v > r.hist.HighestTrackableValue() {
		v = r.hist.HighestTrackableValue()
	}
	r.hist.RecordValue(v)
	if !ok {
		r.failures++
	}
}

// Summary is a point-in-time percentile view of the recorded samples.
type Summary struct {
	Count    int64
	Failures int64
	Min      time.Duration
	P50      time.Duration
	P95      time.Duration
	P99      time.Duration
	Max      time.Duration
}

// Summary computes the current summary.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Summary{
		Count:    r.hist.TotalCount(),
		Failures: r.failures,
		Min:      time.Duration(r.hist.Min()),
		P50:      time.Duration(r.hist.ValueAtQuantile(50)),
		P95:      time.Duration(r.hist.ValueAtQuantile(95)),
		P99:      time.Duration(r.hist.ValueAtQuantile(99)),
		Max:      time.Duration(r.hist.Max()),
	}
}
