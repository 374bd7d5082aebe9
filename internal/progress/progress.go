// Package progress provides throttled hashing throughput reporting.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Reporter emits human-readable progress updates while a file is hashed.
type Reporter struct {
	w          io.Writer
	name       string
	total      uint64
	start      time.Time
	lastTick   time.Time
	minTickGap time.Duration
}

// NewReporter creates a reporter for one input with update throttling. A
// total of zero means the input size is unknown (for example stdin).
func NewReporter(w io.Writer, name string, total uint64) *Reporter {
	now := time.Now()
	return &Reporter{w: w, name: name, total: total, start: now, lastTick: now, minTickGap: 150 * time.Millisecond}
}

// Update prints progress at throttled intervals.
func (r *Reporter) Update(bytes uint64) {
	now := time.Now()
	if now.Sub(r.lastTick) < r.minTickGap && (r.total == 0 || bytes < r.total) {
		return
	}
	if r.total > 0 {
		_, _ = fmt.Fprintf(r.w, "\r%s %s/%s avg:%s", r.name, humanBytes(bytes), humanBytes(r.total), humanRate(r.rate(bytes, now)))
	} else {
		_, _ = fmt.Fprintf(r.w, "\r%s %s avg:%s", r.name, humanBytes(bytes), humanRate(r.rate(bytes, now)))
	}
	r.lastTick = now
}

// Done prints the final summary line and moves off the progress line.
func (r *Reporter) Done(bytes uint64) {
	now := time.Now()
	elapsed := now.Sub(r.start).Truncate(time.Millisecond)
	_, _ = fmt.Fprintf(r.w, "\r%s hashed %s in %s avg:%s\n", r.name, humanBytes(bytes), elapsed, humanRate(r.rate(bytes, now)))
}

func (r *Reporter) rate(bytes uint64, now time.Time) float64 {
	elapsed := now.Sub(r.start)
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	return float64(bytes) / elapsed.Seconds()
}

func humanBytes(v uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	val := float64(v)
	u := 0
	for val >= 1024 && u < len(units)-1 {
		val /= 1024
		u++
	}
	return fmt.Sprintf("%.1f%s", val, units[u])
}

func humanRate(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return fmt.Sprintf("%s/s", humanBytes(uint64(bps)))
}
