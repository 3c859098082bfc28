// Package progress provides hashing throughput and ETA reporting helpers.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Reporter emits throttled single-line updates while one source is hashed.
type Reporter struct {
	w          io.Writer
	label      string
	total      uint64
	start      time.Time
	lastTick   time.Time
	lastBytes  uint64
	minTickGap time.Duration
}

// NewReporter creates a reporter for one labeled source of known size.
func NewReporter(w io.Writer, label string, total uint64) *Reporter {
	now := time.Now()
	return &Reporter{w: w, label: label, total: total, start: now, lastTick: now, minTickGap: 150 * time.Millisecond}
}

// Update prints progress at throttled intervals.
func (r *Reporter) Update(bytes uint64) {
	now := time.Now()
	if now.Sub(r.lastTick) < r.minTickGap && bytes < r.total {
		return
	}
	inst, avg := r.rates(bytes, now)
	_, _ = fmt.Fprintf(r.w, "\rhashing %s %s/%s inst:%s avg:%s eta:%s", r.label, humanBytes(bytes), humanBytes(r.total), humanRate(inst), humanRate(avg), humanDuration(r.eta(bytes, avg)))
	r.lastTick = now
	r.lastBytes = bytes
}

// Done prints the final summary line.
func (r *Reporter) Done(bytes uint64) {
	now := time.Now()
	_, avg := r.rates(bytes, now)
	_, _ = fmt.Fprintf(r.w, "\rhashed %s %s in %s avg:%s\n", r.label, humanBytes(bytes), humanDuration(now.Sub(r.start)), humanRate(avg))
}

func (r *Reporter) rates(bytes uint64, now time.Time) (inst, avg float64) {
	elapsed := now.Sub(r.start)
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	tickDur := now.Sub(r.lastTick)
	if tickDur <= 0 {
		tickDur = time.Millisecond
	}
	inst = float64(bytes-r.lastBytes) / tickDur.Seconds()
	avg = float64(bytes) / elapsed.Seconds()
	return inst, avg
}

func (r *Reporter) eta(bytes uint64, avg float64) time.Duration {
	if bytes >= r.total || avg <= 0 {
		return 0
	}
	return time.Duration(float64(r.total-bytes)/avg) * time.Second
}

// Reader counts bytes flowing toward the digest engine and reports them.
type Reader struct {
	r        io.Reader
	reporter *Reporter
	read     uint64
}

// NewReader wraps r so every read updates the reporter.
func NewReader(r io.Reader, reporter *Reporter) *Reader {
	return &Reader{r: r, reporter: reporter}
}

func (p *Reader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += uint64(n)
		p.reporter.Update(p.read)
	}
	return n, err
}

// Count returns the total bytes read so far.
func (p *Reader) Count() uint64 { return p.read }

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

func humanDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Truncate(time.Second).String()
}
