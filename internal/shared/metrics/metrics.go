package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	lighthouseRequestsTotal  atomic.Uint64
	lighthouseSucceededTotal atomic.Uint64

	failuresMu sync.Mutex
	failures   = map[string]uint64{}

	upstreamDuration = newHistogram([]float64{250, 500, 1000, 2500, 5000, 10000, 20000, 30000, 60000})
)

// IncRequests counts an inbound analysis request.
func IncRequests() {
	lighthouseRequestsTotal.Add(1)
}

// IncSucceeded counts a request answered with the upstream payload.
func IncSucceeded() {
	lighthouseSucceededTotal.Add(1)
}

// IncFailed counts a failed request under the given reason label.
func IncFailed(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	failuresMu.Lock()
	failures[reason]++
	failuresMu.Unlock()
}

// ObserveUpstreamDurationMs records an upstream call duration in milliseconds.
func ObserveUpstreamDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	upstreamDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "lighthouse_requests_total", "Total analysis requests received", lighthouseRequestsTotal.Load())
	writeCounter(&buf, "lighthouse_succeeded_total", "Total analysis requests relayed successfully", lighthouseSucceededTotal.Load())
	writeLabeledCounter(&buf, "lighthouse_failed_total", "Total analysis requests failed by reason", "reason", failureSnapshot())
	writeHistogram(&buf, "lighthouse_upstream_duration_ms", "Upstream scoring API latency in milliseconds", upstreamDuration.Snapshot())
	return buf.String()
}

func failureSnapshot() map[string]uint64 {
	failuresMu.Lock()
	defer failuresMu.Unlock()
	out := make(map[string]uint64, len(failures))
	for k, v := range failures {
		out[k] = v
	}
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe places value in the first bucket whose bound holds it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
