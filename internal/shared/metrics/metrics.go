package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	chatStartedTotal   atomic.Uint64
	chatCompletedTotal atomic.Uint64
	chatFailedTotal    atomic.Uint64

	// Bounds top out at the outbound client's 30s timeout.
	llmRequestDuration = newHistogram([]float64{250, 500, 1000, 2500, 5000, 10000, 20000, 30000})
)

// IncChatStarted increments the started counter.
func IncChatStarted() {
	chatStartedTotal.Add(1)
}

// IncChatCompleted increments the completed counter.
func IncChatCompleted() {
	chatCompletedTotal.Add(1)
}

// IncChatFailed increments the failed counter.
func IncChatFailed() {
	chatFailedTotal.Add(1)
}

// ObserveLLMRequestDurationMs records one outbound LLM round trip in
// milliseconds.
func ObserveLLMRequestDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	llmRequestDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders all metrics in Prometheus text format.
func Render() string {
	var b strings.Builder
	for _, ctr := range []struct {
		name, help string
		value      uint64
	}{
		{"chat_started_total", "Chat exchanges accepted for processing", chatStartedTotal.Load()},
		{"chat_completed_total", "Chat exchanges answered successfully", chatCompletedTotal.Load()},
		{"chat_failed_total", "Chat exchanges that ended in an error", chatFailedTotal.Load()},
	} {
		fmt.Fprintf(&b, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", ctr.name, ctr.help, ctr.name, ctr.name, ctr.value)
	}
	llmRequestDuration.render(&b, "llm_request_duration_ms", "Outbound LLM round trip in milliseconds")
	return b.String()
}

// histogram tracks per-bucket observation counts under a mutex. Each
// observation lands in the first bucket whose bound contains it; render
// accumulates the counts into the cumulative series the text format wants.
type histogram struct {
	mu     sync.Mutex
	bounds []float64
	counts []uint64
	sum    float64
	count  uint64
}

func newHistogram(bounds []float64) *histogram {
	return &histogram{
		bounds: bounds,
		counts: make([]uint64, len(bounds)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.bounds {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) render(b *strings.Builder, name, help string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(b, "# HELP %s %s\n# TYPE %s histogram\n", name, help, name)
	var cumulative uint64
	for i, bound := range h.bounds {
		cumulative += h.counts[i]
		fmt.Fprintf(b, "%s_bucket{le=\"%s\"} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), cumulative)
	}
	fmt.Fprintf(b, "%s_bucket{le=\"+Inf\"} %d\n", name, h.count)
	fmt.Fprintf(b, "%s_sum %s\n", name, strconv.FormatFloat(h.sum, 'f', -1, 64))
	fmt.Fprintf(b, "%s_count %d\n", name, h.count)
}
