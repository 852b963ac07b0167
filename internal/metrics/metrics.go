package metrics

import (
	"fmt"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
)

var (
	// StatisticalConsultations - The total number of texts that needed the statistical detector as a tie-breaker
	StatisticalConsultations = metrics.NewCounter("langfilter_statistical_consultations")
	// StatisticalFailures - The total number of statistical detector errors and panics
	StatisticalFailures = metrics.NewCounter("langfilter_statistical_failures")
	// CacheResets - The total number of caches resets
	CacheResets = metrics.NewCounter("langfilter_cache_resets")
)

// IncVerdicts increments classification verdicts counter with labels
func IncVerdicts(api, source string, nonEnglish bool) {
	verdict := "english"
	if nonEnglish {
		verdict = "non_english"
	}
	metrics.GetOrCreateCounter(fmt.Sprintf("langfilter_verdicts{api=%q,source=%q,verdict=%q}", api, source, verdict)).Inc()
}

// IncCache increments cache events counter (hit, miss, eviction) with labels
func IncCache(cache, event string) {
	metrics.GetOrCreateCounter(fmt.Sprintf("langfilter_cache_events{cache=%q,event=%q}", cache, event)).Inc()
}

// Handler for metrics
type Handler struct{}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	metrics.WritePrometheus(w, false)
}
