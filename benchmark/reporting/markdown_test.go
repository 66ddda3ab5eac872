package reporting

import (
	"strings"
	"testing"

	"github.com/elitebeauty/larder/benchmark/analysis"
	"github.com/elitebeauty/larder/benchmark/simulation"
)

func TestMarkdownReport(t *testing.T) {
	var sb strings.Builder
	r := NewMarkdownReport(&sb)

	w := simulation.Workload{Customers: 100, Regulars: 10, RegularShare: 0.8, Seed: 1}
	keys := w.Keys(1000)

	r.WriteHeader("Cache capacity planning")
	r.WriteWorkload(w, simulation.ComputeWorkloadMetrics(keys))
	r.WriteCapacityTable([]simulation.Result{
		{Capacity: 10, Lookups: 1000, Hits: 700, Misses: 300},
		{Capacity: 50, Lookups: 1000, Hits: 900, Misses: 100},
	}, 50)
	r.WriteLatencyComparison(analysis.Compare(
		"cold", []float64{100, 110, 95},
		"warm", []float64{1, 2, 1},
	))

	out := sb.String()
	for _, want := range []string{
		"# Cache capacity planning",
		"## Workload",
		"## Hit rate by cache capacity",
		"| 50 | 900 | 100 | 90.0% | recommended |",
		"## Fetch latency",
		"speeds up repeat fetches",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteLatencyComparison_NilComparison(t *testing.T) {
	var sb strings.Builder
	NewMarkdownReport(&sb).WriteLatencyComparison(nil)
	if sb.Len() != 0 {
		t.Errorf("nil comparison wrote output: %q", sb.String())
	}
}
