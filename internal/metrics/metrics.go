// Package metrics accumulates statistics over simulated generations.
package metrics

// Sample describes one generation right after it was computed.
type Sample struct {
	Generation int
	Population int
	Changed    int
	Area       int
}

// Metric observes generations and reduces them to a single value.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Defaults returns the metrics the editor reports.
func Defaults() []Metric {
	return []Metric{
		NewPopulation(),
		NewPeakPopulation(),
		NewChurn(),
		NewStability(0.01),
	}
}

// Snapshot collects the current value of every metric by name.
func Snapshot(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
