// Tracks run-wide admission and churn counters for final reporting.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics across a whole run. Useful for evaluating
// deployment capacity and debugging admission behavior over time.
type Metrics struct {
	Attempts      int // total connection attempts
	Connections   int // successful admissions
	Disconnects   int // churn-driven disconnections
	NoViable      int // attempts failed on signal thresholds
	NoCapacity    int // attempts failed on slice headroom
	RaceFailures  int // attempts failed at allocation time
	PeakConnected int // max simultaneously connected UEs across ticks

	// SINRSamples records the admission-time SINR of every successful
	// connection, for the end-of-run link quality summary.
	SINRSamples []float64
}

// NewMetrics creates an empty metrics accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveAttempt records one admission attempt and its outcome.
func (m *Metrics) ObserveAttempt(result AdmissionResult) {
	m.Attempts++
	switch result.Outcome {
	case OutcomeConnected:
		m.Connections++
		m.SINRSamples = append(m.SINRSamples, result.Best.SINRdB)
	case OutcomeNoViableStation:
		m.NoViable++
	case OutcomeNoCapacity:
		m.NoCapacity++
	case OutcomeAllocationRace:
		m.RaceFailures++
	}
}

// ObserveDisconnect records one churn-driven disconnection.
func (m *Metrics) ObserveDisconnect() {
	m.Disconnects++
}

// ObserveTick records the post-tick aggregate.
func (m *Metrics) ObserveTick(status TickStatus) {
	if status.Connected > m.PeakConnected {
		m.PeakConnected = status.Connected
	}
}

// Print displays aggregated metrics at the end of the run.
func (m *Metrics) Print(ticks int) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Ticks                : %d\n", ticks)
	fmt.Printf("Connection Attempts  : %d\n", m.Attempts)
	fmt.Printf("Successful Admissions: %d\n", m.Connections)
	fmt.Printf("Disconnections       : %d\n", m.Disconnects)
	fmt.Printf("No Viable Station    : %d\n", m.NoViable)
	fmt.Printf("No Slice Capacity    : %d\n", m.NoCapacity)
	fmt.Printf("Allocation Races     : %d\n", m.RaceFailures)
	fmt.Printf("Peak Connected UEs   : %d\n", m.PeakConnected)

	if len(m.SINRSamples) > 0 {
		sorted := append([]float64(nil), m.SINRSamples...)
		sort.Float64s(sorted)
		fmt.Printf("Admission SINR mean  : %.2f dB\n", stat.Mean(sorted, nil))
		fmt.Printf("Admission SINR median: %.2f dB\n", stat.Quantile(0.5, stat.Empirical, sorted, nil))
	}
}
