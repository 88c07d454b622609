package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveAttempt(t *testing.T) {
	m := NewMetrics()

	m.ObserveAttempt(AdmissionResult{Outcome: OutcomeConnected, Best: ConnectionCandidate{SINRdB: 12.5}})
	m.ObserveAttempt(AdmissionResult{Outcome: OutcomeConnected, Best: ConnectionCandidate{SINRdB: 7.5}})
	m.ObserveAttempt(AdmissionResult{Outcome: OutcomeNoViableStation})
	m.ObserveAttempt(AdmissionResult{Outcome: OutcomeNoCapacity})
	m.ObserveAttempt(AdmissionResult{Outcome: OutcomeAllocationRace})

	assert.Equal(t, 5, m.Attempts)
	assert.Equal(t, 2, m.Connections)
	assert.Equal(t, 1, m.NoViable)
	assert.Equal(t, 1, m.NoCapacity)
	assert.Equal(t, 1, m.RaceFailures)
	assert.Equal(t, []float64{12.5, 7.5}, m.SINRSamples, "only successes contribute SINR samples")
}

func TestMetrics_ObserveDisconnect(t *testing.T) {
	m := NewMetrics()
	m.ObserveDisconnect()
	m.ObserveDisconnect()
	assert.Equal(t, 2, m.Disconnects)
}

func TestMetrics_PeakConnected(t *testing.T) {
	m := NewMetrics()
	m.ObserveTick(TickStatus{Connected: 3})
	m.ObserveTick(TickStatus{Connected: 7})
	m.ObserveTick(TickStatus{Connected: 5})
	assert.Equal(t, 7, m.PeakConnected)
}

func TestTickStatus_ConnectedPercent(t *testing.T) {
	assert.Equal(t, 50.0, TickStatus{Connected: 25, Total: 50}.ConnectedPercent())
	assert.Zero(t, TickStatus{}.ConnectedPercent(), "empty population avoids division by zero")
}
