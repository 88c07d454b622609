// engine.go
//
// The per-tick simulation loop: mobility, churn, reconnection, aggregation.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator owns the fixed station, slice, and UE populations and drives
// them through the per-tick sequence. Execution is strictly sequential
// within a tick; the slice pools need no locking because no two attempts
// ever run concurrently.
type Simulator struct {
	Config    EngineConfig
	Stations  []*BaseStation
	Slices    *SliceRegistry
	UEs       []*UserEquipment
	Admission *AdmissionController
	Mobility  MobilityModel
	Backoff   BackoffPolicy
	Clock     *VirtualClock
	Metrics   *Metrics

	rng       *PartitionedRNG
	reporters []Reporter
}

// NewSimulator assembles a simulator over an already-bootstrapped
// population. The PartitionedRNG supplies every stochastic stream
// (shadowing, mobility, churn), so runs are reproducible per seed.
func NewSimulator(cfg EngineConfig, radio RadioConfig, rng *PartitionedRNG,
	stations []*BaseStation, slices *SliceRegistry, ues []*UserEquipment) *Simulator {

	cfg = cfg.withDefaults()
	propagator := NewPropagator(
		ConstantInterference{LevelDBm: radio.InterferenceDBm},
		rng.ForSubsystem(SubsystemShadowing),
	)

	return &Simulator{
		Config:    cfg,
		Stations:  stations,
		Slices:    slices,
		UEs:       ues,
		Admission: NewAdmissionController(stations, slices, propagator),
		Mobility:  RandomWalk{},
		Backoff:   DefaultBackoffPolicy(),
		Clock:     &VirtualClock{},
		Metrics:   NewMetrics(),
		rng:       rng,
	}
}

// AddReporter registers a per-tick status consumer.
func (s *Simulator) AddReporter(r Reporter) {
	s.reporters = append(s.reporters, r)
}

// Run executes the configured number of ticks. The terminal condition is
// simply "ticks exhausted"; there is no convergence criterion.
func (s *Simulator) Run() {
	for tick := 1; tick <= s.Config.Ticks; tick++ {
		s.Step(tick)
	}
}

// Step runs one full pass over the population: move every UE, churn
// connected ones with probability 1/DisconnectDenominator, let detached
// ones attempt a connection, then aggregate and report.
func (s *Simulator) Step(tick int) {
	mobilityRNG := s.rng.ForSubsystem(SubsystemMobility)
	churnRNG := s.rng.ForSubsystem(SubsystemChurn)

	for _, ue := range s.UEs {
		s.Mobility.Move(ue, s.Config.TimeStepSeconds, mobilityRNG)

		if ue.Connected() && churnRNG.Intn(s.Config.DisconnectDenominator) == 0 {
			ue.Disconnect()
			s.Metrics.ObserveDisconnect()
			logrus.Infof("UE %d disconnected", ue.ID)
		}

		if !ue.Connected() {
			result := s.Admission.Attempt(ue)
			s.Metrics.ObserveAttempt(result)

			if result.Outcome != OutcomeConnected {
				// Virtual pacing only: the reference model slept here,
				// which blocked the whole loop. The causal ordering is
				// all that matters, so the delay just moves the clock.
				s.Clock.Advance(s.Backoff.DelayMillis(ue.Attempts))
			}
			s.Clock.Advance(s.Config.TickIntervalMillis)
		}
	}

	status := s.aggregate(tick)
	s.Metrics.ObserveTick(status)
	for _, r := range s.reporters {
		r.ReportTick(status)
	}
}

// aggregate counts connected UEs overall and per required class.
func (s *Simulator) aggregate(tick int) TickStatus {
	status := TickStatus{
		Tick:     tick,
		Total:    len(s.UEs),
		PerClass: make(map[SliceClass]int),
	}
	for _, ue := range s.UEs {
		if ue.Connected() {
			status.Connected++
			status.PerClass[ue.RequiredClass]++
		}
	}
	return status
}
