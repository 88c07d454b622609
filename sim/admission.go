package sim

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// SliceRequirements are the per-class admission thresholds a station must
// clear before it is considered for a UE of that class.
type SliceRequirements struct {
	MinSINRdB         float64
	MinRSRPdBm        float64
	BandwidthPriority float64
}

// sliceRequirements is the fixed admission threshold table.
var sliceRequirements = map[SliceClass]SliceRequirements{
	ClassEMBB:  {MinSINRdB: 5.0, MinRSRPdBm: -110.0, BandwidthPriority: 0.7},
	ClassURLLC: {MinSINRdB: 10.0, MinRSRPdBm: -105.0, BandwidthPriority: 0.9},
	ClassMMTC:  {MinSINRdB: 0.0, MinRSRPdBm: -120.0, BandwidthPriority: 0.3},
}

// RequirementsFor returns the admission thresholds for a traffic class.
func RequirementsFor(class SliceClass) SliceRequirements {
	return sliceRequirements[class]
}

// Candidate ranking weights. The score is a weighted sum over native units
// (dB, dBm, MHz), deliberately not normalized.
const (
	scoreWeightSINR = 0.7
	scoreWeightRSRP = 0.2
	scoreWeightBW   = 0.1
)

// headroomFactor: a slice qualifies for a candidate when its weighted
// headroom covers at least this fraction of the UE's requirement.
const headroomFactor = 0.5

// ConnectionCandidate is one (station, slice) pairing considered during a
// single attempt. Zero-value candidates carry -Inf signal fields so a
// non-viable best candidate is recognizable in failure reports.
type ConnectionCandidate struct {
	Station      *BaseStation
	Slice        *NetworkSlice
	SINRdB       float64
	RSRPdBm      float64
	AvailableMHz float64
}

// newEmptyCandidate returns the sentinel non-viable candidate.
func newEmptyCandidate() ConnectionCandidate {
	return ConnectionCandidate{
		SINRdB:  math.Inf(-1),
		RSRPdBm: math.Inf(-1),
	}
}

// Viable reports whether the candidate names both a station and a slice.
func (c ConnectionCandidate) Viable() bool {
	return c.Station != nil && c.Slice != nil
}

// Score ranks candidates: higher is better.
func (c ConnectionCandidate) Score() float64 {
	return scoreWeightSINR*c.SINRdB + scoreWeightRSRP*c.RSRPdBm + scoreWeightBW*c.AvailableMHz
}

// AdmissionOutcome classifies the result of one connection attempt.
type AdmissionOutcome int

const (
	// OutcomeConnected: a candidate was selected and allocation succeeded.
	OutcomeConnected AdmissionOutcome = iota
	// OutcomeNoViableStation: no station met the class signal thresholds.
	OutcomeNoViableStation
	// OutcomeNoCapacity: stations passed the signal thresholds but no slice
	// of the required class had sufficient headroom.
	OutcomeNoCapacity
	// OutcomeAllocationRace: a candidate was selected but the allocation
	// came back zero (headroom consumed between check and allocate, or a
	// sub-threshold request rounded away).
	OutcomeAllocationRace
)

func (o AdmissionOutcome) String() string {
	switch o {
	case OutcomeConnected:
		return "connected"
	case OutcomeNoViableStation:
		return "no_viable_station"
	case OutcomeNoCapacity:
		return "no_capacity"
	case OutcomeAllocationRace:
		return "allocation_race"
	default:
		return "unknown"
	}
}

// AdmissionResult reports one attempt: the outcome and the best candidate
// that was considered (sentinel fields when nothing qualified).
type AdmissionResult struct {
	Outcome AdmissionOutcome
	Best    ConnectionCandidate
}

// AdmissionController evaluates station-slice pairings for UEs and performs
// the winning allocation. It holds the fixed station set and the shared
// slice registry; all state mutation happens through the slice pools and
// the UE's connection field.
type AdmissionController struct {
	Stations []*BaseStation
	Slices   *SliceRegistry
	Radio    *Propagator
}

// NewAdmissionController wires the controller to the deployed stations,
// the slice registry, and the propagation model.
func NewAdmissionController(stations []*BaseStation, slices *SliceRegistry, radio *Propagator) *AdmissionController {
	return &AdmissionController{Stations: stations, Slices: slices, Radio: radio}
}

// Attempt runs one full connection attempt for a detached UE: evaluate,
// rank, and allocate. The UE's attempt counter is incremented at entry and
// reset only on success.
func (ac *AdmissionController) Attempt(ue *UserEquipment) AdmissionResult {
	ue.Attempts++

	best, sawStation := ac.evaluate(ue)
	if !best.Viable() {
		outcome := OutcomeNoViableStation
		if sawStation {
			outcome = OutcomeNoCapacity
		}
		ac.logFailure(ue, best, outcome)
		return AdmissionResult{Outcome: outcome, Best: best}
	}

	allocated := best.Slice.Allocate(ue.RequiredBWMHz)
	if allocated <= 0 {
		logrus.Infof("UE %d failed to allocate resources on %s slice %d",
			ue.ID, best.Slice.Class(), best.Slice.ID())
		return AdmissionResult{Outcome: OutcomeAllocationRace, Best: best}
	}

	ue.Conn = &Connection{
		Station:      best.Station,
		Slice:        best.Slice,
		SINRdB:       best.SINRdB,
		BandwidthMHz: allocated,
	}
	ue.Attempts = 0

	logrus.Infof("UE %d connected to gNB %d on %s slice: allocated %.2f/%.2f MHz, SINR %.2f dB, RSRP %.2f dBm",
		ue.ID, best.Station.ID, best.Slice.Class(), allocated, ue.RequiredBWMHz, best.SINRdB, best.RSRPdBm)

	return AdmissionResult{Outcome: OutcomeConnected, Best: best}
}

// evaluate builds the candidate set for one attempt and returns the
// top-ranked candidate plus whether any station cleared the signal
// thresholds (distinguishes no-viable-station from no-capacity failures).
//
// Candidates are the cross-product of passing stations and required-class
// slices with sufficient headroom: slices are network-wide pools, so a
// slice is not tied to the station whose signal was measured.
func (ac *AdmissionController) evaluate(ue *UserEquipment) (ConnectionCandidate, bool) {
	req := sliceRequirements[ue.RequiredClass]
	best := newEmptyCandidate()

	var candidates []ConnectionCandidate
	sawStation := false

	for _, station := range ac.Stations {
		metrics := ac.Radio.Evaluate(station, ue.X, ue.Y, ue.HeightM)
		if metrics.SINRdB < req.MinSINRdB || metrics.RSRPdBm < req.MinRSRPdBm {
			continue
		}
		sawStation = true

		for _, slice := range ac.Slices.OfClass(ue.RequiredClass) {
			available := slice.Available()
			if available >= ue.RequiredBWMHz*headroomFactor {
				candidates = append(candidates, ConnectionCandidate{
					Station:      station,
					Slice:        slice,
					SINRdB:       metrics.SINRdB,
					RSRPdBm:      metrics.RSRPdBm,
					AvailableMHz: available,
				})
			}
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score() > candidates[j].Score()
		})
		best = candidates[0]
	}

	return best, sawStation
}

func (ac *AdmissionController) logFailure(ue *UserEquipment, best ConnectionCandidate, outcome AdmissionOutcome) {
	if outcome == OutcomeNoCapacity {
		logrus.Infof("UE %d could not connect: stations reachable but no %s capacity (attempt %d)",
			ue.ID, ue.RequiredClass, ue.Attempts)
		return
	}
	logrus.Infof("UE %d found no viable stations (attempt %d)", ue.ID, ue.Attempts)
}
