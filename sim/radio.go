package sim

import (
	"math"
	"math/rand"
)

// Physical constants and receiver assumptions for the link budget.
const (
	SpeedOfLight      = 3e8          // m/s
	BoltzmannConst    = 1.380649e-23 // J/K
	NoiseTemperatureK = 290.0
	NoiseFigureDB     = 5.0
	NoiseBandwidthHz  = 10e6

	// ShadowingSigmaDB is the standard deviation of the zero-mean log-normal
	// shadowing term, per 3GPP UMa NLOS assumptions.
	ShadowingSigmaDB = 8.0
)

// SignalMetrics is the per-evaluation link estimate for one station-UE pair.
// RSSIdBm is carried for contract completeness; admission decisions use only
// SINR and RSRP.
type SignalMetrics struct {
	SINRdB  float64
	RSRPdBm float64
	RSSIdBm float64
}

// InterferenceModel estimates the interference floor seen by a UE at a
// position, in dBm. The baseline simulation uses a constant floor; the
// interface exists so richer models (load-coupled, geometry-aware) can be
// swapped in without touching the propagation math.
type InterferenceModel interface {
	InterferenceDBm(station *BaseStation, ueX, ueY float64) float64
}

// ConstantInterference is the baseline flat interference floor.
type ConstantInterference struct {
	LevelDBm float64
}

// DefaultInterferenceDBm is the baseline flat interference estimate.
const DefaultInterferenceDBm = -90.0

func (c ConstantInterference) InterferenceDBm(_ *BaseStation, _, _ float64) float64 {
	return c.LevelDBm
}

// Propagator computes link budgets between stations and UEs. The shadowing
// stream is injected so test runs can supply deterministic sequences; it is
// one process-wide stream shared across every evaluation, not per-station
// state.
type Propagator struct {
	Interference InterferenceModel
	shadowing    *rand.Rand
}

// NewPropagator creates a Propagator drawing shadowing samples from the
// given RNG. A nil interference model falls back to the constant floor.
func NewPropagator(interference InterferenceModel, shadowing *rand.Rand) *Propagator {
	if interference == nil {
		interference = ConstantInterference{LevelDBm: DefaultInterferenceDBm}
	}
	return &Propagator{Interference: interference, shadowing: shadowing}
}

// Evaluate computes the signal metrics for a UE at (ueX, ueY) with antenna
// height ueHeightM served by the given station. Apart from the shadowing
// draw it is a pure function of its inputs.
func (p *Propagator) Evaluate(station *BaseStation, ueX, ueY, ueHeightM float64) SignalMetrics {
	var m SignalMetrics

	distance := math.Hypot(station.X-ueX, station.Y-ueY)
	if distance == 0 {
		// Co-located degenerate case: skip the log-distance terms entirely.
		m.RSRPdBm = station.TransmitPowerDBm
		m.SINRdB = station.TransmitPowerDBm - NoiseFloorDBm()
		m.RSSIdBm = station.TransmitPowerDBm
		return m
	}

	pathLoss := UrbanMacroPathLoss(distance, station.HeightM, ueHeightM, station.FrequencyHz)
	shadowingLoss := p.shadowing.NormFloat64() * ShadowingSigmaDB

	m.RSRPdBm = station.TransmitPowerDBm - pathLoss + station.AntennaGainDB - shadowingLoss

	interference := p.Interference.InterferenceDBm(station, ueX, ueY)
	noise := NoiseFloorDBm()
	combined := powerSumDB(interference, noise)
	m.SINRdB = m.RSRPdBm - combined
	m.RSSIdBm = powerSumDB(m.RSRPdBm, combined)

	return m
}

// UrbanMacroPathLoss is the two-slope 3GPP urban-macro path loss in dB for a
// 2D distance in metres. The line-of-sight breakpoint distance is
// dBP = 4(hBS-1)(hUE-1)f/c. The two branches are independent formulas and do
// not agree at d == dBP; the discontinuity is a property of the reference
// model and is preserved.
func UrbanMacroPathLoss(distance, stationHeightM, ueHeightM, frequencyHz float64) float64 {
	dBP := 4 * (stationHeightM - 1) * (ueHeightM - 1) * frequencyHz / SpeedOfLight

	if distance < dBP {
		return 28.0 + 22*math.Log10(distance) + 20*math.Log10(frequencyHz/1e9)
	}
	return 28.0 + 40*math.Log10(distance) + 20*math.Log10(frequencyHz/1e9) -
		9*math.Log10(dBP*dBP+distance*distance)
}

// BreakpointDistance returns the line-of-sight breakpoint distance in metres.
func BreakpointDistance(stationHeightM, ueHeightM, frequencyHz float64) float64 {
	return 4 * (stationHeightM - 1) * (ueHeightM - 1) * frequencyHz / SpeedOfLight
}

// NoiseFloorDBm is the thermal noise power kTB over the receiver bandwidth,
// converted to dBm, plus the receiver noise figure.
func NoiseFloorDBm() float64 {
	noisePowerW := BoltzmannConst * NoiseTemperatureK * NoiseBandwidthHz
	noisePowerDBm := 10 * math.Log10(noisePowerW/1e-3)
	return noisePowerDBm + NoiseFigureDB
}

// powerSumDB combines two dB quantities in the linear power domain and
// converts the sum back to dB.
func powerSumDB(a, b float64) float64 {
	return 10 * math.Log10(math.Pow(10, a/10)+math.Pow(10, b/10))
}
