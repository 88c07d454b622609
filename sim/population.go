// Population bootstrap: turning a validated ScenarioSpec into live
// stations, slice pools, and UEs.

package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Reference bootstrap draw ranges: speed 1 + Intn(5) m/s, required
// bandwidth 5 + Intn(20) MHz, placement uniform over a 1 km square.
const (
	defaultSpeedMinMPS     = 1.0
	defaultSpeedSteps      = 5
	defaultBandwidthMinMHz = 5.0
	defaultBandwidthSteps  = 20
	defaultAreaSizeM       = 1000.0
)

// BuildSlices constructs the shared slice registry from the scenario.
func BuildSlices(spec *ScenarioSpec) (*SliceRegistry, error) {
	registry := NewSliceRegistry()
	for _, sl := range spec.Slices {
		class, err := ParseSliceClass(sl.Class)
		if err != nil {
			return nil, err
		}
		if err := registry.Add(NewNetworkSlice(sl.ID, class, sl.Priority, sl.CapacityMHz)); err != nil {
			return nil, err
		}
	}
	logrus.Infof("Created %d network slices", registry.Len())
	return registry, nil
}

// BuildStations constructs the fixed station set and points every station
// at every slice, matching the reference deployment where each cell serves
// all classes.
func BuildStations(spec *ScenarioSpec, slices *SliceRegistry) []*BaseStation {
	stations := make([]*BaseStation, 0, len(spec.Stations))
	for _, st := range spec.Stations {
		station := NewBaseStation(st.ID, st.X, st.Y, st.FrequencyHz, st.TxPowerDBm)
		if st.HeightM > 0 {
			station.HeightM = st.HeightM
		}
		if st.AntennaGainDB != 0 {
			station.AntennaGainDB = st.AntennaGainDB
		}
		for _, slice := range slices.All() {
			station.AddSlice(slice.ID())
		}
		stations = append(stations, station)
	}
	logrus.Infof("Created %d base stations", len(stations))
	return stations
}

// BuildPopulation constructs the UE population from the scenario using the
// population RNG subsystem. Classes are drawn from the weighted class
// distribution; positions, speeds, and bandwidth requirements from uniform
// draws over the configured ranges.
func BuildPopulation(spec *ScenarioSpec, rng *rand.Rand) ([]*UserEquipment, error) {
	pop := spec.UEs

	sampler, err := newClassSampler(pop.ClassWeights)
	if err != nil {
		return nil, err
	}

	speedMin := pop.SpeedMinMPS
	if speedMin == 0 {
		speedMin = defaultSpeedMinMPS
	}
	speedSteps := pop.SpeedSteps
	if speedSteps == 0 {
		speedSteps = defaultSpeedSteps
	}
	bwMin := pop.BandwidthMinMHz
	if bwMin == 0 {
		bwMin = defaultBandwidthMinMHz
	}
	bwSteps := pop.BandwidthSteps
	if bwSteps == 0 {
		bwSteps = defaultBandwidthSteps
	}
	area := pop.AreaSizeM
	if area == 0 {
		area = defaultAreaSizeM
	}

	ues := make([]*UserEquipment, 0, pop.Count)
	for i := 1; i <= pop.Count; i++ {
		class := sampler.sample(rng)
		x := rng.Float64() * area
		y := rng.Float64() * area
		speed := speedMin + float64(rng.Intn(speedSteps))
		bandwidth := bwMin + float64(rng.Intn(bwSteps))
		ues = append(ues, NewUserEquipment(i, x, y, speed, class, bandwidth))
	}
	logrus.Infof("Created %d user equipment instances", len(ues))
	return ues, nil
}

// classSampler draws traffic classes from a weighted distribution via
// inverse CDF over the canonical class order.
type classSampler struct {
	classes []SliceClass
	cdf     []float64
}

func newClassSampler(weights map[string]float64) (*classSampler, error) {
	total := 0.0
	for _, class := range SliceClasses {
		total += weights[string(class)]
	}
	if total <= 0 {
		return nil, fmt.Errorf("population: class weights must sum to > 0")
	}

	s := &classSampler{}
	cumulative := 0.0
	for _, class := range SliceClasses {
		w := weights[string(class)]
		if w <= 0 {
			continue
		}
		cumulative += w / total
		s.classes = append(s.classes, class)
		s.cdf = append(s.cdf, cumulative)
	}
	// Guard against accumulated float error at the top of the CDF.
	s.cdf[len(s.cdf)-1] = 1.0
	return s, nil
}

func (s *classSampler) sample(rng *rand.Rand) SliceClass {
	u := rng.Float64()
	for i, c := range s.cdf {
		if u <= c {
			return s.classes[i]
		}
	}
	return s.classes[len(s.classes)-1]
}

// BuildSimulator bootstraps a full simulator from a validated scenario.
func BuildSimulator(spec *ScenarioSpec) (*Simulator, error) {
	rng := NewPartitionedRNG(NewSimulationKey(spec.Seed))

	slices, err := BuildSlices(spec)
	if err != nil {
		return nil, err
	}
	stations := BuildStations(spec, slices)
	ues, err := BuildPopulation(spec, rng.ForSubsystem(SubsystemPopulation))
	if err != nil {
		return nil, err
	}

	return NewSimulator(spec.EngineConfig(), spec.RadioConfig(), rng, stations, slices, ues), nil
}
