// Scenario loading: the YAML deployment description (stations, slices,
// population, loop parameters) and its validation.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Reference carrier frequencies for the built-in deployment.
const (
	FrequencyLowBandHz = 600e6 // sub-6 GHz
	FrequencyMmWaveHz  = 28e9  // mmWave
)

// ScenarioSpec is the top-level deployment configuration.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Seed     int64          `yaml:"seed"`
	Ticks    int            `yaml:"ticks"`
	Stations []StationSpec  `yaml:"stations"`
	Slices   []SliceSpec    `yaml:"slices"`
	UEs      PopulationSpec `yaml:"ues"`

	// Zero means "use the reference default" for the scalars below.
	// InterferenceDBm is a pointer because 0 dBm is a legal level.
	TimeStepSeconds       float64  `yaml:"time_step_seconds,omitempty"`
	DisconnectDenominator int      `yaml:"disconnect_denominator,omitempty"`
	InterferenceDBm       *float64 `yaml:"interference_dbm,omitempty"`
}

// StationSpec describes one fixed base station.
type StationSpec struct {
	ID            int     `yaml:"id"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	FrequencyHz   float64 `yaml:"frequency_hz"`
	TxPowerDBm    float64 `yaml:"tx_power_dbm"`
	HeightM       float64 `yaml:"height_m,omitempty"`        // default 25
	AntennaGainDB float64 `yaml:"antenna_gain_db,omitempty"` // default 10
}

// SliceSpec describes one network-wide slice pool.
type SliceSpec struct {
	ID          int     `yaml:"id"`
	Class       string  `yaml:"class"`
	Priority    float64 `yaml:"priority"`
	CapacityMHz float64 `yaml:"capacity_mhz"`
}

// PopulationSpec describes the UE population to bootstrap.
type PopulationSpec struct {
	Count        int                `yaml:"count"`
	ClassWeights map[string]float64 `yaml:"class_weights"`

	// Uniform integer draw ranges, inclusive of min, matching the
	// reference bootstrap (speed 1..5 m/s, bandwidth 5..24 MHz).
	SpeedMinMPS     float64 `yaml:"speed_min_mps,omitempty"`
	SpeedSteps      int     `yaml:"speed_steps,omitempty"`
	BandwidthMinMHz float64 `yaml:"bandwidth_min_mhz,omitempty"`
	BandwidthSteps  int     `yaml:"bandwidth_steps,omitempty"`

	// Placement area: positions drawn uniformly in [0, AreaSizeM) per axis.
	AreaSizeM float64 `yaml:"area_size_m,omitempty"`
}

// LoadScenarioSpec reads and validates a YAML scenario file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks cross-field consistency. It does not mutate the spec;
// defaults are applied during bootstrap.
func (s *ScenarioSpec) Validate() error {
	if len(s.Stations) == 0 {
		return fmt.Errorf("scenario: at least one station is required")
	}
	if len(s.Slices) == 0 {
		return fmt.Errorf("scenario: at least one slice is required")
	}
	if s.Ticks < 1 {
		return fmt.Errorf("scenario: ticks must be >= 1, got %d", s.Ticks)
	}
	if s.TimeStepSeconds < 0 {
		return fmt.Errorf("scenario: time_step_seconds must be >= 0, got %v", s.TimeStepSeconds)
	}
	if s.DisconnectDenominator < 0 {
		return fmt.Errorf("scenario: disconnect_denominator must be >= 0, got %d", s.DisconnectDenominator)
	}

	stationIDs := make(map[int]bool)
	for _, st := range s.Stations {
		if stationIDs[st.ID] {
			return fmt.Errorf("scenario: duplicate station id %d", st.ID)
		}
		stationIDs[st.ID] = true
		if st.FrequencyHz <= 0 {
			return fmt.Errorf("scenario: station %d: frequency must be > 0", st.ID)
		}
	}

	sliceIDs := make(map[int]bool)
	for _, sl := range s.Slices {
		if sliceIDs[sl.ID] {
			return fmt.Errorf("scenario: duplicate slice id %d", sl.ID)
		}
		sliceIDs[sl.ID] = true
		if _, err := ParseSliceClass(sl.Class); err != nil {
			return fmt.Errorf("scenario: slice %d: %w", sl.ID, err)
		}
		if sl.Priority <= 0 || sl.Priority > 1 {
			return fmt.Errorf("scenario: slice %d: priority must be in (0,1], got %v", sl.ID, sl.Priority)
		}
		if sl.CapacityMHz <= 0 {
			return fmt.Errorf("scenario: slice %d: capacity must be > 0", sl.ID)
		}
	}

	if s.UEs.Count < 0 {
		return fmt.Errorf("scenario: ue count must be >= 0, got %d", s.UEs.Count)
	}
	for name, w := range s.UEs.ClassWeights {
		if _, err := ParseSliceClass(name); err != nil {
			return fmt.Errorf("scenario: class weight: %w", err)
		}
		if w < 0 {
			return fmt.Errorf("scenario: class weight %s must be >= 0, got %v", name, w)
		}
	}
	return nil
}

// EngineConfig derives the loop parameters encoded in the scenario.
func (s *ScenarioSpec) EngineConfig() EngineConfig {
	return EngineConfig{
		Ticks:                 s.Ticks,
		TimeStepSeconds:       s.TimeStepSeconds,
		DisconnectDenominator: s.DisconnectDenominator,
	}.withDefaults()
}

// RadioConfig derives the propagation parameters encoded in the scenario.
func (s *ScenarioSpec) RadioConfig() RadioConfig {
	cfg := DefaultRadioConfig()
	if s.InterferenceDBm != nil {
		cfg.InterferenceDBm = *s.InterferenceDBm
	}
	return cfg
}

// DefaultScenario returns the built-in reference deployment: four stations
// on a 1 km square alternating low-band and mmWave carriers, one slice per
// traffic class, and 50 UEs weighted 70/20/10 across eMBB/URLLC/mMTC.
func DefaultScenario() *ScenarioSpec {
	return &ScenarioSpec{
		Seed:  42,
		Ticks: 10,
		Stations: []StationSpec{
			{ID: 1, X: 0, Y: 0, FrequencyHz: FrequencyLowBandHz, TxPowerDBm: 40},
			{ID: 2, X: 1000, Y: 1000, FrequencyHz: FrequencyMmWaveHz, TxPowerDBm: 30},
			{ID: 3, X: 0, Y: 1000, FrequencyHz: FrequencyLowBandHz, TxPowerDBm: 40},
			{ID: 4, X: 1000, Y: 0, FrequencyHz: FrequencyMmWaveHz, TxPowerDBm: 30},
		},
		Slices: []SliceSpec{
			{ID: 1, Class: string(ClassEMBB), Priority: 0.7, CapacityMHz: 100},
			{ID: 2, Class: string(ClassURLLC), Priority: 0.9, CapacityMHz: 50},
			{ID: 3, Class: string(ClassMMTC), Priority: 0.3, CapacityMHz: 200},
		},
		UEs: PopulationSpec{
			Count: 50,
			ClassWeights: map[string]float64{
				string(ClassEMBB):  70,
				string(ClassURLLC): 20,
				string(ClassMMTC):  10,
			},
		},
	}
}
