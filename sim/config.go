package sim

// EngineConfig groups the per-tick loop parameters.
type EngineConfig struct {
	Ticks                 int     // number of simulation steps to run (0 runs nothing)
	TimeStepSeconds       float64 // mobility time step per tick (default 1.0)
	DisconnectDenominator int     // connected UEs drop with probability 1/N per tick (default 10)
	TickIntervalMillis    int64   // virtual pacing charged per attempt, log cadence only (default 100)
}

// DefaultEngineConfig returns the reference loop parameters.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Ticks:                 10,
		TimeStepSeconds:       1.0,
		DisconnectDenominator: 10,
		TickIntervalMillis:    100,
	}
}

// withDefaults fills zero-valued fields so partially specified configs
// behave like the reference deployment. Ticks passes through untouched:
// a zero-tick run is a legal no-op. A non-positive DisconnectDenominator
// would panic the churn draw, so it falls back to the default too.
func (c EngineConfig) withDefaults() EngineConfig {
	d := DefaultEngineConfig()
	if c.TimeStepSeconds == 0 {
		c.TimeStepSeconds = d.TimeStepSeconds
	}
	if c.DisconnectDenominator <= 0 {
		c.DisconnectDenominator = d.DisconnectDenominator
	}
	if c.TickIntervalMillis == 0 {
		c.TickIntervalMillis = d.TickIntervalMillis
	}
	return c
}

// RadioConfig groups propagation model parameters.
type RadioConfig struct {
	InterferenceDBm float64 // constant interference floor (default -90)
}

// DefaultRadioConfig returns the baseline constant-interference model.
func DefaultRadioConfig() RadioConfig {
	return RadioConfig{InterferenceDBm: DefaultInterferenceDBm}
}
