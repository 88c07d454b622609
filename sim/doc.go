// Package sim provides the core tick-driven simulation engine for a sliced
// radio access network: base stations, network slices, and mobile UEs that
// repeatedly attach subject to signal quality and per-slice bandwidth budgets.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - radio.go: the two-slope urban-macro propagation model (path loss,
//     shadowing, noise floor, SINR/RSRP)
//   - admission.go: candidate evaluation, ranking, and resource allocation
//   - engine.go: the per-tick loop (mobility, churn, reconnection, reporting)
//
// # Architecture
//
// The package is flat. Supporting pieces:
//   - slice.go: the priority-weighted bandwidth pool and the shared registry
//   - station.go / ue.go: the fixed station set and the mobile population
//   - mobility.go: the bounded random-walk model
//   - scenario.go / population.go: YAML scenario loading and bootstrap
//   - rng.go: partitioned deterministic randomness per subsystem
//   - metrics.go / report.go: run counters and per-tick status fan-out
//
// # Key Interfaces
//
// The extension points are single-method or small interfaces:
//   - InterferenceModel: the interference-floor seam in the propagation model
//   - MobilityModel: per-tick position updates
//   - Reporter: per-tick status consumers (console, Prometheus collector)
package sim
