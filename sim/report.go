package sim

import "github.com/sirupsen/logrus"

// TickStatus is the aggregate view of the population after one full tick.
type TickStatus struct {
	Tick      int
	Connected int
	Total     int
	PerClass  map[SliceClass]int // connected UEs keyed by required class
}

// ConnectedPercent returns the connected share in [0,100].
func (ts TickStatus) ConnectedPercent() float64 {
	if ts.Total == 0 {
		return 0
	}
	return 100 * float64(ts.Connected) / float64(ts.Total)
}

// Reporter consumes per-tick aggregate status. Implementations must not
// retain the PerClass map across calls.
type Reporter interface {
	ReportTick(status TickStatus)
}

// ConsoleReporter logs the per-tick network summary, mirroring the
// reference simulator's status display.
type ConsoleReporter struct{}

func (ConsoleReporter) ReportTick(status TickStatus) {
	logrus.Infof("=== Simulation Step %d ===", status.Tick)
	logrus.Infof("Network Status: %d/%d UEs connected (%.1f%%)",
		status.Connected, status.Total, status.ConnectedPercent())
	for _, class := range SliceClasses {
		if n := status.PerClass[class]; n > 0 {
			logrus.Infof("  %s: %d UEs", class, n)
		}
	}
}
