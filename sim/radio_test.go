package sim

import (
	"math"
	"math/rand"
	"testing"
)

func testPropagator(seed int64) *Propagator {
	return NewPropagator(nil, rand.New(rand.NewSource(seed)))
}

func TestNoiseFloorDBm(t *testing.T) {
	// kTB over 10 MHz at 290 K is -103.97 dBm; the 5 dB noise figure
	// brings the floor to -98.97 dBm.
	got := NoiseFloorDBm()
	want := -98.975
	if math.Abs(got-want) > 0.01 {
		t.Errorf("NoiseFloorDBm() = %v, want %v ± 0.01", got, want)
	}
}

func TestUrbanMacroPathLoss_PureFunction(t *testing.T) {
	tests := []struct {
		name        string
		distance    float64
		frequencyHz float64
	}{
		{"short range low band", 50, FrequencyLowBandHz},
		{"beyond breakpoint low band", 5000, FrequencyLowBandHz},
		{"short range mmWave", 50, FrequencyMmWaveHz},
		{"long range mmWave", 20000, FrequencyMmWaveHz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := UrbanMacroPathLoss(tt.distance, DefaultStationHeightM, DefaultUEHeightM, tt.frequencyHz)
			b := UrbanMacroPathLoss(tt.distance, DefaultStationHeightM, DefaultUEHeightM, tt.frequencyHz)
			if a != b {
				t.Errorf("path loss not deterministic: %v vs %v", a, b)
			}
			if math.IsNaN(a) || math.IsInf(a, 0) {
				t.Errorf("path loss = %v, want finite", a)
			}
		})
	}
}

func TestUrbanMacroPathLoss_MonotonicWithinBranch(t *testing.T) {
	// Within each slope, loss grows with distance.
	dBP := BreakpointDistance(DefaultStationHeightM, DefaultUEHeightM, FrequencyLowBandHz)

	below1 := UrbanMacroPathLoss(dBP*0.5, DefaultStationHeightM, DefaultUEHeightM, FrequencyLowBandHz)
	below2 := UrbanMacroPathLoss(dBP*0.9, DefaultStationHeightM, DefaultUEHeightM, FrequencyLowBandHz)
	if below2 <= below1 {
		t.Errorf("pre-breakpoint loss not monotonic: PL(%.1f)=%v, PL(%.1f)=%v", dBP*0.5, below1, dBP*0.9, below2)
	}

	above1 := UrbanMacroPathLoss(dBP*2, DefaultStationHeightM, DefaultUEHeightM, FrequencyLowBandHz)
	above2 := UrbanMacroPathLoss(dBP*4, DefaultStationHeightM, DefaultUEHeightM, FrequencyLowBandHz)
	if above2 <= above1 {
		t.Errorf("post-breakpoint loss not monotonic: %v then %v", above1, above2)
	}
}

func TestUrbanMacroPathLoss_BreakpointBranches(t *testing.T) {
	// The two slopes are independent formulas. Verify each branch against
	// its closed form at a point squarely inside it.
	const h, hUE = DefaultStationHeightM, DefaultUEHeightM
	f := FrequencyLowBandHz
	dBP := BreakpointDistance(h, hUE, f)

	d := dBP / 2
	want := 28.0 + 22*math.Log10(d) + 20*math.Log10(f/1e9)
	if got := UrbanMacroPathLoss(d, h, hUE, f); math.Abs(got-want) > 1e-9 {
		t.Errorf("below breakpoint: got %v, want %v", got, want)
	}

	d = dBP * 2
	want = 28.0 + 40*math.Log10(d) + 20*math.Log10(f/1e9) - 9*math.Log10(dBP*dBP+d*d)
	if got := UrbanMacroPathLoss(d, h, hUE, f); math.Abs(got-want) > 1e-9 {
		t.Errorf("above breakpoint: got %v, want %v", got, want)
	}

	// Exactly at the breakpoint the second branch applies.
	want = 28.0 + 40*math.Log10(dBP) + 20*math.Log10(f/1e9) - 9*math.Log10(dBP*dBP+dBP*dBP)
	if got := UrbanMacroPathLoss(dBP, h, hUE, f); math.Abs(got-want) > 1e-9 {
		t.Errorf("at breakpoint: got %v, want %v", got, want)
	}
}

func TestPropagator_ColocatedDegenerateCase(t *testing.T) {
	station := NewBaseStation(1, 100, 200, FrequencyLowBandHz, 40)
	p := testPropagator(1)

	m := p.Evaluate(station, 100, 200, DefaultUEHeightM)
	if m.RSRPdBm != 40 {
		t.Errorf("co-located RSRP = %v, want transmit power 40", m.RSRPdBm)
	}
	if want := 40 - NoiseFloorDBm(); m.SINRdB != want {
		t.Errorf("co-located SINR = %v, want %v", m.SINRdB, want)
	}

	// No shadowing draw happens in the degenerate path, so repeated
	// evaluations stay identical.
	m2 := p.Evaluate(station, 100, 200, DefaultUEHeightM)
	if m != m2 {
		t.Errorf("degenerate case must be deterministic: %+v vs %+v", m, m2)
	}
}

func TestPropagator_EqualDistanceSamePathLoss(t *testing.T) {
	// Shadowing varies per draw, but the underlying path loss is a pure
	// function of distance/height/frequency: two UEs at the same distance
	// from identical stations differ only by their shadowing samples.
	stationA := NewBaseStation(1, 0, 0, FrequencyLowBandHz, 40)
	stationB := NewBaseStation(2, 500, 500, FrequencyLowBandHz, 40)

	plA := UrbanMacroPathLoss(300, stationA.HeightM, DefaultUEHeightM, stationA.FrequencyHz)
	plB := UrbanMacroPathLoss(300, stationB.HeightM, DefaultUEHeightM, stationB.FrequencyHz)
	if plA != plB {
		t.Errorf("identical geometry must give identical path loss: %v vs %v", plA, plB)
	}
}

func TestPropagator_DeterministicPerSeed(t *testing.T) {
	station := NewBaseStation(1, 0, 0, FrequencyMmWaveHz, 30)

	m1 := testPropagator(7).Evaluate(station, 300, 400, DefaultUEHeightM)
	m2 := testPropagator(7).Evaluate(station, 300, 400, DefaultUEHeightM)
	if m1 != m2 {
		t.Errorf("same shadowing seed must reproduce metrics: %+v vs %+v", m1, m2)
	}
}

func TestPropagator_SINRCombinesInterferenceAndNoise(t *testing.T) {
	// With the interference floor pinned far below thermal noise, SINR
	// approaches RSRP - noise; with it pinned far above, SINR approaches
	// RSRP - interference.
	station := NewBaseStation(1, 0, 0, FrequencyLowBandHz, 40)

	quiet := NewPropagator(ConstantInterference{LevelDBm: -200}, rand.New(rand.NewSource(3)))
	m := quiet.Evaluate(station, 300, 400, DefaultUEHeightM)
	if want := m.RSRPdBm - NoiseFloorDBm(); math.Abs(m.SINRdB-want) > 0.01 {
		t.Errorf("noise-limited SINR = %v, want ≈ %v", m.SINRdB, want)
	}

	loud := NewPropagator(ConstantInterference{LevelDBm: -20}, rand.New(rand.NewSource(3)))
	m = loud.Evaluate(station, 300, 400, DefaultUEHeightM)
	if want := m.RSRPdBm - (-20.0); math.Abs(m.SINRdB-want) > 0.01 {
		t.Errorf("interference-limited SINR = %v, want ≈ %v", m.SINRdB, want)
	}
}

func TestPowerSumDB(t *testing.T) {
	// Two equal powers sum to +3 dB.
	if got := powerSumDB(-90, -90); math.Abs(got-(-90+10*math.Log10(2))) > 1e-9 {
		t.Errorf("powerSumDB(-90,-90) = %v, want -86.99", got)
	}
	// A dominant term swamps a negligible one.
	if got := powerSumDB(-20, -200); math.Abs(got-(-20)) > 1e-6 {
		t.Errorf("powerSumDB(-20,-200) = %v, want ≈ -20", got)
	}
}
