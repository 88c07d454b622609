package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomWalk_BoundedStep(t *testing.T) {
	// Each axis moves by speed*timeStep*step with step in {-1,0,1}, so
	// per-tick displacement per axis never exceeds speed*timeStep.
	rng := rand.New(rand.NewSource(1))
	ue := NewUserEquipment(1, 100, 100, 3, ClassEMBB, 10)

	for i := 0; i < 200; i++ {
		prevX, prevY := ue.X, ue.Y
		RandomWalk{}.Move(ue, 1.0, rng)

		dx := math.Abs(ue.X - prevX)
		dy := math.Abs(ue.Y - prevY)
		if dx > 3.0 || dy > 3.0 {
			t.Fatalf("step %d: displacement (%v, %v) exceeds speed*timeStep", i, dx, dy)
		}
		// Steps are quantized to multiples of speed*timeStep.
		if dx != 0 && dx != 3.0 {
			t.Fatalf("step %d: dx = %v, want 0 or 3", i, dx)
		}
	}
}

func TestRandomWalk_ZeroSpeedStaysPut(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ue := NewUserEquipment(1, 42, 24, 0, ClassMMTC, 5)

	for i := 0; i < 50; i++ {
		RandomWalk{}.Move(ue, 1.0, rng)
	}
	if ue.X != 42 || ue.Y != 24 {
		t.Errorf("zero-speed UE moved to (%v, %v)", ue.X, ue.Y)
	}
}

func TestRandomWalk_Unbounded(t *testing.T) {
	// No clamping: a fast UE eventually drifts outside any nominal area.
	rng := rand.New(rand.NewSource(7))
	ue := NewUserEquipment(1, 0, 0, 1000, ClassEMBB, 10)

	escaped := false
	for i := 0; i < 100; i++ {
		RandomWalk{}.Move(ue, 1.0, rng)
		if ue.X < 0 || ue.Y < 0 {
			escaped = true
			break
		}
	}
	if !escaped {
		t.Error("random walk never left the first quadrant; clamping suspected")
	}
}

func TestRandomWalk_TimeStepScalesDisplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ue := NewUserEquipment(1, 0, 0, 2, ClassEMBB, 10)

	for i := 0; i < 100; i++ {
		prevX := ue.X
		RandomWalk{}.Move(ue, 0.5, rng)
		dx := math.Abs(ue.X - prevX)
		if dx != 0 && dx != 1.0 {
			t.Fatalf("dx = %v, want multiples of speed*timeStep = 1.0", dx)
		}
	}
}
