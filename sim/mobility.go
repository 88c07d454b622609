package sim

import "math/rand"

// MobilityModel advances a UE's position by one time step.
type MobilityModel interface {
	Move(ue *UserEquipment, timeStep float64, rng *rand.Rand)
}

// RandomWalk perturbs each axis independently by speed * timeStep * step,
// where step is drawn uniformly from {-1, 0, 1}. The walk is unbounded:
// UEs may drift outside the nominal deployment area and no clamping is
// applied.
type RandomWalk struct{}

func (RandomWalk) Move(ue *UserEquipment, timeStep float64, rng *rand.Rand) {
	ue.X += ue.SpeedMPS * timeStep * float64(rng.Intn(3)-1)
	ue.Y += ue.SpeedMPS * timeStep * float64(rng.Intn(3)-1)
}
