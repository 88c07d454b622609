package sim

// Default antenna geometry, matching the reference urban-macro deployment.
const (
	DefaultStationHeightM = 25.0
	DefaultAntennaGainDB  = 10.0
	DefaultUEHeightM      = 1.5
)

// BaseStation is a fixed cell site. Everything except the served-slice list
// is immutable after construction; the slice list is populated once during
// scenario bootstrap and holds identities only — the pools themselves live
// in the SliceRegistry.
type BaseStation struct {
	ID               int
	X, Y             float64 // position in metres
	HeightM          float64 // antenna height
	FrequencyHz      float64 // carrier frequency
	TransmitPowerDBm float64
	AntennaGainDB    float64

	sliceIDs []int
}

// NewBaseStation creates a station with default antenna height and gain.
func NewBaseStation(id int, x, y, frequencyHz, transmitPowerDBm float64) *BaseStation {
	return &BaseStation{
		ID:               id,
		X:                x,
		Y:                y,
		HeightM:          DefaultStationHeightM,
		FrequencyHz:      frequencyHz,
		TransmitPowerDBm: transmitPowerDBm,
		AntennaGainDB:    DefaultAntennaGainDB,
	}
}

// AddSlice records that this station serves the identified slice.
func (b *BaseStation) AddSlice(sliceID int) {
	b.sliceIDs = append(b.sliceIDs, sliceID)
}

// SliceIDs returns the identities of the slices this station serves.
func (b *BaseStation) SliceIDs() []int {
	return b.sliceIDs
}
