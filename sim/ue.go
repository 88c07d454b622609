package sim

// Connection is the established attachment of a UE. The station reference is
// non-owning; the slice reference is the shared network-wide pool the
// bandwidth was drawn from.
type Connection struct {
	Station      *BaseStation
	Slice        *NetworkSlice
	SINRdB       float64 // signal quality recorded at admission time
	BandwidthMHz float64 // granted bandwidth, > 0 while connected
}

// UserEquipment is one mobile client. It is created once at bootstrap and
// lives for the whole run, moving and attaching/detaching across ticks.
//
// Invariant: Conn != nil implies Conn.Station, Conn.Slice are non-nil and
// Conn.BandwidthMHz > 0; Conn == nil means fully detached.
type UserEquipment struct {
	ID            int
	X, Y          float64
	HeightM       float64
	SpeedMPS      float64
	RequiredClass SliceClass
	RequiredBWMHz float64

	Attempts int // consecutive failed connection attempts, reset on success
	Conn     *Connection
}

// NewUserEquipment creates a detached UE with the default antenna height.
func NewUserEquipment(id int, x, y, speedMPS float64, class SliceClass, requiredBWMHz float64) *UserEquipment {
	return &UserEquipment{
		ID:            id,
		X:             x,
		Y:             y,
		HeightM:       DefaultUEHeightM,
		SpeedMPS:      speedMPS,
		RequiredClass: class,
		RequiredBWMHz: requiredBWMHz,
	}
}

// Connected reports whether the UE currently holds a connection.
func (ue *UserEquipment) Connected() bool {
	return ue.Conn != nil
}

// Disconnect releases the UE's allocated bandwidth back to its slice and
// clears the connection state. Idempotent: detached UEs are left alone.
func (ue *UserEquipment) Disconnect() {
	if ue.Conn == nil {
		return
	}
	ue.Conn.Slice.Release(ue.Conn.BandwidthMHz)
	ue.Conn = nil
}
