package sabertooth

import "io"

// Controller is the command surface of a Sabertooth 2x60, independent of
// the wire protocol carrying it. PacketSerial implements it for the
// packetized protocol; a text-mode implementation provides the same
// surface for controllers configured for the plain-text command set.
type Controller interface {
	// SetMinVoltage sets the battery cutoff voltage. The output shuts
	// down when the supply drops below it. One unit is ~0.094V with 0
	// meaning 6V and 255 meaning 30V. Cleared on power-up.
	SetMinVoltage(units uint8) error

	// SetMaxVoltage sets the regeneration voltage ceiling. Above it the
	// driver hard-brakes the motors instead of pushing current back into
	// the supply. One unit is ~0.1V starting from 0V. Persists through
	// a power cycle.
	SetMaxVoltage(units uint8) error

	// SetSerialTimeout shuts the motors off when no command arrives
	// within ms. 0 disables the timeout. Resolution is 100ms; values
	// 1-99 count as one unit. Valid range is 0 to MaxSerialTimeoutMS.
	SetSerialTimeout(ms uint16) error

	// SetBaudRate switches the controller to one of 2400, 9600 (the
	// factory default), 19200, 38400 or 115200 baud and reconfigures
	// the local transport to match. Persists through a power cycle.
	SetBaudRate(baudRate int) error

	// SetRamping adjusts or disables the acceleration ramp. Lower
	// values ramp faster. Applies to all input modes.
	SetRamping(rate uint8) error

	// SetDeadband sets how wide a band around "stop" is treated as
	// stop. Applies to all input modes and persists.
	SetDeadband(deadband uint8) error

	// DriveM1 sets the motor 1 output. -128 is full reverse, 127 is
	// full forward.
	DriveM1(value int8) error

	// DriveM2 sets the motor 2 output. -128 is full reverse, 127 is
	// full forward.
	DriveM2(value int8) error

	// DriveMixed drives both motors in mixed mode. -128 is full
	// reverse, 127 is full forward.
	DriveMixed(value int8) error

	// TurnMixed turns in mixed mode. -128 is full left, 127 is full
	// right.
	TurnMixed(value int8) error
}

// Transport is the minimal capability PacketSerial needs from the
// underlying byte stream. The packet protocol is write-only, so no read
// side is required. Implementations are expected to preserve write order;
// the driver performs no locking and assumes a single writer.
type Transport interface {
	io.Writer

	// SetBaudRate reconfigures the line speed without reopening the
	// stream.
	SetBaudRate(baudRate int) error
}
